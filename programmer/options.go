package programmer

import "time"

// Config holds the programmer configuration.
type Config struct {
	// Timing holds the EEPROM timing parameters (see DefaultTiming)
	Timing Timing

	// ProgressCallback is called during programming to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Timing: DefaultTiming(),
	}
}

// Option is a functional option for configuring the Programmer.
type Option func(*Config)

// WithTiming replaces the full timing parameter set. Use this to
// target a device with different write-cycle characteristics than the
// AT28C256.
//
// Example:
//
//	prog := programmer.New(port, programmer.WithTiming(programmer.Timing{
//	    WriteCycleTime: 25 * time.Millisecond,
//	}))
func WithTiming(timing Timing) Option {
	return func(c *Config) {
		c.Timing = timing
	}
}

// WithWriteCycleTime sets only the write cycle spacing, keeping the
// other timing defaults.
//
// Example:
//
//	prog := programmer.New(port, programmer.WithWriteCycleTime(20*time.Millisecond))
func WithWriteCycleTime(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.Timing.WriteCycleTime = d
		}
	}
}

// WithProgressCallback sets a callback function to track programming progress.
//
// Example:
//
//	prog := programmer.New(port,
//	    programmer.WithProgressCallback(func(p programmer.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the programmer operations.
//
// Example:
//
//	prog := programmer.New(port, programmer.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
