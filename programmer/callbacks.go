package programmer

import "time"

// Programming phases reported through Progress.Phase.
const (
	// PhaseProgramming means byte writes are in flight
	PhaseProgramming = "programming"

	// PhaseComplete means the run finished successfully
	PhaseComplete = "complete"
)

// Progress contains information about the programming progress.
// Passed to ProgressCallback during programming operations.
type Progress struct {
	// Phase describes the current operation phase:
	//   "programming" - writing bytes
	//   "complete"    - operation completed successfully
	Phase string

	// CurrentByte is the number of write transactions issued so far
	CurrentByte int

	// TotalBytes is the total number of write transactions planned
	TotalBytes int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesWritten is the total number of bytes written so far
	BytesWritten int

	// BytesSkipped is the number of unchanged bytes skipped so far
	// (always 0 when no baseline is given)
	BytesSkipped int

	// ElapsedTime is the time elapsed since programming started
	ElapsedTime time.Duration
}

// ProgressCallback is called after every write transaction to report
// progress. Implementations should return quickly: they run between
// write cycles and long callbacks stretch the effective cycle time.
//
// Example:
//
//	prog := programmer.New(port,
//	    programmer.WithProgressCallback(func(p programmer.Progress) {
//	        fmt.Printf("[%s] %.1f%% - byte %d/%d\n",
//	            p.Phase, p.Percentage, p.CurrentByte, p.TotalBytes)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// programmer. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	prog := programmer.New(port, programmer.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
