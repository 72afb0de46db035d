package programmer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gschwaer/breadboard-eeprom-programmer/image"
)

// Transport is the serial channel shared by all three latch devices.
// Writes must be ordered, complete and blocking. Implementations need
// no delay logic of their own: the programmer owns all protocol timing
// through its Timing configuration.
type Transport interface {
	io.Writer
}

// Programmer drives byte-write transactions against the EEPROM through
// the shared serial line.
//
// A Programmer is strictly single-threaded: there is exactly one
// physical line behind the transport and frame ordering is part of the
// correctness contract, so calls must not overlap.
type Programmer struct {
	port   Transport
	config Config

	// weAsserted tracks the logical write-enable level. It is owned by
	// the write cycle sequencer and must be false at every transaction
	// boundary, including aborts.
	weAsserted bool

	// lastStrobe is the time of the most recent write-enable release,
	// used to space strobes a full write cycle apart
	lastStrobe time.Time
}

// New creates a new Programmer writing frames to the given transport.
//
// Example:
//
//	port, _ := serial.Open("/dev/ttyUSB0", serial.DefaultBaudRate)
//	prog := programmer.New(port,
//	    programmer.WithProgressCallback(progressFunc),
//	)
func New(port Transport, opts ...Option) *Programmer {
	if port == nil {
		panic("port cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Programmer{
		port:   port,
		config: cfg,
		// Start the write-cycle clock at session open. If the EEPROM
		// was inserted before initialization, a spurious write of byte
		// 0 may be in progress right now; the first strobe of any run
		// waits it out, and the tiny delay does not hurt the happy
		// path.
		lastStrobe: time.Now(),
	}
}

// Initialize drives all three latches to a safe idle state: address 0,
// data 0, write-enable inactive. No strobe is pulsed.
//
// The SN74LV8153 powers up with every output pin low, which holds the
// active-low nWE asserted. Initialize must be run, and must complete,
// BEFORE the EEPROM is inserted into the circuit; otherwise byte 0 may
// be overwritten with 0x00. The programmer has no way to detect an
// early insertion, so this is an operational precondition, not an
// enforced check.
func (p *Programmer) Initialize() error {
	if err := p.setAddress(0, false); err != nil {
		return fmt.Errorf("initialize address latches: %w", err)
	}
	if err := p.setData(0); err != nil {
		return fmt.Errorf("initialize data latch: %w", err)
	}

	// Refresh the write-cycle clock: if the EEPROM was inserted early
	// a write of byte 0 may be in progress right now, and the first
	// real strobe has to wait it out.
	p.lastStrobe = time.Now()

	p.logInfo("initialized, ready for EEPROM insertion")
	return nil
}

// Report summarizes a programming run. On an aborted run the report
// covers the completed prefix.
type Report struct {
	// BytesWritten is the number of completed write transactions
	BytesWritten int

	// BytesSkipped is the number of addresses left untouched because
	// baseline and target agreed (0 when no baseline was given)
	BytesSkipped int

	// TotalBytes is the number of write transactions planned
	TotalBytes int

	// LastCompleted is the last address whose write cycle fully
	// completed, or -1 if none did
	LastCompleted int

	// Elapsed is the wall time spent programming
	Elapsed time.Duration
}

// Program writes the target image to the EEPROM, one byte-write
// transaction per address in ascending order.
//
// With a nil baseline every address 0..len(target)-1 is written. With
// a baseline only the addresses where baseline and target differ are
// written; both images must have the same length. The baseline cannot
// be verified against the device (there is no readback), so the caller
// is responsible for it truthfully reflecting current contents.
//
// The run aborts on the first transport failure: the returned error is
// a *WriteError carrying the failing and last completed addresses, and
// the returned Report covers the completed prefix. Nothing is retried
// across byte boundaries, since blind retry risks double-pulsing
// write-enable with stale address or data state.
//
// Cancelling the context stops the run between byte writes, never in
// the middle of one, so write-enable is inactive on every exit path.
func (p *Programmer) Program(ctx context.Context, target image.Image, baseline image.Image) (*Report, error) {
	if len(target) > image.Size {
		return nil, &image.TooLargeError{Len: len(target)}
	}

	var addrs []int
	if baseline == nil {
		addrs = make([]int, len(target))
		for i := range addrs {
			addrs[i] = i
		}
	} else {
		var err error
		addrs, err = image.Diff(baseline, target)
		if err != nil {
			return nil, err
		}
		p.logInfo("flashing in changes-only mode",
			"changed", len(addrs), "total", len(target))
	}

	report := &Report{
		BytesSkipped:  len(target) - len(addrs),
		TotalBytes:    len(addrs),
		LastCompleted: -1,
	}

	startTime := time.Now()
	runStart, runEnd := -1, -1

	for i, addr := range addrs {
		if err := ctx.Err(); err != nil {
			report.Elapsed = time.Since(startTime)
			p.logWrittenRange(runStart, runEnd)
			return report, fmt.Errorf("cancelled: %w", err)
		}

		if err := p.writeByte(addr, target[addr]); err != nil {
			report.Elapsed = time.Since(startTime)
			p.logWrittenRange(runStart, runEnd)
			return report, &WriteError{
				Addr:          addr,
				LastCompleted: report.LastCompleted,
				Err:           err,
			}
		}

		report.BytesWritten++
		report.LastCompleted = addr

		// Contiguous-range bookkeeping for the operator log.
		switch {
		case runStart < 0:
			runStart, runEnd = addr, addr
		case addr == runEnd+1:
			runEnd = addr
		default:
			p.logWrittenRange(runStart, runEnd)
			p.logSkippedRange(runEnd+1, addr-1)
			runStart, runEnd = addr, addr
		}

		p.reportProgress(Progress{
			Phase:        PhaseProgramming,
			CurrentByte:  i + 1,
			TotalBytes:   len(addrs),
			Percentage:   float64(i+1) / float64(len(addrs)) * 100,
			BytesWritten: report.BytesWritten,
			BytesSkipped: report.BytesSkipped,
			ElapsedTime:  time.Since(startTime),
		})
	}

	p.logWrittenRange(runStart, runEnd)
	report.Elapsed = time.Since(startTime)

	p.reportProgress(Progress{
		Phase:        PhaseComplete,
		CurrentByte:  len(addrs),
		TotalBytes:   len(addrs),
		Percentage:   100,
		BytesWritten: report.BytesWritten,
		BytesSkipped: report.BytesSkipped,
		ElapsedTime:  report.Elapsed,
	})

	if report.TotalBytes == 0 {
		p.logInfo("nothing to do (no changes)")
	} else {
		p.logInfo("programming complete",
			"written", report.BytesWritten,
			"skipped", report.BytesSkipped,
			"elapsed", report.Elapsed.String(),
		)
	}

	return report, nil
}

// logWrittenRange logs one contiguous run of written addresses.
func (p *Programmer) logWrittenRange(start, end int) {
	if start < 0 {
		return
	}
	p.logInfo("wrote range",
		"from", fmt.Sprintf("%04x", start),
		"to", fmt.Sprintf("%04x", end),
		"bytes", end-start+1,
	)
}

// logSkippedRange logs one contiguous run of unchanged addresses.
func (p *Programmer) logSkippedRange(start, end int) {
	if start > end {
		return
	}
	p.logInfo("skipped range, no change",
		"from", fmt.Sprintf("%04x", start),
		"to", fmt.Sprintf("%04x", end),
		"bytes", end-start+1,
	)
}

// reportProgress calls the progress callback if configured.
func (p *Programmer) reportProgress(progress Progress) {
	if p.config.ProgressCallback != nil {
		p.config.ProgressCallback(progress)
	}
}

// logInfo logs an info message if a logger is configured.
func (p *Programmer) logInfo(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (p *Programmer) logError(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Error(msg, keysAndValues...)
	}
}
