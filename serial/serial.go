// Package serial opens the UART the SN74LV8153 latches listen on.
//
// The programmer core does not open ports itself; it only needs a
// blocking, ordered byte writer. This package supplies the real one on
// top of the host tty, configured for the latches' self-clocking
// serial input (raw mode, 8N1, 2000-24000 baud).
package serial

import (
	"github.com/pkg/errors"
	"github.com/pkg/term"

	"github.com/gschwaer/breadboard-eeprom-programmer/protocol"
)

// DefaultBaudRate is the fastest rate the SN74LV8153 supports. Writing
// 32 KiB takes four frame bytes per EEPROM byte, so running the line
// flat out is the sensible default.
const DefaultBaudRate = protocol.MaxBaudRate

// Port is an open serial connection to the programmer board. It
// implements the programmer's Transport.
type Port struct {
	t *term.Term
}

// Open opens the tty at the given baud rate in raw mode.
//
// Example:
//
//	port, err := serial.Open("/dev/ttyUSB0", serial.DefaultBaudRate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
func Open(device string, baud int) (*Port, error) {
	if baud < protocol.MinBaudRate || baud > protocol.MaxBaudRate {
		return nil, errors.Errorf("baud rate %d outside SN74LV8153 range %d-%d",
			baud, protocol.MinBaudRate, protocol.MaxBaudRate)
	}

	t, err := term.Open(device, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, errors.Wrapf(err, "open serial device %s", device)
	}

	return &Port{t: t}, nil
}

// Write sends raw frame bytes down the line. Blocks until the kernel
// has accepted all bytes.
func (p *Port) Write(b []byte) (int, error) {
	n, err := p.t.Write(b)
	return n, errors.Wrap(err, "serial write")
}

// Close restores the terminal attributes and closes the device.
func (p *Port) Close() error {
	return errors.Wrap(p.t.Close(), "close serial device")
}
