package programmer

import (
	"fmt"
	"time"

	"github.com/gschwaer/breadboard-eeprom-programmer/image"
	"github.com/gschwaer/breadboard-eeprom-programmer/protocol"
)

// Write-enable is active low and rides bit 7 of the high-address
// device payload, next to address bits A8-A14. A set bit holds nWE
// high, i.e. writing disabled.
const writeDisableBit = 0x80

// addrHighMask selects the 7 address bits carried by the high-address device.
const addrHighMask = 0x7F

// sendFrame encodes one output-register update, writes it to the
// transport and applies the settle floor.
func (p *Programmer) sendFrame(device protocol.DeviceAddr, value byte) error {
	frame, err := protocol.BuildFrame(device, value)
	if err != nil {
		return err
	}
	if _, err := p.port.Write(frame); err != nil {
		return fmt.Errorf("write frame to device %d: %w", device, err)
	}
	if p.config.Timing.SettleTime > 0 {
		time.Sleep(p.config.Timing.SettleTime)
	}
	return nil
}

// setAddress drives the full 15-bit address onto the bus, together
// with the write-enable level. Both latches are rewritten on every
// call, even when only one half changed: their outputs are latched
// independently and must never drift from this controller's view.
//
// The high/WE frame always goes last. The EEPROM latches the address
// on the falling edge of nWE, and capacitive signal delays could ruin
// the write if address lines moved together with the strobe; sending
// the low half first means every other line has settled by the time an
// asserting frame lands (setup-before-strobe).
func (p *Programmer) setAddress(addr int, weAssert bool) error {
	if addr < 0 || addr > image.MaxAddr {
		return &AddressRangeError{Addr: addr}
	}

	if err := p.sendFrame(protocol.DeviceAddrLow, byte(addr)); err != nil {
		return err
	}

	high := byte(addr>>8) & addrHighMask
	if weAssert {
		// The strobe may be live once this frame leaves, regardless of
		// what the transport reports, so record the assertion first.
		p.weAsserted = true
	} else {
		high |= writeDisableBit
	}

	if err := p.sendFrame(protocol.DeviceAddrHigh, high); err != nil {
		return err
	}
	p.weAsserted = weAssert
	return nil
}

// setData drives one byte onto the EEPROM data lines. Ordered after
// address setup and before the strobe (data-before-strobe).
func (p *Programmer) setData(value byte) error {
	return p.sendFrame(protocol.DeviceData, value)
}
