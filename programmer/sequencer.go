package programmer

import "time"

// writeByte runs one complete write cycle for a single EEPROM byte:
// address setup, data setup, write-enable pulse, release.
//
// Frame order is part of the correctness contract. The EEPROM latches
// the address on the falling edge of nWE and the data on the rising
// edge, so both buses must be stable before the strobe begins and the
// pulse must hold until the release frame.
func (p *Programmer) writeByte(addr int, value byte) error {
	// Address setup, write-enable inactive.
	if err := p.setAddress(addr, false); err != nil {
		return err
	}

	// Data setup.
	if err := p.setData(value); err != nil {
		return err
	}

	// Throttle against the previous strobe so the EEPROM's internal
	// write cycle has completed before nWE pulses again. Transmission
	// time of the frames above counts toward the wait, so on a slow
	// link this rarely sleeps.
	p.waitWriteCycle()

	// Strobe: same address payload with the write-enable bit active.
	if err := p.setAddress(addr, true); err != nil {
		return p.failSafe(addr, err)
	}

	if p.config.Timing.PulseWidth > 0 {
		time.Sleep(p.config.Timing.PulseWidth)
	}

	// Release: the rising edge commits the byte and starts the
	// internal write cycle.
	if err := p.setAddress(addr, false); err != nil {
		return p.failSafe(addr, err)
	}
	p.lastStrobe = time.Now()

	return nil
}

// waitWriteCycle sleeps out whatever remains of the configured
// write-cycle spacing since the previous strobe. The floor holds even
// on an instantaneous transport.
func (p *Programmer) waitWriteCycle() {
	if p.config.Timing.WriteCycleTime <= 0 {
		return
	}
	if d := p.config.Timing.WriteCycleTime - time.Since(p.lastStrobe); d > 0 {
		time.Sleep(d)
	}
}

// failSafe handles a transport failure mid-cycle: whatever went wrong,
// try to drive nWE back to its inactive level before surfacing the
// error. A stuck-low nWE risks corrupting the in-progress byte or
// neighbouring cells. The original cause always wins; a failure of the
// teardown itself is only logged.
func (p *Programmer) failSafe(addr int, cause error) error {
	if !p.weAsserted {
		return cause
	}
	if err := p.setAddress(addr, false); err != nil {
		p.logError("write-enable teardown failed, signal state unknown",
			"addr", addr, "err", err)
		return cause
	}
	p.lastStrobe = time.Now()
	return cause
}
