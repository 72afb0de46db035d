package programmer

import "time"

// Timing holds the EEPROM timing parameters enforced by the write
// cycle sequencer. All values are minimum delay floors: they are
// honored even when the transport is instantaneous, because the
// contract is about the hardware's timing, not the host's.
type Timing struct {
	// WriteCycleTime is the minimum spacing between two write-enable
	// strobes, covering the EEPROM's internal write cycle
	WriteCycleTime time.Duration

	// SettleTime is the pause after each transmitted frame before the
	// next one may follow
	SettleTime time.Duration

	// PulseWidth is the minimum hold time of an asserted write-enable
	// before it is released
	PulseWidth time.Duration
}

// DefaultTiming returns timing for the AT28C256 behind a USB UART.
//
// The datasheet maximum write cycle is 10ms; USB-to-UART adapters are
// not very timing accurate, so a 5ms margin is added. The sub-100ns
// setup and hold minimums are satisfied by serial transmission time
// alone: at 24k baud one frame takes close to a millisecond, which is
// why SettleTime and PulseWidth default to zero.
func DefaultTiming() Timing {
	return Timing{
		WriteCycleTime: 15 * time.Millisecond,
		SettleTime:     0,
		PulseWidth:     0,
	}
}
