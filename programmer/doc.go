// Package programmer drives a parallel EEPROM (AT28C256) through three
// SN74LV8153 serial-to-parallel latches sharing one serial line.
//
// # Overview
//
// The programmer orchestrates the complete write sequence for each
// byte:
//   - Latch the 15-bit address (low byte and high byte devices)
//   - Latch the data byte
//   - Strobe the active-low write-enable line, which rides the spare
//     output pin of the high-address device
//   - Wait out the EEPROM's internal write cycle
//
// There is no readback path: the latches are write-only, so nothing is
// verified after writing.
//
// # Basic Usage
//
//	port, err := serial.Open("/dev/ttyUSB0", serial.DefaultBaudRate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	target, err := image.Load("rom.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	prog := programmer.New(port)
//	report, err := prog.Program(context.Background(), target, nil)
//
// # Initialization
//
// The SN74LV8153 powers up with all outputs low. Write-enable is
// active low, so a freshly powered board holds the EEPROM's nWE
// asserted. Initialize drives all three latches to a safe idle state:
//
//	if err := prog.Initialize(); err != nil {
//	    log.Fatal(err)
//	}
//
// Run Initialize, and let it complete, BEFORE inserting the EEPROM
// into the circuit. The programmer cannot detect an early insertion;
// byte 0 may be overwritten with 0x00 if initialization runs with the
// EEPROM present... or before it runs at all.
//
// # Incremental Flashing
//
// Pass a baseline image holding the device's current contents to write
// only the bytes that changed:
//
//	baseline, _ := image.Load("rom-previous.bin")
//	report, err := prog.Program(ctx, target, baseline)
//
// Byte writes wear the EEPROM, so skipping unchanged bytes extends
// device lifetime. The programmer cannot verify the baseline; if it
// does not reflect true device contents the result is undefined.
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	prog := programmer.New(port,
//	    programmer.WithTiming(programmer.Timing{WriteCycleTime: 20 * time.Millisecond}),
//	    programmer.WithLogger(myLogger),
//	    programmer.WithProgressCallback(progressFunc),
//	)
//
// # Error Handling
//
// The package provides structured error types:
//   - image.LengthMismatchError: baseline and target lengths differ
//   - AddressRangeError: address beyond the 15-bit device space
//   - WriteError: transport failure mid-run, with the last completed
//     address so an operator can resume manually
//
// A transport failure during the write-enable pulse still drives nWE
// back to its inactive level before the error surfaces, so the signal
// state at every transaction boundary is known.
//
// # Hardware Independence
//
// The package does NOT open serial ports. Callers provide a Transport
// (an io.Writer); the serial package supplies the real one, and tests
// substitute recording fakes.
package programmer
