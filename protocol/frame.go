package protocol

// BuildFrame constructs the wire form of one output-register update:
// two UART telegrams carrying the payload a nibble at a time.
//
// Telegram payload layout (bit 0 first on the wire):
//
//	[START(1)][ADDR(3)][NIBBLE(4)]
//
// The low nibble telegram is sent first; the device latches its output
// pins only after the high nibble telegram arrives.
//
// Returns the two telegram bytes ready to send, or an error if the
// device address does not fit the 3 address bits. An out-of-range
// address is a programming error, not a runtime condition: the three
// devices this package names are all well within range.
func BuildFrame(device DeviceAddr, value byte) ([]byte, error) {
	if device > MaxDeviceAddr {
		return nil, &InvalidDeviceError{Device: device}
	}

	sel := byte(device)<<1 | startBit
	lowNibble := (value&0x0F)<<4 | sel
	highNibble := (value>>4)<<4 | sel

	return []byte{lowNibble, highNibble}, nil
}
