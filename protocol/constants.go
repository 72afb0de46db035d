package protocol

// Baud rate limits of the SN74LV8153's self-clocking serial input,
// per datasheet recommended operating conditions.
const (
	// MinBaudRate is the slowest rate the device can lock onto
	MinBaudRate = 2000

	// MaxBaudRate is the fastest rate the device can lock onto
	MaxBaudRate = 24000
)

// Telegram structure constants.
const (
	// TelegramsPerFrame is the number of UART telegrams per frame.
	// Both must arrive before the device updates its outputs.
	TelegramsPerFrame = 2

	// MaxDeviceAddr is the highest wire-selectable device address
	// (3 address bits)
	MaxDeviceAddr = 7

	// startBit is the protocol start bit inside each telegram payload,
	// distinct from the UART driver's own start bit
	startBit = 0x01
)

// DeviceAddr selects one of the serial-to-parallel devices sharing the
// line. The wire format allows 0-7; this programmer uses three.
type DeviceAddr byte

// Device addresses as strapped on the programmer board.
const (
	// DeviceAddrLow drives EEPROM address lines A0-A7
	DeviceAddrLow DeviceAddr = 0

	// DeviceAddrHigh drives EEPROM address lines A8-A14 on its low 7
	// output pins and the nWE control line on pin 8
	DeviceAddrHigh DeviceAddr = 1

	// DeviceData drives EEPROM data lines D0-D7
	DeviceData DeviceAddr = 2
)
