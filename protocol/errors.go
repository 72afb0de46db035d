package protocol

import "fmt"

// InvalidDeviceError indicates a device address outside the 3-bit
// range the wire format can express.
type InvalidDeviceError struct {
	// Device is the rejected device address
	Device DeviceAddr
}

func (e *InvalidDeviceError) Error() string {
	return fmt.Sprintf("device address %d does not fit 3 bits: valid range is 0-%d", e.Device, MaxDeviceAddr)
}

// IsInvalidDeviceError returns true if the error is an InvalidDeviceError.
func IsInvalidDeviceError(err error) bool {
	_, ok := err.(*InvalidDeviceError)
	return ok
}
