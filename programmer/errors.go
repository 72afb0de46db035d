package programmer

import (
	"fmt"

	"github.com/gschwaer/breadboard-eeprom-programmer/image"
)

// AddressRangeError indicates an address outside the device's 15-bit
// address space.
type AddressRangeError struct {
	// Addr is the rejected address
	Addr int
}

func (e *AddressRangeError) Error() string {
	return fmt.Sprintf("address 0x%X is out of range: device holds %d bytes", e.Addr, image.Size)
}

// WriteError indicates a transport failure mid-run. The run is aborted
// at the first failure: retrying blindly risks double-pulsing
// write-enable with stale address or data state, so resumption is left
// to the operator.
type WriteError struct {
	// Addr is the address whose write cycle failed
	Addr int

	// LastCompleted is the last address whose write cycle fully
	// completed, or -1 if no byte was committed
	LastCompleted int

	// Err is the underlying transport error
	Err error
}

func (e *WriteError) Error() string {
	if e.LastCompleted < 0 {
		return fmt.Sprintf("write failed at address 0x%04X before any byte completed: %v", e.Addr, e.Err)
	}
	return fmt.Sprintf("write failed at address 0x%04X, last completed address is 0x%04X: %v",
		e.Addr, e.LastCompleted, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsWriteError returns true if the error is a WriteError.
func IsWriteError(err error) bool {
	_, ok := err.(*WriteError)
	return ok
}
