package image

import "fmt"

// LengthMismatchError indicates two images of unequal length, which
// cannot be diffed or programmed against each other.
type LengthMismatchError struct {
	// OldLen is the baseline image length in bytes
	OldLen int

	// NewLen is the target image length in bytes
	NewLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("image length mismatch: baseline is %d bytes, target is %d bytes", e.OldLen, e.NewLen)
}

// IsLengthMismatchError returns true if the error is a LengthMismatchError.
func IsLengthMismatchError(err error) bool {
	_, ok := err.(*LengthMismatchError)
	return ok
}

// TooLargeError indicates an image that exceeds the device capacity.
type TooLargeError struct {
	// Len is the number of bytes read before giving up; at least Size+1
	Len int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("image exceeds device capacity of %d bytes", Size)
}

// IsTooLargeError returns true if the error is a TooLargeError.
func IsTooLargeError(err error) bool {
	_, ok := err.(*TooLargeError)
	return ok
}
