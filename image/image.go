package image

import (
	"fmt"
	"io"
	"os"
)

// Capacity of the reference target device (AT28C256).
const (
	// Size is the device capacity in bytes (32 KiB, 15 address bits)
	Size = 1 << 15

	// MaxAddr is the highest writable address
	MaxAddr = Size - 1
)

// Image is a memory image: target or baseline contents of the EEPROM.
// Images are read once at session start and not modified afterwards.
type Image []byte

// Load reads a binary memory image from the given file path.
//
// Example:
//
//	target, err := image.Load("rom.bin")
func Load(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadReader reads a binary memory image from any io.Reader.
// This is useful for testing and reading from non-file sources.
func LoadReader(r io.Reader) (Image, error) {
	// Read one byte past capacity so oversized input is detected
	// without slurping an arbitrarily large file.
	data, err := io.ReadAll(io.LimitReader(r, Size+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > Size {
		return nil, &TooLargeError{Len: len(data)}
	}
	return Image(data), nil
}
