// Package image handles EEPROM memory images: loading them from files
// and computing which bytes differ between two images.
//
// An Image is a flat byte sequence, at most Size bytes (the AT28C256
// holds 32 KiB). Images shorter than the device are legal; programming
// simply stops at the end of the image.
//
// # Loading
//
//	target, err := image.Load("rom.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Diffing
//
// Diff computes the addresses whose byte values changed between a
// baseline image and a target image:
//
//	changed, err := image.Diff(baseline, target)
//
// Both images must have the same length; Diff never truncates or pads.
// Byte-wise EEPROM writes dominate memory wear, so writing only the
// diff extends device lifetime. There is no readback path anywhere in
// the system, so the caller alone is responsible for the baseline
// truthfully reflecting current device contents.
package image
