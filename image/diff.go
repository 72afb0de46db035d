package image

// Diff returns every address where old and new disagree, in ascending
// order. It is a plain byte-wise equality scan: no move or shift
// detection, because EEPROM cells are addressed absolutely.
//
// Both images must have the same length. A mismatch is a configuration
// error and fails hard; guessing intent by truncating or padding could
// silently skip (or rewrite) the tail of the device.
func Diff(old, new Image) ([]int, error) {
	if len(old) != len(new) {
		return nil, &LengthMismatchError{OldLen: len(old), NewLen: len(new)}
	}

	var changed []int
	for addr := range new {
		if old[addr] != new[addr] {
			changed = append(changed, addr)
		}
	}
	return changed, nil
}
