// Package algo implements word-at-a-time byte search primitives.
//
// The hot path probes eight bytes per iteration with a branchless
// any-lane-equals test instead of comparing bytes individually. The bytes
// of the haystack are walked through a ByteLoader, which hides start
// misalignment and the short final word from the search loop.
package algo

// IndexByteTwo returns the index of the first occurrence of b1 or b2 in
// s, or -1 if neither is present. b1 == b2 degenerates to a single-byte
// search.
func IndexByteTwo(s []byte, b1, b2 byte) int {
	it := NewByteLoader(s)

	// Drain the unaligned head a byte at a time so the probes below only
	// ever see full words.
	for it.left > 0 && it.wordLeft < wordSize {
		if c := it.Next(); c == b1 || c == b2 {
			return len(s) - it.left - 1
		}
	}

	m1, m2 := broadcast(b1), broadcast(b2)
	for it.left > 0 {
		if hasByte(it.word, m1) || hasByte(it.word, m2) {
			// The word holds a candidate. Rescan it a byte at a time
			// against both targets so whichever occurs first in the word
			// wins, even when the word contains both. The short final
			// word can flag on its zero padding when a target is 0x00;
			// the rescan then drains the remaining real bytes and falls
			// through to not-found.
			pos := len(s) - it.left
			for it.left > 0 {
				if c := it.Next(); c == b1 || c == b2 {
					return pos
				}
				pos++
			}
			return -1
		}
		it.SkipWord()
	}
	return -1
}

// LastIndexByteTwo returns the index of the last occurrence of b1 or b2
// in s, or -1 if neither is present.
func LastIndexByteTwo(s []byte, b1, b2 byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b1 || s[i] == b2 {
			return i
		}
	}
	return -1
}
