package algo

const (
	loBits = 0x0101010101010101
	hiBits = 0x8080808080808080
)

// broadcast returns a word with every byte lane set to b.
func broadcast(b byte) uint64 {
	return uint64(b) * loBits
}

// containsZeroByte reports whether any byte lane of w is zero, without
// inspecting the lanes one by one. Subtracting one from each lane borrows
// into the high bit only when the lane started at zero, and masking with
// ^w discards lanes whose high bit was already set.
func containsZeroByte(w uint64) bool {
	return (w-loBits) & ^w & hiBits != 0
}

// hasByte reports whether any byte lane of w equals the value broadcast
// into mask.
func hasByte(w, mask uint64) bool {
	return containsZeroByte(w ^ mask)
}
