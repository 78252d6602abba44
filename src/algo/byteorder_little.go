//go:build !mips && !mips64 && !ppc64 && !s390x

package algo

import "encoding/binary"

// On little-endian machines the next logical byte sits in the low-order
// lane and words shift right to consume.

func peekByte(w uint64) byte {
	return byte(w)
}

func shiftOut(w uint64) uint64 {
	return w >> 8
}

// loadWord reads up to 8 bytes of b into a word with b[0] in the low
// lane. Missing high lanes are zero.
func loadWord(b []byte) uint64 {
	if len(b) >= wordSize {
		return binary.LittleEndian.Uint64(b)
	}
	var w uint64
	for i := len(b) - 1; i >= 0; i-- {
		w = w<<8 | uint64(b[i])
	}
	return w
}
