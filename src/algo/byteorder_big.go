//go:build mips || mips64 || ppc64 || s390x

package algo

import "encoding/binary"

// On big-endian machines the next logical byte sits in the high-order
// lane and words shift left to consume.

func peekByte(w uint64) byte {
	return byte(w >> ((wordSize - 1) * 8))
}

func shiftOut(w uint64) uint64 {
	return w << 8
}

// loadWord reads up to 8 bytes of b into a word with b[0] in the high
// lane. Missing low lanes are zero.
func loadWord(b []byte) uint64 {
	if len(b) >= wordSize {
		return binary.BigEndian.Uint64(b)
	}
	var w uint64
	for _, c := range b {
		w = w<<8 | uint64(c)
	}
	return w << (8 * uint(wordSize-len(b)))
}
