package algo

import "unsafe"

// wordSize is the number of bytes consumed by a single word load.
const wordSize = 8

// ByteLoader walks a byte slice front to back, batching reads into
// word-sized loads while still handing out one byte at a time. The first
// word of a buffer whose backing array does not start on a word boundary
// is short by the misalignment, so every later load lands on an aligned
// address. The final word of the buffer is short by whatever is missing;
// its unused lanes read as zero.
//
// The loader never reads outside the given slice. The original technique
// loads the aligned word preceding an unaligned start and shifts the
// stray leading bytes out, which saves the short first load but requires
// the surrounding allocation to be readable; bounds-checked loads trade
// that margin read away for safety.
//
// A ByteLoader is created per scan and must not be shared between
// goroutines. The buffer is only ever read.
type ByteLoader struct {
	word     uint64 // pending bytes, the next one at the consuming end
	wordLeft int    // unconsumed bytes in word
	left     int    // unconsumed bytes in the whole buffer
	tail     []byte // bytes not yet loaded into word
}

// NewByteLoader returns a ByteLoader over buf. Any length including zero
// is fine.
func NewByteLoader(buf []byte) ByteLoader {
	bl := ByteLoader{left: len(buf)}
	bl.load(buf)
	return bl
}

// load fills word from the front of buf. An unaligned buf produces a word
// short by the misalignment; a buf shorter than a word produces a word
// with that many bytes.
func (bl *ByteLoader) load(buf []byte) {
	n := len(buf)
	if n == 0 {
		bl.word, bl.wordLeft, bl.tail = 0, 0, nil
		return
	}
	if extra := int(uintptr(unsafe.Pointer(&buf[0])) & (wordSize - 1)); extra > 0 {
		if align := wordSize - extra; align < n {
			n = align
		}
	} else if n > wordSize {
		n = wordSize
	}
	bl.word = loadWord(buf[:n])
	bl.wordLeft = n
	bl.tail = buf[n:]
}

// Len returns the number of unconsumed bytes.
func (bl *ByteLoader) Len() int {
	return bl.left
}

// Peek returns the next unconsumed byte without advancing. It must only
// be called while Len() > 0.
func (bl *ByteLoader) Peek() byte {
	return peekByte(bl.word)
}

// Next consumes and returns the next byte, loading the following word
// when the current one runs out. It must only be called while Len() > 0.
func (bl *ByteLoader) Next() byte {
	b := peekByte(bl.word)
	bl.word = shiftOut(bl.word)
	bl.wordLeft--
	bl.left--
	if bl.wordLeft == 0 && bl.left > 0 {
		bl.load(bl.tail)
	}
	return b
}

// SkipWord discards the current word and loads the next one. It is an
// unchecked fast path for callers that have already probed the current
// word and found nothing: when fewer than a full word remains it declares
// the buffer exhausted instead of loading the final short word, so such
// callers must fall back to Next for a tail they still care about.
func (bl *ByteLoader) SkipWord() {
	if bl.left >= wordSize {
		bl.left -= wordSize
		bl.load(bl.tail)
	} else {
		bl.left = 0
	}
}
