package ansiscan

import (
	"github.com/ansiscan/ansiscan/src/algo"
)

// Kind classifies a located control sequence.
type Kind int

const (
	KindCSI Kind = iota // Control Sequence Introducer, ends with a byte in @-~
	KindOSC             // Operating System Command, ends with BEL or ST
	KindDCS             // Device Control String, ends with ST
	KindAPC             // APC, PM or SOS string, ends with ST
	KindESC             // any other escape sequence
)

func (k Kind) String() string {
	switch k {
	case KindCSI:
		return "CSI"
	case KindOSC:
		return "OSC"
	case KindDCS:
		return "DCS"
	case KindAPC:
		return "APC"
	}
	return "ESC"
}

// Sequence is a control sequence located in a buffer. End is exclusive.
// A sequence still unterminated at the end of the buffer runs to its end.
type Sequence struct {
	Start int
	End   int
	Kind  Kind
}

// Scanner locates control sequences. Use NewScanner to construct one;
// NewScanner(true) recognizes the single 0x9b introducer from the C1
// set in addition to ESC, which is unsafe on UTF-8 input where the same
// byte appears inside multi-byte runes.
type Scanner struct {
	intro1 byte
	intro2 byte
}

// NewScanner returns a Scanner, with 8-bit C1 introducers enabled or not.
func NewScanner(c1 bool) Scanner {
	if c1 {
		return Scanner{byteESC, byteCSI8}
	}
	// Searching for the same byte twice degenerates to a single-byte
	// search in the word scanner.
	return Scanner{byteESC, byteESC}
}

// Next returns the first control sequence in s, if any.
func (sc Scanner) Next(s []byte) (Sequence, bool) {
	i := algo.IndexByteTwo(s, sc.intro1, sc.intro2)
	if i < 0 {
		return Sequence{}, false
	}
	end, kind, _ := parseSequence(s, i)
	return Sequence{i, end, kind}, true
}

// Sequences returns every control sequence in s, in order.
func (sc Scanner) Sequences(s []byte) []Sequence {
	var seqs []Sequence
	base := 0
	for base < len(s) {
		i := algo.IndexByteTwo(s[base:], sc.intro1, sc.intro2)
		if i < 0 {
			break
		}
		start := base + i
		end, kind, _ := parseSequence(s, start)
		seqs = append(seqs, Sequence{start, end, kind})
		base = end
	}
	return seqs
}

// Strip returns s with every control sequence removed. When s holds no
// sequence it is returned as is.
func (sc Scanner) Strip(s []byte) []byte {
	return strip(s, sc.Sequences(s))
}

func strip(s []byte, seqs []Sequence) []byte {
	if len(seqs) == 0 {
		return s
	}
	out := make([]byte, 0, len(s))
	prev := 0
	for _, seq := range seqs {
		out = append(out, s[prev:seq.Start]...)
		prev = seq.End
	}
	return append(out, s[prev:]...)
}

// parseSequence determines the extent and kind of the sequence whose
// introducer sits at start. The third result reports whether the
// sequence is complete; a false means more input could extend it.
func parseSequence(s []byte, start int) (int, Kind, bool) {
	if s[start] == byteCSI8 {
		end, ok := csiEnd(s, start+1)
		return end, KindCSI, ok
	}
	if start+1 == len(s) {
		return len(s), KindESC, false
	}
	switch s[start+1] {
	case '[':
		end, ok := csiEnd(s, start+2)
		return end, KindCSI, ok
	case ']':
		end, ok := stringEnd(s, start+2)
		return end, KindOSC, ok
	case 'P':
		end, ok := stringEnd(s, start+2)
		return end, KindDCS, ok
	case '_', '^', 'X':
		end, ok := stringEnd(s, start+2)
		return end, KindAPC, ok
	default:
		if c := s[start+1]; c >= 0x20 && c <= 0x2f {
			// Intermediate bytes, as in the charset designations ESC ( B,
			// followed by a single final byte.
			p := start + 2
			for p < len(s) && s[p] >= 0x20 && s[p] <= 0x2f {
				p++
			}
			if p == len(s) {
				return p, KindESC, false
			}
			return p + 1, KindESC, true
		}
		return start + 2, KindESC, true
	}
}

// csiEnd scans CSI parameter and intermediate bytes starting at p and
// returns the exclusive end of the sequence, which is one past the first
// byte in the final-byte range @-~.
func csiEnd(s []byte, p int) (int, bool) {
	for ; p < len(s); p++ {
		if c := s[p]; c >= 0x40 && c <= 0x7e {
			return p + 1, true
		}
	}
	return len(s), false
}

// stringEnd finds the end of an OSC/DCS/APC style string whose body
// begins at p. The body runs until BEL or the two-byte ST; a bare ESC
// also ends the body so that it can introduce the next sequence.
func stringEnd(s []byte, p int) (int, bool) {
	i := algo.IndexByteTwo(s[p:], byteBEL, byteESC)
	if i < 0 {
		return len(s), false
	}
	q := p + i
	if s[q] == byteBEL {
		return q + 1, true
	}
	if q+1 == len(s) {
		// ESC as the last byte: an ST may still be on its way.
		return q, false
	}
	if s[q+1] == byteST {
		return q + 2, true
	}
	return q, true
}
