package algo

import "testing"

func anyZeroLane(w uint64) bool {
	for i := 0; i < wordSize; i++ {
		if byte(w>>(8*uint(i))) == 0 {
			return true
		}
	}
	return false
}

func TestContainsZeroByte(t *testing.T) {
	if !containsZeroByte(0) {
		t.Error("containsZeroByte(0) = false")
	}
	if containsZeroByte(^uint64(0)) {
		t.Error("containsZeroByte(all ones) = true")
	}

	// Every lane value in every lane, with near-miss fillers in the other
	// lanes. 0x01 and 0x80 are the values the formula is most likely to
	// trip over.
	for _, filler := range []byte{0x01, 0x80, 0xff, 0x7f} {
		base := broadcast(filler)
		for lane := 0; lane < wordSize; lane++ {
			shift := 8 * uint(lane)
			for v := 0; v < 256; v++ {
				w := base&^(uint64(0xff)<<shift) | uint64(v)<<shift
				if got, want := containsZeroByte(w), v == 0; got != want {
					t.Fatalf("containsZeroByte(%#016x) = %v, want %v", w, got, want)
				}
			}
		}
	}

	// Pseudo-random words against the per-lane reference.
	w := uint64(0x9e3779b97f4a7c15)
	for i := 0; i < 100000; i++ {
		w = w*6364136223846793005 + 1442695040888963407
		if got, want := containsZeroByte(w), anyZeroLane(w); got != want {
			t.Fatalf("containsZeroByte(%#016x) = %v, want %v", w, got, want)
		}
	}
}

func TestBroadcast(t *testing.T) {
	tests := []struct {
		b    byte
		want uint64
	}{
		{0x00, 0},
		{0x01, 0x0101010101010101},
		{0x41, 0x4141414141414141},
		{0xff, 0xffffffffffffffff},
	}
	for _, tt := range tests {
		if got := broadcast(tt.b); got != tt.want {
			t.Errorf("broadcast(%#x) = %#016x, want %#016x", tt.b, got, tt.want)
		}
	}
}

func TestHasByte(t *testing.T) {
	w := loadWord([]byte("abcdefgh"))
	for _, b := range []byte("abcdefgh") {
		if !hasByte(w, broadcast(b)) {
			t.Errorf("hasByte(%q) = false, want true", b)
		}
	}
	for _, b := range []byte{'z', 0x00, 0xff, 'A'} {
		if hasByte(w, broadcast(b)) {
			t.Errorf("hasByte(%#x) = true, want false", b)
		}
	}
}
