package ansiscan

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestSequences(t *testing.T) {
	sc := NewScanner(false)
	tests := []struct {
		name  string
		input string
		want  []Sequence
	}{
		{"plain", "hello world", nil},
		{"empty", "", nil},
		{"sgr", "a\x1b[31mred\x1b[mz",
			[]Sequence{{1, 6, KindCSI}, {9, 12, KindCSI}}},
		{"cursor_move", "\x1b[2;7Hx",
			[]Sequence{{0, 6, KindCSI}}},
		{"private_csi", "\x1b[?25lx",
			[]Sequence{{0, 6, KindCSI}}},
		{"osc_bel", "\x1b]0;title\x07x",
			[]Sequence{{0, 10, KindOSC}}},
		{"osc_st", "\x1b]0;t\x1b\\x",
			[]Sequence{{0, 7, KindOSC}}},
		{"osc_ended_by_escape", "\x1b]0;t\x1b[1mx",
			[]Sequence{{0, 5, KindOSC}, {5, 9, KindCSI}}},
		{"dcs", "\x1bPq#0\x1b\\z",
			[]Sequence{{0, 7, KindDCS}}},
		{"apc", "\x1b_hi\x1b\\",
			[]Sequence{{0, 6, KindAPC}}},
		{"pm", "\x1b^p\x07",
			[]Sequence{{0, 4, KindAPC}}},
		{"sos", "\x1bXs\x1b\\",
			[]Sequence{{0, 5, KindAPC}}},
		{"charset", "\x1b(Bx",
			[]Sequence{{0, 3, KindESC}}},
		{"keypad", "\x1b=x",
			[]Sequence{{0, 2, KindESC}}},
		{"truncated_csi", "ab\x1b[31",
			[]Sequence{{2, 6, KindCSI}}},
		{"truncated_osc", "\x1b]0;t",
			[]Sequence{{0, 5, KindOSC}}},
		{"lone_esc_at_end", "ab\x1b",
			[]Sequence{{2, 3, KindESC}}},
		{"esc_then_st_pending", "\x1b]0;t\x1b",
			[]Sequence{{0, 5, KindOSC}, {5, 6, KindESC}}},
		{"back_to_back", "\x1b[1m\x1b[2m",
			[]Sequence{{0, 4, KindCSI}, {4, 8, KindCSI}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sc.Sequences([]byte(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sequences(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSequencesC1(t *testing.T) {
	input := []byte("x\x9b31mY")
	if got := NewScanner(false).Sequences(input); got != nil {
		t.Errorf("without c1: Sequences = %v, want none", got)
	}
	want := []Sequence{{1, 5, KindCSI}}
	if got := NewScanner(true).Sequences(input); !reflect.DeepEqual(got, want) {
		t.Errorf("with c1: Sequences = %v, want %v", got, want)
	}
}

func TestNext(t *testing.T) {
	sc := NewScanner(false)
	if _, ok := sc.Next([]byte("plain")); ok {
		t.Error("Next on plain text reported a sequence")
	}
	seq, ok := sc.Next([]byte("ab\x1b[0mcd\x1b[1m"))
	if !ok || seq != (Sequence{2, 6, KindCSI}) {
		t.Errorf("Next = %v, %v", seq, ok)
	}
}

func TestStrip(t *testing.T) {
	sc := NewScanner(false)
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain", "plain"},
		{"\x1b[31mred\x1b[m", "red"},
		{"\x1b]0;title\x07body", "body"},
		{"a\x1b]unterminated", "a"},
		{"pre\x1b(Bpost", "prepost"},
		{"\x1b[1mbold\x1b[m and \x1b[4munder\x1b[m", "bold and under"},
	}
	for _, tt := range tests {
		if got := string(sc.Strip([]byte(tt.input))); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindCSI: "CSI", KindOSC: "OSC", KindDCS: "DCS", KindAPC: "APC", KindESC: "ESC",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestStreamStrip(t *testing.T) {
	sc := NewScanner(false)
	input := []byte("a\x1b[31mb\x1b]0;title\x07c\x1b[0;1;4md plain tail")
	want := string(sc.Strip(input))
	wantCount := len(sc.Sequences(input))

	// One byte at a time forces every sequence across a read boundary.
	var out bytes.Buffer
	n, err := sc.streamStrip(&out, iotest.OneByteReader(bytes.NewReader(input)))
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != want {
		t.Errorf("streamStrip one byte at a time = %q, want %q", out.String(), want)
	}
	if n != wantCount {
		t.Errorf("streamStrip counted %d sequences, want %d", n, wantCount)
	}

	out.Reset()
	n, err = sc.streamStrip(&out, bytes.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != want || n != wantCount {
		t.Errorf("streamStrip = %q (%d), want %q (%d)", out.String(), n, want, wantCount)
	}
}

func TestStreamStripLarge(t *testing.T) {
	// Cross the read buffer boundary many times with sequences landing
	// arbitrarily relative to it.
	sc := NewScanner(false)
	piece := "some text \x1b[38;5;208mcolored\x1b[0m more\x1b]2;t\x07\n"
	input := []byte(strings.Repeat(piece, 3*readerBufferSize/len(piece)))
	want := string(sc.Strip(input))

	var out bytes.Buffer
	n, err := sc.streamStrip(&out, bytes.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != want {
		t.Error("streamStrip over several buffers diverged from Strip")
	}
	if wantCount := len(sc.Sequences(input)); n != wantCount {
		t.Errorf("streamStrip counted %d sequences, want %d", n, wantCount)
	}
}

func TestStreamStripTrailingUnterminated(t *testing.T) {
	sc := NewScanner(false)
	var out bytes.Buffer
	n, err := sc.streamStrip(&out, strings.NewReader("ok\x1b]0;never ends"))
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "ok" {
		t.Errorf("streamStrip = %q, want %q", out.String(), "ok")
	}
	if n != 1 {
		t.Errorf("streamStrip counted %d sequences, want 1", n)
	}
}

func TestStreamStripHugeSequence(t *testing.T) {
	// A single OSC larger than the read buffer exercises the carry
	// growth path.
	sc := NewScanner(false)
	input := "before\x1b]0;" + strings.Repeat("t", 2*readerBufferSize) + "\x07after"
	var out bytes.Buffer
	n, err := sc.streamStrip(&out, strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "beforeafter" {
		t.Errorf("streamStrip = %q, want %q", out.String(), "beforeafter")
	}
	if n != 1 {
		t.Errorf("streamStrip counted %d sequences, want 1", n)
	}
}
