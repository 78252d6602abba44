package ansiscan

import (
	"bytes"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// lz4 frame magic, little-endian 0x184d2204
var lz4Magic = []byte{0x04, 0x22, 0x4d, 0x18}

// readFile returns the contents of the file at path and a release
// function. Plain files are memory-mapped where the platform supports
// it; files in the lz4 frame format are decompressed into memory first.
func readFile(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	defer f.Close()

	var magic [4]byte
	n, _ := io.ReadFull(f, magic[:])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, nil, errors.Wrap(err, path)
	}
	if n == len(magic) && bytes.Equal(magic[:], lz4Magic) {
		data, err := io.ReadAll(lz4.NewReader(f))
		if err != nil {
			return nil, nil, errors.Wrap(err, path)
		}
		return data, func() {}, nil
	}
	return mapFile(f)
}

// streamStrip strips control sequences from src to w without holding the
// whole stream in memory. A sequence still open at a read boundary is
// carried into the next read, so sequences split across reads are
// stripped like any other. It returns the number of sequences removed.
func (sc Scanner) streamStrip(w io.Writer, src io.Reader) (int, error) {
	buf := make([]byte, readerBufferSize)
	kept := 0
	total := 0
	for {
		if kept == len(buf) {
			// A single sequence larger than the buffer. Keep growing.
			next := make([]byte, 2*len(buf))
			kept = copy(next, buf[:kept])
			buf = next
		}
		var n int
		var rerr error
		for i := 0; i < 100; i++ {
			n, rerr = src.Read(buf[kept:])
			if n > 0 || rerr != nil {
				break
			}
		}
		data := buf[:kept+n]
		if n == 0 && rerr == nil {
			// No progress after 100 tries. Stop.
			rerr = io.EOF
		}
		if rerr != nil {
			// The stream is over. Whatever is buffered is final,
			// including a trailing unterminated sequence.
			seqs := sc.Sequences(data)
			total += len(seqs)
			if _, werr := w.Write(strip(data, seqs)); werr != nil {
				return total, errors.WithStack(werr)
			}
			if rerr == io.EOF {
				return total, nil
			}
			return total, errors.WithStack(rerr)
		}

		seqs := sc.Sequences(data)
		cut := len(data)
		if len(seqs) > 0 {
			// Only the last sequence can still be extended by further
			// input. When it can, hold it back along with the bytes
			// after it.
			last := seqs[len(seqs)-1]
			if _, _, complete := parseSequence(data, last.Start); !complete {
				cut = last.Start
				seqs = seqs[:len(seqs)-1]
			}
		}
		total += len(seqs)
		if _, werr := w.Write(strip(data[:cut], seqs)); werr != nil {
			return total, errors.WithStack(werr)
		}
		kept = copy(buf, data[cut:])
	}
}
