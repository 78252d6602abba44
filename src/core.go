// Package ansiscan locates and strips ANSI escape sequences. Finding the
// next sequence introducer, and the terminator of a string sequence, are
// both two-candidate byte searches, so the hot path runs on the
// word-at-a-time scanner in src/algo.
package ansiscan

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/pkg/errors"

	"github.com/ansiscan/ansiscan/src/util"
)

// Run executes ansiscan over the configured inputs and returns an exit
// code in the manner of grep: 0 when at least one sequence was found,
// 1 when none were, 2 on error.
func Run(opts *Options) (int, error) {
	inputs := opts.Inputs
	if len(inputs) == 0 {
		if util.IsTty() {
			return ExitError, errors.New("no input, and standard input is a terminal (try --help)")
		}
		inputs = []string{"-"}
	}

	out := os.Stdout
	if len(opts.Output) > 0 {
		f, err := os.Create(opts.Output)
		if err != nil {
			return ExitError, errors.WithStack(err)
		}
		defer f.Close()
		out = f
	}

	p := &processor{
		opts:        opts,
		scanner:     NewScanner(opts.C1),
		out:         bufio.NewWriterSize(out, readerBufferSize),
		interactive: len(opts.Output) == 0 && util.ToTty(),
	}
	for _, input := range inputs {
		p.input(input)
	}
	if err := p.out.Flush(); err != nil && p.err == nil {
		p.err = errors.WithStack(err)
	}
	if p.err != nil {
		return ExitError, p.err
	}
	if p.found == 0 {
		return ExitNoMatch, nil
	}
	return ExitOk, nil
}

// processor fans inputs out to the scanner and serializes the results.
// The walker runs its callback from multiple goroutines, so found, err
// and out are only touched with the mutex held.
type processor struct {
	opts    *Options
	scanner Scanner
	out     *bufio.Writer
	// interactive flushes after every input so results show up on a
	// terminal as files are scanned
	interactive bool
	mutex       sync.Mutex
	found       int
	err         error
}

func (p *processor) input(name string) {
	if name == "-" {
		p.stdin()
		return
	}
	fi, err := os.Stat(name)
	if err != nil {
		p.fail(errors.WithStack(err))
		return
	}
	if fi.IsDir() {
		p.walk(name)
		return
	}
	p.file(name)
}

func (p *processor) stdin() {
	if p.opts.Mode == ModeStrip {
		p.mutex.Lock()
		defer p.mutex.Unlock()
		n, err := p.scanner.streamStrip(p.out, os.Stdin)
		p.found += n
		if err != nil && p.err == nil {
			p.err = err
		}
		if p.interactive {
			p.out.Flush()
		}
		return
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		p.fail(errors.WithStack(err))
		return
	}
	p.report("-", data)
}

func (p *processor) file(path string) {
	data, done, err := readFile(path)
	if err != nil {
		p.fail(err)
		return
	}
	defer done()
	p.report(path, data)
}

// report scans one complete buffer and writes the mode's output for it.
func (p *processor) report(name string, data []byte) {
	seqs := p.scanner.Sequences(data)

	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.found += len(seqs)
	switch p.opts.Mode {
	case ModeStrip:
		prev := 0
		for _, seq := range seqs {
			p.out.Write(data[prev:seq.Start])
			prev = seq.End
		}
		p.out.Write(data[prev:])
	case ModeLocate:
		for _, seq := range seqs {
			fmt.Fprintf(p.out, "%s:%d:%s\n", name, seq.Start, seq.Kind)
		}
	case ModeStat:
		stripped := strip(data, seqs)
		fmt.Fprintf(p.out, "%s: %d bytes in, %d sequences, %d bytes out, width %d\n",
			name, len(data), len(seqs), len(stripped), util.StringWidth(string(stripped)))
	}
	if p.interactive {
		p.out.Flush()
	}
}

func (p *processor) fail(err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.err == nil {
		p.err = err
	}
}

func (p *processor) walk(root string) {
	conf := fastwalk.Config{
		Follow: p.opts.Follow,
		// Use forward slashes when running a Windows binary under WSL or MSYS
		ToSlash: fastwalk.DefaultToSlash(),
		Sort:    fastwalk.SortFilesFirst,
	}
	fn := func(path string, de os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		path = trimPath(path)
		if de.IsDir() || p.opts.Follow && isSymlinkToDir(path, de) {
			base := filepath.Base(path)
			if !p.opts.Hidden && len(base) > 1 && base[0] == '.' && base != ".." {
				return filepath.SkipDir
			}
			return nil
		}
		if de.Type().IsRegular() {
			p.file(path)
		}
		return nil
	}
	if err := fastwalk.Walk(&conf, root, fn); err != nil {
		p.fail(errors.Wrap(err, root))
	}
}

func isSymlinkToDir(path string, de os.DirEntry) bool {
	if de.Type()&fs.ModeSymlink == 0 {
		return false
	}
	if s, err := os.Stat(path); err == nil {
		return s.IsDir()
	}
	return false
}

func trimPath(path string) string {
	for len(path) > 1 && path[0] == '.' && (path[1] == '/' || path[1] == '\\') {
		path = path[2:]
	}
	return path
}
