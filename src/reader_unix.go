//go:build !windows

package ansiscan

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// mapFile maps f read-only. The mapping stays valid after f is closed;
// the returned function releases it.
func mapFile(f *os.File) ([]byte, func(), error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	size := fi.Size()
	if size == 0 {
		return nil, func() {}, nil
	}
	if int64(int(size)) != size {
		return nil, nil, errors.Errorf("%s: too large to map", f.Name())
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, errors.Wrap(err, f.Name())
	}
	return data, func() { unix.Munmap(data) }, nil
}
