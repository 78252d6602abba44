//go:build windows

package ansiscan

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// mapFile reads f whole. Falls back to ReadAll on Windows instead of
// mapping the file.
func mapFile(f *os.File) ([]byte, func(), error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	return data, func() {}, nil
}
