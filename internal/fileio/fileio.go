// Package fileio reads and writes whole files for the huffpack command.
package fileio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dchest/uniuri"
)

// ErrIO wraps every error returned by this package.
var ErrIO = errors.New("fileio: I/O error")

// ReadBytes returns the contents of the file at path.
func ReadBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrIO, path, err)
	}
	return data, nil
}

// WriteBytes replaces the file at path with data.  The data is written to a
// uniquely named temporary file in the same directory, synced, and renamed
// over path, so readers never observe a partial file.
func WriteBytes(path string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uniuri.New()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return fmt.Errorf("%w: create %q: %w", ErrIO, tmp, err)
	}

	needRemove := true
	defer func() {
		if needRemove {
			_ = os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write %q: %w", ErrIO, tmp, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: sync %q: %w", ErrIO, tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %q: %w", ErrIO, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: rename %q to %q: %w", ErrIO, tmp, path, err)
	}

	needRemove = false
	return nil
}
