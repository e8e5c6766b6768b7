//go:build !linux

package fsutil

import (
	"io"
	"os"
)

// Fallocate extends f to at least newSize bytes by writing zero bytes,
// since this platform has no kernel preallocation call wired up. The
// file position is preserved across the call.
func Fallocate(f *os.File, newSize int64) error {
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	defer f.Seek(pos, io.SeekStart) //nolint:errcheck // best-effort position restore

	oldSize, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if oldSize >= newSize {
		return nil
	}

	zeros := make([]byte, newSize-oldSize)
	_, err = f.Write(zeros)
	return err
}
