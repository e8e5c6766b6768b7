//go:build linux

package fsutil

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Fallocate ensures f is at least newSize bytes, preferring the kernel's
// preallocation syscall over writing zero bytes; zero bytes are written
// only when the filesystem does not support preallocation. The file
// position is preserved across the call.
func Fallocate(f *os.File, newSize int64) error {
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	defer f.Seek(pos, io.SeekStart) //nolint:errcheck // best-effort position restore

	err = unix.Fallocate(int(f.Fd()), 0, 0, newSize)
	if !errors.Is(err, unix.EOPNOTSUPP) && !errors.Is(err, unix.ENOSYS) {
		return err
	}

	// The filesystem has no preallocation support: extend with zero bytes.
	oldSize, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if oldSize >= newSize {
		return nil
	}
	_, err = f.Write(make([]byte, newSize-oldSize))
	return err
}
