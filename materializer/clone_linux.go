//go:build linux

package materializer

import (
	"os"

	"github.com/ccachego/ccache/ccerrors"
	"golang.org/x/sys/unix"
)

// cloneFile attempts a copy-on-write reflink of src onto dst via the
// FICLONE ioctl. It only works within a single filesystem that supports
// reflinks (btrfs, xfs with reflink=1, overlayfs in some configurations);
// any other filesystem returns EXDEV or EOPNOTSUPP, which the caller
// treats as a signal to fall back to hard-link or copy.
func cloneFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // src is a cache-internal path, not user input
	if err != nil {
		return ccerrors.NewIoError("open", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666) //nolint:gosec // matches write_file's default mode
	if err != nil {
		return ccerrors.NewIoError("open", dst, err)
	}
	defer out.Close()

	if err := unix.IoctlFileClone(int(out.Fd()), int(in.Fd())); err != nil {
		os.Remove(dst) //nolint:errcheck // best-effort cleanup of the failed clone target
		return ccerrors.NewIoError("ioctl_ficlone", dst, err)
	}
	return nil
}
