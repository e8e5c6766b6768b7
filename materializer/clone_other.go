//go:build !linux

package materializer

import (
	"errors"

	"github.com/ccachego/ccache/ccerrors"
)

var errCloneUnsupported = errors.New("file cloning not supported on this platform")

// cloneFile always fails on platforms without a reflink ioctl wired up,
// so Install falls straight through to hard-link or copy.
func cloneFile(src, dst string) error {
	return ccerrors.NewIoError("clone", dst, errCloneUnsupported)
}
