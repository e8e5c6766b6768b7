//go:build unix

package fsutil

import (
	"os"
	"syscall"
)

func devIno(info os.FileInfo) (dev, ino uint64) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(st.Dev), uint64(st.Ino) //nolint:unconvert // Dev/Ino width varies by platform
	}
	return 0, 0
}
