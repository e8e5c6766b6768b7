package fsutil

import (
	"os"
	"syscall"

	"github.com/ccachego/ccache/ccerrors"
)

// rmTmpSuffix is the fixed suffix UnlinkSafe renames to before removing.
const rmTmpSuffix = ".ccache.rm.tmp"

// UnlinkSafe deletes path NFS-safely: rename path to path+".ccache.rm.tmp",
// then unlink the temp name. A direct unlink of a still-open file is not
// atomic on NFS (the server can leave a ".nfsXXXX" stub behind); renaming
// first avoids a race with concurrent readers that opened path before the
// delete. ENOENT/ESTALE on the second step count as success.
func UnlinkSafe(path string) error {
	tmp := path + rmTmpSuffix
	if err := os.Rename(path, tmp); err != nil {
		return ccerrors.NewIoError("rename", path, err)
	}
	if err := os.Remove(tmp); err != nil {
		if isVanished(err) {
			return nil
		}
		return ccerrors.NewIoError("unlink", tmp, err)
	}
	return nil
}

// UnlinkTmp deletes path directly, for files known not to be shared with
// another reader. ENOENT/ESTALE count as success.
func UnlinkTmp(path string) error {
	if err := os.Remove(path); err != nil {
		if isVanished(err) {
			return nil
		}
		return ccerrors.NewIoError("unlink", path, err)
	}
	return nil
}

// WipePath recursively removes everything under root, tolerating
// ENOENT/ESTALE on any individual entry.
func WipePath(root string) error {
	if st := Lstat(root); !st.Exists {
		return nil
	}
	return Traverse(root, func(path string, isDir bool) error {
		if err := os.Remove(path); err != nil {
			if isVanished(err) {
				return nil
			}
			op := "unlink"
			if isDir {
				op = "rmdir"
			}
			return ccerrors.NewIoError(op, path, err)
		}
		return nil
	})
}

func isVanished(err error) bool {
	errno := errnoFrom(err)
	return errno == syscall.ENOENT || errno == syscall.ESTALE
}
