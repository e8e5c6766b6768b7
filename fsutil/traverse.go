package fsutil

import (
	"os"
	"syscall"

	"github.com/ccachego/ccache/ccerrors"
)

// TraversalVisit is the callback signature for Traverse: Path is the
// entry's path, IsDir reports whether it is a directory. Directories are
// delivered post-order (children first, then the directory itself);
// files and symlinks within one directory are delivered in arbitrary
// order.
type TraversalVisit func(path string, isDir bool) error

// Traverse recursively walks root, invoking visit for every entry.
// Entries named "", ".", or ".." are skipped. Entries that vanish
// between readdir and stat (ENOENT/ESTALE) are silently dropped. If root
// is not a directory but exists as a file, visit is called once with
// (root, false).
func Traverse(root string, visit TraversalVisit) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errno := errnoFrom(err); errno == syscall.ENOTDIR {
			return visit(root, false)
		}
		return ccerrors.NewIoError("opendir", root, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == "" || name == "." || name == ".." {
			continue
		}
		entryPath := root + "/" + name

		isDir, ok, err := entryIsDir(entry, entryPath)
		if err != nil {
			return err
		}
		if !ok {
			continue // vanished between readdir and stat
		}

		if isDir {
			if err := Traverse(entryPath, visit); err != nil {
				if isVanished(err) && !Lstat(entryPath).Exists {
					continue // vanished between readdir and opendir
				}
				return err
			}
		} else if err := visit(entryPath, false); err != nil {
			return err
		}
	}

	return visit(root, true)
}

// entryIsDir reports whether entryPath is a directory. It trusts the
// DirEntry's cached type (which on most platforms comes straight from
// d_type, avoiding a per-entry stat) unless that type is unresolved, in
// which case it falls back to lstat. ok is false if the entry vanished
// between readdir and the fallback lstat.
func entryIsDir(entry os.DirEntry, entryPath string) (isDir, ok bool, err error) {
	if entry.Type()&os.ModeIrregular == 0 {
		return entry.Type()&os.ModeSymlink == 0 && entry.IsDir(), true, nil
	}

	st := Lstat(entryPath)
	if !st.Exists {
		if st.Errno == syscall.ENOENT || st.Errno == syscall.ESTALE {
			return false, false, nil
		}
		return false, false, ccerrors.NewIoError("lstat", entryPath, st.Errno)
	}
	return st.IsDirectory(), true, nil
}
