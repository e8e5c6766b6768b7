package relpath

import (
	"strings"

	"github.com/ccachego/ccache/fsutil"
	"github.com/ccachego/ccache/pathops"
)

// MakeRelativePath rewrites path relative to actualCwd or apparentCwd,
// whichever resolves back to the same file, provided path falls under
// baseDir. If baseDir is empty, path doesn't start with it, or neither
// candidate resolves to the original file, path is returned unchanged.
//
// The algorithm for computing a relative path only works for paths that
// exist on disk. If path itself doesn't exist (a header that has since
// been deleted, say), the nearest existing ancestor is used instead and
// the stripped suffix is reattached to whichever candidate wins.
func MakeRelativePath(baseDir, actualCwd, apparentCwd, path string) string {
	if baseDir == "" || !strings.HasPrefix(path, baseDir) {
		return path
	}

	path = translateWindowsDriveEscape(path)
	originalPath := path

	existing := path
	st := fsutil.Stat(existing)
	for !st.Exists {
		parent := pathops.DirName(existing)
		if parent == existing {
			return originalPath
		}
		existing = parent
		st = fsutil.Stat(existing)
	}
	suffix := originalPath[len(existing):]

	normalized := pathops.NormalizeAbsolutePath(existing)

	first := pathops.GetRelativePath(actualCwd, normalized)
	second := pathops.GetRelativePath(apparentCwd, normalized)
	if len(first) > len(second) {
		first, second = second, first
	}

	for _, candidate := range [2]string{first, second} {
		if fsutil.SameInode(fsutil.Stat(candidate), st) {
			return candidate + suffix
		}
	}
	return originalPath
}
