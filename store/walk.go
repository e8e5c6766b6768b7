package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ccachego/ccache/ccerrors"
	"github.com/ccachego/ccache/fsutil"
)

// ProgressFunc receives a monotonically increasing completion fraction
// in [0,1]. Functions in this package accept a nil ProgressFunc and then
// report no progress.
type ProgressFunc func(fraction float64)

func report(p ProgressFunc, fraction float64) {
	if p != nil {
		p(fraction)
	}
}

// hexDigits is the fixed iteration order of level-1 shard directories.
var hexDigits = []byte("0123456789abcdef")

// ForEachLevel1Subdir calls visit once per level-1 shard directory
// (root/0 .. root/f, in order), passing visit a sub-progress callback
// that scales into that shard's 1/16 slot of the overall [0,1] range.
// Overall progress is reported after each shard completes regardless of
// whether visit reported any finer-grained progress itself.
func ForEachLevel1Subdir(root string, visit func(subdir string, progress ProgressFunc) error, progress ProgressFunc) error {
	n := len(hexDigits)
	for i, c := range hexDigits {
		subdir := filepath.Join(root, string(c))
		base := float64(i) / float64(n)
		scaled := func(frac float64) {
			report(progress, base+frac/float64(n))
		}
		if err := visit(subdir, scaled); err != nil {
			return err
		}
		report(progress, float64(i+1)/float64(n))
	}
	return nil
}

// CacheFile describes one regular file discovered under a level-1 shard
// directory. Entries are owned by the caller; the file they describe may
// be removed by a concurrent process after GetLevel1Files returns.
type CacheFile struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// GetLevel1Files walks dir (a level-1 shard directory) and returns every
// regular file found, except CACHEDIR.TAG, stats, and names prefixed
// with ".nfs" — all reserved by the on-disk layout. Progress is reported
// proportional to the number of level-2 subdirectories completed (there
// are at most 16). Entries that vanish mid-walk are silently skipped.
func GetLevel1Files(dir string, progress ProgressFunc) ([]CacheFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if isMissing(err) {
			report(progress, 1)
			return nil, nil
		}
		return nil, ccerrors.NewIoError("opendir", dir, err)
	}

	var out []CacheFile
	var subdirs []string
	for _, e := range entries {
		if isReservedName(e.Name()) {
			continue
		}
		full := filepath.Join(dir, e.Name())
		if e.IsDir() {
			subdirs = append(subdirs, full)
			continue
		}
		info, err := e.Info()
		if err != nil {
			if isMissing(err) {
				continue
			}
			return nil, ccerrors.NewIoError("stat", full, err)
		}
		if info.Mode().IsRegular() {
			out = append(out, CacheFile{Path: full, Size: info.Size(), ModTime: info.ModTime()})
		}
	}

	if len(subdirs) == 0 {
		report(progress, 1)
		return out, nil
	}

	for i, subdir := range subdirs {
		err := fsutil.Traverse(subdir, func(path string, isDir bool) error {
			if isDir {
				return nil
			}
			if isReservedName(filepath.Base(path)) {
				return nil
			}
			st := fsutil.Stat(path)
			if !st.Exists {
				return nil
			}
			if st.Kind != fsutil.FileKind {
				return nil
			}
			out = append(out, CacheFile{Path: path, Size: st.Size, ModTime: st.MTime})
			return nil
		})
		if err != nil && !(isMissing(err) && !fsutil.Lstat(subdir).Exists) {
			return nil, err
		}
		report(progress, float64(i+1)/float64(len(subdirs)))
	}
	return out, nil
}

func isReservedName(name string) bool {
	if name == "CACHEDIR.TAG" || name == "stats" {
		return true
	}
	return strings.HasPrefix(name, ".nfs")
}

func isMissing(err error) bool {
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == syscall.ESTALE
}
