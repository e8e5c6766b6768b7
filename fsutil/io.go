package fsutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ccachego/ccache/ccerrors"
)

// ReadFile reads the entire file at path into memory. If hint is 0, the
// file's size (from stat) is used as the initial buffer size; the buffer
// grows geometrically if the file turns out to be larger than hinted.
func ReadFile(path string, hint int) ([]byte, error) {
	if hint <= 0 {
		st := Stat(path)
		if !st.Exists {
			return nil, ccerrors.NewIoError("stat", path, st.Errno)
		}
		hint = int(st.Size)
	}
	if hint < 1024 {
		hint = 1024
	} else {
		hint++ // +1 to detect EOF on the first read
	}

	f, err := os.Open(path) //nolint:gosec // path is caller-controlled, not user input
	if err != nil {
		return nil, ccerrors.NewIoError("open", path, err)
	}
	defer f.Close()

	buf := make([]byte, hint)
	pos := 0
	for {
		if pos == len(buf) {
			buf = append(buf, make([]byte, len(buf))...)
		}
		n, err := f.Read(buf[pos:])
		pos += n
		if err == io.EOF || n == 0 {
			break
		}
		if err != nil {
			return nil, ccerrors.NewIoError("read", path, err)
		}
	}
	return buf[:pos], nil
}

// WriteMode selects whether WriteFile truncates or appends to an
// existing file.
type WriteMode int

const (
	Truncate WriteMode = iota
	Append
)

// WriteFile creates path if needed and writes data fully, truncating or
// appending per mode. It does not itself provide atomic replacement;
// callers needing that layer rename-from-temp on top (see materializer).
func WriteFile(path string, data []byte, mode WriteMode) error {
	flags := os.O_WRONLY | os.O_CREATE
	if mode == Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o666) //nolint:gosec // mode matches ofstream default
	if err != nil {
		return ccerrors.NewIoError("open", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return ccerrors.NewIoError("write", path, err)
	}
	return nil
}

// ReadLink returns the target of the symlink at path, or "" on failure.
func ReadLink(path string) string {
	target, err := os.Readlink(path)
	if err != nil {
		return ""
	}
	return target
}

// RealPath resolves all symlinks in path and returns the canonical
// absolute form. On error it returns "" if emptyOnError is set, else the
// original path unchanged.
func RealPath(path string, emptyOnError bool) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if emptyOnError {
			return ""
		}
		return path
	}
	return resolved
}
