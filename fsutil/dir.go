package fsutil

import (
	"errors"
	"os"

	"github.com/ccachego/ccache/ccerrors"
	"github.com/ccachego/ccache/pathops"
)

// CreateDirAll creates dir and every missing ancestor with mode 0777
// (subject to umask). It is idempotent and race-tolerant: if mkdir fails
// because the directory was created concurrently by another process, that
// is treated as success, since many processes may race to create the
// same chain when the cache root does not yet exist.
func CreateDirAll(dir string) error {
	st := Stat(dir)
	if st.Exists {
		if st.IsDirectory() {
			return nil
		}
		return ccerrors.NewIoError("mkdir", dir, errors.New("not a directory"))
	}

	if err := CreateDirAll(pathops.DirName(dir)); err != nil {
		return err
	}

	err := os.Mkdir(dir, 0o777)
	if err == nil || errors.Is(err, os.ErrExist) {
		return nil
	}
	return ccerrors.NewIoError("mkdir", dir, err)
}
