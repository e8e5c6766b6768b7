package ccache

import (
	"os"
	"path/filepath"

	"github.com/ccachego/ccache/ccerrors"
	"github.com/ccachego/ccache/fsutil"
	"github.com/ccachego/ccache/pathops"
)

// Cwd is the pair of working-directory forms relpath.MakeRelativePath
// chooses between.
type Cwd struct {
	// Actual is the resolved working directory (getcwd), normalized to
	// forward slashes.
	Actual string
	// Apparent is the PWD environment variable's value, when it names
	// the same directory as Actual (by inode), else it equals Actual.
	// Build systems often leave symlinks intact in PWD while getcwd
	// resolves them; either form may be the "intended" root.
	Apparent string
}

// CaptureCwd reads the process's current working directory once. It is
// meant to be called at driver startup and threaded through explicitly —
// no package-level singleton is kept, since a long-lived process (a
// compiler daemon) may need to recapture it after a chdir.
func CaptureCwd() (Cwd, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Cwd{}, ccerrors.NewIoError("getcwd", "", err)
	}
	actual := pathops.NormalizeAbsolutePath(filepath.ToSlash(wd))
	apparent := actual

	if pwd := os.Getenv("PWD"); pwd != "" {
		if fsutil.SameInode(fsutil.Stat(pwd), fsutil.Stat(actual)) {
			apparent = pwd
		}
	}
	return Cwd{Actual: actual, Apparent: apparent}, nil
}
