package ccache

import (
	"context"

	"github.com/ccachego/ccache/config"
	"github.com/ccachego/ccache/fsutil"
	"github.com/ccachego/ccache/materializer"
	"github.com/ccachego/ccache/pathops"
	"github.com/ccachego/ccache/relpath"
	"github.com/ccachego/ccache/store"
)

// Driver composes the CORE components behind the store/lookup data
// flow: Store.PathFor -> FsPrimitives.CreateDirAll -> Materializer.Install
// on store, and Store.PathFor -> FsPrimitives.Stat -> Materializer.Install
// on lookup.
type Driver struct {
	cfg       config.Config
	cwd       Cwd
	installer *materializer.Installer
}

// NewDriver builds a Driver from cfg and a previously captured Cwd. opts
// configure the underlying materializer.Installer (e.g. WithLogger).
func NewDriver(cfg config.Config, cwd Cwd, opts ...materializer.Option) *Driver {
	policy := materializer.Policy{FileClone: cfg.FileClone, HardLink: cfg.HardLink}
	return &Driver{cfg: cfg, cwd: cwd, installer: materializer.New(policy, opts...)}
}

// StoreOutput installs src, a freshly produced compiler output, under
// fingerprint+suffix in the cache, creating any missing shard
// directories first. It returns the path the object was stored at.
func (d *Driver) StoreOutput(ctx context.Context, fingerprint, suffix, src string) (string, error) {
	dst, err := store.PathFor(d.cfg.CacheDir, d.cfg.Levels, fingerprint, suffix)
	if err != nil {
		return "", err
	}
	if err := fsutil.CreateDirAll(pathops.DirName(dst)); err != nil {
		return "", err
	}
	if _, err := d.installer.Install(ctx, src, dst, true); err != nil {
		return "", err
	}
	return dst, nil
}

// LookupOutput checks the cache for fingerprint+suffix and, on a hit,
// installs the cached object at dst in the build tree. hit is false
// (with a nil error) on a cache miss.
func (d *Driver) LookupOutput(ctx context.Context, fingerprint, suffix, dst string) (hit bool, err error) {
	cached, err := store.PathFor(d.cfg.CacheDir, d.cfg.Levels, fingerprint, suffix)
	if err != nil {
		return false, err
	}
	if st := fsutil.Stat(cached); !st.Exists {
		return false, nil
	}
	if _, err := d.installer.Install(ctx, cached, dst, false); err != nil {
		return false, err
	}
	return true, nil
}

// Relativize rewrites an absolute path relative to the driver's base
// directory and captured Cwd pair, producing a stable, fingerprintable
// form. Paths outside the base directory are returned unchanged.
func (d *Driver) Relativize(path string) string {
	return relpath.MakeRelativePath(d.cfg.BaseDir, d.cwd.Actual, d.cwd.Apparent, path)
}
