package fsutil

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"syscall"
	"time"
)

// Kind classifies what a StatSnapshot points at.
type Kind int

const (
	// OtherKind covers device files, sockets, and other non-regular,
	// non-directory, non-symlink entries.
	OtherKind Kind = iota
	FileKind
	DirKind
	LinkKind
)

// StatSnapshot is an immutable record of a stat/lstat call. It never
// panics or returns an error for a missing file; Exists reports that.
type StatSnapshot struct {
	Exists bool
	Kind   Kind
	Size   int64
	MTime  time.Time
	Dev    uint64
	Ino    uint64
	Errno  syscall.Errno
}

// IsDirectory reports whether the snapshot describes an existing directory.
func (s StatSnapshot) IsDirectory() bool {
	return s.Exists && s.Kind == DirKind
}

// SameInode reports whether both snapshots exist and share the same
// (dev, ino) pair.
func SameInode(a, b StatSnapshot) bool {
	return a.Exists && b.Exists && a.Dev == b.Dev && a.Ino == b.Ino
}

type statConfig struct {
	logger *slog.Logger
}

// Option configures Stat and Lstat's diagnostic behavior.
type Option func(*statConfig)

// WithLogger routes diagnostic IO errors (permission denied and similar)
// through l instead of discarding them silently.
func WithLogger(l *slog.Logger) Option {
	return func(c *statConfig) {
		c.logger = l
	}
}

func newStatConfig(opts []Option) *statConfig {
	c := &statConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stat returns a StatSnapshot for path, following symlinks. A missing
// file is reported via Exists == false, never as an error.
func Stat(path string, opts ...Option) StatSnapshot {
	return statImpl(path, false, newStatConfig(opts))
}

// Lstat returns a StatSnapshot for path without following a trailing
// symlink.
func Lstat(path string, opts ...Option) StatSnapshot {
	return statImpl(path, true, newStatConfig(opts))
}

func statImpl(path string, lstat bool, cfg *statConfig) StatSnapshot {
	var info os.FileInfo
	var err error
	if lstat {
		info, err = os.Lstat(path)
	} else {
		info, err = os.Stat(path)
	}
	if err != nil {
		errno := errnoFrom(err)
		if errno != 0 && errno != syscall.ENOENT && errno != syscall.ESTALE {
			cfg.logger.Debug("stat failed", "path", path, "error", err)
		}
		return StatSnapshot{Errno: errno}
	}

	snap := StatSnapshot{
		Exists: true,
		Size:   info.Size(),
		MTime:  info.ModTime(),
		Kind:   kindOf(info),
	}
	snap.Dev, snap.Ino = devIno(info)
	return snap
}

func kindOf(info os.FileInfo) Kind {
	switch {
	case info.IsDir():
		return DirKind
	case info.Mode()&os.ModeSymlink != 0:
		return LinkKind
	case info.Mode().IsRegular():
		return FileKind
	default:
		return OtherKind
	}
}

func errnoFrom(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}
