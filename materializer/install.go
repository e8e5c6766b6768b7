package materializer

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"os"

	"github.com/ccachego/ccache/ccerrors"
)

// Outcome names the terminal state of an Install attempt.
type Outcome int

const (
	Failed Outcome = iota
	Cloned
	HardLinked
	Copied
)

func (o Outcome) String() string {
	switch o {
	case Cloned:
		return "cloned"
	case HardLinked:
		return "hard-linked"
	case Copied:
		return "copied"
	default:
		return "failed"
	}
}

// Install places the bytes of src at dst using the cheapest strategy the
// Installer's Policy allows: clone, then hard-link, then copy. A failed
// clone or hard-link attempt is logged and falls through to the next
// strategy; copy always succeeds or returns the underlying error. If
// viaTmpFile is set, the copy strategy writes to a unique temp name next
// to dst and renames it into place, so concurrent readers of dst never
// observe a partial write.
func (in *Installer) Install(ctx context.Context, src, dst string, viaTmpFile bool) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Failed, err
	}

	if in.policy.FileClone {
		if err := cloneFile(src, dst); err == nil {
			in.cfg.logger.Debug("materializer: cloned", "src", src, "dst", dst)
			return Cloned, nil
		} else {
			in.cfg.logger.Debug("materializer: clone failed, falling back", "src", src, "dst", dst, "error", err)
		}
	}

	if in.policy.HardLink {
		if err := hardLinkFile(src, dst); err == nil {
			in.cfg.logger.Debug("materializer: hard-linked", "src", src, "dst", dst)
			return HardLinked, nil
		} else {
			in.cfg.logger.Debug("materializer: hard-link failed, falling back", "src", src, "dst", dst, "error", err)
		}
	}

	if err := copyFile(src, dst, viaTmpFile); err != nil {
		return Failed, err
	}
	in.cfg.logger.Debug("materializer: copied", "src", src, "dst", dst)
	return Copied, nil
}

// hardLinkFile removes any existing dst, links src to dst, then chmods
// dst to 0444: a hard-linked cache object shares an inode with the
// cached copy, so it must not be writable through the destination or a
// build that writes to it would corrupt the shared cache entry.
func hardLinkFile(src, dst string) error {
	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return ccerrors.NewIoError("unlink", dst, err)
	}
	if err := os.Link(src, dst); err != nil {
		return ccerrors.NewIoError("link", dst, err)
	}
	if err := os.Chmod(dst, 0o444); err != nil {
		return ccerrors.NewIoError("chmod", dst, err)
	}
	return nil
}

// copyFile copies src to dst. With viaTmpFile, the copy lands at a
// unique temp name beside dst and is renamed into place once flushed,
// so a reader of dst never observes a torn write; without it, bytes are
// written directly to dst (the caller already owns dst exclusively).
func copyFile(src, dst string, viaTmpFile bool) error {
	in, err := os.Open(src) //nolint:gosec // src is a cache-internal path, not user input
	if err != nil {
		return ccerrors.NewIoError("open", src, err)
	}
	defer in.Close()

	writeTarget := dst
	if viaTmpFile {
		writeTarget = dst + "." + randomSuffix()
	}

	out, err := os.OpenFile(writeTarget, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666) //nolint:gosec // matches write_file's default mode
	if err != nil {
		return ccerrors.NewIoError("open", writeTarget, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		if viaTmpFile {
			os.Remove(writeTarget) //nolint:errcheck // best-effort cleanup of the failed temp file
		}
		return ccerrors.NewIoError("write", writeTarget, err)
	}
	if err := out.Close(); err != nil {
		if viaTmpFile {
			os.Remove(writeTarget) //nolint:errcheck // best-effort cleanup of the failed temp file
		}
		return ccerrors.NewIoError("close", writeTarget, err)
	}

	if viaTmpFile {
		if err := os.Rename(writeTarget, dst); err != nil {
			os.Remove(writeTarget) //nolint:errcheck // best-effort cleanup of the failed temp file
			return ccerrors.NewIoError("rename", writeTarget, err)
		}
	}
	return nil
}

func randomSuffix() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the platform's entropy source is
		// broken; a fixed fallback still keeps Install from panicking.
		return "ccache.tmp"
	}
	return hex.EncodeToString(b[:])
}
