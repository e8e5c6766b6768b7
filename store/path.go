package store

import (
	"strings"

	"github.com/ccachego/ccache/ccerrors"
	digest "github.com/opencontainers/go-digest"
)

// MinLevels and MaxLevels bound the fan-out depth PathFor accepts.
const (
	MinLevels = 1
	MaxLevels = 8
)

// PathFor builds the sharded on-disk path for name under root: the first
// levels characters of name each become a one-character directory
// component, and the remainder of name plus suffix becomes the final
// filename. For example, PathFor("/c", 2, "abcdef", ".o") yields
// "/c/a/b/cdef.o".
func PathFor(root string, levels int, name, suffix string) (string, error) {
	if levels < MinLevels || levels > MaxLevels {
		return "", ccerrors.NewInvalidArgument("store: levels %d out of range [%d,%d]", levels, MinLevels, MaxLevels)
	}
	if levels >= len(name) {
		return "", ccerrors.NewInvalidArgument("store: levels %d must be less than len(name)=%d", levels, len(name))
	}

	var b strings.Builder
	b.WriteString(root)
	for i := 0; i < levels; i++ {
		b.WriteByte('/')
		b.WriteByte(name[i])
	}
	b.WriteByte('/')
	b.WriteString(name[levels:])
	b.WriteString(suffix)
	return b.String(), nil
}

// PathForDigest is PathFor using a content digest's hex-encoded form as
// the fingerprint, letting a driver hand this package a digest.Digest
// (as produced by digest.FromBytes/digest.FromReader) directly instead
// of threading a raw hex string through its own plumbing.
func PathForDigest(root string, levels int, d digest.Digest, suffix string) (string, error) {
	return PathFor(root, levels, d.Encoded(), suffix)
}
