//go:build windows

package pathops

import "strings"

const pathSeparators = "/\\"

// hasDriveLetterPrefix reports whether p starts with "X:/" or "X:\".
func hasDriveLetterPrefix(p string) bool {
	return len(p) >= 3 && isAlpha(p[0]) && p[1] == ':' && (p[2] == '/' || p[2] == '\\')
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// prepareForNormalize replaces backslashes with forward slashes (asking
// the caller to re-run normalization on the translated form) or, for an
// already-slash form, splits off the two-character drive prefix.
func prepareForNormalize(p string) (drive, rest string, recheck bool) {
	if strings.IndexByte(p, '\\') != -1 {
		return "", strings.ReplaceAll(p, "\\", "/"), true
	}
	return p[:2], p[2:], false
}

// adjustForRelative strips the leading escape slash ccache uses for
// drive-letter paths passed to e.g. -isystem ("/c/..." or "/c:/..."),
// then compares drive letters, returning driveMismatch if they differ.
func adjustForRelative(dir, path string) (adjDir, adjPath string, driveMismatch bool) {
	if len(dir) >= 3 && dir[0] == '/' && dir[2] == ':' {
		dir = dir[1:]
	}
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	if len(dir) == 0 || len(path) == 0 || dir[0] != path[0] {
		return dir, path, true
	}
	return dir[2:], path[2:], false
}
