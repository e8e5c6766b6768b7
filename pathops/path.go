package pathops

import "strings"

// BaseName returns the substring of p after the last path separator. If p
// contains no separator, p is returned unchanged.
func BaseName(p string) string {
	if i := strings.LastIndexAny(p, pathSeparators); i != -1 {
		return p[i+1:]
	}
	return p
}

// DirName returns the substring of p before the last path separator. If p
// contains no separator, "." is returned. If the last separator is the
// first character of p, "/" is returned.
func DirName(p string) string {
	i := strings.LastIndexAny(p, pathSeparators)
	switch {
	case i == -1:
		return "."
	case i == 0:
		return "/"
	default:
		return p[:i]
	}
}

// GetExtension returns the substring of p from the last "." to the end,
// but only if no path separator appears after that ".". It returns "" if
// p has no extension.
func GetExtension(p string) string {
	pos := strings.LastIndexAny(p, "."+pathSeparators)
	if pos == -1 {
		return ""
	}
	if strings.IndexByte(pathSeparators, p[pos]) != -1 {
		return ""
	}
	return p[pos:]
}

// RemoveExtension returns p with GetExtension(p) removed.
func RemoveExtension(p string) string {
	return p[:len(p)-len(GetExtension(p))]
}

// ChangeExtension returns RemoveExtension(p) with newExt appended verbatim.
// The caller supplies any leading dot in newExt.
func ChangeExtension(p, newExt string) string {
	return RemoveExtension(p) + newExt
}

// IsAbsolutePath reports whether p is an absolute path: on all platforms a
// leading "/" qualifies; on Windows an "X:/" or "X:\" drive prefix also
// qualifies.
func IsAbsolutePath(p string) bool {
	if hasDriveLetterPrefix(p) {
		return true
	}
	return len(p) > 0 && p[0] == '/'
}

func byteAt(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// CommonDirPrefixLength returns the length of the longest prefix shared by
// dir and path that ends on a directory boundary. Both arguments must be
// absolute paths; it returns 0 if either is empty or is exactly "/".
func CommonDirPrefixLength(dir, path string) int {
	if dir == "" || path == "" || dir == "/" || path == "/" {
		return 0
	}

	limit := len(dir)
	if len(path) < limit {
		limit = len(path)
	}

	i := 0
	for i < limit && dir[i] == path[i] {
		i++
	}

	if (i == len(dir) && i == len(path)) ||
		(i == len(dir) && byteAt(path, i) == '/') ||
		(i == len(path) && byteAt(dir, i) == '/') {
		return i
	}

	i--
	for i > 0 && byteAt(dir, i) != '/' && byteAt(path, i) != '/' {
		i--
	}
	return i
}

// NormalizeAbsolutePath resolves "." and ".." segments lexically and
// collapses repeated separators, without touching the filesystem. A ".."
// at the root is absorbed rather than erroring. Non-absolute input is
// returned unchanged.
func NormalizeAbsolutePath(p string) string {
	if !IsAbsolutePath(p) {
		return p
	}

	drive, rest, recheck := prepareForNormalize(p)
	if recheck {
		// Windows input contained backslashes; re-run on the translated form.
		return NormalizeAbsolutePath(rest)
	}

	result := "/"
	left := 1
	for left < len(rest) {
		right := strings.IndexByte(rest[left:], '/')
		var part string
		if right == -1 {
			part = rest[left:]
		} else {
			right += left
			part = rest[left:right]
		}

		switch part {
		case "..":
			if len(result) > 1 {
				idx := strings.LastIndexByte(result[:len(result)-1], '/')
				result = result[:idx+1]
			}
		case ".":
			// drop
		default:
			result += part
			if result[len(result)-1] != '/' {
				result += "/"
			}
		}

		if right == -1 {
			break
		}
		left = right + 1
	}

	if len(result) > 1 {
		result = strings.TrimRight(result, "/")
	}
	return drive + result
}

// GetRelativePath returns a relative path R such that dir joined with R
// refers, textually, to the same location as path. Both arguments must be
// absolute paths. On Windows, if dir and path have different drive
// letters, path is returned unchanged.
func GetRelativePath(dir, path string) string {
	adjDir, adjPath, driveMismatch := adjustForRelative(dir, path)
	if driveMismatch {
		return path
	}

	var result strings.Builder
	commonLen := CommonDirPrefixLength(adjDir, adjPath)
	if commonLen > 0 || adjDir != "/" {
		for i := commonLen; i < len(adjDir); i++ {
			if adjDir[i] == '/' {
				if result.Len() > 0 {
					result.WriteByte('/')
				}
				result.WriteString("..")
			}
		}
	}
	if len(adjPath) > commonLen {
		if result.Len() > 0 {
			result.WriteByte('/')
		}
		result.WriteString(adjPath[commonLen+1:])
	}

	res := strings.TrimRight(result.String(), "/")
	if res == "" {
		return "."
	}
	return res
}

// MatchesDirPrefixOrFile reports whether p starts with prefix and either
// they are equal, the character after prefix in p is a separator, or
// prefix itself ends with a separator.
func MatchesDirPrefixOrFile(prefix, p string) bool {
	if prefix == "" || p == "" || len(prefix) > len(p) || !strings.HasPrefix(p, prefix) {
		return false
	}
	if len(prefix) == len(p) {
		return true
	}
	return strings.IndexByte(pathSeparators, p[len(prefix)]) != -1 ||
		strings.IndexByte(pathSeparators, prefix[len(prefix)-1]) != -1
}
