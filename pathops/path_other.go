//go:build !windows

package pathops

const pathSeparators = "/"

func hasDriveLetterPrefix(string) bool { return false }

// prepareForNormalize returns an empty drive and the path unchanged; there
// is no drive-letter concept off Windows.
func prepareForNormalize(p string) (drive, rest string, recheck bool) {
	return "", p, false
}

// adjustForRelative returns dir and path unchanged; there is no drive
// letter to compare off Windows.
func adjustForRelative(dir, path string) (adjDir, adjPath string, driveMismatch bool) {
	return dir, path, false
}
