// Package relpath relativizes absolute paths against a build's base
// directory, trying both the actual and "apparent" (PWD-derived)
// working directory as the relativization root and verifying the
// correct one by inode equality rather than trusting either blindly.
package relpath
