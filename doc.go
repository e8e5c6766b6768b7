// Package ccache composes the compiler-cache primitives — content
// addressing (store), file installation (materializer), filesystem
// access (fsutil), and path relativization (relpath) — into the data
// flow a build-wrapping driver follows on store and lookup. Output
// sanitization (package sanitize) is not wrapped here.
//
// On store: the driver computes a fingerprint, calls PathFor to get a
// destination, CreateDirAll on its parent, then Install to place the
// output. On lookup: PathFor again, a Stat to check existence, then
// Install with viaTmpFile disabled to copy the cached object into the
// build tree.
package ccache
