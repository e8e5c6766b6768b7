// Package fsutil implements the filesystem primitives the cache store
// relies on for its safety: stat/lstat with captured error numbers,
// race-tolerant directory creation, post-order traversal, symlink-aware
// reads, atomic-adjacent writes, and NFS-safe unlink.
package fsutil
