// Package pathops implements pure, filesystem-free textual path
// manipulation for the cache's content-addressing and relativization
// logic. No function in this package touches the filesystem; all of
// them operate on strings only.
package pathops
