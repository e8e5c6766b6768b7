// Package store maps cache fingerprints onto sharded filesystem paths
// and enumerates the resulting directory tree. It never computes a
// fingerprint itself; fingerprints arrive as opaque hex strings (or, via
// PathForDigest, an OCI content digest) from an upstream hasher.
package store
