// Package materializer installs a file from the cache into a destination
// path by the cheapest mechanism available: reflink clone, then
// hard-link, then byte copy. Each attempt that fails falls through to
// the next rather than surfacing an error, since the driver only cares
// that the destination ends up holding the right bytes.
package materializer
