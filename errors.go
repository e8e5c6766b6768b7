package ccache

import "github.com/ccachego/ccache/ccerrors"

// Re-exported error types, so callers of this package need not import
// ccerrors directly to use errors.As/errors.Is against them.
type (
	// IoError wraps a failed filesystem syscall; Unwrap exposes the
	// underlying error for errors.Is/errors.As against os/syscall
	// sentinels.
	IoError = ccerrors.IoError
	// InvalidArgument signals a programming-bug-level precondition
	// violation (e.g. an out-of-range fan-out level count), not a
	// runtime condition a caller should retry on.
	InvalidArgument = ccerrors.InvalidArgument
	// ParseError wraps a failure to parse configuration text (a
	// duration, an integer).
	ParseError = ccerrors.ParseError
)
