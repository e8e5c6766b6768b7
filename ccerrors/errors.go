// Package ccerrors defines the error kinds the CORE surfaces to its
// driver, per the failure semantics of each component: a filesystem
// call that failed in a way the component cannot recover from locally,
// or a precondition violation that is a programming bug rather than a
// runtime condition.
package ccerrors

import "fmt"

// IoError wraps a filesystem syscall failure the CORE could not recover
// from locally (EEXIST on mkdir, ENOENT/ESTALE during traversal, and the
// other recoverable errno values are handled internally and never reach
// this type).
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// NewIoError constructs an IoError. err may be nil, in which case Error
// still reports op and path (used for errno-only failures surfaced
// without an *os.PathError to wrap).
func NewIoError(op, path string, err error) error {
	return &IoError{Op: op, Path: path, Err: err}
}

// InvalidArgument signals a violated precondition — a programming bug,
// not a runtime condition (e.g. a Store level count out of [1,8]).
type InvalidArgument struct {
	Message string
}

func (e *InvalidArgument) Error() string { return e.Message }

// NewInvalidArgument constructs an InvalidArgument with a formatted message.
func NewInvalidArgument(format string, args ...any) error {
	return &InvalidArgument{Message: fmt.Sprintf(format, args...)}
}

// ParseError is returned by the config package's text-parsing helpers
// (durations, integers) when the input does not match the expected
// grammar.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError constructs a ParseError.
func NewParseError(text string, err error) error {
	return &ParseError{Text: text, Err: err}
}
