package errorparser

import (
	pkgerrors "github.com/pkg/errors"
)

// DefaultName is the name given to errors constructed without WithName.
const DefaultName = "ParsedError"

// ParsedError is a structured error carrying a normalized message, a captured
// stack trace, contextual metadata, an optional HTTP status code, a
// user-facing flag and an optional cause.
//
// A ParsedError is immutable once constructed and safe for concurrent use.
// Construct it with New, Newf, Wrap or Wrapf.
type ParsedError struct {
	name    string
	message string
	stack   pkgerrors.StackTrace
	info    map[string]any

	// statusCode and userError are nil when the caller did not supply them.
	statusCode *int
	userError  *bool

	explicitCause error
	implicitCause error
	cause         link
}

// Name returns the error name, "ParsedError" unless overridden.
func (e *ParsedError) Name() string {
	return e.name
}

// Message returns the normalized message computed at construction.
func (e *ParsedError) Message() string {
	return e.message
}

// StackTrace returns the call stack captured when the error was constructed.
// It satisfies the stackTracer convention of github.com/pkg/errors.
func (e *ParsedError) StackTrace() pkgerrors.StackTrace {
	return e.stack
}

// Cause returns the declared cause, or the error the ParsedError was
// constructed from when no cause was declared. Returns nil if neither exists.
func (e *ParsedError) Cause() error {
	return e.cause.err()
}

// Unwrap returns the cause for errors.Is and errors.As compatibility.
func (e *ParsedError) Unwrap() error {
	return e.cause.err()
}

// Error returns the minimal "<name>: <message>" form of the error.
// Use String or the %+v verb for the full chain.
func (e *ParsedError) Error() string {
	return e.minimal()
}

func (e *ParsedError) minimal() string {
	return e.name + ": " + e.message
}
