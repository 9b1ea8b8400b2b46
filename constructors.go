package errorparser

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New creates a ParsedError from any error-shaped input. The message is
// computed once by ParseMessage. If input is itself an error it becomes the
// cause, unless WithCause declares another one.
//
// New never fails: any input, including nil, yields a usable error.
//
// Example:
//
//	err := errorparser.New("index missing", errorparser.WithStatusCode(http.StatusNotFound))
//
//	res, err := client.Search(ctx, query)
//	if err != nil {
//	    return errorparser.New(err, errorparser.WithInfo(map[string]any{"index": index}))
//	}
func New(input any, opts ...Option) *ParsedError {
	return newParsedError(input, captureStack(1), opts)
}

// Newf creates a ParsedError with a formatted message.
//
// Example:
//
//	err := errorparser.Newf("invalid size %d", size)
func Newf(format string, args ...any) *ParsedError {
	return newParsedError(fmt.Sprintf(format, args...), captureStack(1), nil)
}

func newParsedError(input any, stack pkgerrors.StackTrace, opts []Option) *ParsedError {
	e := &ParsedError{
		name:    DefaultName,
		message: ParseMessage(input),
		stack:   stack,
		info:    map[string]any{},
	}
	if err, ok := input.(error); ok && !isFalsy(err) {
		e.implicitCause = err
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.info == nil {
		e.info = map[string]any{}
	}
	e.cause = resolveLink(e.explicitCause, e.implicitCause)
	return e
}
