package errorparser

import "fmt"

// Wrap creates a ParsedError with the given message whose cause is err.
// Metadata of err, when it is a ParsedError, is inherited through Info.
//
// The result is returned as an error so a nil err yields a true nil. Use As
// for typed access.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := store.Put(ctx, doc); err != nil {
//	    return errorparser.Wrap(err, "failed to index document",
//	        errorparser.WithInfo(map[string]any{"id": doc.ID}))
//	}
func Wrap(err error, message string, opts ...Option) error {
	if err == nil {
		return nil
	}
	return newParsedError(message, captureStack(1), append([]Option{WithCause(err)}, opts...))
}

// Wrapf wraps err with a formatted message.
//
// Wrapf accepts no options. To set a status code, user flag or info on a
// formatted wrap, pass the formatted message to Wrap:
//
//	errorparser.Wrap(err, fmt.Sprintf("search on %s failed", index),
//	    errorparser.WithStatusCode(http.StatusBadGateway))
//
// Returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newParsedError(fmt.Sprintf(format, args...), captureStack(1), []Option{WithCause(err)})
}
