package errorparser

import "net/http"

// UserError reports whether the error is safe to expose to the caller.
//
// An error is user-facing when it was flagged with WithUserError(true), or
// when an explicit status code below 500 was supplied. An error without a
// status code is never user-facing by status alone.
func (e *ParsedError) UserError() bool {
	if e.userError != nil && *e.userError {
		return true
	}
	return e.statusCode != nil && *e.statusCode < http.StatusInternalServerError
}

// StatusCode returns the HTTP status code of the error.
//
// A supplied status code is returned when it is a standard HTTP status code.
// Otherwise the code defaults to 400 for errors flagged with
// WithUserError(true) and to 500 for everything else. The default depends on
// the explicit flag only, never on the supplied status code.
func (e *ParsedError) StatusCode() int {
	if e.statusCode != nil && isStandardStatus(*e.statusCode) {
		return *e.statusCode
	}
	if e.userError != nil && *e.userError {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func isStandardStatus(code int) bool {
	return http.StatusText(code) != ""
}
