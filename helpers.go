package errorparser

import (
	"errors"
	"net/http"
)

// As finds the first ParsedError in err's chain.
//
// Example:
//
//	if parsed, ok := errorparser.As(err); ok {
//	    w.WriteHeader(parsed.StatusCode())
//	}
func As(err error) (*ParsedError, bool) {
	var parsed *ParsedError
	if errors.As(err, &parsed) && parsed != nil {
		return parsed, true
	}
	return nil, false
}

// GetStatusCode extracts the HTTP status code from an error.
// Returns 500 if the error is nil or has no ParsedError in its chain.
func GetStatusCode(err error) int {
	if parsed, ok := As(err); ok {
		return parsed.StatusCode()
	}
	return http.StatusInternalServerError
}

// IsUserError reports whether the first ParsedError in err's chain is
// user-facing. Returns false if there is none (safe default).
func IsUserError(err error) bool {
	if parsed, ok := As(err); ok {
		return parsed.UserError()
	}
	return false
}

// GetInfo returns the merged metadata of the first ParsedError in err's
// chain, or nil if there is none.
func GetInfo(err error) map[string]any {
	if parsed, ok := As(err); ok {
		return parsed.Info()
	}
	return nil
}
