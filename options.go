package errorparser

import "maps"

// Option configures a ParsedError during construction.
type Option func(*ParsedError)

// WithName overrides the error name.
func WithName(name string) Option {
	return func(e *ParsedError) {
		e.name = name
	}
}

// WithInfo attaches contextual metadata to the error.
// The map is copied to prevent external mutation.
func WithInfo(info map[string]any) Option {
	return func(e *ParsedError) {
		e.info = maps.Clone(info)
	}
}

// WithStatusCode sets the HTTP status code of the error. A code below 500
// marks the error as user-facing.
func WithStatusCode(code int) Option {
	return func(e *ParsedError) {
		e.statusCode = &code
	}
}

// WithUserError marks the error as safe (or not) to expose to the caller.
func WithUserError(userError bool) Option {
	return func(e *ParsedError) {
		e.userError = &userError
	}
}

// WithCause declares the error that caused this one. It takes precedence
// over the error passed as input to New.
func WithCause(cause error) Option {
	return func(e *ParsedError) {
		e.explicitCause = cause
	}
}
