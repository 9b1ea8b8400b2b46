package errorparser

import (
	"encoding/json"
	"net/http"
)

// Record is the JSON representation of an error, intended for transport and
// logging layers.
//
// Stack holds the full trace of the error and is only populated for internal
// errors: user-facing errors never leak stack detail when serialized.
type Record struct {
	// Info is the merged metadata of the error chain.
	Info map[string]any `json:"info"`

	// Name is the error name.
	Name string `json:"name"`

	// Message is the normalized error message.
	Message string `json:"message"`

	// StatusCode is the HTTP status code of the error.
	StatusCode int `json:"statusCode"`

	// Causes holds one rendered entry per ancestor, see ParsedError.Causes.
	Causes []string `json:"causes"`

	// Stack is the full trace. Omitted for user-facing errors.
	Stack string `json:"stack,omitempty"`
}

// ToJSON returns the serializable record of the error.
func (e *ParsedError) ToJSON() Record {
	r := Record{
		Info:       e.Info(),
		Name:       e.name,
		Message:    e.message,
		StatusCode: e.StatusCode(),
		Causes:     e.Causes(),
	}
	if !e.UserError() {
		r.Stack = e.Trace()
	}
	return r
}

// MarshalJSON implements json.Marshaler so a ParsedError can be passed to
// json.Marshal directly.
//
// Example:
//
//	err := errorparser.New("not allowed", errorparser.WithStatusCode(http.StatusForbidden))
//	data, _ := json.Marshal(err)
//	// {"info":{},"name":"ParsedError","message":"not allowed","statusCode":403,"causes":[]}
func (e *ParsedError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.ToJSON())
	if err != nil {
		return nil, New("failed to marshal error record", WithCause(err), WithName("MarshalError"))
	}
	return data, nil
}

// ToJSON converts any error to a Record. Returns nil if err is nil.
//
// The record of the first ParsedError in the chain of err is returned.
// Other errors are reported as internal errors named "Error" (or their Name,
// see Namer) with status 500.
func ToJSON(err error) *Record {
	if err == nil {
		return nil
	}
	if parsed, ok := As(err); ok {
		r := parsed.ToJSON()
		return &r
	}
	return &Record{
		Info:       map[string]any{},
		Name:       foreignNameOf(err),
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
		Causes:     []string{},
		Stack:      foreignTrace(err),
	}
}
