// Package errorparser provides a structured, chainable error type for service
// code.
//
// It normalizes heterogeneous error shapes (plain strings, Go errors,
// search-engine client errors, HTTP response-carrying values) into a single
// message, and wraps them in a ParsedError carrying a cause chain, merged
// contextual metadata, an HTTP status code and a user-facing flag. It stays
// compatible with the standard library errors package (errors.Is, errors.As,
// errors.Unwrap).
//
// # Features
//
//   - Message normalization for search-engine, HTTP and plain errors
//   - Cause chains with metadata inherited from every ancestor
//   - HTTP status code inference (400 for user errors, 500 otherwise)
//   - User-facing vs internal classification that cascades down the chain
//   - Two renderings: full traces for internal errors, "<name>: <message>"
//     for user-facing ones
//   - JSON serialization that never leaks stack detail of user errors
//   - log/slog integration through slog.LogValuer
//
// # Quick Start
//
// Creating errors:
//
//	// From a message
//	err := errorparser.New("index is read-only")
//
//	// From an existing error, which becomes the cause
//	err := errorparser.New(searchErr)
//
//	// With options
//	err := errorparser.New("invalid query",
//	    errorparser.WithStatusCode(http.StatusUnprocessableEntity),
//	    errorparser.WithInfo(map[string]any{"index": "logs"}),
//	)
//
// Wrapping errors:
//
//	if err := store.Put(ctx, doc); err != nil {
//	    return errorparser.Wrap(err, "failed to index document")
//	}
//
// Serializing:
//
//	func handleError(w http.ResponseWriter, err error) {
//	    record := errorparser.ToJSON(err)
//	    w.Header().Set("Content-Type", "application/json")
//	    w.WriteHeader(record.StatusCode)
//	    json.NewEncoder(w).Encode(record)
//	}
//
// # Message Normalization
//
// ParseMessage resolves a message from its input in a fixed order:
//
//   - nil, zero and empty values: "Unknown Error Occurred"
//   - json.Marshaler values (search-engine client errors): a dedicated message
//     for index_not_found_exception and search_phase_execution_exception
//     bodies, else the "msg" field of the JSON form, else
//     "Unknown ES Error Format <json>"
//   - ResponseCarrier values and maps with a "response" key: the response
//   - everything else: its text, truncated to 5000 characters
//
// # User Errors
//
// An error is user-facing when flagged with WithUserError(true) or given a
// status code below 500. User-facing errors, and every error below them in a
// chain, are rendered as "<name>: <message>":
//
//	cause := errorparser.New("connection reset")
//	err := errorparser.New("bad request", errorparser.WithUserError(true), errorparser.WithCause(cause))
//	err.String() // "ParsedError: bad request, caused by, ParsedError: connection reset"
//
// Internal errors keep their traces:
//
//	err := errorparser.New("lookup failed", errorparser.WithCause(cause))
//	err.String() // "ParsedError: lookup failed\n<frames>\nCaused by: ParsedError: connection reset\n<frames>"
//
// # Metadata
//
// Each error holds its own info map. Info merges the maps of the whole chain;
// keys set closer to the outermost error win.
package errorparser
