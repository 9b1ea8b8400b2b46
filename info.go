package errorparser

import "maps"

// Info returns the contextual metadata of the error merged with the metadata
// of every ParsedError in its cause chain. Keys set closer to this error win
// over keys set by its causes.
//
// The returned map is a fresh copy; mutating it does not affect the error.
//
// Example:
//
//	cause := errorparser.New("query failed", errorparser.WithInfo(map[string]any{"index": "logs", "shard": 2}))
//	err := errorparser.New("search failed", errorparser.WithCause(cause), errorparser.WithInfo(map[string]any{"shard": 3}))
//	err.Info() // map[index:logs shard:3]
func (e *ParsedError) Info() map[string]any {
	layers := []map[string]any{e.info}
	for l := e.cause; l.kind == linkParsed; l = l.next() {
		layers = append(layers, l.parsed.info)
	}

	merged := make(map[string]any)
	for i := len(layers) - 1; i >= 0; i-- {
		maps.Copy(merged, layers[i])
	}
	return merged
}
