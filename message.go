package errorparser

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonpointer"
)

const (
	// UnknownMessage is the message used when the input carries nothing usable.
	UnknownMessage = "Unknown Error Occurred"

	// MaxMessageLength is the maximum number of characters kept from a
	// plain-text input, including the truncation marker.
	MaxMessageLength = 5000

	truncationMarker    = "..."
	unknownSearchFormat = "Unknown ES Error Format "
	undefinedField      = "undefined"

	indexNotFoundException        = "index_not_found_exception"
	searchPhaseExecutionException = "search_phase_execution_exception"
)

// BodyCarrier is implemented by search-engine client errors that expose the
// decoded body of the failed response, e.g. {"error": {"type": ..., "index": ...}}.
//
// A search error that does not implement BodyCarrier may still carry its body
// under the "body" key of its JSON form.
type BodyCarrier interface {
	ResponseBody() any
}

// ResponseCarrier is implemented by HTTP client errors that carry the
// response (usually its body) that caused them.
type ResponseCarrier interface {
	Response() any
}

// inputKind is the shape an input to ParseMessage was classified as.
type inputKind uint8

const (
	kindEmpty inputKind = iota
	kindSearch
	kindResponse
	kindText
)

// classify determines the shape of input. Checks run in a fixed priority
// order: a JSON-convertible value wins over one that carries a response.
func classify(input any) inputKind {
	if isFalsy(input) {
		return kindEmpty
	}
	if _, ok := input.(*ParsedError); ok {
		return kindText
	}
	if _, ok := input.(json.Marshaler); ok {
		return kindSearch
	}
	if _, ok := responseOf(input); ok {
		return kindResponse
	}
	return kindText
}

// ParseMessage converts an arbitrary error-shaped value into a human readable
// message. It never panics and always returns some string.
//
// Resolution order:
//
//  1. nil, zero and empty values yield UnknownMessage.
//  2. Values implementing json.Marshaler are treated as search-engine client
//     errors. Index-not-found and search-phase failures get a dedicated
//     message; otherwise the "msg" field of the JSON form is used, falling
//     back to "Unknown ES Error Format <json>".
//  3. Values carrying a response (ResponseCarrier, or a map with a
//     "response" key) yield that response.
//  4. Anything else is rendered as text and truncated to MaxMessageLength
//     characters.
//
// Example:
//
//	errorparser.ParseMessage(nil)                  // "Unknown Error Occurred"
//	errorparser.ParseMessage(errors.New("boom"))   // "boom"
func ParseMessage(input any) string {
	switch classify(input) {
	case kindEmpty:
		return UnknownMessage
	case kindSearch:
		return parseSearchMessage(input.(json.Marshaler))
	case kindResponse:
		response, _ := responseOf(input)
		return textOf(response)
	default:
		return truncate(textOf(input))
	}
}

func parseSearchMessage(input json.Marshaler) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("%s%+v", unknownSearchFormat, input)
		}
	}()

	raw, err := json.Marshal(input)
	var doc any
	if err == nil {
		_ = json.Unmarshal(raw, &doc)
	}

	body := searchBody(input, doc)
	switch errorType, _ := lookup(body, "/error/type"); errorType {
	case indexNotFoundException:
		index, ok := lookup(body, "/error/index")
		return "error: index_not_found_exception, could not find index: " + fieldText(index, ok)
	case searchPhaseExecutionException:
		cause, ok := lookup(body, "/error/root_cause/0")
		if !ok {
			cause = map[string]any{}
		}
		causeType, typeOK := lookup(cause, "/type")
		reason, reasonOK := lookup(cause, "/reason")
		index, indexOK := lookup(cause, "/index")
		return fmt.Sprintf("error: %s %s on index: %s",
			fieldText(causeType, typeOK), fieldText(reason, reasonOK), fieldText(index, indexOK))
	}

	if err != nil {
		return fmt.Sprintf("%s%+v", unknownSearchFormat, input)
	}
	if m, ok := doc.(map[string]any); ok {
		if v, ok := m["msg"]; ok && !isFalsy(v) {
			return textOf(v)
		}
	}
	return unknownSearchFormat + string(raw)
}

// searchBody returns the generic JSON document of the response body carried
// by a search error.
func searchBody(input json.Marshaler, doc any) any {
	if carrier, ok := input.(BodyCarrier); ok {
		return toDocument(carrier.ResponseBody())
	}
	body, _ := lookup(doc, "/body")
	return body
}

// toDocument converts v into its generic JSON form (maps, slices, scalars) so
// JSON pointers can be resolved against it.
func toDocument(v any) any {
	if isFalsy(v) {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return doc
}

// lookup resolves a JSON pointer against a generic JSON document.
func lookup(doc any, pointer string) (any, bool) {
	switch doc.(type) {
	case map[string]any, []any:
	default:
		return nil, false
	}
	p, err := gojsonpointer.NewJsonPointer(pointer)
	if err != nil {
		return nil, false
	}
	v, _, err := p.Get(doc)
	if err != nil {
		return nil, false
	}
	return v, true
}

// fieldText renders a looked-up field for interpolation into a message.
func fieldText(v any, ok bool) string {
	if !ok {
		return undefinedField
	}
	if v == nil {
		return "null"
	}
	return textOf(v)
}

func responseOf(input any) (any, bool) {
	switch v := input.(type) {
	case ResponseCarrier:
		response := v.Response()
		return response, !isFalsy(response)
	case map[string]any:
		response, ok := v["response"]
		return response, ok && !isFalsy(response)
	}
	return nil, false
}

func textOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case *ParsedError:
		return t.message
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxMessageLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxMessageLength-len(truncationMarker)]) + truncationMarker
}

// isFalsy reports whether v carries no value: nil (including typed nil),
// false, zero numbers, and empty strings or byte slices.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Slice:
		return rv.IsNil() || (rv.Type().Elem().Kind() == reflect.Uint8 && rv.Len() == 0)
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	}
	return false
}
