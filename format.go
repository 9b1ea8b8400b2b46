package errorparser

import (
	"fmt"
	"io"
	"strings"
)

const (
	minimalSeparator = ", caused by, "
	fullSeparator    = "\nCaused by: "
)

// renderedCause is one ancestor of an error rendered for output.
type renderedCause struct {
	text    string
	minimal bool
}

// walkChain renders every ancestor of e, starting at its direct cause.
//
// Rendering starts in minimal mode when e is user-facing and switches to it
// permanently at the first user-facing ancestor: once an error may be shown
// to the caller, nothing below it may leak its trace. The final mode is
// returned alongside the rendered ancestors.
func walkChain(e *ParsedError) ([]renderedCause, bool) {
	minimal := e.UserError()
	var out []renderedCause
	for l := e.cause; l.kind != linkNone; l = l.next() {
		minimal = minimal || l.userError()
		text := l.trace()
		if minimal {
			text = l.minimal()
		}
		out = append(out, renderedCause{text: text, minimal: minimal})
	}
	return out, minimal
}

// Causes returns one rendered entry per ancestor of the error, starting with
// its direct cause. Ancestors at or below a user-facing error are rendered as
// "<name>: <message>"; the rest are rendered as full traces.
func (e *ParsedError) Causes() []string {
	rendered, _ := walkChain(e)
	causes := make([]string, 0, len(rendered))
	for _, c := range rendered {
		causes = append(causes, c.text)
	}
	return causes
}

// String renders the error followed by its whole cause chain.
//
// User-facing errors start with "<name>: <message>", internal ones with their
// full trace. Ancestors are appended with ", caused by, " when rendered
// minimally and "\nCaused by: " when rendered with their trace.
func (e *ParsedError) String() string {
	var b strings.Builder
	if e.UserError() {
		b.WriteString(e.minimal())
	} else {
		b.WriteString(e.Trace())
	}

	rendered, _ := walkChain(e)
	for _, c := range rendered {
		if c.minimal {
			b.WriteString(minimalSeparator)
		} else {
			b.WriteString(fullSeparator)
		}
		b.WriteString(c.text)
	}
	return b.String()
}

// Format implements fmt.Formatter.
//
//	%s, %v  "<name>: <message>"
//	%+v     the full chain, as returned by String
//	%q      the quoted "<name>: <message>"
func (e *ParsedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.String())
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func fmtVerbose(err error) string {
	return fmt.Sprintf("%+v", err)
}
