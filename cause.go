package errorparser

import "strings"

// linkKind identifies what a cause reference points at: nothing, another
// ParsedError, or a foreign error that terminates the chain.
type linkKind uint8

const (
	linkNone linkKind = iota
	linkParsed
	linkForeign
)

// foreignName is the name rendered for causes that are not ParsedErrors.
const foreignName = "Error"

// Namer is implemented by foreign errors that want a name other than
// "Error" when rendered as a cause.
type Namer interface {
	Name() string
}

// link is a resolved cause reference.
type link struct {
	kind    linkKind
	parsed  *ParsedError
	foreign error
}

// resolveLink picks the explicit cause if present, else the implicit one.
func resolveLink(explicit, implicit error) link {
	for _, err := range []error{explicit, implicit} {
		if isFalsy(err) {
			continue
		}
		if parsed, ok := err.(*ParsedError); ok {
			return link{kind: linkParsed, parsed: parsed}
		}
		return link{kind: linkForeign, foreign: err}
	}
	return link{}
}

func (l link) err() error {
	switch l.kind {
	case linkParsed:
		return l.parsed
	case linkForeign:
		return l.foreign
	default:
		return nil
	}
}

// next returns the link following l. Foreign errors terminate the chain.
func (l link) next() link {
	if l.kind == linkParsed {
		return l.parsed.cause
	}
	return link{}
}

func (l link) userError() bool {
	return l.kind == linkParsed && l.parsed.UserError()
}

func (l link) minimal() string {
	if l.kind == linkParsed {
		return l.parsed.minimal()
	}
	return foreignMinimal(l.foreign)
}

// trace renders the full trace of the linked error.
func (l link) trace() string {
	if l.kind == linkParsed {
		return l.parsed.Trace()
	}
	return foreignTrace(l.foreign)
}

func foreignNameOf(err error) string {
	if namer, ok := err.(Namer); ok {
		return namer.Name()
	}
	return foreignName
}

func foreignMinimal(err error) string {
	return foreignNameOf(err) + ": " + err.Error()
}

// foreignTrace renders a foreign error under its "<name>: <message>" header,
// followed by whatever detail %+v adds, such as the stack of errors built
// with github.com/pkg/errors.
func foreignTrace(err error) string {
	verbose := fmtVerbose(err)
	if detail, ok := strings.CutPrefix(verbose, err.Error()); ok {
		return foreignMinimal(err) + detail
	}
	return foreignMinimal(err) + "\n" + verbose
}
