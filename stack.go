package errorparser

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// captureStack returns the current call stack, skipping captureStack itself
// plus skip additional frames.
func captureStack(skip int) pkgerrors.StackTrace {
	tracer, ok := pkgerrors.New("").(stackTracer)
	if !ok {
		return nil
	}
	st := tracer.StackTrace()
	if skip+1 >= len(st) {
		return nil
	}
	return st[skip+1:]
}

// Trace returns the full trace of the error: its "<name>: <message>" header
// followed by one function/file:line entry per captured frame.
func (e *ParsedError) Trace() string {
	return e.minimal() + fmt.Sprintf("%+v", e.stack)
}
