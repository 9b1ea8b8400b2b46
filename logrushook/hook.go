// Package logrushook expands errorparser errors attached to logrus entries
// into structured fields.
//
// Register the hook once and log errors as usual:
//
//	logger := logrus.New()
//	logger.AddHook(logrushook.New())
//	logger.WithError(err).Error("request failed")
//
// When the entry's error (logrus.ErrorKey) has a *errorparser.ParsedError in
// its chain, the hook adds its name, status code, user-facing flag, merged
// info and causes. The stack is added for internal errors only.
package logrushook

import (
	"github.com/sirupsen/logrus"

	errorparser "github.com/terascope/error-parser"
)

// Field names added to entries.
const (
	FieldName       = "error_name"
	FieldStatusCode = "status_code"
	FieldUserError  = "user_error"
	FieldInfo       = "error_info"
	FieldCauses     = "causes"
	FieldStack      = "stack"
)

// Hook is a logrus.Hook that expands ParsedErrors.
type Hook struct {
	levels []logrus.Level
}

var _ logrus.Hook = (*Hook)(nil)

// New returns a Hook firing on the given levels, or on all levels if none
// are given.
func New(levels ...logrus.Level) *Hook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{levels: levels}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook. Entries without a ParsedError are left as is.
func (h *Hook) Fire(entry *logrus.Entry) error {
	err, ok := entry.Data[logrus.ErrorKey].(error)
	if !ok {
		return nil
	}
	parsed, ok := errorparser.As(err)
	if !ok {
		return nil
	}

	userError := parsed.UserError()
	entry.Data[FieldName] = parsed.Name()
	entry.Data[FieldStatusCode] = parsed.StatusCode()
	entry.Data[FieldUserError] = userError
	if info := parsed.Info(); len(info) > 0 {
		entry.Data[FieldInfo] = info
	}
	if causes := parsed.Causes(); len(causes) > 0 {
		entry.Data[FieldCauses] = causes
	}
	if !userError {
		entry.Data[FieldStack] = parsed.Trace()
	}
	return nil
}
