package errorparser

import "log/slog"

// LogValue implements slog.LogValuer. The error is logged as a group holding
// its name, message, status code, user-facing flag, merged info and causes.
// The trace is only included for internal errors.
func (e *ParsedError) LogValue() slog.Value {
	userError := e.UserError()
	attrs := []slog.Attr{
		slog.String("name", e.name),
		slog.String("message", e.message),
		slog.Int("statusCode", e.StatusCode()),
		slog.Bool("userError", userError),
	}
	if info := e.Info(); len(info) > 0 {
		attrs = append(attrs, slog.Any("info", info))
	}
	if causes := e.Causes(); len(causes) > 0 {
		attrs = append(attrs, slog.Any("causes", causes))
	}
	if !userError {
		attrs = append(attrs, slog.String("stack", e.Trace()))
	}
	return slog.GroupValue(attrs...)
}
