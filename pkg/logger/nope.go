package logger

import "log/slog"

// NewNope returns a logger that discards everything. It is the app default.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
