package logger

import "context"

type contextKey string

const (
	loggerKey contextKey = "postmask.logger"
	scanIDKey contextKey = "postmask.scan_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithScanID adds a scan ID to the context.
func WithScanID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, scanIDKey, id)
}

// ScanIDFromContext extracts the scan ID from context.
func ScanIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(scanIDKey).(string); ok {
		return id
	}
	return ""
}

// L returns the context logger enriched with the scan ID, if any.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	if id := ScanIDFromContext(ctx); id != "" {
		l = l.With("scan_id", id)
	}
	return l.WithContext(ctx)
}
