package logger

import (
	"log/slog"
	"strings"

	"github.com/yndnr/postmask-go/pkg/postcodec"
)

// Value prefixes that mark recovered or encoded material.
var sensitiveValuePrefixes = []string{
	postcodec.LinkPrefix,
	postcodec.PayloadPrefix,
	postcodec.KeyMarker,
}

// Key fragments whose values are always redacted.
var sensitiveKeyPatterns = []string{
	"payload",
	"public_key",
	"token",
	"secret",
}

const redactedValue = "***REDACTED***"

// redactSensitive masks an attribute that carries key or payload material.
// Prefix masking takes priority over key-based redaction.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		v := a.Value.String()
		if prefix, ok := sensitivePrefix(v); ok {
			return slog.String(a.Key, maskValue(v, prefix))
		}
		if v != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}

	return a
}

// maskValue keeps the prefix plus three runes from each end of the body.
func maskValue(value, prefix string) string {
	body := []rune(value[len(prefix):])
	if len(body) <= 6 {
		return prefix + "***"
	}
	return prefix + string(body[:3]) + "..." + string(body[len(body)-3:])
}

func sensitivePrefix(value string) (string, bool) {
	for _, prefix := range sensitiveValuePrefixes {
		if strings.HasPrefix(value, prefix) {
			return prefix, true
		}
	}
	return "", false
}

// RedactString masks value if it looks like key or payload material.
func RedactString(value string) string {
	if prefix, ok := sensitivePrefix(value); ok {
		return maskValue(value, prefix)
	}
	return value
}

// IsSensitiveKey reports whether a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// IsSensitiveValue reports whether a value looks like key or payload material.
func IsSensitiveValue(value string) bool {
	_, ok := sensitivePrefix(value)
	return ok
}
