// Package logger provides structured logging for postmask.
//
// It wraps log/slog:
//
//   - logger.go: Logger interface, handler setup and the global level
//   - context.go: Context-carried loggers and scan IDs
//   - redact.go: Masking of recovered keys and payloads
//
// Recovered material is never written in full. Values that look like a
// payload (🎼... or a payload link) are partially masked. Values under keys
// naming payloads, public keys, tokens or secrets are replaced outright.
package logger
