// Package fswatch watches post exports on disk and reports changed files.
//
// Watching a file watches its directory, so editors that save by rename are
// still seen. Watching a directory reports every file written in it.
// Notifications are throttled with a token bucket so a burst of writes does
// not trigger a burst of rescans.
package fswatch
