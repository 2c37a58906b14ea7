// Package repl provides interactive mode for postmask.
//
//   - repl.go: main loop, line splitting and dispatch
//   - completer.go: prefix completion over command paths
//   - history.go: command history persistence
//
// Each line is split into arguments and handed to an Executor, so the
// package does not depend on the command tree it drives.
package repl
