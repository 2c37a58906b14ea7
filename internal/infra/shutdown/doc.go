// Package shutdown runs cleanup hooks when a long-running command stops.
//
// A Handler waits for SIGINT, SIGTERM or cancellation of its context, then
// runs the registered hooks in reverse order under a timeout. The watch
// command uses it to stop file watching and flush metrics.
package shutdown
