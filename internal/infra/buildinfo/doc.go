// Package buildinfo provides build information for postmask.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/postmask-go/internal/infra/buildinfo.Version=v0.3.0"
//
// When a value is not injected, it is filled from the module build
// information embedded by the Go toolchain where possible.
package buildinfo
