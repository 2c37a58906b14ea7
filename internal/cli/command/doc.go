// Package command provides CLI command definitions for postmask.
//
// It uses urfave/cli/v2. Commands:
//
//   - checksum: frame and verify tokens with a check digit
//   - key: embed and recover public keys
//   - payload: embed and recover encrypted payload links
//   - scan: report keys and payloads found in posts
//   - watch: rescan post files as they change
//   - config: show, locate and initialize the configuration file
//   - version: print build information
//   - shell: run commands interactively
//
// Decode commands exit with status 1 when nothing is found, like grep.
package command
