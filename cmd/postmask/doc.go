// Package main provides the entry point for postmask.
//
// postmask embeds public keys and encrypted payload links in social network
// posts and recovers them from post text:
//
//   - checksum framing of tokens
//   - public key encode and decode
//   - payload link encode and decode
//   - scanning posts, once or as files change
//
// Usage:
//
//	postmask [command] [flags]
//	postmask key encode MFkwEwYHKoZIzj0CAQYI
//	postmask scan -f post.txt -o json
//	postmask watch ./posts --metrics-file /var/lib/node_exporter/postmask.prom
package main
