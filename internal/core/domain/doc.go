// Package domain defines the core domain models for postmask.
//
// Domain models are plain values without IO dependencies:
//
//   - Report: the outcome of scanning one post
//   - Errors: coded errors raised by the layers around the codec
//
// The codec in pkg/postcodec never fails loudly. Errors here cover input
// handling only: oversized posts, unreadable sources, invalid tokens.
package domain
