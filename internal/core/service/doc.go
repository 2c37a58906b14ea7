// Package service wraps the pure codec for the command-line front end.
//
// The codec in pkg/postcodec is pure and silent. Services add what a
// running tool needs around it:
//
//   - CodecService: input validation, size limits, scan IDs, logging and
//     metrics around every encode, decode and scan
//   - Tracker: content fingerprints so watch mode reports each distinct
//     post once
//
// Services are safe for concurrent use.
package service
