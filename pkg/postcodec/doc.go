// Package postcodec embeds public keys and encrypted payloads in plain-text
// social network posts and recovers them from post text.
//
// Public Key Format:
//
//   - Marker: 🎭 on both sides
//   - Body: base64 key material framed by package checksum
//   - Recovery: the first 20-60 character alphabet run that passes the
//     checksum, scanning left to right
//
// Payload Link Format:
//
//   - Prefix: https://maskbook.com/?PostData_v1=
//   - Body: the payload with 🎼 as %20, :|| as %40, + as -, = as _, | as .
//   - Recovery: the first link in the post whose text ends with %40
//
// Every function here is pure. Failure to recover anything is reported as
// an empty result and never as an error, since callers can only act on
// whether a payload is present.
package postcodec
