// Package checksum frames short tokens with a single trailing check digit.
//
// The check digit follows the ICAO 9303 weighting scheme adapted to the
// base64 alphabet used for public keys:
//
//   - Uppercase the token and map '+', '=' and '/' to '0'
//   - Read each character as a base-36 digit
//   - Multiply position i by the weight 7, 3, 1 (cycling on i mod 3)
//   - Sum, reduce modulo 19 and render as one uppercase base-19 digit
//
// Framed Format:
//
//   - Body: token characters from [0-9A-Za-z+=/]
//   - Tail: one character from [0-9A-I]
//
// A framed token validates itself, so it can be picked out of noisy post
// text without any other context.
package checksum
