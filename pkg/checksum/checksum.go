package checksum

import (
	"strconv"
	"strings"
)

// Modulus is the check digit modulus. The digit is rendered in this base.
const Modulus = 19

// Weights is the per-position weight cycle.
var Weights = [3]int{7, 3, 1}

// Encode returns token followed by its check digit.
func Encode(token string) string {
	return token + string(Digit(token))
}

// Digit computes the check digit for token.
//
// Characters outside the token alphabet count as zero.
func Digit(token string) byte {
	sum := 0
	for i := 0; i < len(token); i++ {
		sum += value(token[i]) * Weights[i%len(Weights)]
	}
	d := strconv.FormatInt(int64(sum%Modulus), Modulus)
	return strings.ToUpper(d)[0]
}

// Decode splits framed into content and check digit and verifies the digit.
//
// It returns the content and true on a match. Empty input never matches.
func Decode(framed string) (string, bool) {
	if framed == "" {
		return "", false
	}
	content, claimed := framed[:len(framed)-1], framed[len(framed)-1]
	if Digit(content) != claimed {
		return "", false
	}
	return content, true
}

// Valid reports whether every character of token is in the token alphabet.
func Valid(token string) bool {
	for i := 0; i < len(token); i++ {
		if !InAlphabet(token[i]) {
			return false
		}
	}
	return true
}

// InAlphabet reports whether c belongs to [0-9A-Za-z+=/].
func InAlphabet(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return true
	case c == '+', c == '=', c == '/':
		return true
	}
	return false
}

// value maps a character to its base-36 value after case folding.
// '+', '=' and '/' are treated as '0'.
func value(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	}
	return 0
}
