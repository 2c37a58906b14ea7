package postcodec

import (
	"iter"
	"regexp"

	"github.com/enescakir/emoji"

	"github.com/yndnr/postmask-go/pkg/checksum"
)

// KeyMarker surrounds an encoded public key in post text.
var KeyMarker = string(emoji.PerformingArts)

// Candidate run lengths include the check digit.
const (
	MinKeyCandidate = 20
	MaxKeyCandidate = 60
)

var keyPattern = regexp.MustCompile(`[0-9A-Za-z+=/]{20,60}`)

// EncodePublicKey frames text with a check digit and wraps it in KeyMarker.
func EncodePublicKey(text string) string {
	return KeyMarker + checksum.Encode(text) + KeyMarker
}

// DecodePublicKey returns the first checksum-valid key found in text.
//
// The result has at most one element. It is empty, not nil, when nothing
// in text decodes.
func DecodePublicKey(text string) []string {
	for candidate := range keyCandidates(text) {
		if key, ok := checksum.Decode(candidate); ok {
			return []string{key}
		}
	}
	return []string{}
}

// keyCandidates yields non-overlapping alphabet runs of candidate length,
// left to right. Matching stops as soon as the consumer stops pulling.
func keyCandidates(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for {
			loc := keyPattern.FindStringIndex(rest)
			if loc == nil {
				return
			}
			if !yield(rest[loc[0]:loc[1]]) {
				return
			}
			rest = rest[loc[1]:]
		}
	}
}
