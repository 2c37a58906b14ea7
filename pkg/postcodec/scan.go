package postcodec

// Result is what a single post yields.
type Result struct {
	// PublicKey is the first checksum-valid key, or empty.
	PublicKey string `json:"public_key,omitempty" yaml:"public_key,omitempty"`
	// Payload is the recovered payload including its framing, or empty.
	Payload string `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Found reports whether the post carried a key or a payload.
func (r Result) Found() bool {
	return r.PublicKey != "" || r.Payload != ""
}

// Scan runs both decoders over one post.
func Scan(text string) Result {
	var r Result
	if keys := DecodePublicKey(text); len(keys) > 0 {
		r.PublicKey = keys[0]
	}
	if payload, ok := DecodePayload(text); ok {
		r.Payload = payload
	}
	return r
}
