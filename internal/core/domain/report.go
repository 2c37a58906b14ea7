package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ScanIDPrefix prefixes every scan ID.
const ScanIDPrefix = "pmsc-"

// Report is the outcome of scanning one post.
type Report struct {
	// ID identifies the scan in logs.
	ID string `json:"id" yaml:"id"`
	// Source names where the post text came from (file path or "stdin").
	Source string `json:"source" yaml:"source"`
	// Size is the post length in bytes.
	Size int `json:"size" yaml:"size"`
	// PublicKey is the recovered public key, if any.
	PublicKey string `json:"public_key,omitempty" yaml:"public_key,omitempty"`
	// Payload is the recovered payload, if any.
	Payload string `json:"payload,omitempty" yaml:"payload,omitempty"`
	// ScannedAt is when the scan ran.
	ScannedAt time.Time `json:"scanned_at" yaml:"scanned_at"`
}

// Found reports whether anything was recovered.
func (r *Report) Found() bool {
	return r.PublicKey != "" || r.Payload != ""
}

// GenerateScanID generates a new scan ID.
// Format: pmsc-{ulid_lowercase}, 31 characters total.
func GenerateScanID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return ScanIDPrefix + strings.ToLower(id.String()), nil
}
