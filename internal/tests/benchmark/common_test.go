package benchmark

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/yndnr/postmask-go/pkg/postcodec"
)

// PostSizes are the approximate post sizes, in bytes, to benchmark.
var PostSizes = []int{280, 4 << 10, 64 << 10, 1 << 20}

// SmallPostSizes for quick benchmarks.
var SmallPostSizes = []int{280, 4 << 10}

const (
	benchKey     = "MFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAE"
	benchPayload = "🎼4/4|AVOZp1K2yQ+qT0d3|mX9s/4eXj0w=|Ql7yH1c=:||"
)

// noiseWords look like key candidates but fail the checksum.
var noiseWords = []string{
	"hello", "world", "https://example.com/a/b", "#postmask",
	"AAAAAAAAAAAAAAAAAAAAAAAA", "ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ",
	"lorem", "ipsum", "dolor", "sit", "amet",
}

// noise returns roughly size bytes of post-like filler.
func noise(r *rand.Rand, size int) string {
	var b strings.Builder
	for b.Len() < size {
		b.WriteString(noiseWords[r.IntN(len(noiseWords))])
		b.WriteByte(' ')
	}
	return b.String()
}

// buildPost returns a post of about size bytes with the key and payload
// link placed at the end, so decoders walk all the filler first.
func buildPost(size int) string {
	r := rand.New(rand.NewPCG(uint64(size), 0))
	return noise(r, size) +
		postcodec.EncodePublicKey(benchKey) + " " +
		postcodec.EncodePayload(benchPayload)
}

// sizeName renders a size for sub-benchmark names.
func sizeName(size int) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%dMiB", size>>20)
	case size >= 1<<10:
		return fmt.Sprintf("%dKiB", size>>10)
	default:
		return fmt.Sprintf("%dB", size)
	}
}
