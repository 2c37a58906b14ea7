package command

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// testKey is a 20-character token in the key alphabet.
const testKey = "MFkwEwYHKoZIzj0CAQYI"

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// testConfigPath returns a config path inside a fresh temp dir.
func testConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

// runApp runs the CLI with args and stdin, returning stdout.
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runAppContext(context.Background(), t, testConfigPath(t), stdin, &syncBuffer{}, args...)
}

func runAppContext(ctx context.Context, t *testing.T, cfgPath, stdin string, out *syncBuffer, args ...string) (string, error) {
	t.Helper()
	app := App()
	app.Reader = strings.NewReader(stdin)
	app.Writer = out
	app.ErrWriter = io.Discard

	full := append([]string{"postmask", "--config", cfgPath}, args...)
	err := app.RunContext(ctx, full)
	return out.String(), err
}
