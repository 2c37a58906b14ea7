package repl

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// recorder is an Executor that remembers what it ran.
type recorder struct {
	calls [][]string
	err   error
}

func (r *recorder) exec(_ context.Context, args []string) error {
	r.calls = append(r.calls, args)
	return r.err
}

func newTestREPL(input string, rec *recorder) (*REPL, *bytes.Buffer) {
	output := &bytes.Buffer{}
	r := New(rec.exec,
		WithIO(strings.NewReader(input), output),
		WithCompleter(NewCompleter([]string{"key", "key encode", "key decode"})),
		WithHistory(NewHistory("")),
	)
	return r, output
}

func TestNew(t *testing.T) {
	r := New(nil)
	if r == nil {
		t.Fatal("New returned nil")
	}
	if r.completer == nil {
		t.Error("completer should be initialized")
	}
	if r.history == nil {
		t.Error("history should be initialized")
	}
	if r.prompt != DefaultPrompt {
		t.Errorf("prompt = %q, want %q", r.prompt, DefaultPrompt)
	}
}

func TestREPL_Run_Exit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"exit command", "exit\n"},
		{"quit command", "quit\n"},
		{"EOF", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			r, _ := newTestREPL(tt.input, rec)

			if err := r.Run(context.Background()); err != nil {
				t.Errorf("Run() returned error: %v", err)
			}
			if len(rec.calls) != 0 {
				t.Errorf("executor called %d times, want 0", len(rec.calls))
			}
		})
	}
}

func TestREPL_Run_EmptyLines(t *testing.T) {
	rec := &recorder{}
	r, output := newTestREPL("\n\n\nexit\n", rec)

	if err := r.Run(context.Background()); err != nil {
		t.Errorf("Run() returned error: %v", err)
	}

	prompts := strings.Count(output.String(), "postmask>")
	if prompts < 4 {
		t.Errorf("expected at least 4 prompts, got %d", prompts)
	}
}

func TestREPL_Run_Command(t *testing.T) {
	rec := &recorder{}
	r, _ := newTestREPL("key encode 'ABC DEF'\n  checksum   encode ABC  \nexit\n", rec)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	want := [][]string{
		{"key", "encode", "ABC DEF"},
		{"checksum", "encode", "ABC"},
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %q, want %q", rec.calls, want)
	}
}

func TestREPL_Run_LastLineWithoutNewline(t *testing.T) {
	rec := &recorder{}
	r, _ := newTestREPL("scan hello", rec)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(rec.calls) != 1 || rec.calls[0][0] != "scan" {
		t.Errorf("calls = %q, want one scan call", rec.calls)
	}
}

func TestREPL_Run_CommandError(t *testing.T) {
	rec := &recorder{err: errors.New("boom")}
	r, output := newTestREPL("scan\nscan\n", rec)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(rec.calls) != 2 {
		t.Errorf("executor called %d times, want 2", len(rec.calls))
	}
	if strings.Count(output.String(), "Error: boom") != 2 {
		t.Errorf("errors not printed:\n%s", output.String())
	}
}

func TestREPL_Run_Help(t *testing.T) {
	rec := &recorder{}
	r, output := newTestREPL("help\nexit\n", rec)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	for _, want := range []string{"key encode", "key decode", "history", "exit"} {
		if !strings.Contains(output.String(), want) {
			t.Errorf("help missing %q:\n%s", want, output.String())
		}
	}
	if len(rec.calls) != 0 {
		t.Error("help should not reach the executor")
	}
}

func TestREPL_Run_HistoryAdded(t *testing.T) {
	rec := &recorder{}
	history := NewHistory("")
	r := New(rec.exec,
		WithIO(strings.NewReader("command1\n  command2  \nexit\n"), &bytes.Buffer{}),
		WithHistory(history),
	)

	if err := r.Run(context.Background()); err != nil {
		t.Errorf("Run() returned error: %v", err)
	}

	if history.Get(0) != "exit" {
		t.Errorf("most recent command = %q, want %q", history.Get(0), "exit")
	}
	if history.Get(1) != "command2" {
		t.Errorf("second most recent = %q, want %q", history.Get(1), "command2")
	}
	if history.Get(2) != "command1" {
		t.Errorf("third most recent = %q, want %q", history.Get(2), "command1")
	}
}

func TestREPL_Run_ContextDone(t *testing.T) {
	rec := &recorder{}
	r, _ := newTestREPL("scan\n", rec)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(rec.calls) != 0 {
		t.Error("no command should run after cancellation")
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{"plain", "key encode ABC", []string{"key", "encode", "ABC"}, false},
		{"extra spaces", "  a \t b  ", []string{"a", "b"}, false},
		{"double quotes", `scan "hello world"`, []string{"scan", "hello world"}, false},
		{"single quotes", `scan 'a "b" c'`, []string{"scan", `a "b" c`}, false},
		{"escaped space", `scan a\ b`, []string{"scan", "a b"}, false},
		{"empty quotes", `scan ""`, []string{"scan", ""}, false},
		{"emoji", "payload encode 🎼a|b:||", []string{"payload", "encode", "🎼a|b:||"}, false},
		{"unterminated", `scan "abc`, nil, true},
		{"trailing backslash", `scan abc\`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitArgs(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}
