package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "postmask> "

// Executor runs one command line, already split into arguments.
type Executor func(ctx context.Context, args []string) error

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	prompt    string
	exec      Executor
	completer *Completer
	history   *History
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithCompleter sets the completer used by "help".
func WithCompleter(c *Completer) Option {
	return func(r *REPL) {
		r.completer = c
	}
}

// WithHistory sets the history store.
func WithHistory(h *History) Option {
	return func(r *REPL) {
		r.history = h
	}
}

// New creates a new REPL that runs lines through exec.
func New(exec Executor, opts ...Option) *REPL {
	r := &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		prompt:    DefaultPrompt,
		exec:      exec,
		completer: NewCompleter(nil),
		history:   NewHistory(""),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads and executes lines until exit, quit, EOF or ctx is done.
// Command errors are printed and do not stop the loop.
func (r *REPL) Run(ctx context.Context) error {
	if err := r.history.Load(); err != nil {
		fmt.Fprintf(r.output, "warning: history not loaded: %v\n", err)
	}
	defer r.history.Save()

	reader := bufio.NewReader(r.input)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(r.output, r.prompt)

		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.history.Add(line)

		switch line {
		case "exit", "quit":
			return nil
		case "help":
			r.help()
			continue
		case "history":
			for i := r.history.Len() - 1; i >= 0; i-- {
				fmt.Fprintln(r.output, r.history.Get(i))
			}
			continue
		}

		if err := r.execute(ctx, line); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
}

func (r *REPL) help() {
	fmt.Fprintln(r.output, "Commands:")
	for _, cmd := range r.completer.Complete("") {
		fmt.Fprintf(r.output, "  %s\n", cmd)
	}
}

func (r *REPL) execute(ctx context.Context, line string) error {
	args, err := SplitArgs(line)
	if err != nil {
		return err
	}
	if r.exec == nil {
		return errors.New("no executor")
	}
	return r.exec(ctx, args)
}

// SplitArgs splits a line on whitespace. Single and double quotes group
// words; a backslash escapes the next character outside single quotes.
func SplitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inArg   bool
		quote   rune
		escaped bool
	)

	for _, c := range line {
		switch {
		case escaped:
			cur.WriteRune(c)
			escaped = false
		case c == '\\' && quote != '\'':
			escaped = true
			inArg = true
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteRune(c)
			}
		case c == '"' || c == '\'':
			quote = c
			inArg = true
		case c == ' ' || c == '\t':
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(c)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if escaped {
		return nil, errors.New("trailing backslash")
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args, nil
}
