package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/postmask-go/internal/cli/repl"
)

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Run commands interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "history",
				Usage: "History file (empty keeps history in memory)",
				Value: repl.DefaultHistoryFile(),
			},
		},
		Action: runShell,
	}
}

// commandPaths lists "name" and "name sub" for every command except shell.
func commandPaths(cmds []*cli.Command) []string {
	var paths []string
	for _, cmd := range cmds {
		if cmd.Name == "shell" {
			continue
		}
		paths = append(paths, cmd.Name)
		for _, sub := range cmd.Subcommands {
			paths = append(paths, cmd.Name+" "+sub.Name)
		}
	}
	return paths
}

func runShell(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	// Global flags given to the shell apply to every line.
	var global []string
	for name, value := range flagOverrides(c) {
		global = append(global, fmt.Sprintf("--%s=%v", shellFlag(name), value))
	}

	exec := func(ctx context.Context, args []string) error {
		if len(args) > 0 && args[0] == "shell" {
			return errors.New("already in shell")
		}

		app := App()
		app.Writer = rt.out
		app.ErrWriter = c.App.ErrWriter
		app.Reader = strings.NewReader("")

		full := append([]string{c.App.Name, "--config", rt.cfgPath}, global...)
		err := app.RunContext(ctx, append(full, args...))

		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) && exitErr.ExitCode() == ExitNotFound {
			_, werr := fmt.Fprintln(rt.out, exitErr.Error())
			return werr
		}
		return err
	}

	r := repl.New(exec,
		repl.WithIO(rt.in, rt.out),
		repl.WithCompleter(repl.NewCompleter(commandPaths(c.App.Commands))),
		repl.WithHistory(repl.NewHistory(c.String("history"))),
	)
	return r.Run(c.Context)
}

// shellFlag maps a config key from flagOverrides back to its flag name.
func shellFlag(key string) string {
	switch key {
	case "output.format":
		return "output"
	case "output.wide":
		return "wide"
	default:
		return "log-level"
	}
}
