package command

import (
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/postmask-go/internal/core/domain"
)

// fileFlag lets decode and scan commands read posts from files.
func fileFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Read post text from `FILE` (repeatable)",
	}
}

// post is one piece of text to decode, with where it came from.
type post struct {
	source string
	text   string
}

// readPosts collects posts from --file, then positional arguments (joined
// as one post), then stdin when neither is given.
func readPosts(c *cli.Context, rt *runtime) ([]post, error) {
	var posts []post

	for _, path := range c.StringSlice("file") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, domain.ErrReadSource.WithDetails(path).WithCause(err)
		}
		posts = append(posts, post{source: path, text: string(data)})
	}

	if c.Args().Present() {
		posts = append(posts, post{source: "args", text: strings.Join(c.Args().Slice(), " ")})
	}

	if len(posts) == 0 {
		text, err := readLimited(rt.in, rt.cfg.Scan.MaxInputBytes)
		if err != nil {
			return nil, domain.ErrReadSource.WithDetails("stdin").WithCause(err)
		}
		posts = append(posts, post{source: "stdin", text: text})
	}

	return posts, nil
}

// readLimited reads at most limit+1 bytes so oversized input is still
// detected by the size check without reading it all.
func readLimited(r io.Reader, limit int) (string, error) {
	if r == nil {
		return "", nil
	}
	if limit > 0 {
		r = io.LimitReader(r, int64(limit)+1)
	}
	data, err := io.ReadAll(r)
	return string(data), err
}

// singleArg returns the only positional argument.
func singleArg(c *cli.Context, name string) (string, error) {
	if c.NArg() != 1 {
		return "", domain.ErrEmptyInput.WithDetails("expected one " + name + " argument")
	}
	return c.Args().First(), nil
}
