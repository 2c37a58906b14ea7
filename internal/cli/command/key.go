package command

import (
	"github.com/urfave/cli/v2"
)

// KeyCommand returns the key command.
func KeyCommand() *cli.Command {
	return &cli.Command{
		Name:  "key",
		Usage: "Embed and recover public keys",
		Subcommands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Wrap a public key for posting",
				ArgsUsage: "<public-key>",
				Action:    keyEncode,
			},
			{
				Name:      "decode",
				Usage:     "Find the first valid public key in post text",
				ArgsUsage: "[text...]",
				Flags:     []cli.Flag{fileFlag()},
				Action:    keyDecode,
			},
		},
	}
}

func keyEncode(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	key, err := singleArg(c, "public key")
	if err != nil {
		return err
	}

	encoded, err := rt.svc.EncodeKey(c.Context, key)
	if err != nil {
		return err
	}
	return rt.print(codecResult{Op: "key encode", Input: key, Output: encoded, OK: true})
}

func keyDecode(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	posts, err := readPosts(c, rt)
	if err != nil {
		return err
	}

	found := false
	for _, p := range posts {
		key, ok, err := rt.svc.DecodeKey(c.Context, p.text)
		if err != nil {
			return err
		}
		if !ok {
			rt.log.Debug("no public key", "source", p.source)
			continue
		}
		found = true
		if err := rt.print(codecResult{Op: "key decode", Input: p.source, Output: key, OK: true}); err != nil {
			return err
		}
	}
	if !found {
		return notFound("public key")
	}
	return nil
}
