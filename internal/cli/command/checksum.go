package command

import (
	"github.com/urfave/cli/v2"
)

// ChecksumCommand returns the checksum command.
func ChecksumCommand() *cli.Command {
	return &cli.Command{
		Name:  "checksum",
		Usage: "Frame and verify tokens with a check digit",
		Subcommands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Append the check digit to a token",
				ArgsUsage: "<token>",
				Action:    checksumEncode,
			},
			{
				Name:      "decode",
				Usage:     "Verify and strip the check digit",
				ArgsUsage: "<framed-token>",
				Action:    checksumDecode,
			},
		},
	}
}

func checksumEncode(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	token, err := singleArg(c, "token")
	if err != nil {
		return err
	}

	framed, err := rt.svc.EncodeChecksum(c.Context, token)
	if err != nil {
		return err
	}
	return rt.print(codecResult{Op: "checksum encode", Input: token, Output: framed, OK: true})
}

func checksumDecode(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	framed, err := singleArg(c, "framed token")
	if err != nil {
		return err
	}

	token, ok := rt.svc.DecodeChecksum(c.Context, framed)
	if !ok {
		return cli.Exit("checksum mismatch", ExitNotFound)
	}
	return rt.print(codecResult{Op: "checksum decode", Input: framed, Output: token, OK: true})
}
