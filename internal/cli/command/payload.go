package command

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/postmask-go/pkg/postcodec"
)

// PayloadCommand returns the payload command.
func PayloadCommand() *cli.Command {
	return &cli.Command{
		Name:  "payload",
		Usage: "Embed and recover encrypted payload links",
		Subcommands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Turn a framed payload into a postable link",
				ArgsUsage: "<payload>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "frame",
						Usage: "Add the payload frame markers if missing",
					},
				},
				Action: payloadEncode,
			},
			{
				Name:      "decode",
				Usage:     "Recover the payload from the first payload link in post text",
				ArgsUsage: "[text...]",
				Flags:     []cli.Flag{fileFlag()},
				Action:    payloadDecode,
			},
		},
	}
}

// frame wraps payload in the payload prefix and suffix unless present.
func frame(payload string) string {
	if !strings.HasPrefix(payload, postcodec.PayloadPrefix) {
		payload = postcodec.PayloadPrefix + payload
	}
	if !strings.HasSuffix(payload, postcodec.PayloadSuffix) {
		payload += postcodec.PayloadSuffix
	}
	return payload
}

func payloadEncode(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	payload, err := singleArg(c, "payload")
	if err != nil {
		return err
	}
	if c.Bool("frame") {
		payload = frame(payload)
	}

	link, err := rt.svc.EncodePayload(c.Context, payload)
	if err != nil {
		return err
	}
	return rt.print(codecResult{Op: "payload encode", Input: payload, Output: link, OK: true})
}

func payloadDecode(c *cli.Context) error {
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
		payload, ok, err := rt.svc.DecodePayload(c.Context, p.text)
		if err != nil {
			return err
		}
		if !ok {
			rt.log.Debug("no payload", "source", p.source)
			continue
		}
		found = true
		if err := rt.print(codecResult{Op: "payload decode", Input: p.source, Output: payload, OK: true}); err != nil {
			return err
		}
	}
	if !found {
		return notFound("payload")
	}
	return nil
}
