package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/postmask-go/internal/infra/buildinfo"
)

// versionInfo prints as a single line in table mode.
type versionInfo struct {
	buildinfo.Info `yaml:",inline"`
}

func (v versionInfo) String() string {
	return "postmask " + buildinfo.String()
}

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(c *cli.Context) error {
			rt, err := getRuntime(c)
			if err != nil {
				return err
			}
			return rt.print(versionInfo{buildinfo.Get()})
		},
	}
}
