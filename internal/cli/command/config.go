package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/postmask-go/internal/cli/config"
	"github.com/yndnr/postmask-go/internal/cli/output"
)

// ConfigCommand returns the config command.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect and initialize the configuration file",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "path",
				Usage:  "Print the configuration file path",
				Action: configPath,
			},
			{
				Name:  "init",
				Usage: "Write the default configuration file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: configInit,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	// Tables cannot show nested config; fall back to YAML.
	if rt.cfg.Output.Format == "table" {
		return output.NewFormatter(output.FormatYAML, false).Format(rt.out, rt.cfg)
	}
	return rt.print(rt.cfg)
}

func configPath(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rt.out, rt.cfgPath)
	return err
}

func configInit(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}

	if !c.Bool("force") {
		_, err := os.Stat(rt.cfgPath)
		if err == nil {
			return cli.Exit(fmt.Sprintf("%s already exists (use --force to overwrite)", rt.cfgPath), 2)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if err := config.Save(config.Default(), rt.cfgPath); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	rt.log.Info("config written", "path", rt.cfgPath)
	_, err = fmt.Fprintf(rt.out, "Configuration written to %s\n", rt.cfgPath)
	return err
}
