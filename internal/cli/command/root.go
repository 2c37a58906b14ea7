package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/postmask-go/internal/cli/config"
	"github.com/yndnr/postmask-go/internal/cli/output"
	"github.com/yndnr/postmask-go/internal/core/domain"
	"github.com/yndnr/postmask-go/internal/core/service"
	"github.com/yndnr/postmask-go/internal/infra/buildinfo"
	"github.com/yndnr/postmask-go/internal/telemetry/logger"
	"github.com/yndnr/postmask-go/internal/telemetry/metric"
)

// ExitNotFound is the exit status when a decode finds nothing.
const ExitNotFound = 1

const runtimeKey = "runtime"

// runtime is the state shared by all commands, built once in Before.
type runtime struct {
	cfg     *config.CLIConfig
	cfgPath string
	color   bool
	log     logger.Logger
	svc     *service.CodecService
	in      io.Reader
	out     io.Writer
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "postmask",
		Usage:   "Embed and recover keys and encrypted payloads in social network posts",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ChecksumCommand(),
			KeyCommand(),
			PayloadCommand(),
			ScanCommand(),
			WatchCommand(),
			ConfigCommand(),
			VersionCommand(),
			ShellCommand(),
		},
		Before: setup,
		// main decides the exit status; cli must not call os.Exit itself.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Configuration file",
			EnvVars: []string{"POSTMASK_CONFIG"},
			Value:   config.DefaultConfigPath(),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.BoolFlag{
			Name:  "color",
			Usage: "Color table headers",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
	}
}

// flagOverrides maps explicitly set global flags onto config keys.
func flagOverrides(c *cli.Context) map[string]any {
	flags := make(map[string]any)
	if c.IsSet("output") {
		flags["output.format"] = c.String("output")
	}
	if c.IsSet("wide") {
		flags["output.wide"] = c.Bool("wide")
	}
	if c.IsSet("log-level") {
		flags["log.level"] = c.String("log-level")
	}
	if c.Bool("verbose") {
		flags["log.level"] = "debug"
	}
	return flags
}

func setup(c *cli.Context) error {
	path := c.String("config")
	cfg, err := config.Load(path, flagOverrides(c))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !output.Valid(cfg.Output.Format) {
		return fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}

	cfg.Log.Output = c.App.ErrWriter
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	c.App.Metadata[runtimeKey] = &runtime{
		cfg:     cfg,
		cfgPath: path,
		color:   c.Bool("color"),
		log:     log,
		svc: service.NewCodecService(metric.NewRegistry(), &service.CodecServiceConfig{
			MaxInputBytes: cfg.Scan.MaxInputBytes,
		}),
		in:  c.App.Reader,
		out: c.App.Writer,
	}
	return nil
}

func getRuntime(c *cli.Context) (*runtime, error) {
	rt, ok := c.App.Metadata[runtimeKey].(*runtime)
	if !ok {
		return nil, errors.New("command runtime not initialized")
	}
	return rt, nil
}

// print writes data in the configured format.
func (rt *runtime) print(data any) error {
	f := output.NewFormatter(output.Format(rt.cfg.Output.Format), rt.cfg.Output.Wide)
	if tf, ok := f.(*output.TableFormatter); ok {
		tf.Color = rt.color
	}
	if err := f.Format(rt.out, data); err != nil {
		return domain.ErrWriteOutput.WithCause(err)
	}
	return nil
}

// notFound reports a decode miss as exit status 1.
func notFound(what string) error {
	return cli.Exit("no "+what+" found", ExitNotFound)
}
