package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/postmask-go/internal/core/service"
	"github.com/yndnr/postmask-go/internal/infra/fswatch"
	"github.com/yndnr/postmask-go/internal/infra/shutdown"
)

const shutdownTimeout = 5 * time.Second

// WatchCommand returns the watch command.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Rescan post files whenever they change",
		ArgsUsage: "<path>...",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Minimum time between rescans (overrides watch.interval)",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus metrics to `FILE` on exit (overrides watch.metrics_file)",
			},
		},
		Action: watchPaths,
	}
}

// watchSession scans changed files and prints reports one at a time.
type watchSession struct {
	rt      *runtime
	tracker *service.Tracker
	mu      sync.Mutex
}

func (s *watchSession) scanFile(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.rt.log.Warn("read failed", "file", path, "error", err)
		return
	}
	if !s.tracker.Changed(path, data) {
		return
	}

	report, err := s.rt.svc.Scan(ctx, path, string(data))
	if err != nil {
		s.rt.log.Warn("scan failed", "file", path, "error", err)
		return
	}
	if !report.Found() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rt.print(reportList{report}); err != nil {
		s.rt.log.Error("print failed", "error", err)
	}
}

// initialFiles lists the files to scan before any change arrives.
func initialFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	return files, nil
}

func watchPaths(c *cli.Context) error {
	rt, err := getRuntime(c)
	if err != nil {
		return err
	}
	if c.NArg() == 0 {
		return cli.Exit("watch needs at least one path", 2)
	}

	interval := rt.cfg.Watch.Interval
	if c.IsSet("interval") {
		interval = c.Duration("interval")
	}
	metricsFile := rt.cfg.Watch.MetricsFile
	if c.IsSet("metrics-file") {
		metricsFile = c.String("metrics-file")
	}

	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	w, err := fswatch.New(
		fswatch.WithLogger(rt.log.Slog()),
		fswatch.WithRate(limit, max(rt.cfg.Watch.Burst, 1)),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	session := &watchSession{rt: rt, tracker: service.NewTracker()}
	for _, path := range c.Args().Slice() {
		if err := w.Watch(path); err != nil {
			_ = w.Stop()
			return fmt.Errorf("watch %s: %w", path, err)
		}
		files, err := initialFiles(path)
		if err != nil {
			_ = w.Stop()
			return fmt.Errorf("watch %s: %w", path, err)
		}
		for _, f := range files {
			session.scanFile(ctx, f)
		}
	}

	w.OnChange(func(path string) {
		session.scanFile(ctx, path)
	})

	h := shutdown.NewHandler(shutdownTimeout)
	if metricsFile != "" {
		h.OnShutdown(func(context.Context) error {
			if err := rt.svc.Metrics().WriteTextfile(metricsFile); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
			rt.log.Info("metrics written", "file", metricsFile)
			return nil
		})
	}
	h.OnShutdown(func(context.Context) error {
		err := w.Stop()
		if errors.Is(err, fs.ErrClosed) {
			return nil
		}
		return err
	})

	go w.Start(ctx)
	rt.log.Info("watching", "paths", c.Args().Slice(), "interval", interval)

	return h.Wait(ctx)
}
