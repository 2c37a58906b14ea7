package config

import (
	"time"

	"github.com/yndnr/postmask-go/internal/core/service"
	"github.com/yndnr/postmask-go/internal/telemetry/logger"
)

// CLIConfig is the configuration for postmask.
type CLIConfig struct {
	Log    logger.Config `koanf:"log" json:"log" yaml:"log"`
	Output OutputConfig  `koanf:"output" json:"output" yaml:"output"`
	Scan   ScanConfig    `koanf:"scan" json:"scan" yaml:"scan"`
	Watch  WatchConfig   `koanf:"watch" json:"watch" yaml:"watch"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `koanf:"format" json:"format" yaml:"format"` // table, json, yaml
	Wide   bool   `koanf:"wide" json:"wide" yaml:"wide"`
}

// ScanConfig bounds scanning.
type ScanConfig struct {
	MaxInputBytes int `koanf:"max_input_bytes" json:"max_input_bytes" yaml:"max_input_bytes"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	// Interval is the minimum time between rescans.
	Interval time.Duration `koanf:"interval" json:"interval" yaml:"interval"`
	// Burst is how many rescans may run back to back.
	Burst int `koanf:"burst" json:"burst" yaml:"burst"`
	// MetricsFile receives Prometheus metrics on exit, if set.
	MetricsFile string `koanf:"metrics_file" json:"metrics_file" yaml:"metrics_file"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Log: logger.Config{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "table",
		},
		Scan: ScanConfig{
			MaxInputBytes: service.DefaultMaxInputBytes,
		},
		Watch: WatchConfig{
			Interval: 200 * time.Millisecond,
			Burst:    5,
		},
	}
}
