package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/postmask-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".postmask", "config.yaml")
}

// Load reads defaults, then the file at path (missing is fine), then the
// environment, then flags. flags uses dotted keys such as "output.format".
func Load(path string, flags map[string]any) (*CLIConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := Default()
	l := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithOptionalFile(),
	)
	if err := l.Load(cfg); err != nil {
		return nil, err
	}

	if len(flags) > 0 {
		if err := l.LoadMap(flags); err != nil {
			return nil, err
		}
		if err := l.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("apply flags: %w", err)
		}
	}

	return cfg, nil
}

// Save writes cfg to path as YAML, readable only by the owner.
func Save(cfg *CLIConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
