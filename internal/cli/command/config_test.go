package command

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/yndnr/postmask-go/internal/cli/config"
)

func TestConfigCommand(t *testing.T) {
	cmd := ConfigCommand()
	if cmd.Name != "config" {
		t.Errorf("Name = %q, want %q", cmd.Name, "config")
	}

	subNames := make(map[string]bool)
	for _, sub := range cmd.Subcommands {
		subNames[sub.Name] = true
	}
	for _, name := range []string{"show", "path", "init"} {
		if !subNames[name] {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestConfigPath(t *testing.T) {
	cfgPath := testConfigPath(t)
	out, err := runAppContext(context.Background(), t, cfgPath, "", &syncBuffer{}, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if strings.TrimSpace(out) != cfgPath {
		t.Errorf("output = %q, want %q", out, cfgPath)
	}
}

func TestConfigInit(t *testing.T) {
	cfgPath := testConfigPath(t)
	run := func(args ...string) error {
		_, err := runAppContext(context.Background(), t, cfgPath, "", &syncBuffer{}, args...)
		return err
	}

	if err := run("config", "init"); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if code := exitCode(run("config", "init")); code != 2 {
		t.Errorf("second init exit code = %d, want 2", code)
	}

	if err := run("config", "init", "--force"); err != nil {
		t.Errorf("config init --force failed: %v", err)
	}

	cfg, err := config.Load(cfgPath, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "table" || cfg.Watch.Burst != 5 {
		t.Errorf("written config = %+v", cfg)
	}
}

func TestConfigShow(t *testing.T) {
	cfgPath := testConfigPath(t)
	if err := os.WriteFile(cfgPath, []byte("output:\n  wide: true\n"), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := runAppContext(context.Background(), t, cfgPath, "", &syncBuffer{}, "-o", "json", "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	var cfg config.CLIConfig
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json (flag)", cfg.Output.Format)
	}
	if !cfg.Output.Wide {
		t.Error("Output.Wide should come from the file")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want default warn", cfg.Log.Level)
	}
}

func TestConfigShow_TableFallsBackToYAML(t *testing.T) {
	out, err := runApp(t, "", "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "max_input_bytes:") {
		t.Errorf("expected YAML output:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "postmask ") {
		t.Errorf("output = %q, want postmask prefix", out)
	}

	out, err = runApp(t, "", "-o", "json", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if info["version"] == "" || info["go_version"] == "" {
		t.Errorf("info = %v", info)
	}
}
