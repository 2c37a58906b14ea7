package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should not be empty")
	}
	if info.Commit == "" {
		t.Error("Commit should not be empty")
	}
	if info.BuildTime == "" {
		t.Error("BuildTime should not be empty")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
}

func TestGet_Injected(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	if got := Get().Version; got != "v9.9.9" {
		t.Errorf("Version = %q, want v9.9.9", got)
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.Contains(s, Get().Version) {
		t.Errorf("String() = %q, missing version", s)
	}
	if !strings.Contains(s, "commit:") {
		t.Errorf("String() = %q, missing commit", s)
	}
}
