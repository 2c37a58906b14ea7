package repl

import (
	"reflect"
	"testing"
)

func TestNewCompleter(t *testing.T) {
	c := NewCompleter(nil)
	if c == nil {
		t.Fatal("NewCompleter returned nil")
	}
	if !reflect.DeepEqual(c.commands, builtins) {
		t.Errorf("commands = %v, want builtins %v", c.commands, builtins)
	}
}

func TestNewCompleter_NoDuplicateBuiltins(t *testing.T) {
	c := NewCompleter([]string{"help", "scan"})
	count := 0
	for _, cmd := range c.commands {
		if cmd == "help" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("help appears %d times, want 1", count)
	}
}

func TestCompleter_Complete(t *testing.T) {
	c := NewCompleter([]string{
		"key", "key encode", "key decode",
		"payload", "payload encode", "payload decode",
		"scan",
	})

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"key prefix", "key", []string{"key", "key encode", "key decode"}},
		{"key e prefix", "key e", []string{"key encode"}},
		{"p prefix", "p", []string{"payload", "payload encode", "payload decode"}},
		{"h prefix", "h", []string{"help", "history"}},
		{"no match", "xyz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Complete(tt.prefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Complete(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}
