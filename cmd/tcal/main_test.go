package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/five82/tcal/internal/config"
)

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Fatalf("version output = %q, want it to contain %q", out.String(), version)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"march"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute returned nil error for positional args")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "prefs", "idle", "log-file", "date"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("flag --%s not defined", name)
		}
	}
	if usage := cmd.Flags().Lookup("config").Usage; !strings.Contains(usage, config.DefaultPath()) {
		t.Fatalf("--config usage = %q, want default path", usage)
	}
}
