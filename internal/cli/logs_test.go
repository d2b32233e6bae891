package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogs_TailsConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "vmgrid.log")
	var content strings.Builder
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&content, "vmgrid 2026/10/19 loaded %d hosts\n", i)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte(fmt.Sprintf("log_file = %q\n", logPath)), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out bytes.Buffer
	cmd := NewRootCmd(context.Background())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"logs", "-n", "2", "--config", cfgPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("logs error: %v", err)
	}

	want := "vmgrid 2026/10/19 loaded 4 hosts\nvmgrid 2026/10/19 loaded 5 hosts\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestLogs_RequiresLogFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("demo_rows = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := NewRootCmd(context.Background())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"logs", "--config", cfgPath})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "no log_file") {
		t.Fatalf("error = %v, want no log_file", err)
	}
}
