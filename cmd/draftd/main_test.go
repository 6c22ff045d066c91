package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T, path, base string) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q
api_bind = "127.0.0.1:0"
`, filepath.Join(base, "data"), filepath.Join(base, "logs"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "draftd ") {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestConfigPathCommand(t *testing.T) {
	out, err := runCommand(t, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(out, "config.toml") {
		t.Fatalf("unexpected config path output: %q", out)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "draftd.toml")
	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected output to mention %q, got %q", target, out)
	}

	// A second init without --overwrite refuses to clobber.
	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
}

func TestCatalogsRejectsUnknownCatalog(t *testing.T) {
	base := t.TempDir()
	configPath := filepath.Join(base, "draftd.toml")
	writeTestConfig(t, configPath, base)

	_, err := runCommand(t, "--config", configPath, "catalogs", "bogus")
	if err == nil || !strings.Contains(err.Error(), "unknown catalog") {
		t.Fatalf("expected unknown catalog error, got %v", err)
	}
}

func TestCatalogsListsEntries(t *testing.T) {
	base := t.TempDir()
	configPath := filepath.Join(base, "draftd.toml")
	writeTestConfig(t, configPath, base)

	out, err := runCommand(t, "--config", configPath, "catalogs", "transition", "--json")
	if err != nil {
		t.Fatalf("catalogs failed: %v", err)
	}
	if !strings.Contains(out, "dissolve") {
		t.Fatalf("expected transition entries in output, got %q", out)
	}
}
