package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"conwaylife/pkg/life"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunTextRenderer(t *testing.T) {
	stdout, stderr, err := execute(t, "4", "3", "--tps", "0")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr)
	}
	if got := strings.Count(stdout, "---------------\n"); got != 3 {
		t.Fatalf("expected 3 frames, got %d:\n%s", got, stdout)
	}
	if got := strings.Count(stdout, "\n"); got != 3*(4+1) {
		t.Fatalf("expected 4 rows plus a separator per frame, got %d lines", got)
	}
	if !strings.Contains(stderr, "simulation finished") {
		t.Fatalf("expected run to be logged, got:\n%s", stderr)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	first, _, err := execute(t, "6", "4", "--tps", "0", "--seed", "99")
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := execute(t, "6", "4", "--tps", "0", "--seed", "99", "--workers", "3")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("same size, seed and generation count should produce the same frames")
	}
	other, _, err := execute(t, "6", "4", "--tps", "0", "--seed", "100")
	if err != nil {
		t.Fatal(err)
	}
	if first == other {
		t.Fatal("a different seed should produce different frames")
	}
}

func TestArgumentErrors(t *testing.T) {
	cases := [][]string{
		{"1", "2", "3"},
		{"abc"},
		{"5", "-2"},
		{"0"},
	}
	for _, args := range cases {
		stdout, _, err := execute(t, args...)
		if err == nil {
			t.Fatalf("%v: expected error", args)
		}
		if !strings.Contains(stdout, "Usage:") {
			t.Fatalf("%v: expected usage message, got %q", args, stdout)
		}
	}
}

func TestInvalidWorldSizeFromConfig(t *testing.T) {
	_, _, err := execute(t, "--set", "world_size=0", "--renderer", "none")
	if !errors.Is(err, life.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
	_, _, err = execute(t, "5000", "--renderer", "none")
	if !errors.Is(err, life.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension for oversized world, got %v", err)
	}
}

func TestUnknownRenderer(t *testing.T) {
	_, _, err := execute(t, "3", "1", "--renderer", "hologram")
	if err == nil || !strings.Contains(err.Error(), "unknown renderer") {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestConfigFileAndPositionalPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	content := "world_size: 9\ngenerations: 2\nrenderer:\n  name: text\n  tps: 0\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(stdout, "---------------\n"); got != 2 {
		t.Fatalf("expected generations from the config file, got %d frames", got)
	}
	firstRow := strings.SplitN(stdout, "\n", 2)[0]
	if got := strings.Count(firstRow, "  "); got != 9 {
		t.Fatalf("expected 9 cells per row, got %d in %q", got, firstRow)
	}

	stdout, _, err = execute(t, "--config", path, "3", "1")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(stdout, "---------------\n"); got != 1 {
		t.Fatalf("positional generations should win, got %d frames", got)
	}
}

func TestMeshRendererWritesFiles(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := execute(t, "5", "3", "--renderer", "mesh", "--out", dir); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"gen_0000.obj", "gen_0001.obj", "gen_0002.obj"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestSubcommands(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "life version ") {
		t.Fatalf("unexpected version output %q", stdout)
	}

	stdout, _, err = execute(t, "renderers")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"mesh", "none", "screen", "text"} {
		if !strings.Contains(stdout, name+"\n") {
			t.Fatalf("renderer %s missing from %q", name, stdout)
		}
	}
}
