package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWithoutCommandPrintsUsage(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "Usage: slither") || !strings.Contains(stderr.String(), "addtest") {
		t.Fatalf("usage missing: %q", stderr.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run([]string{"frobnicate"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), `Unknown command "frobnicate"`) {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunInitThenMissingTestset(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"init"}, &stdout, &stderr); code != 0 {
		t.Fatalf("init exit = %d, stderr %q", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, ".slither", "config.json")); err != nil {
		t.Fatalf("config not created: %v", err)
	}

	stderr.Reset()
	if code := run([]string{"test", "nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("test exit = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), `No testset with the name "nope" was found.`) {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunWithoutWorkspace(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run([]string{"cattest", "a", "1"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestRunBadFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run([]string{"init", "-bogus"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestReportInterrupted(t *testing.T) {
	var stderr bytes.Buffer
	if code := report(&stderr, fmt.Errorf("run: %w", context.Canceled)); code != 130 {
		t.Fatalf("exit = %d, want 130", code)
	}
	if !strings.Contains(stderr.String(), "Interrupted.") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}
