package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	appErr "slither/pkg/errors"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "settings.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != DefaultLogFormat {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Log.OutputPath != filepath.Join(dir, "slither.log") {
		t.Fatalf("log path = %q", cfg.Log.OutputPath)
	}
	if cfg.Inspector.MaxLines != DefaultMaxLines || cfg.Judge.MemoryPatterns != nil {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := `
log:
  level: debug
  format: json
  outputPath: stderr
inspector:
  maxLines: 40
judge:
  memoryPatterns:
    - "heap exhausted"
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Log.OutputPath != "stderr" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Inspector.MaxLines != 40 {
		t.Fatalf("maxLines = %d", cfg.Inspector.MaxLines)
	}
	if !reflect.DeepEqual(cfg.Judge.MemoryPatterns, []string{"heap exhausted"}) {
		t.Fatalf("patterns = %v", cfg.Judge.MemoryPatterns)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("log: [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !appErr.Is(err, appErr.ConfigInvalid) {
		t.Fatalf("expected ConfigInvalid, got %v", err)
	}
}
