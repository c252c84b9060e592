package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	appErr "slither/pkg/errors"
	"slither/pkg/utils/logger"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSettingsPath = ".slither/settings.yaml"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultLogPath      = ".slither/slither.log"
	DefaultMaxLines     = 20
)

// Config holds CLI settings.
type Config struct {
	Log       logger.Config   `yaml:"log"`
	Inspector InspectorConfig `yaml:"inspector"`
	Judge     JudgeConfig     `yaml:"judge"`
}

// InspectorConfig controls the result browser.
type InspectorConfig struct {
	MaxLines int `yaml:"maxLines"`
}

// JudgeConfig controls verdict classification.
type JudgeConfig struct {
	// MemoryPatterns replaces the built-in out-of-memory stderr fragments when set.
	MemoryPatterns []string `yaml:"memoryPatterns"`
}

// Load reads settings from path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			applyDefaults(&cfg, filepath.Dir(path))
			return cfg, nil
		}
		return cfg, appErr.Wrapf(err, appErr.ConfigInvalid, "read settings file failed")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, appErr.Wrapf(err, appErr.ConfigInvalid, "parse settings file failed: %v", err)
	}
	applyDefaults(&cfg, filepath.Dir(path))
	return cfg, nil
}

func applyDefaults(cfg *Config, dir string) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Log.OutputPath == "" {
		cfg.Log.OutputPath = DefaultLogPath
		if dir != "" && dir != "." {
			cfg.Log.OutputPath = filepath.Join(dir, filepath.Base(DefaultLogPath))
		}
	}
	if cfg.Inspector.MaxLines <= 0 {
		cfg.Inspector.MaxLines = DefaultMaxLines
	}
}
