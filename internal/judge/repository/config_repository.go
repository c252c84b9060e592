package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"slither/internal/judge/model"
	appErr "slither/pkg/errors"
)

const (
	// DirName is the per-workspace state directory.
	DirName    = ".slither"
	configFile = "config.json"
)

// ConfigRepository persists named testsets in .slither/config.json.
type ConfigRepository struct {
	root string
}

// NewConfigRepository creates a repository for the workspace rooted at root.
func NewConfigRepository(root string) *ConfigRepository {
	return &ConfigRepository{root: root}
}

// Dir returns the state directory.
func (r *ConfigRepository) Dir() string {
	return filepath.Join(r.root, DirName)
}

// Path returns the config file path.
func (r *ConfigRepository) Path() string {
	return filepath.Join(r.Dir(), configFile)
}

// Exists reports whether a config file is present.
func (r *ConfigRepository) Exists() bool {
	_, err := os.Stat(r.Path())
	return err == nil
}

// Init creates the state directory with an empty config. An existing config is
// only replaced when force is set.
func (r *ConfigRepository) Init(force bool) error {
	if err := os.MkdirAll(r.Dir(), 0o755); err != nil {
		return appErr.Wrapf(err, appErr.InternalError, "create %s failed", r.Dir())
	}
	if r.Exists() && !force {
		return appErr.New(appErr.InvalidParams).WithMessage("Slither config already exists in this directory. Rerun with -f to reset it.")
	}
	return r.Save(model.Config{})
}

// Load reads and decodes the config file.
func (r *ConfigRepository) Load() (model.Config, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, appErr.New(appErr.ConfigNotFound)
		}
		return nil, appErr.Wrapf(err, appErr.ConfigNotFound, "read %s failed", r.Path())
	}
	cfg := model.Config{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, appErr.Wrapf(err, appErr.ConfigInvalid, "decode %s failed: %v", r.Path(), err)
	}
	return cfg, nil
}

// Save writes the config file with tab indentation.
func (r *ConfigRepository) Save(cfg model.Config) error {
	if cfg == nil {
		cfg = model.Config{}
	}
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return appErr.Wrapf(err, appErr.InternalError, "encode config failed")
	}
	if err := os.MkdirAll(r.Dir(), 0o755); err != nil {
		return appErr.Wrapf(err, appErr.InternalError, "create %s failed", r.Dir())
	}
	if err := os.WriteFile(r.Path(), append(data, '\n'), 0o644); err != nil {
		return appErr.Wrapf(err, appErr.InternalError, "write %s failed", r.Path())
	}
	return nil
}

// Testset returns one named testset.
func (r *ConfigRepository) Testset(name string) (model.Testset, error) {
	if name == "" {
		return model.Testset{}, appErr.New(appErr.InvalidParams).WithMessage("Missing test set name.")
	}
	cfg, err := r.Load()
	if err != nil {
		return model.Testset{}, err
	}
	ts, ok := cfg[name]
	if !ok {
		return model.Testset{}, appErr.Newf(appErr.TestsetNotFound, "No testset with the name %q was found.", name)
	}
	return ts, nil
}

// AddTestset stores a new testset and creates its test directory.
func (r *ConfigRepository) AddTestset(name string, ts model.Testset) error {
	if name == "" {
		return appErr.ValidationError("name", "required")
	}
	cfg, err := r.Load()
	if err != nil {
		return err
	}
	if _, ok := cfg[name]; ok {
		return appErr.Newf(appErr.TestsetExists, "A testset with the name %q already exists.", name)
	}
	cfg[name] = ts
	if err := os.MkdirAll(filepath.Join(r.Dir(), name), 0o755); err != nil {
		return appErr.Wrapf(err, appErr.InternalError, "create testset directory failed")
	}
	return r.Save(cfg)
}
