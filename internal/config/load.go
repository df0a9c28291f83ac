package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the TOML config file at path, layered over defaults. A missing
// file is not an error: the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ProjectOverride holds per-repository settings read from .stylegen.yaml at
// the repository root. Zero values leave the corresponding setting untouched.
type ProjectOverride struct {
	MaxFiles   int      `yaml:"max_files"`
	Extensions []string `yaml:"extensions"`
	Output     string   `yaml:"output"`
}

// ApplyProject merges a repository's .stylegen.yaml, if present, into cfg.
// A missing file is not an error; a malformed one is.
func ApplyProject(cfg *Config, repoRoot string) error {
	path := filepath.Join(repoRoot, ".stylegen.yaml")

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var o ProjectOverride
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if o.MaxFiles > 0 {
		cfg.Extract.MaxFiles = o.MaxFiles
	}
	if len(o.Extensions) > 0 {
		cfg.Extract.Extensions = o.Extensions
	}
	if o.Output != "" {
		cfg.Extract.Output = o.Output
	}
	return nil
}
