package bumpver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the conventional location of the per-repository
// config file.
const DefaultConfigPath = ".bumpver.yaml"

// Config is the optional per-repository configuration. Zero values defer to
// the built-in defaults and command-line flags.
type Config struct {
	// Store is the path to the version store.
	Store string `yaml:"store"`
	// Files are staged and committed with every release.
	Files []string `yaml:"files"`
	// BumpFiles have their main version field rewritten on every release.
	BumpFiles []string `yaml:"bump_files"`
}

// LoadConfig reads the config file at path. A missing file yields a zero
// Config and no error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
