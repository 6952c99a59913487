// Package config loads the optional .esvalidate.yaml configuration file.
// It is pure ambient configuration: it changes no parsing semantics beyond
// the documented recursion-depth override, grounded in vippsas-sqlcode's
// cli/cmd/config.go YAML-via-gopkg.in/yaml.v3 loading idiom.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxRecursionDepth mirrors the parser package's own default so a
// missing or partial config file never silently changes behavior.
const DefaultMaxRecursionDepth = 1000

// Config holds the settings .esvalidate.yaml may override.
type Config struct {
	MaxRecursionDepth int  `yaml:"maxRecursionDepth"`
	Color             bool `yaml:"color"`
}

// Default returns the configuration esvalidate uses when no config file is
// present.
func Default() Config {
	return Config{MaxRecursionDepth: DefaultMaxRecursionDepth, Color: true}
}

// Load reads and parses path, overlaying its fields onto Default(). A
// missing file is not an error — it simply yields the defaults, since the
// config file is always optional.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.MaxRecursionDepth <= 0 {
		cfg.MaxRecursionDepth = DefaultMaxRecursionDepth
	}
	return cfg, nil
}
