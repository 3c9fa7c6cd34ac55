// Package config loads the optional YAML configuration for the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"packlist/pkg/packlist/roles"
)

// DefaultOutputName is the output workbook file name when none is given.
const DefaultOutputName = "Packing_Lists.xlsx"

// Config holds CLI configuration. All fields are optional.
type Config struct {
	// Phrases overrides inference phrase lists per role. An entry
	// replaces the role's whole built-in list.
	Phrases map[string][]string `yaml:"phrases"`
	// Output is the output workbook path.
	Output string `yaml:"output"`
	// Sheet preselects the input sheet by name.
	Sheet string `yaml:"sheet"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Output: DefaultOutputName}
}

// Load reads a YAML configuration file and applies defaults for unset
// fields. Unknown role names under phrases are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutputName
	}

	for role := range cfg.Phrases {
		if !roles.IsValidRole(role) {
			return nil, fmt.Errorf("unknown role %q in phrases config", role)
		}
	}
	return cfg, nil
}

// PhraseTable returns the built-in phrase table with the configured
// overrides applied. Override phrases are normalized before matching.
func (c *Config) PhraseTable() roles.PhraseTable {
	overrides := make(roles.PhraseTable, len(c.Phrases))
	for role, phrases := range c.Phrases {
		normalized := make([]string, len(phrases))
		for i, p := range phrases {
			normalized[i] = roles.Normalize(p)
		}
		overrides[roles.Role(role)] = normalized
	}
	return roles.DefaultPhrases().Merge(overrides)
}
