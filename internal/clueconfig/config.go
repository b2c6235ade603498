// Package clueconfig loads the optional YAML file that overrides the
// engine's threshold defaults, mirroring the teacher's generator-config
// YAML layer without its DDL-specific fields.
package clueconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/cluedef/cluedef/internal/engine"
)

// Config is the on-disk shape of a threshold override file. Every
// field is a pointer so that an absent key leaves the corresponding
// engine.Options field untouched by Merge.
type Config struct {
	AnsThresh       *float64 `yaml:"ans_thresh"`
	ClueThresh      *float64 `yaml:"clue_thresh"`
	SkipThresh      *int     `yaml:"skip_thresh"`
	SimplifyAnswers *bool    `yaml:"simplify_answers"`
	Ascending       *bool    `yaml:"ascending"`
}

// Parse reads and decodes a YAML config file. An empty path is not an
// error: it yields a zero Config whose Merge is a no-op.
func Parse(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("clueconfig: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, fmt.Errorf("clueconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies the config's set fields onto base, returning the
// resulting options. Unset fields leave base's value untouched.
func (c Config) Merge(base engine.Options) engine.Options {
	result := base
	if c.AnsThresh != nil {
		result.AnsThresh = *c.AnsThresh
	}
	if c.ClueThresh != nil {
		result.ClueThresh = *c.ClueThresh
	}
	if c.SkipThresh != nil {
		result.SkipThresh = *c.SkipThresh
	}
	if c.SimplifyAnswers != nil {
		result.SimplifyAnswers = *c.SimplifyAnswers
	}
	if c.Ascending != nil {
		result.Ascending = *c.Ascending
	}
	return result
}
