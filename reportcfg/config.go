// File: config.go
// Role: report-configuration schema and its YAML loader.

package reportcfg

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Section names one report section the `report` subcommand can render.
type Section string

const (
	SectionHistogram Section = "histogram"
	SectionGrowth    Section = "growth"
	SectionTable     Section = "table"
)

// ThresholdConfig mirrors panacus.WithThreshold's parameters.
type ThresholdConfig struct {
	CoverageFloor int     `yaml:"coverage_floor"`
	Quorum        float64 `yaml:"quorum"`
}

// Config is the top-level report-configuration document.
type Config struct {
	Sections   []Section        `yaml:"sections"`
	GroupMode  string           `yaml:"group_mode"`
	Thresholds *ThresholdConfig `yaml:"thresholds,omitempty"`
	Permute    bool             `yaml:"permute"`
}

// Load decodes a Config from r.
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Wants reports whether cfg.Sections includes s.
func (cfg Config) Wants(s Section) bool {
	for _, have := range cfg.Sections {
		if have == s {
			return true
		}
	}
	return false
}
