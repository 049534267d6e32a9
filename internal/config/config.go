// Package config loads run descriptions from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRun is returned by Validate for unusable run files.
var ErrInvalidRun = errors.New("invalid run config")

// RunConfig describes a single simulation run. Empty fields mean "not set"
// and leave the command-line value or automaton default in place.
type RunConfig struct {
	Sim      string            `yaml:"sim"`
	Input    string            `yaml:"input"`
	Grid     string            `yaml:"grid"`
	Params   map[string]string `yaml:"params"`
	LogLevel string            `yaml:"log_level"`
}

// Load reads and parses a YAML run file.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML run description.
func Parse(data []byte) (*RunConfig, error) {
	var rc RunConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &rc, nil
}

// Validate checks the fields that must be consistent once flags and file are
// merged: a sim is named and exactly one seed source is given.
func (rc *RunConfig) Validate() error {
	if rc.Sim == "" {
		return fmt.Errorf("%w: no sim selected", ErrInvalidRun)
	}
	if rc.Input != "" && rc.Grid != "" {
		return fmt.Errorf("%w: both input and grid set", ErrInvalidRun)
	}
	if rc.Input == "" && rc.Grid == "" {
		return fmt.Errorf("%w: neither input nor grid set", ErrInvalidRun)
	}
	return nil
}

// Merge overlays every non-empty field of o onto rc. Params are merged key
// by key with o winning.
func (rc *RunConfig) Merge(o RunConfig) {
	if o.Sim != "" {
		rc.Sim = o.Sim
	}
	if o.Input != "" {
		rc.Input = o.Input
		rc.Grid = ""
	}
	if o.Grid != "" {
		rc.Grid = o.Grid
		rc.Input = ""
	}
	if o.LogLevel != "" {
		rc.LogLevel = o.LogLevel
	}
	if len(o.Params) > 0 && rc.Params == nil {
		rc.Params = make(map[string]string, len(o.Params))
	}
	for k, v := range o.Params {
		rc.Params[k] = v
	}
}
