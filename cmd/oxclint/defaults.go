package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// projectDefaults is the shape of an optional YAML defaults file
// (oxclint.defaults.yaml) consulted for flags the user didn't pass
// explicitly on the command line — a project-wide convenience layer
// distinct from .oxlintrc.json, which governs rules rather than CLI
// behavior.
type projectDefaults struct {
	Workers int  `yaml:"workers"`
	Fix     bool `yaml:"fix"`
	Verbose bool `yaml:"verbose"`
}

// loadProjectDefaults reads path if it exists; a missing file is not an
// error, it just means there are no project-wide defaults to apply.
func loadProjectDefaults(path string) (*projectDefaults, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d projectDefaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
