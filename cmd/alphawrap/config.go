package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the CLI flag set so a --config YAML file can seed the
// same fields, the way gazed-vu's shader loader maps a yaml document onto a
// plain config struct.
type fileConfig struct {
	Input             string  `yaml:"input"`
	Output            string  `yaml:"output"`
	OutputUseSubdir   bool    `yaml:"output_use_subdir"`
	Alpha             float64 `yaml:"alpha"`
	Offset            float64 `yaml:"offset"`
	Traversability    string  `yaml:"traversability"`
	IntermediateSteps int     `yaml:"intermediate_steps"`
	ExportStepLimit   int     `yaml:"export_step_limit"`
	MaxIterations     int     `yaml:"max_iterations"`
	Style             string  `yaml:"style"`
}

// loadFileConfig reads and parses a YAML config file.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("alphawrap: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("alphawrap: parse config %s: %w", path, err)
	}
	return cfg, nil
}
