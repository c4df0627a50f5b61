package main

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// profile holds render settings that can be kept in a YAML file.
type profile struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Out         string  `yaml:"out"`
	LineSpacing float64 `yaml:"line_spacing"`
	Workers     int     `yaml:"workers"`
}

func defaultProfile() profile {
	return profile{
		Width:   1280,
		Height:  720,
		Out:     ".",
		Workers: runtime.NumCPU(),
	}
}

// loadProfile reads a YAML profile over the defaults.
func loadProfile(path string) (profile, error) {
	p := defaultProfile()

	// #nosec G304 -- The profile path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, p.validate()
}

func (p profile) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", p.Workers)
	}
	if p.LineSpacing < 0 {
		return fmt.Errorf("line_spacing must not be negative, got %v", p.LineSpacing)
	}
	return nil
}
