package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig is the shape of texfmt.toml. Flags always win over config.
type fileConfig struct {
	Format   formatConfig   `toml:"format"`
	Tokenize tokenizeConfig `toml:"tokenize"`
}

type formatConfig struct {
	Color string `toml:"color"` // auto|on|off
}

type tokenizeConfig struct {
	Format string `toml:"format"` // pretty|json|msgpack
	Jobs   int    `toml:"jobs"`
}

// findTexfmtToml walks up from startDir looking for a texfmt.toml.
func findTexfmtToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "texfmt.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return cfg, nil
}

// loadWorkingConfig loads the texfmt.toml governing the working directory.
func loadWorkingConfig() (fileConfig, bool, error) {
	path, ok, err := findTexfmtToml(".")
	if err != nil || !ok {
		return fileConfig{}, ok, err
	}
	cfg, err := loadFileConfig(path)
	if err != nil {
		return fileConfig{}, true, err
	}
	return cfg, true, nil
}
