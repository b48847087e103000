package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config is the optional per-project settings loaded from .esparse.toml:
// decode TOML into a plain struct, without adding a CLI framework
// dependency this project doesn't otherwise need.
type config struct {
	// SourceType selects the parser entry point: "script", "module", or
	// "expression". Defaults to "module".
	SourceType string `toml:"source_type"`
	// RecoveryVerbose, when true, prints every recovered diagnostic
	// instead of only a summary count.
	RecoveryVerbose bool `toml:"recovery_verbose"`
	// GradualTypes enables the optional TS_*-style type grammar. Defaults
	// to true.
	GradualTypes *bool `toml:"gradual_types"`
}

func defaultConfig() config {
	enabled := true
	return config{SourceType: "module", GradualTypes: &enabled}
}

// loadConfig reads .esparse.toml from dir, falling back to defaultConfig
// if the file doesn't exist. Any other read or decode error is returned.
func loadConfig(dir string) (config, error) {
	cfg := defaultConfig()
	path := filepath.Join(dir, ".esparse.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if cfg.GradualTypes == nil {
		enabled := true
		cfg.GradualTypes = &enabled
	}
	return cfg, nil
}

func (c config) gradualTypesEnabled() bool {
	return c.GradualTypes == nil || *c.GradualTypes
}
