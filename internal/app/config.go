// Package app holds the runtime configuration for the sync command and its
// resolution order: flags first, then an optional config file supplying
// defaults, then environment variables filling whatever is still unset.
package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// Config is the resolved sync configuration.
type Config struct {
	// Twenty CRM endpoint and credentials.
	TwentyURL   string
	TwentyToken string

	// ProfilePath is the mined-profile JSON file; empty means stdin.
	ProfilePath string

	// Community, when set, must exactly match the profile's mined name or
	// the sync is skipped.
	Community string

	DryRun  bool
	Verbose bool
}

// FileConfig is the config-file schema.
type FileConfig struct {
	Twenty struct {
		URL   string `yaml:"url" json:"url"`
		Token string `yaml:"token" json:"token"`
	} `yaml:"twenty" json:"twenty"`

	Community string `yaml:"community" json:"community"`
	DryRun    bool   `yaml:"dryRun" json:"dryRun"`
	Verbose   bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for fields the flags left
// unset, so explicit flags keep precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.TwentyURL == "" && fc.Twenty.URL != "" {
		cfg.TwentyURL = fc.Twenty.URL
	}
	if cfg.TwentyToken == "" && fc.Twenty.Token != "" {
		cfg.TwentyToken = fc.Twenty.Token
	}
	if cfg.Community == "" && fc.Community != "" {
		cfg.Community = fc.Community
	}
	if !cfg.DryRun && fc.DryRun {
		cfg.DryRun = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.TwentyURL == "" {
		cfg.TwentyURL = os.Getenv("TWENTY_API_URL")
	}
	if cfg.TwentyToken == "" {
		cfg.TwentyToken = os.Getenv("TWENTY_API_TOKEN")
	}
}

// ValidateConfig gates startup: the CRM endpoint and token must be resolved
// before any work begins, dry-run included.
func ValidateConfig(cfg Config) error {
	if cfg.TwentyURL == "" || cfg.TwentyToken == "" {
		return errors.New("config: TWENTY_API_URL and TWENTY_API_TOKEN required")
	}
	return nil
}
