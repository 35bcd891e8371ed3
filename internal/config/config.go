// =============================================================================
// QSC Pricing Processor - Configuration Module
// =============================================================================
//
// This module loads the application configuration. The processor is designed
// to run with zero setup, so every option has a sensible default and the
// default config file is optional: if config.yaml is absent, the built-in
// defaults apply. A config path passed explicitly via --config must exist.
//
// The output directory and file-name prefix live here rather than as
// hardcoded paths so the pipeline can be pointed anywhere (and tested
// without touching a fixed location).
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = "config.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration, loaded from a YAML file.
type Config struct {
	// OutputDir is the directory where processed workbooks are written when
	// no explicit output path is given on the command line.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// OutputPrefix is prepended to the source base name when deriving the
	// default output file name.
	// Default: "QSC_Processed_"
	OutputPrefix string `yaml:"output_prefix"`

	// ArchiveDir is the directory where source files are moved after
	// successful processing, when ArchiveOnSuccess is enabled.
	// Default: "./processed"
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveOnSuccess moves the source file into ArchiveDir once the
	// output workbook has been written.
	// Default: false
	ArchiveOnSuccess bool `yaml:"archive_on_success"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file.
//
// A missing file is only an error when the path was explicitly chosen: the
// default config file is optional and its absence means "use defaults".
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && configPath == DefaultConfigFile {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.OutputPrefix == "" {
		cfg.OutputPrefix = "QSC_Processed_"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./processed"
	}
}
