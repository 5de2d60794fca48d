// Package config loads the devfile tool configuration.
//
// Precedence (highest to lowest): flags > DEVFILE_* env vars > devfile.yaml > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/OpenTraceLab/devfile/internal/export"
)

const (
	// DefaultFile is looked up in the working directory when no file is given.
	DefaultFile = "devfile.yaml"
	// EnvPrefix prefixes environment overrides: DEVFILE_DATA_DIR -> data_dir.
	EnvPrefix = "DEVFILE_"

	DefaultDataDir   = "cubemx"
	DefaultOutputDir = "devices"
	DefaultFormat    = string(export.YAML)
)

// Config is the resolved tool configuration.
type Config struct {
	DataDir   string `koanf:"data_dir"`   // CubeMX database root
	Tables    string `koanf:"tables"`     // optional reference table file replacing the embedded one
	OutputDir string `koanf:"output_dir"` // where generate writes device files
	Format    string `koanf:"format"`     // json, yaml or cbor
	Verbose   bool   `koanf:"verbose"`

	// File is the configuration file that was read, empty if none.
	File string `koanf:"-"`
}

// Load resolves the configuration. cfgFile may be empty, in which case
// devfile.yaml is read if present. flags may be nil; only flags that were
// explicitly set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"data_dir":   DefaultDataDir,
		"tables":     "",
		"output_dir": DefaultOutputDir,
		"format":     DefaultFormat,
		"verbose":    false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			used = DefaultFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// DEVFILE_OUTPUT_DIR -> output_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			// --data-dir -> data_dir
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the option values.
func (c *Config) Validate() error {
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.DataDir == "" {
		return fmt.Errorf("config: data_dir must not be empty")
	}
	return nil
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() export.Format {
	return export.Format(c.Format)
}
