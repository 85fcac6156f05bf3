// Package config loads configuration for the sqltemplate CLI.
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

	"github.com/Guadalsistema/go-sqltemplate"
)

const (
	// DefaultConfigFile is looked up in the working directory when no
	// config file is given explicitly.
	DefaultConfigFile = "sqltemplate.yaml"
	// EnvPrefix prefixes environment variables read as configuration.
	EnvPrefix = "SQLTEMPLATE_"
)

// Config holds CLI settings.
type Config struct {
	// Booleans is "numeric" or "legacy".
	Booleans string `koanf:"booleans"`
	Strict   bool   `koanf:"strict"`
	Verbose  bool   `koanf:"verbose"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// RenderOptions converts the config into renderer options.
func (c *Config) RenderOptions() (sqltemplate.Options, error) {
	style, err := sqltemplate.ParseBoolStyle(c.Booleans)
	if err != nil {
		return sqltemplate.Options{}, err
	}
	return sqltemplate.Options{Booleans: style, Strict: c.Strict}, nil
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// Load loads configuration from defaults, the config file, environment
// variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"booleans": sqltemplate.BoolNumeric.String(),
		"strict":   false,
		"verbose":  false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: SQLTEMPLATE_BOOLEANS -> booleans
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
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

	if _, err := cfg.RenderOptions(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
