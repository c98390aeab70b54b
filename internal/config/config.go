// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads and validates the swerr run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/swerr/pkg/types"
)

const (
	// DefaultFileName is the config file looked up when none is given.
	DefaultFileName = "swerr.yaml"

	// EnvPrefix prefixes environment overrides, e.g. SWERR_SOURCEFILE_INPUTDIR.
	EnvPrefix = "SWERR"
)

// ErrNotFound is returned when no config file exists at the searched locations.
var ErrNotFound = errors.New("config file not found")

// New returns a viper instance with swerr defaults and environment
// overrides wired in. If path is empty, DefaultFileName is searched for in
// the working directory and ~/.config/swerr.
func New(path string) *viper.Viper {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFileName, filepath.Ext(DefaultFileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "swerr"))
		}
	}

	v.SetDefault("sourceFile.options.maxFileSize", types.DefaultMaxFileSize)
	v.SetDefault("sourceFile.export.fileName", types.DefaultSchemeFileName)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file through v and decodes it.
func Load(v *viper.Viper) (*types.Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", v.ConfigFileUsed(), err)
	}
	return &cfg, nil
}

// LoadFile is New followed by Load.
func LoadFile(path string) (*types.Config, error) {
	return Load(New(path))
}

// Validate checks the fields a run cannot start without.
func Validate(cfg *types.Config) error {
	var problems []string
	if cfg.SourceFile.InputDir == "" {
		problems = append(problems, "sourceFile.inputDir is required")
	}
	if cfg.SourceFile.Export.OutputDir == "" {
		problems = append(problems, "sourceFile.export.outputDir is required")
	}
	for i, c := range cfg.Converters {
		if c.Name == "" {
			problems = append(problems, fmt.Sprintf("converter #%d has no name", i+1))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
