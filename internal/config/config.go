// Package config loads the settings of the ysdocs command itself: where the
// generated site configuration goes and how the tool logs. The navigation
// content is not configurable here; it is compiled into internal/site.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/exbotanical/ysdocs/internal/foundation/errors"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "ysdocs.yaml"

// Config represents the tool configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls the generated file.
type OutputConfig struct {
	// Path of the generated file, relative to the working directory.
	Path string `yaml:"path"`
	// Format is json, yaml or ts. Empty means infer from Path.
	Format string `yaml:"format,omitempty"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	if err := applyDefaults(cfg); err != nil {
		panic(fmt.Sprintf("default configuration is invalid: %v", err))
	}
	return cfg
}

// Load reads configPath, expands ${VAR} references and applies defaults.
// Variables from .env and .env.local are loaded first without overriding the
// process environment. A missing file is not an error when missingOK is set;
// defaults are returned instead.
func Load(configPath string, missingOK bool) (*Config, error) {
	if _, err := loadEnvFiles(); err != nil {
		return nil, err
	}

	// #nosec G304 - path is chosen by the operator
	data, err := os.ReadFile(configPath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if missingOK {
				return Default(), nil
			}
			return nil, errors.ConfigError(fmt.Sprintf("configuration file not found: %s", configPath)).
				WithContext("path", configPath).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "read configuration file").
			WithContext("path", configPath).
			Build()
	}

	return Parse(data)
}

// Parse decodes YAML configuration data after environment expansion.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "parse configuration").Build()
	}
	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
