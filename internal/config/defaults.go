package config

import (
	"github.com/exbotanical/ysdocs/internal/foundation/errors"
)

// DefaultOutputPath is where VitePress looks for its config module.
const DefaultOutputPath = "docs/.vitepress/config.mts"

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// OutputDefaultApplier handles output defaults.
type OutputDefaultApplier struct{}

func (OutputDefaultApplier) Domain() string { return "output" }

func (OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Path == "" {
		cfg.Output.Path = DefaultOutputPath
	}
	return nil
}

// LoggingDefaultApplier normalizes logging level and format.
type LoggingDefaultApplier struct{}

func (LoggingDefaultApplier) Domain() string { return "logging" }

func (LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	level, err := logLevelNormalizer.NormalizeWithError(string(cfg.Logging.Level))
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid logging.level").Build()
	}
	format, err := logFormatNormalizer.NormalizeWithError(string(cfg.Logging.Format))
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid logging.format").Build()
	}
	cfg.Logging.Level = level
	cfg.Logging.Format = format
	return nil
}

var defaultAppliers = []DefaultApplier{
	OutputDefaultApplier{},
	LoggingDefaultApplier{},
}

func applyDefaults(cfg *Config) error {
	for _, applier := range defaultAppliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			if classified, ok := errors.AsClassified(err); ok {
				return classified.WithContext("domain", applier.Domain())
			}
			return err
		}
	}
	return nil
}
