package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/exbotanical/ysdocs/internal/foundation/errors"
)

// Init writes an example configuration file. An existing file is only
// replaced when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).
			WithContext("path", configPath).
			Build()
	} else if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.WrapError(err, errors.CategoryFileSystem, "stat configuration file").Build()
	}

	example := Config{
		Output: OutputConfig{
			Path:   DefaultOutputPath,
			Format: "ts",
		},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "marshal example configuration").Build()
	}

	header := []byte("# ysdocs configuration. ${VAR} references are expanded from the environment and .env files.\n")
	if err := os.WriteFile(configPath, append(header, data...), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write configuration file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
