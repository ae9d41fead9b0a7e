package config

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/exbotanical/ysdocs/internal/foundation/errors"
)

// envFiles are loaded in order; variables already set are never overridden.
var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads every existing env file and returns the ones it read.
func loadEnvFiles() ([]string, error) {
	var loaded []string
	for _, path := range envFiles {
		if _, err := os.Stat(path); stderrors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, errors.WrapError(err, errors.CategoryConfig, "load environment file").
				WithContext("path", path).
				Build()
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}
