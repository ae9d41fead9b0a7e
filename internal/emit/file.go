package emit

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/exbotanical/ysdocs/internal/foundation/errors"
	"github.com/exbotanical/ysdocs/internal/nav"
)

const filePerm = 0o644

// WriteFile encodes cfg and replaces path atomically, creating parent
// directories as needed. It returns the number of bytes written.
func WriteFile(path string, cfg nav.SiteConfig, format Format) (int, error) {
	data, err := Encode(cfg, format)
	if err != nil {
		return 0, err
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return 0, errors.FileSystemError(fmt.Sprintf("%s is a directory", path)).WithContext("path", path).Build()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, errors.WrapError(err, errors.CategoryFileSystem, "create output directory").WithContext("path", dir).Build()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, errors.WrapError(err, errors.CategoryFileSystem, "create temp file").WithContext("path", dir).Build()
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once renamed
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return 0, errors.WrapError(err, errors.CategoryFileSystem, "write temp file").WithContext("path", tmpName).Build()
	}
	if err := tmp.Close(); err != nil {
		return 0, errors.WrapError(err, errors.CategoryFileSystem, "close temp file").WithContext("path", tmpName).Build()
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return 0, errors.WrapError(err, errors.CategoryFileSystem, "chmod temp file").WithContext("path", tmpName).Build()
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, errors.WrapError(err, errors.CategoryFileSystem, "replace output file").WithContext("path", path).Build()
	}
	return len(data), nil
}

// ReadFile decodes a previously emitted file.
func ReadFile(path string, format Format) (nav.SiteConfig, error) {
	// #nosec G304 - path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nav.SiteConfig{}, errors.NotFoundError(fmt.Sprintf("%s does not exist", path)).WithContext("path", path).Build()
		}
		return nav.SiteConfig{}, errors.WrapError(err, errors.CategoryFileSystem, "read output file").WithContext("path", path).Build()
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return nav.SiteConfig{}, err
	}
	return cfg, nil
}
