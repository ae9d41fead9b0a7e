package emit

import (
	"path/filepath"
	"strings"

	"github.com/exbotanical/ysdocs/internal/foundation/errors"
	"github.com/exbotanical/ysdocs/internal/foundation/normalization"
)

// Format selects the on-disk representation.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatModule Format = "ts"
)

var formatNormalizer = normalization.NewNormalizer("format", map[string]Format{
	"json":   FormatJSON,
	"yaml":   FormatYAML,
	"yml":    FormatYAML,
	"ts":     FormatModule,
	"mts":    FormatModule,
	"module": FormatModule,
}, FormatModule)

// ParseFormat normalizes a user supplied format name. Empty input selects the
// config module.
func ParseFormat(raw string) (Format, error) {
	f, err := formatNormalizer.NormalizeWithError(raw)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryConfig, "unknown output format").
			WithContext("valid_values", formatNormalizer.ValidKeys()).
			Build()
	}
	return f, nil
}

// FormatForPath infers the format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, ok := formatNormalizer.Lookup(ext)
	if ext == "" || !ok {
		return "", errors.ConfigError("cannot infer output format from file name").
			WithContext("path", path).
			Build()
	}
	return f, nil
}

// ResolveFormat returns the explicit format when given, otherwise the one
// implied by path.
func ResolveFormat(explicit, path string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	return FormatForPath(path)
}

// Extension returns the preferred file extension including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	default:
		return ".mts"
	}
}
