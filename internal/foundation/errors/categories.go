package errors

import (
	"log/slog"
	"maps"
	"slices"
)

// ErrorCategory routes an error to an exit code and a message style.
type ErrorCategory string

const (
	// CategoryConfig covers the tool's own settings file and command-line input.
	CategoryConfig ErrorCategory = "config"
	// CategoryValidation covers navigation data that breaks a structural rule.
	CategoryValidation ErrorCategory = "validation"
	CategoryNotFound   ErrorCategory = "not_found"
	// CategoryEmit covers encoding and decoding of the generated site config.
	CategoryEmit       ErrorCategory = "emit"
	CategoryFileSystem ErrorCategory = "filesystem"
	// CategoryInternal marks bugs in ysdocs itself.
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity decides whether the CLI logs the error before printing it.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"
	SeverityError   ErrorSeverity = "error"
	SeverityWarning ErrorSeverity = "warning"
	SeverityInfo    ErrorSeverity = "info"
)

// ErrorContext carries structured details such as the file path or the list
// of validation issues. Values are never mutated after an error is built.
type ErrorContext map[string]any

// Set stores value under key, allocating the map when needed.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// GetString returns the string stored under key.
func (c ErrorContext) GetString(key string) (string, bool) {
	s, ok := c[key].(string)
	return s, ok
}

// GetStrings returns the string slice stored under key.
func (c ErrorContext) GetStrings(key string) ([]string, bool) {
	s, ok := c[key].([]string)
	return s, ok
}

// Merge returns a new context holding both sets of keys; other wins on conflict.
func (c ErrorContext) Merge(other ErrorContext) ErrorContext {
	out := make(ErrorContext, len(c)+len(other))
	maps.Copy(out, c)
	maps.Copy(out, other)
	return out
}

// Attrs renders the context as slog attributes in key order. The issue list is
// left out; it is printed separately.
func (c ErrorContext) Attrs() []slog.Attr {
	keys := slices.Sorted(maps.Keys(c))
	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		if k == ContextKeyIssues {
			continue
		}
		attrs = append(attrs, slog.Any(k, c[k]))
	}
	return attrs
}
