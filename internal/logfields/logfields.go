package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFormat     = "format"
	KeyBytes      = "bytes"
	KeyPrefix     = "prefix"
	KeyGroups     = "groups"
	KeyEntries    = "entries"
	KeyCommand    = "command"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Bytes(n int) slog.Attr           { return slog.Int(KeyBytes, n) }
func Prefix(p string) slog.Attr       { return slog.String(KeyPrefix, p) }
func Groups(n int) slog.Attr          { return slog.Int(KeyGroups, n) }
func Entries(n int) slog.Attr         { return slog.Int(KeyEntries, n) }
func Command(c string) slog.Attr      { return slog.String(KeyCommand, c) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
