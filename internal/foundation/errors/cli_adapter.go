package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ContextKeyIssues is the context key holding a []string of individual problems.
const ContextKeyIssues = "issues"

// Process exit codes. Anything unclassified exits with ExitFailure.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitNotFound   = 3
	ExitConfig     = 7
	ExitInternal   = 10
	ExitOutput     = 11
)

var exitCodes = map[ErrorCategory]int{
	CategoryValidation: ExitValidation,
	CategoryNotFound:   ExitNotFound,
	CategoryConfig:     ExitConfig,
	CategoryEmit:       ExitOutput,
	CategoryFileSystem: ExitOutput,
	CategoryInternal:   ExitInternal,
}

// CLIErrorAdapter turns a command error into a log record, a short message on
// stderr and a process exit code.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter returns an adapter writing to stderr and calling os.Exit.
// A nil logger means slog.Default().
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger, out: os.Stderr, exit: os.Exit}
}

// ExitCodeFor maps err to the process exit code.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	if classified, ok := AsClassified(err); ok {
		if code, known := exitCodes[classified.Category()]; known {
			return code
		}
	}
	return ExitFailure
}

// FormatError renders err for a terminal. Verbose mode prints the full chain;
// otherwise internal details are hidden and validation issues are listed.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	classified, ok := AsClassified(err)
	if !ok {
		return "Error: " + err.Error()
	}
	if a.verbose {
		return classified.Error()
	}

	var b strings.Builder
	switch classified.Category() {
	case CategoryInternal:
		return "Internal error occurred (use -v for details)"
	case CategoryConfig:
		b.WriteString("Configuration error: ")
	case CategoryValidation:
		b.WriteString("Validation error: ")
	default:
		b.WriteString("Error: ")
	}
	b.WriteString(classified.Message())
	if cause := classified.Cause(); cause != nil {
		fmt.Fprintf(&b, ": %v", cause)
	}
	for _, issue := range classified.Issues() {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

// HandleError logs err when warranted, prints it and exits. A nil err is ignored.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	a.log(err)
	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

// log records fatal and unclassified errors, and every error in verbose mode.
func (a *CLIErrorAdapter) log(err error) {
	classified, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Unclassified error", slog.Any("error", err))
		return
	}
	if !a.verbose && classified.Severity() != SeverityFatal {
		return
	}

	attrs := []slog.Attr{slog.String("category", string(classified.Category()))}
	if cause := classified.Cause(); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	attrs = append(attrs, classified.Context().Attrs()...)
	a.logger.LogAttrs(context.Background(), severityLevel(classified.Severity()), classified.Message(), attrs...)
}

func severityLevel(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
