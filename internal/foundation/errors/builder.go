package errors

// ErrorBuilder assembles a ClassifiedError fluently:
//
//	errors.ConfigError("unknown output format").WithContext("format", raw).Build()
type ErrorBuilder struct {
	err ClassifiedError
}

// NewError starts an error of the given category with SeverityError.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{err: ClassifiedError{
		category: category,
		severity: SeverityError,
		message:  message,
	}}
}

// WrapError starts an error that wraps cause.
func WrapError(cause error, category ErrorCategory, message string) *ErrorBuilder {
	b := NewError(category, message)
	b.err.cause = cause
	return b
}

func (b *ErrorBuilder) WithSeverity(severity ErrorSeverity) *ErrorBuilder {
	b.err.severity = severity
	return b
}

func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.err.context = b.err.context.Set(key, value)
	return b
}

// WithIssues attaches the individual problems behind the error. The CLI prints
// each one on its own line.
func (b *ErrorBuilder) WithIssues(issues []string) *ErrorBuilder {
	return b.WithContext(ContextKeyIssues, issues).WithContext("count", len(issues))
}

func (b *ErrorBuilder) Fatal() *ErrorBuilder { return b.WithSeverity(SeverityFatal) }

// Build returns the error. The builder must not be reused.
func (b *ErrorBuilder) Build() *ClassifiedError {
	err := b.err
	return &err
}

// ConfigError reports unusable settings or flags.
func ConfigError(message string) *ErrorBuilder {
	return NewError(CategoryConfig, message).Fatal()
}

// ValidationError reports navigation data that must not be emitted.
func ValidationError(message string) *ErrorBuilder {
	return NewError(CategoryValidation, message).Fatal()
}

func NotFoundError(message string) *ErrorBuilder {
	return NewError(CategoryNotFound, message)
}

func EmitError(message string) *ErrorBuilder {
	return NewError(CategoryEmit, message)
}

func FileSystemError(message string) *ErrorBuilder {
	return NewError(CategoryFileSystem, message)
}

// InternalError reports a bug; the CLI hides the details unless -v is given.
func InternalError(message string) *ErrorBuilder {
	return NewError(CategoryInternal, message).Fatal()
}
