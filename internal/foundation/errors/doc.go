// Package errors provides the classified error primitives used across ysdocs.
//
// A ClassifiedError carries a category, a severity and a context map. The
// category picks the exit code, the severity decides whether the CLI logs it.
// Errors are created with the fluent ErrorBuilder and rendered by the
// CLIErrorAdapter.
//
//	err := errors.ValidationError("site config is invalid").
//		WithIssues(issues).
//		Build()
package errors
