// Package foundation holds small building blocks shared by the domain packages.
package foundation

import (
	"github.com/exbotanical/ysdocs/internal/foundation/errors"
)

// Validator inspects a value and reports every rule it breaks.
type Validator[T any] func(T) ValidationResult

// FieldError is one broken rule. Field is a dotted path into the value, Code a
// stable machine-readable name for the rule.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	if fe.Field == "" {
		return fe.Message
	}
	return fe.Field + ": " + fe.Message
}

// ValidationResult accumulates failures. The zero value is valid.
type ValidationResult struct {
	Errors []FieldError
}

// IsValid reports whether no failures were recorded.
func (vr ValidationResult) IsValid() bool { return len(vr.Errors) == 0 }

// Add records one failure.
func (vr *ValidationResult) Add(field, code, message string) {
	vr.Errors = append(vr.Errors, FieldError{Field: field, Code: code, Message: message})
}

// HasCode reports whether any failure carries code.
func (vr ValidationResult) HasCode(code string) bool {
	for _, fe := range vr.Errors {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// Messages renders every failure as "field: message" in the order recorded.
func (vr ValidationResult) Messages() []string {
	out := make([]string, len(vr.Errors))
	for i, fe := range vr.Errors {
		out[i] = fe.Error()
	}
	return out
}

// ToError returns nil for a valid result, otherwise a validation error whose
// issues are the individual messages.
func (vr ValidationResult) ToError(summary string) error {
	if vr.IsValid() {
		return nil
	}
	return errors.ValidationError(summary).WithIssues(vr.Messages()).Build()
}

// ValidatorChain runs validators in order and keeps every failure.
type ValidatorChain[T any] []Validator[T]

// NewValidatorChain returns a chain of validators.
func NewValidatorChain[T any](validators ...Validator[T]) ValidatorChain[T] {
	return validators
}

// Validate runs the chain against value.
func (vc ValidatorChain[T]) Validate(value T) ValidationResult {
	var out ValidationResult
	for _, v := range vc {
		out.Errors = append(out.Errors, v(value).Errors...)
	}
	return out
}
