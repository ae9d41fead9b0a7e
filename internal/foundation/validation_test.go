package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exbotanical/ysdocs/internal/foundation/errors"
)

func nonEmpty(field string) Validator[string] {
	return func(s string) ValidationResult {
		var r ValidationResult
		if s == "" {
			r.Add(field, "required", "must not be empty")
		}
		return r
	}
}

func maxLen(field string, n int) Validator[string] {
	return func(s string) ValidationResult {
		var r ValidationResult
		if len(s) > n {
			r.Add(field, "too_long", "too long")
		}
		return r
	}
}

func TestValidatorChain_CollectsAllFailures(t *testing.T) {
	chain := NewValidatorChain(nonEmpty("title"), maxLen("title", 3), nonEmpty("other"))

	assert.Equal(t, []string{"title: too long"}, chain.Validate("Docs").Messages())

	result := chain.Validate("")
	assert.Equal(t, []string{"title: must not be empty", "other: must not be empty"}, result.Messages())
	assert.True(t, result.HasCode("required"))
	assert.False(t, result.HasCode("too_long"))

	assert.True(t, NewValidatorChain[string]().Validate("").IsValid())
}

func TestValidationResult_ToError(t *testing.T) {
	require.NoError(t, ValidationResult{}.ToError("unused"))

	var result ValidationResult
	result.Add("nav[0].link", "link", "not a path or URL")
	result.Add("", "empty", "nothing configured")

	err := result.ToError("site config is invalid")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))

	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, []string{"nav[0].link: not a path or URL", "nothing configured"}, classified.Issues())
}
