package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	err := Remote("job posting failed")
	assert.Equal(t, "job posting failed", err.Error())

	wrapped := Wrap(stderrors.New("connection refused"), ErrCodeUnavailable, "fetch jobs")
	assert.Equal(t, "fetch jobs: connection refused", wrapped.Error())
}

func TestUnwrapSupportsErrorsIs(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "wrapped")
	assert.True(t, stderrors.Is(err, cause))
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.True(t, IsValidation(ValidationField("status", "invalid status")))
	assert.True(t, IsUnauthorized(Unauthorized("not signed in")))
	assert.True(t, IsForbidden(Forbidden("not your job")))
	assert.True(t, IsRemote(Remote("nope")))
	assert.True(t, IsUnavailable(Unavailable("connection refused")))
	assert.False(t, IsNotFound(Remote("nope")))
	assert.False(t, IsRemote(nil))
}

func TestCodePredicatesSeeThroughWrapping(t *testing.T) {
	inner := Remote("status update failed")
	outer := Wrap(inner, ErrCodeInternal, "change status")
	// errors.As walks the chain, so the innermost code still matches.
	assert.True(t, IsInternal(outer))
	assert.True(t, stderrors.Is(outer, error(inner)))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "job deleted elsewhere", UserMessage(NotFound("job deleted elsewhere")))
	assert.Equal(t, "plain", UserMessage(stderrors.New("plain")))
	// Wrapped AppErrors surface the outer structured message, not the cause chain.
	assert.Equal(t, "delete job", UserMessage(Wrap(stderrors.New("500"), ErrCodeRemote, "delete job")))
}
