package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestDerivedErrorsMatchSentinel(t *testing.T) {
	derived := ErrOutOfRange.WithExtras(Extras{"control": "nicotine-slider"})

	assert.True(t, errors.Is(derived, ErrOutOfRange))
	assert.False(t, errors.Is(derived, ErrInvalidReq))
	assert.Nil(t, ErrOutOfRange.Extras, "sentinel must stay untouched")
}

func TestNewInvalidViolations(t *testing.T) {
	e := NewInvalidViolations([]string{"nicotine"})

	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
	assert.Equal(t, []string{"nicotine"}, (*e.Extras)["violations"])
	assert.Nil(t, ErrInvalidReq.Extras)
}
