package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorErrorAndUnwrap(t *testing.T) {
	base := errors.New("row not found")
	appErr := Wrap(base, CodeExpenseNotFound, "expense not found", http.StatusNotFound)

	assert.Contains(t, appErr.Error(), CodeExpenseNotFound)
	assert.Contains(t, appErr.Error(), "row not found")
	assert.ErrorIs(t, appErr, base)
}

func TestIsAppError(t *testing.T) {
	appErr := Conflict(CodeAlreadyProcessed, "already processed")
	wrapped := fmt.Errorf("record decision: %w", appErr)

	got, ok := IsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeAlreadyProcessed, got.Code)
	assert.Equal(t, http.StatusConflict, got.HTTPStatus)

	_, ok = IsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestConstructorsSetStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
	}{
		{"not found", NotFound("X", "m"), http.StatusNotFound},
		{"bad request", BadRequest("X", "m"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("X", "m"), http.StatusUnauthorized},
		{"forbidden", Forbidden("X", "m"), http.StatusForbidden},
		{"conflict", Conflict("X", "m"), http.StatusConflict},
		{"unprocessable", Unprocessable("X", "m"), http.StatusUnprocessableEntity},
		{"internal", Internal("X", "m"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

func TestTaxonomyConstructors(t *testing.T) {
	e := ErrOutOfSequencef("ap-1")
	assert.Equal(t, CodeOutOfSequence, e.Code)
	assert.Equal(t, http.StatusConflict, e.HTTPStatus)
	assert.Equal(t, "ap-1", e.Params["approval_id"])

	e = ErrInvalidApproverf("u-9", "rule-1")
	assert.Equal(t, CodeInvalidApprover, e.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, e.HTTPStatus)

	e = ErrAlreadyProcessedf("ap-2", "APPROVED")
	assert.Equal(t, CodeAlreadyProcessed, e.Code)

	e = ErrInvalidStateTransitionf("APPROVED", "submit")
	assert.Equal(t, CodeInvalidStateTransition, e.Code)

	e = ErrRuleInUsef("rule-2")
	assert.Equal(t, CodeRuleInUse, e.Code)
}

func TestWithFieldErrors(t *testing.T) {
	e := BadRequest(CodeValidationFailed, "validation failed").
		WithFieldErrors([]FieldError{{Field: "min_approval_percentage", Code: "OUT_OF_RANGE"}})
	require.Len(t, e.FieldErrors, 1)
	assert.Equal(t, "min_approval_percentage", e.FieldErrors[0].Field)
}
