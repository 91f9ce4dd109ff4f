package apperrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHelpersWrapSentinels(t *testing.T) {
	assert.True(t, Is(NotFoundError("candidate"), ErrNotFound))
	assert.True(t, Is(ConflictError("slug already in use"), ErrConflict))
	assert.True(t, Is(ValidationError("overall", "must be between 1 and 5"), ErrValidation))
	assert.True(t, Is(ExpiredError("review request"), ErrExpired))
	assert.True(t, Is(InternalError("query failed"), ErrInternal))
}

func TestWrappedErrorsSurviveFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("consume token: %w", NotFoundError("review request"))
	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrConflict))
}

func TestErrorMessagesKeepContext(t *testing.T) {
	err := ValidationError("confirm_manager", "reviewer must confirm the managerial relationship")
	assert.Contains(t, err.Error(), "confirm_manager")
	assert.Contains(t, err.Error(), "managerial relationship")
}
