package models

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", NewNotFoundError("Job", 3), fiber.StatusNotFound},
		{"validation", NewValidationError("bad input"), fiber.StatusBadRequest},
		{"conflict", NewConflictError("duplicate"), fiber.StatusConflict},
		{"forbidden", NewForbiddenError("no"), fiber.StatusForbidden},
		{"unauthorized", NewUnauthorizedError("who"), fiber.StatusUnauthorized},
		{"internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"plain error", errors.New("anything"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForError(tt.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "disk full")
}

func TestApplicationStatus_Valid(t *testing.T) {
	for _, status := range KnownStatuses {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, ApplicationStatus("ghosted").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestUserRole_Valid(t *testing.T) {
	assert.True(t, RoleCandidate.Valid())
	assert.True(t, RoleRecruiter.Valid())
	assert.False(t, UserRole("admin").Valid())
}
