package failure_test

import (
	"errors"
	"fmt"
	"frontdesk/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "'from' date cannot be after 'to' date!",
	}

	assert.Equal(t, "'from' date cannot be after 'to' date!", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, failure.InvalidDateParam.Code)
	assert.Equal(t, http.StatusServiceUnavailable, failure.StoreUnavailable.Code)
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.BadRequest(tt.input))
		})
	}
}

func TestFailure_Is(t *testing.T) {
	rebuilt := failure.New(http.StatusServiceUnavailable, "store is not connected")

	assert.ErrorIs(t, rebuilt, failure.StoreUnavailable)
	assert.ErrorIs(t, fmt.Errorf("bookings: %w", rebuilt), failure.StoreUnavailable)
	assert.NotErrorIs(t, failure.Conflict("store is not connected"), failure.StoreUnavailable)
	assert.NotErrorIs(t, errors.New("store is not connected"), failure.StoreUnavailable)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "bad request", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("no key"), code: http.StatusUnauthorized},
		{name: "not found", err: failure.NotFound("inquiry"), code: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("busy"), code: http.StatusConflict},
		{name: "wrapped failure", err: fmt.Errorf("handler: %w", failure.NotFound("inquiry")), code: http.StatusNotFound},
		{name: "plain error", err: errors.New("plain"), code: http.StatusInternalServerError},
		{name: "nil", err: nil, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
		})
	}
}
