package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-ride-hail/internal/service"
)

func TestWriteError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"validation", &service.ValidationError{Fields: []service.FieldError{{Field: "email", Message: "bad"}}}, http.StatusBadRequest, "Validation failed"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"no token", service.ErrNoToken, http.StatusUnauthorized, "No token provided, authorization denied"},
		{"revoked", service.ErrTokenRevoked, http.StatusUnauthorized, "Token has been revoked"},
		{"invalid token", service.ErrInvalidToken, http.StatusForbidden, "Invalid or expired token"},
		{"expired token", service.ErrTokenExpired, http.StatusForbidden, "Invalid or expired token"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "Access denied. Insufficient permissions"},
		{"not found", service.ErrNotFound, http.StatusNotFound, "Not found"},
		{"email taken", service.ErrEmailTaken, http.StatusConflict, "Email already registered"},
		{"license taken", service.ErrLicenseTaken, http.StatusConflict, "License number already registered"},
		{"plate taken", service.ErrPlateTaken, http.StatusConflict, "Vehicle plate already registered"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
		{"nil", nil, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)

			require.Equal(t, tc.wantCode, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var env Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			require.False(t, env.Success)
			require.Equal(t, tc.wantMsg, env.Message)
		})
	}
}

func TestWriteError_UnwrapsWrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("service/auth/LoginUser: %w", service.ErrInvalidCredentials)

	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodPost, "/", nil), wrapped)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	// Внутренние детали (op-цепочка) не попадают в тело ответа.
	require.NotContains(t, rec.Body.String(), "LoginUser")
}

func TestWriteError_ValidationFieldsIncluded(t *testing.T) {
	t.Parallel()

	err := &service.ValidationError{Fields: []service.FieldError{
		{Field: "email", Message: "valid email is required"},
		{Field: "password", Message: "password must be at least 6 characters"},
	}}

	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodPost, "/", nil), err)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Errors, 2)
	require.Equal(t, "email", env.Errors[0].Field)
}
