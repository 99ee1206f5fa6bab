package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewDuplicateIdentity(), "DUPLICATE_IDENTITY", http.StatusConflict},
		{NewInvalidCredentials(), "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{NewNoSession(), "NO_SESSION", http.StatusUnauthorized},
		{NewInvalidSession(""), "INVALID_SESSION", http.StatusUnauthorized},
		{NewNotFound("supplier", nil), "NOT_FOUND", http.StatusNotFound},
		{NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewUnauthorized("nope"), "UNAUTHORIZED", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		require.True(t, IsCode(tc.err, tc.code), "expected %s for %v", tc.code, tc.err)
		domainErr := ToDomainError(tc.err)
		require.Equal(t, tc.status, domainErr.HTTPStatus)
	}
}

func TestToDomainError_WrapsUnknown(t *testing.T) {
	plain := errors.New("boom")
	domainErr := ToDomainError(plain)
	require.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	require.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)

	wrapped := fmt.Errorf("context: %w", NewNoSession())
	require.True(t, IsCode(wrapped, "NO_SESSION"))
}

func TestToDomainError_Nil(t *testing.T) {
	require.Nil(t, ToDomainError(nil))
	require.False(t, IsCode(nil, "NOT_FOUND"))
}
