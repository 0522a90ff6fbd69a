package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestMissingFieldCarriesFieldDetail(t *testing.T) {
	t.Parallel()

	err := NewMissingField("contact_name")
	require.True(t, IsValidation(err))

	var de *DomainError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "contact_name is required", de.Message)
	require.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	require.Equal(t, "contact_name", de.Details["field"])
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	require.True(t, IsNotFound(pgx.ErrNoRows))
	require.True(t, IsNotFound(fmt.Errorf("fetch ticket: %w", pgx.ErrNoRows)))
	require.True(t, IsNotFound(NewNotFound("ticket", nil)))
	require.False(t, IsNotFound(errors.New("connection reset")))
	require.False(t, IsNotFound(NewUnauthorized("missing token")))
}

func TestToDomainErrorPassesThroughExisting(t *testing.T) {
	t.Parallel()

	orig := NewConflict("email already registered", map[string]any{"email": "a@example.com"})
	de := ToDomainError(orig)
	require.Equal(t, "CONFLICT", de.Code)
	require.Equal(t, http.StatusConflict, de.HTTPStatus)
	require.Equal(t, "a@example.com", de.Details["email"])
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	t.Parallel()

	de := ToDomainError(pgx.ErrNoRows)
	require.Equal(t, "NOT_FOUND", de.Code)
	require.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	de := ToDomainError(cause)
	require.Equal(t, "INTERNAL_ERROR", de.Code)
	require.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	require.ErrorIs(t, de, cause)
	require.Equal(t, "internal server error", de.Message)
}

func TestToDomainErrorNil(t *testing.T) {
	t.Parallel()

	require.Nil(t, ToDomainError(nil))
}

func TestDomainErrorMessageIncludesCause(t *testing.T) {
	t.Parallel()

	err := NewInternalError(errors.New("boom"))
	require.Contains(t, err.Error(), "boom")
}
