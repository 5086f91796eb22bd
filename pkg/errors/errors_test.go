package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NewNotFound(KindUser, "u-1")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsIntegrity(err))
	assert.Contains(t, err.Error(), "User not found: u-1")
	assert.Equal(t, KindUser, err.Kind)
	assert.Equal(t, "u-1", err.ID)
}

func TestNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("lookup failed: %w", NewNotFound(KindPost, "p-1"))
	assert.True(t, IsNotFound(err))

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, KindPost, nf.Kind)
}

func TestIntegrityViolation(t *testing.T) {
	err := NewIntegrityViolation(KindPost, "p-1")
	assert.True(t, IsIntegrity(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "missing Post: p-1")
}

func TestStoreUnavailable(t *testing.T) {
	assert.True(t, IsStoreUnavailable(ErrStoreUnavailable))
	assert.True(t, IsStoreUnavailable(fmt.Errorf("query: %w", ErrStoreUnavailable)))
	assert.False(t, IsStoreUnavailable(NewNotFound(KindUser, "u-1")))
}

func TestQueryFailed_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewQueryFailed("MATCH (n) RETURN n", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "MATCH (n) RETURN n", err.Query)
	assert.Contains(t, err.Error(), "query failed")
}
