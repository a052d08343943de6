package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesAndReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "praxis.db")

	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.CreateClient(janeDoe())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Opening an already-initialized file is safe and sees the same data.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	c, err := s2.GetClient(id)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", c.Email)
}

func TestOpenUnwritableLocation(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "praxis.db"))
	require.Error(t, err)
	var initErr *InitializationError
	require.True(t, errors.As(err, &initErr), "expected InitializationError, got %v", err)
	assert.Contains(t, initErr.Path, "praxis.db")
}

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := error(&NotFoundError{Entity: "client", ID: 7})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "client 7")
}

func TestConstraintViolationMessages(t *testing.T) {
	dup := &ConstraintViolation{Entity: "client", Field: "email", Value: "jane@x.com"}
	assert.Contains(t, dup.Error(), `duplicate email "jane@x.com"`)

	ref := &ConstraintViolation{Entity: "client", Value: "3", Ref: "sales_receipt"}
	assert.Contains(t, ref.Error(), "still referenced by sales_receipt")
}

func TestUniqueFieldParsing(t *testing.T) {
	err := errors.New("UNIQUE constraint failed: clients.email")
	assert.Equal(t, "email", uniqueField(err))

	err = errors.New("constraint failed: UNIQUE constraint failed: clients.phone_number (2067)")
	assert.Equal(t, "phone_number", uniqueField(err))

	assert.Equal(t, "", uniqueField(errors.New("disk I/O error")))
}
