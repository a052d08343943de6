package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound matches any *NotFoundError via errors.Is.
var ErrNotFound = errors.New("record not found")

// InitializationError reports that the store could not be opened or its
// schema could not be created.
type InitializationError struct {
	Path string
	Err  error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("store: initialize %s: %v", e.Path, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// ValidationError reports missing or malformed input fields. Violations maps
// the field name to a short reason ("required", "out_of_range", ...).
type ValidationError struct {
	Entity     string
	Violations map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f, reason := range e.Violations {
		fields = append(fields, f+": "+reason)
	}
	sort.Strings(fields)
	return fmt.Sprintf("store: invalid %s: %s", e.Entity, strings.Join(fields, ", "))
}

// ConstraintViolation reports a write rejected because it would duplicate a
// unique value or break a foreign-key reference. For delete conflicts Ref
// names the entity still referencing the row.
type ConstraintViolation struct {
	Entity string
	Field  string
	Value  string
	Ref    string
	Err    error
}

func (e *ConstraintViolation) Error() string {
	switch {
	case e.Ref != "":
		return fmt.Sprintf("store: %s %s still referenced by %s", e.Entity, e.Value, e.Ref)
	case e.Field != "":
		return fmt.Sprintf("store: %s: duplicate %s %q", e.Entity, e.Field, e.Value)
	default:
		return fmt.Sprintf("store: %s: constraint violation", e.Entity)
	}
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

// NotFoundError reports an operation against a nonexistent id.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("store: %s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// writeError maps a GORM/SQLite error from an insert or update into the
// store's taxonomy. values maps column names to the attempted input so the
// offending value can be reported alongside the field.
func writeError(entity string, err error, values map[string]string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		field := uniqueField(err)
		return &ConstraintViolation{Entity: entity, Field: field, Value: values[field], Err: err}
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return &ConstraintViolation{Entity: entity, Err: err}
	}
	return fmt.Errorf("store: write %s: %w", entity, err)
}

// uniqueField extracts the column name from an SQLite message of the form
// "UNIQUE constraint failed: clients.email".
func uniqueField(err error) string {
	msg := err.Error()
	marker := "UNIQUE constraint failed:"
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	rest := strings.TrimSpace(msg[i+len(marker):])
	if j := strings.IndexAny(rest, ", "); j >= 0 {
		rest = rest[:j]
	}
	if j := strings.LastIndex(rest, "."); j >= 0 {
		rest = rest[j+1:]
	}
	return rest
}
