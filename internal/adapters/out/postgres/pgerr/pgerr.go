// Package pgerr turns PostgreSQL errors raised by the stored functions into
// the errs taxonomy, so callers never inspect driver errors themselves.
package pgerr

import (
	"errors"

	"bakery/internal/pkg/errs"

	"github.com/lib/pq"
)

// Operation tells Translate how to read a foreign key violation.
type Operation int

const (
	// Write covers inserts and updates: a foreign key violation means the
	// referenced row, named by entity, is missing.
	Write Operation = iota

	// Delete: a foreign key violation means other rows still point at the target.
	Delete
)

const (
	uniqueViolation     = "unique_violation"
	foreignKeyViolation = "foreign_key_violation"
	checkViolation      = "check_violation"
	stringTooLong       = "string_data_right_truncation"
)

// Translate maps err to an errs type describing entity/id. Errors that are
// not PostgreSQL constraint errors are returned unchanged.
func Translate(err error, op Operation, entity string, id any) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code.Name() {
	case uniqueViolation:
		return errs.NewObjectAlreadyExistsErrorWithCause(entity, id, err)
	case foreignKeyViolation:
		if op == Delete {
			return errs.NewObjectIsReferencedErrorWithCause(entity, id, err)
		}
		return errs.NewObjectNotFoundErrorWithCause(entity, id, err)
	case checkViolation, stringTooLong:
		// The constraint text names tables and columns; only the entity is reported.
		return errs.NewValueIsInvalidError(entity)
	default:
		return err
	}
}

// NotFoundIfNone turns a zero affected-row count into an ObjectNotFoundError.
func NotFoundIfNone(affected int64, entity string, id any) error {
	if affected == 0 {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return nil
}
