package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Data access errors.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateKey      = errors.New("record with this key already exists")
	ErrForeignKeyMissing = errors.New("referenced record does not exist")
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ForeignKeyError reports which constraint rejected a write.
type ForeignKeyError struct {
	Constraint string
	err        error
}

// NewForeignKeyError wraps cause as a violation of constraint. cause may be nil.
func NewForeignKeyError(constraint string, cause error) *ForeignKeyError {
	return &ForeignKeyError{Constraint: constraint, err: cause}
}

func (e *ForeignKeyError) Error() string {
	if e.err == nil {
		return "foreign key violation on " + e.Constraint
	}
	return "foreign key violation on " + e.Constraint + ": " + e.err.Error()
}

func (e *ForeignKeyError) Unwrap() []error {
	if e.err == nil {
		return []error{ErrForeignKeyMissing}
	}
	return []error{ErrForeignKeyMissing, e.err}
}

// translatePgError maps constraint violations onto repository errors.
// Other errors are returned unchanged.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return ErrDuplicateKey
	case pgForeignKeyViolation:
		return NewForeignKeyError(pgErr.ConstraintName, err)
	}
	return err
}
