package repository

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE codes surfaced by the schema constraints.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeExclusionViolation  = "23P01"
)

func isPQCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

// IsUniqueViolation reports whether err is a unique constraint failure
// (duplicate chambre numero or client email).
func IsUniqueViolation(err error) bool {
	return isPQCode(err, codeUniqueViolation)
}

// IsForeignKeyViolation reports whether err is a foreign key failure
// (reservation referencing a missing row, or deleting a referenced row).
func IsForeignKeyViolation(err error) bool {
	return isPQCode(err, codeForeignKeyViolation)
}

// IsExclusionViolation reports whether err comes from the no-overlap
// EXCLUDE constraint on reservation. This is the atomic backstop for two
// concurrent conflicting inserts that both passed the in-process check.
func IsExclusionViolation(err error) bool {
	return isPQCode(err, codeExclusionViolation)
}
