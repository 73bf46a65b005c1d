package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsDuplicate reports a unique constraint violation.
func IsDuplicate(err error) bool {
	return hasPgCode(err, pgUniqueViolation) || errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation reports a missing or still-referenced row.
func IsForeignKeyViolation(err error) bool {
	return hasPgCode(err, pgForeignKeyViolation) || errors.Is(err, gorm.ErrForeignKeyViolated)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
