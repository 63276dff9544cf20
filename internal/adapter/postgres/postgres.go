package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"agency-desk/internal/core/domain"
)

// SQLSTATE codes handled by the repositories.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNumericOutOfRange    = "22003"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// utrIndex is the unique index backing UTR uniqueness.
const utrIndex = "installments_utr_key"

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// mapError translates constraint violations into domain errors.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		if pgErr.ConstraintName == utrIndex {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateUTR, pgErr.Detail)
		}
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Detail)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Detail)
	case codeCheckViolation:
		if strings.Contains(pgErr.ConstraintName, "amount") {
			return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.ConstraintName)
	case codeNumericOutOfRange:
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, pgErr.Message)
	}
	return err
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

// nullUUID stores uuid.Nil as NULL.
func nullUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func fromNullUUID(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}
