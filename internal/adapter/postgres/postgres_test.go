package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"agency-desk/internal/core/domain"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"utr index", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: utrIndex}, domain.ErrDuplicateUTR},
		{"other unique", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_email_key"}, domain.ErrConflict},
		{"foreign key", &pgconn.PgError{Code: codeForeignKeyViolation}, domain.ErrConflict},
		{"check", &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "installments_amount_check"}, domain.ErrInvalidAmount},
		{"other check", &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "campaigns_check"}, domain.ErrInvalidInput},
		{"numeric overflow", &pgconn.PgError{Code: codeNumericOutOfRange}, domain.ErrInvalidAmount},
		{"wrapped", fmt.Errorf("save ledger: %w", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: utrIndex}), domain.ErrDuplicateUTR},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, mapError(tc.err), tc.want)
		})
	}

	plain := errors.New("boom")
	require.Equal(t, plain, mapError(plain))
	require.NoError(t, mapError(nil))
}

func TestRetryable(t *testing.T) {
	require.True(t, retryable(&pgconn.PgError{Code: codeSerializationFailure}))
	require.True(t, retryable(fmt.Errorf("tx: %w", &pgconn.PgError{Code: codeDeadlockDetected})))
	require.False(t, retryable(&pgconn.PgError{Code: codeUniqueViolation}))
	require.False(t, retryable(errors.New("other")))
}

func TestAssignmentTable(t *testing.T) {
	table, column, err := assignmentTable(domain.RoleEmployee)
	require.NoError(t, err)
	require.Equal(t, "campaign_employees", table)
	require.Equal(t, "employee_id", column)

	table, column, err = assignmentTable(domain.RoleRetailer)
	require.NoError(t, err)
	require.Equal(t, "campaign_retailers", table)
	require.Equal(t, "retailer_id", column)

	_, _, err = assignmentTable(domain.RoleClient)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrefixColumns(t *testing.T) {
	require.Equal(t, "c.id, c.name, c.status", prefixColumns("c", "id, name,status"))
}

func TestNullUUID(t *testing.T) {
	require.Nil(t, nullUUID(uuid.Nil))
	id := uuid.New()
	require.Equal(t, id, *nullUUID(id))
	require.Equal(t, uuid.Nil, fromNullUUID(nil))
	require.Equal(t, id, fromNullUUID(&id))
}
