package errors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapDBError_NilError(t *testing.T) {
	if err := MapDBError(nil); err != nil {
		t.Errorf("MapDBError(nil) = %v, want nil", err)
	}
}

func TestMapDBError_Codes(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  ErrorCode
		wantField string
	}{
		{name: "deadline exceeded", err: context.DeadlineExceeded, wantCode: ErrCodeTimeout},
		{
			name:     "wrapped deadline",
			err:      fmt.Errorf("exec: %w", context.DeadlineExceeded),
			wantCode: ErrCodeTimeout,
		},
		{name: "canceled", err: context.Canceled, wantCode: ErrCodeCanceled},
		{name: "pgx no rows", err: pgx.ErrNoRows, wantCode: ErrCodeNotFound},
		{name: "sql no rows", err: sql.ErrNoRows, wantCode: ErrCodeNotFound},
		{
			name: "unique violation with detail",
			err: &pgconn.PgError{
				Code:   pgerrcode.UniqueViolation,
				Detail: `Key (portfolio_id)=(P1) already exists.`,
			},
			wantCode:  ErrCodeConflict,
			wantField: "portfolio_id",
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			wantCode: ErrCodeForeignKey,
		},
		{
			name:      "not null violation",
			err:       &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "shipper"},
			wantCode:  ErrCodeValidation,
			wantField: "shipper",
		},
		{
			name:     "check violation",
			err:      &pgconn.PgError{Code: pgerrcode.CheckViolation},
			wantCode: ErrCodeValidation,
		},
		{
			name:     "unhandled pg error",
			err:      &pgconn.PgError{Code: pgerrcode.DeadlockDetected},
			wantCode: ErrCodePersistence,
		},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), wantCode: ErrCodePersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.err)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("MapDBError() code = %v, want %v", got, tt.wantCode)
			}
			if got := GetField(err); got != tt.wantField {
				t.Errorf("MapDBError() field = %q, want %q", got, tt.wantField)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("MapDBError() should preserve the cause")
			}
		})
	}
}

func TestMapDBError_PassesThroughAppErrors(t *testing.T) {
	in := NotFound("portfolio not found")
	if got := MapDBError(in); got != error(in) {
		t.Errorf("MapDBError() = %v, want the original AppError", got)
	}
}

func TestMapDBError_ForeignKeyMessages(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		wantSub string
	}{
		{
			name: "parent still referenced",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (id)=(7) is still referenced from table "opt_results".`,
			},
			wantSub: "in use by optimization result",
		},
		{
			name: "missing parent",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.ForeignKeyViolation,
				Detail: `Key (optimization_id)=(99) is not present in table "optimizations".`,
			},
			wantSub: "referenced optimization does not exist",
		},
		{
			name:    "table name fallback",
			pgErr:   &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, TableName: "shipper_plannings"},
			wantSub: "shipper planning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("MapDBError() message = %q, want substring %q", err.Error(), tt.wantSub)
			}
		})
	}
}
