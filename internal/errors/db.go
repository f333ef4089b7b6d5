package errors

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// "Key (portfolio_id)=(P1) already exists."
	reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)
	// "... is still referenced from table "opt_results"."
	reReferencedFrom = regexp.MustCompile(`is still referenced from table "?([^"]+)"?`)
	// "... is not present in table "optimizations"."
	reNotPresent = regexp.MustCompile(`is not present in table "?([^"]+)"?`)
)

var tableDomains = map[string]string{
	"optimizations":     "optimization",
	"opt_results":       "optimization result",
	"portfolios":        "portfolio",
	"scenarios":         "scenario",
	"shipper_plannings": "shipper planning",
}

// MapDBError maps database errors to AppError instances:
//   - context deadline → Timeout, cancellation → Canceled
//   - pgx.ErrNoRows / sql.ErrNoRows → NotFound
//   - unique violation → Conflict, foreign key → ForeignKey
//   - check / not null → Validation
//   - any other driver error → Persistence
//
// Errors that are already AppErrors pass through unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "database operation timed out", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "database operation canceled", Cause: err}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return &AppError{Code: ErrCodeNotFound, Message: "resource not found", Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	return &AppError{Code: ErrCodePersistence, Message: "database operation failed", Cause: err}
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		field := pgErr.ColumnName
		if field == "" {
			if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
				field = m[1]
			}
		}
		return &AppError{
			Code:    ErrCodeConflict,
			Message: "this value already exists",
			Field:   field,
			Cause:   pgErr,
		}
	case pgerrcode.ForeignKeyViolation:
		return &AppError{Code: ErrCodeForeignKey, Message: foreignKeyMessage(pgErr), Cause: pgErr}
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		msg := "invalid data"
		if pgErr.Code == pgerrcode.NotNullViolation {
			msg = "required field is missing"
		}
		return &AppError{Code: ErrCodeValidation, Message: msg, Field: pgErr.ColumnName, Cause: pgErr}
	default:
		return &AppError{Code: ErrCodePersistence, Message: "database operation failed", Cause: pgErr}
	}
}

func foreignKeyMessage(pgErr *pgconn.PgError) string {
	if m := reReferencedFrom.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
		return "cannot delete because this item is in use by " + domainName(m[1])
	}
	if m := reNotPresent.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
		return "the referenced " + domainName(m[1]) + " does not exist"
	}
	if pgErr.TableName != "" {
		return "this item is in use by " + domainName(pgErr.TableName)
	}
	return "this item is in use"
}

func domainName(table string) string {
	table = strings.ToLower(strings.TrimSpace(table))
	if name, ok := tableDomains[table]; ok {
		return name
	}
	return strings.ReplaceAll(table, "_", " ")
}
