package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err:  &AppError{Code: ErrCodeNotFound, Message: "portfolio not found"},
			want: "portfolio not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodePersistence,
				Message: "bulk insert results",
				Cause:   errors.New("connection reset"),
			},
			want: "bulk insert results: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrCodeInternal, "wrapped error")

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(Wrap(cause), cause) = false, want true")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		code  ErrorCode
	}{
		{"not found", NotFound("x"), IsNotFound, ErrCodeNotFound},
		{"not found formatted", NotFoundf("optimization %d not found", 3), IsNotFound, ErrCodeNotFound},
		{"conflict", Conflict("stale version"), IsConflict, ErrCodeConflict},
		{"validation", Validation("invalid date"), IsValidation, ErrCodeValidation},
		{"validation field", ValidationField("start_date", "invalid date"), IsValidation, ErrCodeValidation},
		{"persistence", Persistence(errors.New("boom"), "insert"), IsPersistence, ErrCodePersistence},
		{"duplicate subscription", DuplicateSubscription("progress-generator"), IsDuplicateSubscription, ErrCodeDuplicateSubscription},
		{"timeout", Timeout(context.DeadlineExceeded, "progress run"), IsTimeout, ErrCodeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.err) {
				t.Errorf("predicate returned false for %v", tt.err)
			}
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("run 42: %w", Validation("invalid range"))
	if !IsValidation(err) {
		t.Errorf("IsValidation() = false for wrapped error")
	}
	if IsNotFound(err) {
		t.Errorf("IsNotFound() = true for validation error")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "x") != nil {
		t.Errorf("Wrap(nil) should return nil")
	}
	if Persistence(nil, "x") != nil {
		t.Errorf("Persistence(nil) should return nil")
	}
}

func TestGetFieldAndCode_NonAppError(t *testing.T) {
	err := errors.New("plain")
	if GetCode(err) != "" || GetField(err) != "" {
		t.Errorf("plain errors should have no code or field")
	}
	if got := GetField(ValidationField("end_date", "invalid date")); got != "end_date" {
		t.Errorf("GetField() = %q, want end_date", got)
	}
}
