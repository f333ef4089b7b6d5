//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format used for portfolio ranges and delivery dates.
	DateLayout = "2006-01-02"
	maxIDLen   = 100
	secondsInDay = 24 * 60 * 60
)

// Portfolio supplies the date range a generation run iterates over. Dates are stored as received.
type Portfolio struct {
	PortfolioID string    `json:"portfolio_id" db:"portfolio_id"`
	StartDate   string    `json:"start_date"   db:"start_date"`
	EndDate     string    `json:"end_date"     db:"end_date"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"   db:"updated_at"`
}

// CreatePortfolioRequest represents a request to create a portfolio.
type CreatePortfolioRequest struct {
	PortfolioID string `json:"portfolio_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Validate validates the CreatePortfolioRequest fields. Dates are not parsed here; a malformed
// range is reported when a run resolves it.
func (r *CreatePortfolioRequest) Validate() error {
	id := strings.TrimSpace(r.PortfolioID)
	if id == "" {
		return errors.New("portfolio_id is required")
	}
	if len(id) > maxIDLen {
		return fmt.Errorf("portfolio_id must be at most %d characters", maxIDLen)
	}
	if len(r.StartDate) > maxIDLen || len(r.EndDate) > maxIDLen {
		return fmt.Errorf("dates must be at most %d characters", maxIDLen)
	}
	return nil
}

// UpdatePortfolioRequest replaces the date range of a portfolio.
type UpdatePortfolioRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Validate validates the UpdatePortfolioRequest fields.
func (r *UpdatePortfolioRequest) Validate() error {
	if len(r.StartDate) > maxIDLen || len(r.EndDate) > maxIDLen {
		return fmt.Errorf("dates must be at most %d characters", maxIDLen)
	}
	return nil
}

// DateRange is an inclusive range of calendar days in UTC.
type DateRange struct {
	Start time.Time
	End   time.Time
}

var (
	// ErrInvalidDate is returned when a portfolio date does not parse.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidRange is returned when a portfolio start date is after its end date.
	ErrInvalidRange = errors.New("invalid range")
)

// Range parses the portfolio dates into an inclusive DateRange.
func (p *Portfolio) Range() (DateRange, error) {
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return DateRange{}, fmt.Errorf("start_date %q: %w", p.StartDate, err)
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return DateRange{}, fmt.Errorf("end_date %q: %w", p.EndDate, err)
	}
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidRange, start.Format(DateLayout), end.Format(DateLayout))
	}
	return DateRange{Start: start, End: end}, nil
}

// Days returns the inclusive number of calendar days in the range. Both ends are UTC midnights,
// so whole-second arithmetic is exact where time.Duration would saturate past ~292 years.
func (r DateRange) Days() int {
	return int((r.End.Unix()-r.Start.Unix())/secondsInDay) + 1
}

// ParseDate parses YYYY-MM-DD or an RFC 3339 timestamp and truncates it to a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, ErrInvalidDate
}
