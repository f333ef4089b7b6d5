package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantDays  int
		wantErr   error
		wantStart time.Time
	}{
		{
			name:      "three day range",
			start:     "2024-01-01",
			end:       "2024-01-03",
			wantDays:  3,
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "single day",
			start:     "2024-06-15",
			end:       "2024-06-15",
			wantDays:  1,
			wantStart: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "leap year february",
			start:     "2024-02-28",
			end:       "2024-03-01",
			wantDays:  3,
			wantStart: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "rfc3339 timestamps truncate to the day",
			start:     "2024-01-01T18:30:00+07:00",
			end:       "2024-01-02T00:00:00Z",
			wantDays:  2,
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "span longer than a duration can hold",
			start:     "1700-01-01",
			end:       "2100-01-01",
			wantDays:  146098,
			wantStart: time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "inverted", start: "2024-01-03", end: "2024-01-01", wantErr: ErrInvalidRange},
		{name: "bad start", start: "01/02/2024", end: "2024-01-03", wantErr: ErrInvalidDate},
		{name: "bad end", start: "2024-01-01", end: "", wantErr: ErrInvalidDate},
		{name: "impossible date", start: "2024-02-30", end: "2024-03-01", wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Portfolio{PortfolioID: "P1", StartDate: tt.start, EndDate: tt.end}
			r, err := p.Range()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, r.Days())
			assert.True(t, tt.wantStart.Equal(r.Start), "start = %s", r.Start)
		})
	}
}

func TestCreatePortfolioRequestValidate(t *testing.T) {
	assert.Error(t, (&CreatePortfolioRequest{PortfolioID: "  "}).Validate())
	assert.NoError(t, (&CreatePortfolioRequest{PortfolioID: "P1", StartDate: "not-a-date"}).Validate())
}
