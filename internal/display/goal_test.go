package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoal(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		saved      string
		target     string
		deadline   time.Time
		wantStatus string
		wantColor  Color
		wantPct    float64
	}{
		{
			name:       "in progress",
			saved:      "250",
			target:     "1000",
			deadline:   now.AddDate(0, 0, 30),
			wantStatus: "30 days left",
			wantColor:  Blue,
			wantPct:    25,
		},
		{
			name:       "completed",
			saved:      "1000",
			target:     "1000",
			deadline:   now.AddDate(0, 0, 30),
			wantStatus: "Completed",
			wantColor:  Green,
			wantPct:    100,
		},
		{
			name:       "completion beats overdue",
			saved:      "1000",
			target:     "1000",
			deadline:   now.AddDate(0, 0, -5),
			wantStatus: "Completed",
			wantColor:  Green,
			wantPct:    100,
		},
		{
			name:       "overdue",
			saved:      "100",
			target:     "1000",
			deadline:   now.AddDate(0, 0, -5),
			wantStatus: "Overdue",
			wantColor:  Red,
			wantPct:    10,
		},
		{
			name:       "oversaved clamps to 100",
			saved:      "2000",
			target:     "1000",
			deadline:   now.AddDate(0, 0, 30),
			wantStatus: "Completed",
			wantColor:  Green,
			wantPct:    100,
		},
		{
			name:       "zero target treated as one",
			saved:      "0",
			target:     "0",
			deadline:   now.AddDate(0, 0, 10),
			wantStatus: "10 days left",
			wantColor:  Blue,
			wantPct:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Goal(d(tt.saved), d(tt.target), tt.deadline, now)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantColor, got.Color)
			assert.InDelta(t, tt.wantPct, got.Percent, 0.0001)
		})
	}
}

func TestGoal_DueTodayIsNotOverdue(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	got := Goal(d("10"), d("100"), now, now)
	assert.Equal(t, "0 days left", got.Status)
	assert.Equal(t, Blue, got.Color)
}
