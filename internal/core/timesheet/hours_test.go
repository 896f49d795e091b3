package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2025-06-02 "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    time.Time
		out   time.Time
		brk   int
		want  string
		error error
	}{
		{name: "regular day with break", in: clock("09:00"), out: clock("17:30"), brk: 30, want: "8.00"},
		{name: "rounds to two places", in: clock("09:00"), out: clock("09:20"), brk: 0, want: "0.33"},
		{name: "single minute", in: clock("09:00"), out: clock("09:01"), brk: 0, want: "0.02"},
		{name: "overnight", in: clock("22:00"), out: clock("22:00").Add(8 * time.Hour), brk: 60, want: "7.00"},
		{name: "seconds are truncated", in: clock("09:00"), out: clock("17:30").Add(45 * time.Second), brk: 30, want: "8.00"},
		{name: "clock in seconds truncate the span", in: clock("09:00").Add(50 * time.Second), out: clock("10:00").Add(10 * time.Second), brk: 0, want: "0.98"},
		{name: "break equals work", in: clock("09:00"), out: clock("09:30"), brk: 30, want: "0.00"},
		{name: "break exceeds work", in: clock("09:00"), out: clock("09:30"), brk: 45, error: ErrNegativeHours},
		{name: "negative break", in: clock("09:00"), out: clock("17:00"), brk: -5, error: ErrInvalidBreak},
		{name: "clock out before clock in", in: clock("17:00"), out: clock("09:00"), error: ErrClockOutBeforeIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ComputeHours(tt.in, tt.out, tt.brk)
			if tt.error != nil {
				require.ErrorIs(t, err, tt.error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestEmployerApprovalRequiresAgencyApproval(t *testing.T) {
	t.Parallel()

	// agency_approved を経由しない経路で employer_approved に到達できないことを全探索で確認する
	seen := map[Status]bool{StatusPending: true}
	queue := []Status{StatusPending}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range transitions[cur] {
			if next == StatusAgencyApproved || seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	assert.False(t, seen[StatusEmployerApproved])
	assert.False(t, CanTransition(StatusPending, StatusEmployerApproved))
	assert.True(t, CanTransition(StatusAgencyApproved, StatusEmployerApproved))
	assert.False(t, CanTransition(StatusRejected, StatusPending))
	assert.False(t, CanTransition(StatusEmployerApproved, StatusDisputed))
}
