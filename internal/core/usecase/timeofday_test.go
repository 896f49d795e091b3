package usecase

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	got, err := ParseTimeOfDay("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 570 || got.String() != "09:30" {
		t.Fatalf("unexpected value %d (%s)", got, got)
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatal("expected error for invalid hour")
	}
}

func TestWindow_Overnight(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	start, end := Window(day, 22*60, 6*60)

	if !start.Equal(time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", end)
	}
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	at := func(h int) time.Time { return time.Date(2025, 6, 1, h, 0, 0, 0, time.UTC) }

	tests := []struct {
		name                   string
		aStart, aEnd, bS, bEnd time.Time
		want                   bool
	}{
		{"partial overlap", at(9), at(17), at(12), at(18), true},
		{"contained", at(9), at(17), at(10), at(11), true},
		{"touching end", at(9), at(17), at(17), at(20), false},
		{"touching start", at(12), at(18), at(9), at(12), false},
		{"disjoint", at(9), at(10), at(11), at(12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bS, tt.bEnd); got != tt.want {
				t.Fatalf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateRangesOverlap_InclusiveBounds(t *testing.T) {
	t.Parallel()

	d := func(day int) time.Time { return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC) }

	if !DateRangesOverlap(d(1), d(5), d(5), d(9)) {
		t.Fatal("ranges sharing a boundary day must overlap")
	}
	if DateRangesOverlap(d(1), d(4), d(5), d(9)) {
		t.Fatal("adjacent ranges must not overlap")
	}
}

func TestDays(t *testing.T) {
	t.Parallel()

	var got []string
	for d := range Days(time.Date(2025, 1, 30, 8, 0, 0, 0, time.UTC), time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)) {
		got = append(got, d.Format(DateLayout))
	}

	want := []string{"2025-01-30", "2025-01-31", "2025-02-01", "2025-02-02"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
