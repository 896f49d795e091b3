package calendar

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/shopspring/decimal"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/shift"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type stubLister struct {
	shifts []*shift.Shift
	err    error
	got    shift.ListInput
}

func (s *stubLister) ListShifts(_ context.Context, in shift.ListInput) ([]*shift.Shift, error) {
	s.got = in
	return s.shifts, s.err
}

func newShift(id string, day int, status shift.Status) *shift.Shift {
	start := time.Date(2026, 3, day, 9, 0, 0, 0, time.UTC)
	return &shift.Shift{
		ID:           id,
		AssignmentID: "assignment-1",
		Date:         time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		StartTime:    start,
		EndTime:      start.Add(8 * time.Hour),
		HourlyRate:   decimal.RequireFromString("25"),
		Status:       status,
		CreatedAt:    start.Add(-48 * time.Hour),
		UpdatedAt:    start.Add(-24 * time.Hour),
	}
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	lister := &stubLister{shifts: []*shift.Shift{
		newShift("shift-1", 2, shift.StatusAssigned),
		newShift("shift-2", 3, shift.StatusCancelled),
	}}
	exporter := NewExporter(lister, fixedClock{now: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)})

	in := ExportInput{
		Actor:      actor.Actor{UserID: "user-1", Role: actor.RoleEmployee, EmployeeID: "employee-1"},
		EmployeeID: "employee-1",
		From:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	out, err := exporter.Export(context.Background(), in)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if lister.got.EmployeeID != "employee-1" || !lister.got.From.Equal(in.From) {
		t.Fatalf("unexpected list input: %+v", lister.got)
	}

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("generated calendar does not parse: %v", err)
	}
	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Id() != "shift-1@staffing-engine" {
		t.Fatalf("unexpected uid: %s", events[0].Id())
	}
	if got := events[1].GetProperty(ics.ComponentPropertyStatus).Value; got != string(ics.ObjectStatusCancelled) {
		t.Fatalf("expected cancelled status, got %s", got)
	}
	start, err := events[0].GetStartAt()
	if err != nil {
		t.Fatalf("GetStartAt returned error: %v", err)
	}
	if !start.Equal(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", start)
	}
}

func TestExporter_ExportPropagatesErrors(t *testing.T) {
	t.Parallel()

	exporter := NewExporter(&stubLister{err: actor.ErrForbidden}, nil)
	if _, err := exporter.Export(context.Background(), ExportInput{}); !errors.Is(err, actor.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
