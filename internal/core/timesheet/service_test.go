package timesheet

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/event"
	"github.com/ogurasousui/staffing-engine/internal/core/shift"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeRepo struct {
	timesheets map[string]*Timesheet
	seq        int
}

func (r *fakeRepo) Create(_ context.Context, t *Timesheet) (*Timesheet, error) {
	for _, existing := range r.timesheets {
		if existing.ShiftID == t.ShiftID {
			return nil, ErrAlreadyClockedIn
		}
	}
	clone := *t
	r.seq++
	clone.ID = fmt.Sprintf("ts-%d", r.seq)
	r.timesheets[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) Update(_ context.Context, t *Timesheet) (*Timesheet, error) {
	if _, ok := r.timesheets[t.ID]; !ok {
		return nil, ErrTimesheetNotFound
	}
	clone := *t
	r.timesheets[t.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*Timesheet, error) {
	t, ok := r.timesheets[id]
	if !ok {
		return nil, ErrTimesheetNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *fakeRepo) LockByID(ctx context.Context, id string) (*Timesheet, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeRepo) FindByShiftID(_ context.Context, shiftID string) (*Timesheet, error) {
	for _, t := range r.timesheets {
		if t.ShiftID == shiftID {
			clone := *t
			return &clone, nil
		}
	}
	return nil, ErrTimesheetNotFound
}

type fakeShifts map[string]*shift.Shift

func (f fakeShifts) FindByID(_ context.Context, id string) (*shift.Shift, error) {
	s, ok := f[id]
	if !ok {
		return nil, shift.ErrShiftNotFound
	}
	clone := *s
	return &clone, nil
}

func (f fakeShifts) LockByID(ctx context.Context, id string) (*shift.Shift, error) {
	return f.FindByID(ctx, id)
}

func (f fakeShifts) Update(_ context.Context, s *shift.Shift) (*shift.Shift, error) {
	clone := *s
	f[s.ID] = &clone
	out := clone
	return &out, nil
}

type fakeAssignments map[string]*assignment.Assignment

func (f fakeAssignments) FindByID(_ context.Context, id string) (*assignment.Assignment, error) {
	a, ok := f[id]
	if !ok {
		return nil, assignment.ErrAssignmentNotFound
	}
	clone := *a
	return &clone, nil
}

var (
	employeeX    = actor.Actor{UserID: "user-x", Role: actor.RoleEmployee, EmployeeID: "emp-x"}
	employeeY    = actor.Actor{UserID: "user-y", Role: actor.RoleEmployee, EmployeeID: "emp-y"}
	agencyActor  = actor.Actor{UserID: "user-agency", Role: actor.RoleAgent, AgencyID: "agency-a"}
	otherAgency  = actor.Actor{UserID: "user-agency-b", Role: actor.RoleAgencyAdmin, AgencyID: "agency-b"}
	contactActor = actor.Actor{UserID: "user-contact", Role: actor.RoleContact, EmployerID: "employer-1"}
)

type fixture struct {
	repo   *fakeRepo
	shifts fakeShifts
	clock  *stubClock
	svc    *Service
}

func newFixture() *fixture {
	f := &fixture{
		repo: &fakeRepo{timesheets: make(map[string]*Timesheet)},
		shifts: fakeShifts{
			"shift-1": {
				ID: "shift-1", AssignmentID: "asg-1", AgencyID: "agency-a", EmployerID: "employer-1",
				EmployeeID: "emp-x", AgencyEmployeeID: "ae-x", Status: shift.StatusAssigned,
				StartTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), EndTime: time.Date(2025, 6, 2, 17, 30, 0, 0, time.UTC),
			},
		},
		clock: &stubClock{now: time.Date(2025, 6, 2, 8, 58, 0, 0, time.UTC)},
	}
	assignments := fakeAssignments{
		"asg-1": {
			ID: "asg-1", AgencyID: "agency-a", EmployerID: "employer-1", EmployeeID: "emp-x",
			AgreedRate: decimal.RequireFromString("25.00"), PayRate: decimal.RequireFromString("18.00"),
		},
	}
	f.svc = NewService(f.repo, f.shifts, assignments, f.clock, nil, Options{})
	return f
}

func at(hhmm string) *time.Time {
	t := clock(hhmm)
	return &t
}

func (f *fixture) clockedOut(t *testing.T) *Timesheet {
	t.Helper()
	in, err := f.svc.ClockIn(context.Background(), ClockInInput{Actor: employeeX, ShiftID: "shift-1", At: at("09:00")})
	if err != nil {
		t.Fatalf("ClockIn returned error: %v", err)
	}
	out, err := f.svc.ClockOut(context.Background(), ClockOutInput{Actor: employeeX, TimesheetID: in.Timesheet.ID, BreakMinutes: 30, At: at("17:30")})
	if err != nil {
		t.Fatalf("ClockOut returned error: %v", err)
	}
	return out.Timesheet
}

func TestClockInOut(t *testing.T) {
	f := newFixture()

	if _, err := f.svc.ClockIn(context.Background(), ClockInInput{Actor: employeeY, ShiftID: "shift-1"}); !errors.Is(err, domainerr.ErrForbidden) {
		t.Fatalf("another employee cannot clock in, got %v", err)
	}

	in, err := f.svc.ClockIn(context.Background(), ClockInInput{Actor: employeeX, ShiftID: "shift-1", At: at("09:00")})
	if err != nil {
		t.Fatalf("ClockIn returned error: %v", err)
	}
	if in.Timesheet.Status != StatusPending || in.Shift.Status != shift.StatusInProgress {
		t.Fatalf("unexpected clock-in state: %s / %s", in.Timesheet.Status, in.Shift.Status)
	}

	if _, err := f.svc.ClockIn(context.Background(), ClockInInput{Actor: employeeX, ShiftID: "shift-1"}); !errors.Is(err, domainerr.ErrInvalidTransition) {
		t.Fatalf("second clock-in must fail, got %v", err)
	}

	if _, err := f.svc.ClockOut(context.Background(), ClockOutInput{Actor: employeeX, TimesheetID: in.Timesheet.ID, At: at("08:00")}); !errors.Is(err, ErrClockOutBeforeIn) {
		t.Fatalf("expected clock out before clock in, got %v", err)
	}

	out, err := f.svc.ClockOut(context.Background(), ClockOutInput{Actor: employeeX, TimesheetID: in.Timesheet.ID, BreakMinutes: 30, At: at("17:30")})
	if err != nil {
		t.Fatalf("ClockOut returned error: %v", err)
	}
	if got := out.Timesheet.HoursWorked.StringFixed(2); got != "8.00" {
		t.Fatalf("expected 8.00 hours, got %s", got)
	}
	if out.Shift.Status != shift.StatusCompleted {
		t.Fatalf("expected completed shift, got %s", out.Shift.Status)
	}
	if len(out.Events) != 2 || out.Events[1].Name != event.ShiftCompleted {
		t.Fatalf("expected clock-out and shift.completed events, got %+v", out.Events)
	}

	if _, err := f.svc.ClockOut(context.Background(), ClockOutInput{Actor: employeeX, TimesheetID: in.Timesheet.ID, At: at("18:00")}); !errors.Is(err, ErrAlreadyClockedOut) {
		t.Fatalf("expected already clocked out, got %v", err)
	}
}

func TestApproval_Order(t *testing.T) {
	f := newFixture()
	ts := f.clockedOut(t)

	_, err := f.svc.ApproveEmployer(context.Background(), DecisionInput{Actor: contactActor, TimesheetID: ts.ID})
	var te *domainerr.TransitionError
	if !errors.As(err, &te) || te.From != string(StatusPending) {
		t.Fatalf("expected transition error from pending, got %v", err)
	}
	if got := f.repo.timesheets[ts.ID].Status; got != StatusPending {
		t.Fatalf("status must stay pending, got %s", got)
	}
	if got := f.shifts["shift-1"].Status; got != shift.StatusCompleted {
		t.Fatalf("shift must stay completed, got %s", got)
	}

	if _, err := f.svc.ApproveAgency(context.Background(), DecisionInput{Actor: otherAgency, TimesheetID: ts.ID}); !errors.Is(err, domainerr.ErrForbidden) {
		t.Fatalf("other agency cannot approve, got %v", err)
	}
	agencyRes, err := f.svc.ApproveAgency(context.Background(), DecisionInput{Actor: agencyActor, TimesheetID: ts.ID})
	if err != nil {
		t.Fatalf("ApproveAgency returned error: %v", err)
	}
	if agencyRes.Timesheet.AgencyApprovedBy != agencyActor.UserID || agencyRes.Timesheet.AgencyApprovedAt == nil {
		t.Fatalf("approver not stamped: %+v", agencyRes.Timesheet)
	}
	if agencyRes.Shift.Status != shift.StatusAgencyApproved {
		t.Fatalf("expected shift agency_approved, got %s", agencyRes.Shift.Status)
	}

	employerRes, err := f.svc.ApproveEmployer(context.Background(), DecisionInput{Actor: contactActor, TimesheetID: ts.ID})
	if err != nil {
		t.Fatalf("ApproveEmployer returned error: %v", err)
	}
	if employerRes.Shift.Status != shift.StatusEmployerApproved {
		t.Fatalf("expected shift employer_approved, got %s", employerRes.Shift.Status)
	}
	ev := employerRes.Events[0]
	if ev.Name != event.TimesheetEmployerOK {
		t.Fatalf("unexpected event %s", ev.Name)
	}
	want := map[string]string{"timesheet_id": ts.ID, "hours": "8.00", "agreed_rate": "25.00", "pay_rate": "18.00"}
	for k, v := range want {
		if ev.Payload[k] != v {
			t.Fatalf("payload %s: expected %q, got %q", k, v, ev.Payload[k])
		}
	}
}

func TestApproval_RequiresClockOut(t *testing.T) {
	f := newFixture()
	in, err := f.svc.ClockIn(context.Background(), ClockInInput{Actor: employeeX, ShiftID: "shift-1"})
	if err != nil {
		t.Fatalf("ClockIn returned error: %v", err)
	}
	if _, err := f.svc.ApproveAgency(context.Background(), DecisionInput{Actor: agencyActor, TimesheetID: in.Timesheet.ID}); !errors.Is(err, ErrNotClockedOut) {
		t.Fatalf("expected clock out required, got %v", err)
	}
}

func TestDisputeAndResolve(t *testing.T) {
	f := newFixture()
	ts := f.clockedOut(t)
	if _, err := f.svc.ApproveAgency(context.Background(), DecisionInput{Actor: agencyActor, TimesheetID: ts.ID}); err != nil {
		t.Fatalf("ApproveAgency returned error: %v", err)
	}

	if _, err := f.svc.Dispute(context.Background(), DecisionInput{Actor: contactActor, TimesheetID: ts.ID}); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("expected reason required, got %v", err)
	}
	disputed, err := f.svc.Dispute(context.Background(), DecisionInput{Actor: contactActor, TimesheetID: ts.ID, Reason: "left at 16:00"})
	if err != nil {
		t.Fatalf("Dispute returned error: %v", err)
	}
	if disputed.Timesheet.Status != StatusDisputed || disputed.Timesheet.DisputeReason != "left at 16:00" {
		t.Fatalf("unexpected disputed timesheet: %+v", disputed.Timesheet)
	}
	if _, err := f.svc.ApproveEmployer(context.Background(), DecisionInput{Actor: contactActor, TimesheetID: ts.ID}); !errors.Is(err, domainerr.ErrInvalidTransition) {
		t.Fatalf("disputed timesheet cannot be employer approved, got %v", err)
	}

	resolved, err := f.svc.ResolveDispute(context.Background(), DecisionInput{Actor: agencyActor, TimesheetID: ts.ID})
	if err != nil {
		t.Fatalf("ResolveDispute returned error: %v", err)
	}
	if resolved.Timesheet.Status != StatusPending || resolved.Timesheet.AgencyApprovedAt != nil {
		t.Fatalf("resolution must restart approval: %+v", resolved.Timesheet)
	}

	if _, err := f.svc.ApproveAgency(context.Background(), DecisionInput{Actor: agencyActor, TimesheetID: ts.ID}); err != nil {
		t.Fatalf("re-approval returned error: %v", err)
	}
	final, err := f.svc.ApproveEmployer(context.Background(), DecisionInput{Actor: contactActor, TimesheetID: ts.ID})
	if err != nil {
		t.Fatalf("ApproveEmployer returned error: %v", err)
	}
	if final.Timesheet.Status != StatusEmployerApproved {
		t.Fatalf("expected employer_approved, got %s", final.Timesheet.Status)
	}
}

func TestReject(t *testing.T) {
	f := newFixture()
	ts := f.clockedOut(t)

	res, err := f.svc.Reject(context.Background(), DecisionInput{Actor: agencyActor, TimesheetID: ts.ID, Reason: "wrong shift"})
	if err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if res.Timesheet.Status != StatusRejected || res.Timesheet.RejectionReason != "wrong shift" {
		t.Fatalf("unexpected rejected timesheet: %+v", res.Timesheet)
	}
	if _, err := f.svc.ApproveAgency(context.Background(), DecisionInput{Actor: agencyActor, TimesheetID: ts.ID}); !errors.Is(err, domainerr.ErrInvalidTransition) {
		t.Fatalf("rejected is terminal, got %v", err)
	}
	if _, err := f.svc.Reject(context.Background(), DecisionInput{Actor: employeeX, TimesheetID: ts.ID, Reason: "x"}); !errors.Is(err, domainerr.ErrForbidden) {
		t.Fatalf("employee cannot reject, got %v", err)
	}
}
