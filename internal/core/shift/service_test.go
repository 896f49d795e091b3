package shift

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
	"github.com/ogurasousui/staffing-engine/internal/core/workforce"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeRepo struct {
	shifts    map[string]*Shift
	templates map[string]*Template
	offers    map[string]*Offer
	seq       int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shifts:    make(map[string]*Shift),
		templates: make(map[string]*Template),
		offers:    make(map[string]*Offer),
	}
}

func (r *fakeRepo) nextID(prefix string) string {
	r.seq++
	return fmt.Sprintf("%s-%d", prefix, r.seq)
}

func (r *fakeRepo) Create(_ context.Context, s *Shift) (*Shift, error) {
	clone := *s
	clone.ID = r.nextID("shift")
	r.shifts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) InsertIfFree(ctx context.Context, s *Shift) (*Shift, error) {
	for _, existing := range r.shifts {
		if existing.EmployeeID != s.EmployeeID || existing.Status == StatusCancelled || existing.Status == StatusNoShow {
			continue
		}
		if usecase.Overlaps(existing.StartTime, existing.EndTime, s.StartTime, s.EndTime) {
			return nil, ErrSlotTaken
		}
	}
	return r.Create(ctx, s)
}

func (r *fakeRepo) Update(_ context.Context, s *Shift) (*Shift, error) {
	if _, ok := r.shifts[s.ID]; !ok {
		return nil, ErrShiftNotFound
	}
	clone := *s
	r.shifts[s.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, ErrShiftNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *fakeRepo) LockByID(ctx context.Context, id string) (*Shift, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeRepo) List(_ context.Context, filter ListFilter) ([]*Shift, error) {
	var out []*Shift
	for _, id := range slices.Sorted(maps.Keys(r.shifts)) {
		s := r.shifts[id]
		if filter.EmployeeID != "" && s.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.AgencyID != "" && s.AgencyID != filter.AgencyID {
			continue
		}
		if s.StartTime.Before(filter.From) || !s.StartTime.Before(filter.To) {
			continue
		}
		clone := *s
		out = append(out, &clone)
	}
	slices.SortFunc(out, func(a, b *Shift) int { return a.StartTime.Compare(b.StartTime) })
	return out, nil
}

func (r *fakeRepo) CountByTemplate(_ context.Context, templateID string) (int, error) {
	n := 0
	for _, s := range r.shifts {
		if s.TemplateID == templateID {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) CreateTemplate(_ context.Context, t *Template) (*Template, error) {
	clone := *t
	clone.ID = r.nextID("tmpl")
	r.templates[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) FindTemplateByID(_ context.Context, id string) (*Template, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *fakeRepo) CreateOffer(_ context.Context, o *Offer) (*Offer, error) {
	clone := *o
	clone.ID = r.nextID("offer")
	r.offers[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) UpdateOffer(_ context.Context, o *Offer) (*Offer, error) {
	clone := *o
	r.offers[o.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) FindOfferByID(_ context.Context, id string) (*Offer, error) {
	o, ok := r.offers[id]
	if !ok {
		return nil, ErrOfferNotFound
	}
	clone := *o
	return &clone, nil
}

type fakeAvailabilityRepo struct {
	availability.Repository
	shifts *fakeRepo
}

func (f fakeAvailabilityRepo) ListShiftSlots(_ context.Context, employeeID string, _, _ time.Time) ([]availability.ShiftSlot, error) {
	var out []availability.ShiftSlot
	for _, s := range f.shifts.shifts {
		if s.EmployeeID != employeeID {
			continue
		}
		out = append(out, availability.ShiftSlot{
			ShiftID:   s.ID,
			AgencyID:  s.AgencyID,
			Status:    availability.ShiftStatus(s.Status),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return out, nil
}

func (fakeAvailabilityRepo) ListApprovedTimeOff(context.Context, string, time.Time, time.Time) ([]*availability.TimeOffRequest, error) {
	return nil, nil
}

func (fakeAvailabilityRepo) ListBlocks(context.Context, string) ([]*availability.Block, error) {
	return nil, nil
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

type fakeWorkers map[string]*workforce.AgencyEmployee

func (f fakeWorkers) FindAgencyEmployeeByID(_ context.Context, id string) (*workforce.AgencyEmployee, error) {
	ae, ok := f[id]
	if !ok {
		return nil, workforce.ErrAgencyEmployeeNotFound
	}
	clone := *ae
	return &clone, nil
}

type noConflicts struct{}

func (noConflicts) Check(context.Context, availability.CheckInput) (availability.Result, error) {
	return availability.Result{}, nil
}

type recordingLocker struct {
	locked []string
}

func (l *recordingLocker) LockEmployee(_ context.Context, employeeID string) error {
	l.locked = append(l.locked, employeeID)
	return nil
}

var (
	agencyActorA = actor.Actor{UserID: "user-agency-a", Role: actor.RoleAgencyAdmin, AgencyID: "agency-a"}
	agencyActorB = actor.Actor{UserID: "user-agency-b", Role: actor.RoleAgent, AgencyID: "agency-b"}
	employeeX    = actor.Actor{UserID: "user-x", Role: actor.RoleEmployee, EmployeeID: "emp-x"}
	employeeY    = actor.Actor{UserID: "user-y", Role: actor.RoleEmployee, EmployeeID: "emp-y"}
)

type fixture struct {
	repo        *fakeRepo
	assignments fakeAssignments
	locker      *recordingLocker
	clock       *stubClock
	svc         *Service
}

func newFixture() *fixture {
	return newFixtureWith(nil)
}

func newFixtureWith(conflicts ConflictChecker) *fixture {
	repo := newFakeRepo()
	f := &fixture{
		repo: repo,
		assignments: fakeAssignments{
			"asg-a": {
				ID: "asg-a", AgencyID: "agency-a", EmployerID: "employer-1", EmployeeID: "emp-x", AgencyEmployeeID: "ae-a",
				StartDate: date("2025-06-01"), EndDate: date("2025-06-30"),
				DailyStart: 9 * 60, DailyEnd: 17 * 60,
				AgreedRate: decimal.RequireFromString("25.00"), Status: assignment.StatusActive,
			},
			"asg-b": {
				ID: "asg-b", AgencyID: "agency-b", EmployerID: "employer-2", EmployeeID: "emp-x", AgencyEmployeeID: "ae-b",
				StartDate: date("2025-06-01"), EndDate: date("2025-06-30"),
				DailyStart: 12 * 60, DailyEnd: 18 * 60,
				AgreedRate: decimal.RequireFromString("22.50"), Status: assignment.StatusActive,
			},
			"asg-done": {
				ID: "asg-done", AgencyID: "agency-a", EmployeeID: "emp-x", AgencyEmployeeID: "ae-a",
				StartDate: date("2025-05-01"), EndDate: date("2025-05-31"), Status: assignment.StatusCompleted,
			},
		},
		locker: &recordingLocker{},
		clock:  &stubClock{now: time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)},
	}
	workers := fakeWorkers{
		"ae-a":  {ID: "ae-a", AgencyID: "agency-a", EmployeeID: "emp-x", Status: workforce.StatusActive},
		"ae-b":  {ID: "ae-b", AgencyID: "agency-b", EmployeeID: "emp-x", Status: workforce.StatusActive},
		"ae-y":  {ID: "ae-y", AgencyID: "agency-a", EmployeeID: "emp-y", Status: workforce.StatusActive},
		"ae-y2": {ID: "ae-y2", AgencyID: "agency-b", EmployeeID: "emp-y", Status: workforce.StatusActive},
	}
	if conflicts == nil {
		conflicts = availability.NewDetector(fakeAvailabilityRepo{shifts: repo})
	}
	f.svc = NewService(repo, f.assignments, workers, conflicts, f.locker, f.clock, usecase.NoopTransactionManager(), Options{})
	return f
}

func (f *fixture) createShift(t *testing.T, a actor.Actor, assignmentID, day, start, end string) *Shift {
	t.Helper()
	res, err := f.svc.CreateShift(context.Background(), CreateShiftInput{
		Actor: a, AssignmentID: assignmentID, Date: date(day), StartTime: start, EndTime: end,
	})
	if err != nil {
		t.Fatalf("CreateShift returned error: %v", err)
	}
	return res.Shift
}

// assertNoDoubleBooking は有効なシフト同士が社員単位で重ならないことを確認します。
func assertNoDoubleBooking(t *testing.T, repo *fakeRepo) {
	t.Helper()
	var live []*Shift
	for _, s := range repo.shifts {
		if s.Staffed() && s.Status != StatusCancelled && s.Status != StatusNoShow {
			live = append(live, s)
		}
	}
	for i, a := range live {
		for _, b := range live[i+1:] {
			if a.EmployeeID == b.EmployeeID && usecase.Overlaps(a.StartTime, a.EndTime, b.StartTime, b.EndTime) {
				t.Fatalf("shifts %s and %s overlap for %s", a.ID, b.ID, a.EmployeeID)
			}
		}
	}
}

func TestCreateShift_CrossAgencyConflict(t *testing.T) {
	f := newFixture()
	first := f.createShift(t, agencyActorA, "asg-a", "2025-06-01", "09:00", "17:00")
	if first.Status != StatusAssigned || first.EmployeeID != "emp-x" {
		t.Fatalf("unexpected shift: %+v", first)
	}
	if !first.HourlyRate.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("hourly rate should default to agreed rate, got %s", first.HourlyRate)
	}

	_, err := f.svc.CreateShift(context.Background(), CreateShiftInput{
		Actor: agencyActorB, AssignmentID: "asg-b", Date: date("2025-06-01"), StartTime: "12:00", EndTime: "18:00",
	})
	var availErr *domainerr.AvailabilityError
	if !errors.As(err, &availErr) {
		t.Fatalf("expected availability error, got %v", err)
	}
	if availErr.Kind != domainerr.ConflictKindShift || availErr.ConflictingID != first.ID {
		t.Fatalf("unexpected conflict: %+v", availErr)
	}
	if len(f.repo.shifts) != 1 {
		t.Fatalf("expected only the first shift to exist, got %d", len(f.repo.shifts))
	}
	if slices.Compare(f.locker.locked, []string{"emp-x", "emp-x"}) != 0 {
		t.Fatalf("expected employee lock on both attempts, got %v", f.locker.locked)
	}

	f.createShift(t, agencyActorB, "asg-b", "2025-06-01", "17:00", "20:00")
	assertNoDoubleBooking(t, f.repo)
}

func TestCreateShift_InsertGuard(t *testing.T) {
	f := newFixtureWith(noConflicts{})
	f.createShift(t, agencyActorA, "asg-a", "2025-06-02", "09:00", "17:00")

	_, err := f.svc.CreateShift(context.Background(), CreateShiftInput{
		Actor: agencyActorB, AssignmentID: "asg-b", Date: date("2025-06-02"), StartTime: "16:00", EndTime: "20:00",
	})
	if !errors.Is(err, ErrSlotTaken) || !errors.Is(err, domainerr.ErrAvailability) {
		t.Fatalf("expected slot taken availability error, got %v", err)
	}
}

func TestCreateShift_Validation(t *testing.T) {
	f := newFixture()
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name string
		in   CreateShiftInput
		want error
	}{
		{name: "outside assignment", in: CreateShiftInput{Actor: agencyActorA, AssignmentID: "asg-a", Date: date("2025-07-01"), StartTime: "09:00", EndTime: "17:00"}, want: ErrOutsideAssignment},
		{name: "closed assignment", in: CreateShiftInput{Actor: agencyActorA, AssignmentID: "asg-done", Date: date("2025-05-10"), StartTime: "09:00", EndTime: "17:00"}, want: ErrAssignmentClosed},
		{name: "bad time", in: CreateShiftInput{Actor: agencyActorA, AssignmentID: "asg-a", Date: date("2025-06-03"), StartTime: "9", EndTime: "17:00"}, want: ErrInvalidTime},
		{name: "negative rate", in: CreateShiftInput{Actor: agencyActorA, AssignmentID: "asg-a", Date: date("2025-06-03"), StartTime: "09:00", EndTime: "17:00", HourlyRate: &negative}, want: ErrInvalidRate},
		{name: "other agency", in: CreateShiftInput{Actor: agencyActorB, AssignmentID: "asg-a", Date: date("2025-06-03"), StartTime: "09:00", EndTime: "17:00"}, want: actor.ErrForbidden},
		{name: "unknown assignment", in: CreateShiftInput{Actor: agencyActorA, AssignmentID: "asg-missing", Date: date("2025-06-03"), StartTime: "09:00", EndTime: "17:00"}, want: assignment.ErrAssignmentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.svc.CreateShift(context.Background(), tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateShift_Overnight(t *testing.T) {
	f := newFixture()
	sh := f.createShift(t, agencyActorA, "asg-a", "2025-06-05", "22:00", "06:00")
	wantEnd := time.Date(2025, 6, 6, 6, 0, 0, 0, time.UTC)
	if !sh.EndTime.Equal(wantEnd) {
		t.Fatalf("expected overnight end %s, got %s", wantEnd, sh.EndTime)
	}

	_, err := f.svc.CreateShift(context.Background(), CreateShiftInput{
		Actor: agencyActorB, AssignmentID: "asg-b", Date: date("2025-06-06"), StartTime: "05:00", EndTime: "08:00",
	})
	if !errors.Is(err, domainerr.ErrAvailability) {
		t.Fatalf("expected overnight conflict, got %v", err)
	}
}

func TestGenerateFromTemplate_SkipsConflicts(t *testing.T) {
	f := newFixture()
	taken := f.createShift(t, agencyActorA, "asg-a", "2025-06-01", "09:00", "17:00")

	tmpl, err := f.svc.CreateTemplate(context.Background(), CreateTemplateInput{
		Actor: agencyActorB, AssignmentID: "asg-b", DayOfWeek: time.Sunday, StartTime: "12:00", EndTime: "18:00",
	})
	if err != nil {
		t.Fatalf("CreateTemplate returned error: %v", err)
	}
	if tmpl.Recurrence != RecurrenceWeekly {
		t.Fatalf("expected weekly default, got %s", tmpl.Recurrence)
	}

	res, err := f.svc.GenerateFromTemplate(context.Background(), GenerateFromTemplateInput{
		Actor: agencyActorB, TemplateID: tmpl.ID, RangeStart: date("2025-05-01"), RangeEnd: date("2025-07-31"),
	})
	if err != nil {
		t.Fatalf("GenerateFromTemplate returned error: %v", err)
	}

	var days []string
	for _, sh := range res.Shifts {
		days = append(days, sh.Date.Format(usecase.DateLayout))
		if sh.TemplateID != tmpl.ID || sh.AgencyID != "agency-b" {
			t.Fatalf("unexpected generated shift: %+v", sh)
		}
	}
	if want := []string{"2025-06-08", "2025-06-15", "2025-06-22", "2025-06-29"}; slices.Compare(days, want) != 0 {
		t.Fatalf("expected %v, got %v", want, days)
	}
	if len(res.Skipped) != 1 || !res.Skipped[0].Equal(taken.Date) {
		t.Fatalf("expected 2025-06-01 skipped, got %v", res.Skipped)
	}
	if len(res.Events) != len(res.Shifts) {
		t.Fatalf("expected one event per shift, got %d", len(res.Events))
	}
	assertNoDoubleBooking(t, f.repo)
}

func TestFromTemplate_MaxOccurrencesAcrossRuns(t *testing.T) {
	f := newFixture()
	maxOccurrences := 3
	tmpl, err := f.svc.CreateTemplate(context.Background(), CreateTemplateInput{
		Actor: agencyActorA, AssignmentID: "asg-a", DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "17:00",
		MaxOccurrences: &maxOccurrences,
	})
	if err != nil {
		t.Fatalf("CreateTemplate returned error: %v", err)
	}

	in := GenerateFromTemplateInput{Actor: agencyActorA, TemplateID: tmpl.ID, RangeStart: date("2025-06-01"), RangeEnd: date("2025-06-10")}
	first, err := f.svc.GenerateFromTemplate(context.Background(), in)
	if err != nil {
		t.Fatalf("GenerateFromTemplate returned error: %v", err)
	}
	if len(first.Shifts) != 2 {
		t.Fatalf("expected 2 shifts in the first range, got %d", len(first.Shifts))
	}

	in.RangeEnd = date("2025-06-30")
	in.RangeStart = date("2025-06-11")
	second, err := f.svc.GenerateFromTemplate(context.Background(), in)
	if err != nil {
		t.Fatalf("GenerateFromTemplate returned error: %v", err)
	}
	if len(second.Shifts) != 1 || second.Shifts[0].Date.Format(usecase.DateLayout) != "2025-06-16" {
		t.Fatalf("expected only 2025-06-16 in the second run, got %+v", second.Shifts)
	}

	third, err := f.svc.GenerateFromTemplate(context.Background(), in)
	if err != nil {
		t.Fatalf("GenerateFromTemplate returned error: %v", err)
	}
	if len(third.Shifts) != 0 {
		t.Fatalf("template is exhausted, got %d shifts", len(third.Shifts))
	}
}

func TestFromTemplate_IsLazy(t *testing.T) {
	f := newFixture()
	tmpl, err := f.svc.CreateTemplate(context.Background(), CreateTemplateInput{
		Actor: agencyActorA, AssignmentID: "asg-a", DayOfWeek: time.Tuesday, StartTime: "09:00", EndTime: "17:00",
	})
	if err != nil {
		t.Fatalf("CreateTemplate returned error: %v", err)
	}

	seq := f.svc.FromTemplate(context.Background(), GenerateFromTemplateInput{Actor: agencyActorA, TemplateID: tmpl.ID}, nil)
	for sh, err := range seq {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sh.Date.Format(usecase.DateLayout) != "2025-06-03" {
			t.Fatalf("expected first Tuesday, got %s", sh.Date)
		}
		break
	}
	if len(f.repo.shifts) != 1 {
		t.Fatalf("stopping the sequence should stop generation, got %d shifts", len(f.repo.shifts))
	}
}

func TestFromTemplate_Forbidden(t *testing.T) {
	f := newFixture()
	tmpl, err := f.svc.CreateTemplate(context.Background(), CreateTemplateInput{
		Actor: agencyActorA, AssignmentID: "asg-a", DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "17:00",
	})
	if err != nil {
		t.Fatalf("CreateTemplate returned error: %v", err)
	}
	_, err = f.svc.GenerateFromTemplate(context.Background(), GenerateFromTemplateInput{Actor: agencyActorB, TemplateID: tmpl.ID})
	if !errors.Is(err, domainerr.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestGenerateForAssignment(t *testing.T) {
	f := newFixture()
	f.createShift(t, agencyActorA, "asg-a", "2025-06-03", "11:00", "13:00")

	res, err := f.svc.GenerateForAssignment(context.Background(), GenerateForAssignmentInput{
		Actor: agencyActorB, AssignmentID: "asg-b", RangeStart: date("2025-06-02"), RangeEnd: date("2025-06-04"),
	})
	if err != nil {
		t.Fatalf("GenerateForAssignment returned error: %v", err)
	}
	if len(res.Shifts) != 2 || len(res.Skipped) != 1 {
		t.Fatalf("expected 2 shifts and 1 skip, got %d and %d", len(res.Shifts), len(res.Skipped))
	}
	if got := res.Shifts[0].StartTime; !got.Equal(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected daily window from the request, got %s", got)
	}
	if !res.Shifts[0].HourlyRate.Equal(decimal.RequireFromString("22.50")) {
		t.Fatalf("unexpected hourly rate %s", res.Shifts[0].HourlyRate)
	}
	assertNoDoubleBooking(t, f.repo)
}

func TestOfferFlow(t *testing.T) {
	f := newFixture()
	open, err := f.svc.CreateShift(context.Background(), CreateShiftInput{
		Actor: agencyActorA, AssignmentID: "asg-a", Date: date("2025-06-04"), StartTime: "09:00", EndTime: "17:00", Open: true,
	})
	if err != nil {
		t.Fatalf("CreateShift returned error: %v", err)
	}
	if open.Shift.Status != StatusOpen || open.Shift.Staffed() {
		t.Fatalf("expected unstaffed open shift, got %+v", open.Shift)
	}

	offered, err := f.svc.OfferShift(context.Background(), OfferInput{Actor: agencyActorA, ShiftID: open.Shift.ID, AgencyEmployeeID: "ae-y"})
	if err != nil {
		t.Fatalf("OfferShift returned error: %v", err)
	}
	if offered.Shift.Status != StatusOffered || !offered.Offer.ExpiresAt.Equal(f.clock.now.Add(defaultOfferTTL)) {
		t.Fatalf("unexpected offer result: %+v %+v", offered.Shift, offered.Offer)
	}

	if _, err := f.svc.AcceptOffer(context.Background(), OfferActionInput{Actor: employeeX, OfferID: offered.Offer.ID}); !errors.Is(err, domainerr.ErrForbidden) {
		t.Fatalf("another employee cannot accept, got %v", err)
	}

	accepted, err := f.svc.AcceptOffer(context.Background(), OfferActionInput{Actor: employeeY, OfferID: offered.Offer.ID})
	if err != nil {
		t.Fatalf("AcceptOffer returned error: %v", err)
	}
	if accepted.Shift.Status != StatusAssigned || accepted.Shift.EmployeeID != "emp-y" || accepted.Shift.AgencyEmployeeID != "ae-y" {
		t.Fatalf("unexpected accepted shift: %+v", accepted.Shift)
	}
	if accepted.Offer.Status != OfferAccepted || accepted.Offer.RespondedAt == nil {
		t.Fatalf("unexpected accepted offer: %+v", accepted.Offer)
	}

	_, err = f.svc.AcceptOffer(context.Background(), OfferActionInput{Actor: employeeY, OfferID: offered.Offer.ID})
	var te *domainerr.TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected transition error for a decided offer, got %v", err)
	}
}

func TestAcceptOffer_RechecksConflicts(t *testing.T) {
	f := newFixture()
	f.createShift(t, agencyActorA, "asg-a", "2025-06-04", "09:00", "17:00")

	open, err := f.svc.CreateShift(context.Background(), CreateShiftInput{
		Actor: agencyActorB, AssignmentID: "asg-b", Date: date("2025-06-04"), StartTime: "12:00", EndTime: "18:00", Open: true,
	})
	if err != nil {
		t.Fatalf("CreateShift returned error: %v", err)
	}
	offered, err := f.svc.OfferShift(context.Background(), OfferInput{Actor: agencyActorB, ShiftID: open.Shift.ID, AgencyEmployeeID: "ae-b"})
	if err != nil {
		t.Fatalf("OfferShift returned error: %v", err)
	}

	_, err = f.svc.AcceptOffer(context.Background(), OfferActionInput{Actor: employeeX, OfferID: offered.Offer.ID})
	if !errors.Is(err, domainerr.ErrAvailability) {
		t.Fatalf("expected availability error, got %v", err)
	}
	if got := f.repo.shifts[open.Shift.ID]; got.Status != StatusOffered || got.Staffed() {
		t.Fatalf("shift should stay offered and unstaffed, got %+v", got)
	}
	if !slices.Contains(f.locker.locked, "emp-x") {
		t.Fatalf("expected employee lock before re-check")
	}
	assertNoDoubleBooking(t, f.repo)
}

func TestRejectAndExpiredOffer(t *testing.T) {
	f := newFixture()
	open, err := f.svc.CreateShift(context.Background(), CreateShiftInput{
		Actor: agencyActorB, AssignmentID: "asg-b", Date: date("2025-06-05"), StartTime: "12:00", EndTime: "18:00", Open: true,
	})
	if err != nil {
		t.Fatalf("CreateShift returned error: %v", err)
	}
	offered, err := f.svc.OfferShift(context.Background(), OfferInput{Actor: agencyActorB, ShiftID: open.Shift.ID, AgencyEmployeeID: "ae-y2"})
	if err != nil {
		t.Fatalf("OfferShift returned error: %v", err)
	}
	rejected, err := f.svc.RejectOffer(context.Background(), OfferActionInput{Actor: employeeY, OfferID: offered.Offer.ID})
	if err != nil {
		t.Fatalf("RejectOffer returned error: %v", err)
	}
	if rejected.Shift.Status != StatusOpen {
		t.Fatalf("expected shift back to open, got %s", rejected.Shift.Status)
	}

	again, err := f.svc.OfferShift(context.Background(), OfferInput{Actor: agencyActorB, ShiftID: open.Shift.ID, AgencyEmployeeID: "ae-y2"})
	if err != nil {
		t.Fatalf("OfferShift returned error: %v", err)
	}
	f.clock.now = f.clock.now.Add(defaultOfferTTL + time.Minute)
	if _, err := f.svc.AcceptOffer(context.Background(), OfferActionInput{Actor: employeeY, OfferID: again.Offer.ID}); !errors.Is(err, ErrOfferExpired) {
		t.Fatalf("expected expired offer, got %v", err)
	}

	if _, err := f.svc.OfferShift(context.Background(), OfferInput{Actor: agencyActorB, ShiftID: open.Shift.ID, AgencyEmployeeID: "ae-a"}); !errors.Is(err, domainerr.ErrInvalidTransition) {
		t.Fatalf("offered shift cannot be offered again, got %v", err)
	}
}

func TestOfferShift_IneligibleEmployee(t *testing.T) {
	f := newFixture()
	open, err := f.svc.CreateShift(context.Background(), CreateShiftInput{
		Actor: agencyActorA, AssignmentID: "asg-a", Date: date("2025-06-05"), StartTime: "09:00", EndTime: "17:00", Open: true,
	})
	if err != nil {
		t.Fatalf("CreateShift returned error: %v", err)
	}
	if _, err := f.svc.OfferShift(context.Background(), OfferInput{Actor: agencyActorA, ShiftID: open.Shift.ID, AgencyEmployeeID: "ae-b"}); !errors.Is(err, ErrEmployeeNotEligible) {
		t.Fatalf("expected ineligible employee, got %v", err)
	}
}

func TestChangeStatus(t *testing.T) {
	f := newFixture()
	sh := f.createShift(t, agencyActorA, "asg-a", "2025-06-06", "09:00", "17:00")

	if _, err := f.svc.ChangeStatus(context.Background(), ChangeStatusInput{Actor: agencyActorA, ID: sh.ID, Status: StatusInProgress}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("in_progress is driven by clock-in, got %v", err)
	}

	res, err := f.svc.ChangeStatus(context.Background(), ChangeStatusInput{Actor: agencyActorA, ID: sh.ID, Status: StatusCancelled})
	if err != nil {
		t.Fatalf("ChangeStatus returned error: %v", err)
	}
	if res.Shift.Status != StatusCancelled || res.Events[0].Payload["from"] != string(StatusAssigned) {
		t.Fatalf("unexpected result: %+v", res)
	}

	_, err = f.svc.ChangeStatus(context.Background(), ChangeStatusInput{Actor: agencyActorA, ID: sh.ID, Status: StatusNoShow})
	var te *domainerr.TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected transition error, got %v", err)
	}
	if f.repo.shifts[sh.ID].Status != StatusCancelled {
		t.Fatalf("status must be unchanged after a rejected transition")
	}

	f.createShift(t, agencyActorB, "asg-b", "2025-06-06", "12:00", "18:00")
	assertNoDoubleBooking(t, f.repo)
}

func TestListShifts_Scope(t *testing.T) {
	f := newFixture()
	f.createShift(t, agencyActorA, "asg-a", "2025-06-02", "09:00", "17:00")
	f.createShift(t, agencyActorB, "asg-b", "2025-06-03", "12:00", "18:00")

	from, to := date("2025-06-01"), date("2025-07-01")
	mine, err := f.svc.ListShifts(context.Background(), ListInput{Actor: employeeX, EmployeeID: "emp-x", From: from, To: to})
	if err != nil {
		t.Fatalf("ListShifts returned error: %v", err)
	}
	if len(mine) != 2 || !mine[0].StartTime.Before(mine[1].StartTime) {
		t.Fatalf("employee should see both agencies' shifts in order, got %d", len(mine))
	}

	agencyView, err := f.svc.ListShifts(context.Background(), ListInput{Actor: agencyActorA, EmployeeID: "emp-x", From: from, To: to})
	if err != nil {
		t.Fatalf("ListShifts returned error: %v", err)
	}
	if len(agencyView) != 1 || agencyView[0].AgencyID != "agency-a" {
		t.Fatalf("agency should only see its own shifts, got %+v", agencyView)
	}

	if _, err := f.svc.ListShifts(context.Background(), ListInput{Actor: employeeY, EmployeeID: "emp-x", From: from, To: to}); !errors.Is(err, domainerr.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := f.svc.ListShifts(context.Background(), ListInput{Actor: employeeX, EmployeeID: "emp-x", From: to, To: from}); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected invalid range, got %v", err)
	}
}
