package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/contract"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/event"
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
	assignments     map[string]*Assignment
	sources         map[string]*Source
	cancelledShifts map[string]time.Time
	seq             int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		assignments:     make(map[string]*Assignment),
		sources:         make(map[string]*Source),
		cancelledShifts: make(map[string]time.Time),
	}
}

func (r *fakeRepo) Create(_ context.Context, a *Assignment) (*Assignment, error) {
	for _, existing := range r.assignments {
		if existing.AgencyResponseID == a.AgencyResponseID {
			return nil, ErrResponseAlreadyLinked
		}
	}
	clone := *a
	r.seq++
	clone.ID = fmt.Sprintf("asg-%d", r.seq)
	r.assignments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) Update(_ context.Context, a *Assignment) (*Assignment, error) {
	if _, ok := r.assignments[a.ID]; !ok {
		return nil, ErrAssignmentNotFound
	}
	clone := *a
	r.assignments[a.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*Assignment, error) {
	a, ok := r.assignments[id]
	if !ok {
		return nil, ErrAssignmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *fakeRepo) LockByID(ctx context.Context, id string) (*Assignment, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeRepo) FindByResponseID(_ context.Context, responseID string) (*Assignment, error) {
	for _, a := range r.assignments {
		if a.AgencyResponseID == responseID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, ErrAssignmentNotFound
}

func (r *fakeRepo) List(_ context.Context, filter ListFilter) ([]*Assignment, string, error) {
	var out []*Assignment
	for _, a := range r.assignments {
		if filter.AgencyID != "" && a.AgencyID != filter.AgencyID {
			continue
		}
		if filter.EmployeeID != "" && a.EmployeeID != filter.EmployeeID {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	return out, "", nil
}

func (r *fakeRepo) FindSource(_ context.Context, responseID string) (*Source, error) {
	src, ok := r.sources[responseID]
	if !ok {
		return nil, ErrResponseNotFound
	}
	clone := *src
	return &clone, nil
}

func (r *fakeRepo) CancelFutureShifts(_ context.Context, assignmentID string, after time.Time) (int64, error) {
	r.cancelledShifts[assignmentID] = after
	return 2, nil
}

func (r *fakeRepo) slots(employeeID string) []availability.AssignmentSlot {
	var out []availability.AssignmentSlot
	for _, a := range r.assignments {
		if a.EmployeeID != employeeID {
			continue
		}
		out = append(out, availability.AssignmentSlot{AssignmentID: a.ID, AgencyID: a.AgencyID, Status: string(a.Status), StartDate: a.StartDate, EndDate: a.EndDate})
	}
	return out
}

type fakeAvailabilityRepo struct {
	availability.Repository
	assignments *fakeRepo
}

func (f fakeAvailabilityRepo) ListAssignmentSlots(_ context.Context, employeeID string, _, _ time.Time) ([]availability.AssignmentSlot, error) {
	return f.assignments.slots(employeeID), nil
}

type fakeContracts map[string]*contract.Contract

func (f fakeContracts) FindByParties(_ context.Context, employerID, agencyID string) (*contract.Contract, error) {
	c, ok := f[employerID+"/"+agencyID]
	if !ok {
		return nil, contract.ErrContractNotFound
	}
	return c, nil
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

type recordingLocker struct {
	locked []string
}

func (l *recordingLocker) LockEmployee(_ context.Context, employeeID string) error {
	l.locked = append(l.locked, employeeID)
	return nil
}

type fixture struct {
	repo      *fakeRepo
	contracts fakeContracts
	workers   fakeWorkers
	locker    *recordingLocker
	clock     *stubClock
	svc       *Service
}

var (
	employerActor = actor.Actor{UserID: "user-employer", Role: actor.RoleEmployerAdmin, EmployerID: "employer-1"}
	contactActor  = actor.Actor{UserID: "user-contact", Role: actor.RoleContact, EmployerID: "employer-1"}
	agencyActorA  = actor.Actor{UserID: "user-agency-a", Role: actor.RoleAgencyAdmin, AgencyID: "agency-a"}
	agencyActorB  = actor.Actor{UserID: "user-agency-b", Role: actor.RoleAgencyAdmin, AgencyID: "agency-b"}
)

func day(s string) time.Time {
	t, err := time.Parse(usecase.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newFixture() *fixture {
	repo := newFakeRepo()
	f := &fixture{
		repo: repo,
		contracts: fakeContracts{
			"employer-1/agency-a": {ID: "contract-a", EmployerID: "employer-1", AgencyID: "agency-a", Status: contract.StatusActive},
			"employer-1/agency-b": {ID: "contract-b", EmployerID: "employer-1", AgencyID: "agency-b", Status: contract.StatusActive},
		},
		workers: fakeWorkers{
			"ae-a": {ID: "ae-a", AgencyID: "agency-a", EmployeeID: "emp-x", PayRate: decimal.RequireFromString("18.00"), Status: workforce.StatusActive},
			"ae-b": {ID: "ae-b", AgencyID: "agency-b", EmployeeID: "emp-x", PayRate: decimal.RequireFromString("17.00"), Status: workforce.StatusActive},
		},
		locker: &recordingLocker{},
		clock:  &stubClock{now: time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)},
	}
	detector := availability.NewDetector(fakeAvailabilityRepo{assignments: repo})
	f.svc = NewService(repo, f.contracts, f.workers, detector, f.locker, f.clock, nil, Options{})
	return f
}

func (f *fixture) addSource(id, agencyID, agencyEmployeeID, rate, start, end string) {
	f.repo.sources[id] = &Source{
		ResponseID:       id,
		ResponseStatus:   "accepted",
		ShiftRequestID:   "req-" + id,
		EmployerID:       "employer-1",
		AgencyID:         agencyID,
		AgencyEmployeeID: agencyEmployeeID,
		LocationID:       "loc-1",
		Role:             "picker",
		ProposedRate:     decimal.RequireFromString(rate),
		StartDate:        day(start),
		EndDate:          day(end),
		DailyStart:       9 * 60,
		DailyEnd:         17 * 60,
	}
}

func TestService_CreateFromResponse_RateInvariants(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.addSource("resp-1", "agency-a", "ae-a", "25.00", "2025-06-01", "2025-06-30")

	res, err := f.svc.CreateFromResponse(context.Background(), CreateFromResponseInput{Actor: contactActor, ResponseID: "resp-1"})
	if err != nil {
		t.Fatalf("CreateFromResponse returned error: %v", err)
	}
	a := res.Assignment
	if a.Status != StatusPending || a.ContractID != "contract-a" || a.EmployeeID != "emp-x" {
		t.Fatalf("unexpected assignment: %+v", a)
	}
	if !a.AgreedRate.Equal(decimal.RequireFromString("25")) || !a.PayRate.Equal(decimal.RequireFromString("18")) {
		t.Fatalf("rates must be copied from response and agency employee, got %s / %s", a.AgreedRate, a.PayRate)
	}
	if !a.MarkupAmount.Equal(a.AgreedRate.Sub(a.PayRate)) {
		t.Fatalf("markup amount mismatch: %s", a.MarkupAmount)
	}
	if a.MarkupPercent.StringFixed(2) != "38.89" {
		t.Fatalf("expected markup percent 38.89, got %s", a.MarkupPercent)
	}
	if len(f.locker.locked) != 1 || f.locker.locked[0] != "emp-x" {
		t.Fatalf("expected employee lock, got %v", f.locker.locked)
	}
	if len(res.Events) != 1 || res.Events[0].Name != event.AssignmentCreated {
		t.Fatalf("expected assignment.created event, got %+v", res.Events)
	}

	_, err = f.svc.CreateFromResponse(context.Background(), CreateFromResponseInput{Actor: employerActor, ResponseID: "resp-1"})
	if !errors.Is(err, ErrResponseAlreadyLinked) || !errors.Is(err, domainerr.ErrConflict) {
		t.Fatalf("expected ErrResponseAlreadyLinked, got %v", err)
	}
}

func TestService_CreateFromResponse_Preconditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prepare func(f *fixture)
		actor   actor.Actor
		want    error
	}{
		{
			name: "agreed below pay",
			prepare: func(f *fixture) {
				f.addSource("resp", "agency-a", "ae-a", "17.50", "2025-06-01", "2025-06-30")
			},
			actor: employerActor,
			want:  ErrAgreedBelowPay,
		},
		{
			name: "contract suspended",
			prepare: func(f *fixture) {
				f.addSource("resp", "agency-a", "ae-a", "25.00", "2025-06-01", "2025-06-30")
				f.contracts["employer-1/agency-a"].Status = contract.StatusSuspended
			},
			actor: employerActor,
			want:  ErrContractNotActive,
		},
		{
			name: "agency employee inactive",
			prepare: func(f *fixture) {
				f.addSource("resp", "agency-a", "ae-a", "25.00", "2025-06-01", "2025-06-30")
				f.workers["ae-a"].Status = workforce.StatusInactive
			},
			actor: employerActor,
			want:  ErrEmployeeNotActive,
		},
		{
			name: "response not accepted",
			prepare: func(f *fixture) {
				f.addSource("resp", "agency-a", "ae-a", "25.00", "2025-06-01", "2025-06-30")
				f.repo.sources["resp"].ResponseStatus = "pending"
			},
			actor: employerActor,
			want:  ErrResponseNotAccepted,
		},
		{
			name: "other agency",
			prepare: func(f *fixture) {
				f.addSource("resp", "agency-a", "ae-a", "25.00", "2025-06-01", "2025-06-30")
			},
			actor: agencyActorB,
			want:  domainerr.ErrForbidden,
		},
		{
			name:    "missing response",
			prepare: func(*fixture) {},
			actor:   employerActor,
			want:    domainerr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			tt.prepare(f)
			_, err := f.svc.CreateFromResponse(context.Background(), CreateFromResponseInput{Actor: tt.actor, ResponseID: "resp"})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(f.repo.assignments) != 0 {
				t.Fatalf("no assignment must be persisted on failure")
			}
		})
	}
}

func TestService_CreateFromResponse_CrossAgencyOverlap(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.addSource("resp-a", "agency-a", "ae-a", "25.00", "2025-06-01", "2025-06-30")
	f.addSource("resp-b", "agency-b", "ae-b", "24.00", "2025-06-30", "2025-07-15")

	first, err := f.svc.CreateFromResponse(context.Background(), CreateFromResponseInput{Actor: agencyActorA, ResponseID: "resp-a"})
	if err != nil {
		t.Fatalf("CreateFromResponse returned error: %v", err)
	}

	_, err = f.svc.CreateFromResponse(context.Background(), CreateFromResponseInput{Actor: agencyActorB, ResponseID: "resp-b"})
	var availErr *domainerr.AvailabilityError
	if !errors.As(err, &availErr) {
		t.Fatalf("expected AvailabilityError, got %v", err)
	}
	if availErr.ConflictingID != first.Assignment.ID || availErr.Kind != domainerr.ConflictKindAssignment {
		t.Fatalf("unexpected conflict: %+v", availErr)
	}
}

func TestService_ChangeStatus_TransitionTable(t *testing.T) {
	t.Parallel()

	all := []Status{StatusPending, StatusActive, StatusCompleted, StatusCancelled, StatusSuspended}
	legal := map[Status]map[Status]bool{
		StatusPending:   {StatusActive: true, StatusCancelled: true},
		StatusActive:    {StatusCompleted: true, StatusSuspended: true, StatusCancelled: true},
		StatusSuspended: {StatusActive: true, StatusCancelled: true},
	}

	for _, from := range all {
		for _, to := range all {
			f := newFixture()
			f.repo.assignments["asg"] = &Assignment{ID: "asg", AgencyID: "agency-a", EmployerID: "employer-1", Status: from}

			res, err := f.svc.ChangeStatus(context.Background(), ChangeStatusInput{Actor: agencyActorA, ID: "asg", Status: to, Reason: "test"})
			stored := f.repo.assignments["asg"].Status
			if legal[from][to] {
				if err != nil {
					t.Fatalf("%s -> %s: unexpected error: %v", from, to, err)
				}
				if res.Assignment.Status != to || stored != to {
					t.Fatalf("%s -> %s: status not applied", from, to)
				}
				continue
			}
			var transitionErr *domainerr.TransitionError
			if !errors.As(err, &transitionErr) || transitionErr.From != string(from) || transitionErr.To != string(to) {
				t.Fatalf("%s -> %s: expected TransitionError, got %v", from, to, err)
			}
			if stored != from {
				t.Fatalf("%s -> %s: status must remain %s, got %s", from, to, from, stored)
			}
		}
	}
}

func TestService_ChangeStatus_CompletedToActiveFails(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.repo.assignments["asg"] = &Assignment{ID: "asg", AgencyID: "agency-a", EmployerID: "employer-1", Status: StatusCompleted}

	_, err := f.svc.ChangeStatus(context.Background(), ChangeStatusInput{Actor: employerActor, ID: "asg", Status: StatusActive})
	if !errors.Is(err, domainerr.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if f.repo.assignments["asg"].Status != StatusCompleted {
		t.Fatalf("status must remain completed")
	}
}

func TestService_ChangeStatus_NotesAndCascade(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.repo.assignments["asg"] = &Assignment{ID: "asg", AgencyID: "agency-a", EmployerID: "employer-1", Status: StatusActive}

	res, err := f.svc.ChangeStatus(context.Background(), ChangeStatusInput{Actor: agencyActorA, ID: "asg", Status: StatusCancelled, Reason: "client closed site"})
	if err != nil {
		t.Fatalf("ChangeStatus returned error: %v", err)
	}
	want := "[2025-05-20 10:00:00] status changed from active to cancelled: client closed site"
	if res.Assignment.Notes != want {
		t.Fatalf("unexpected note:\n got %q\nwant %q", res.Assignment.Notes, want)
	}
	if res.CancelledShifts != 2 {
		t.Fatalf("expected cascade to report cancelled shifts, got %d", res.CancelledShifts)
	}
	if at, ok := f.repo.cancelledShifts["asg"]; !ok || !at.Equal(f.clock.now) {
		t.Fatalf("expected future shifts cancelled from now")
	}
	if res.Events[0].Payload["from"] != "active" || res.Events[0].Payload["to"] != "cancelled" {
		t.Fatalf("unexpected event payload: %+v", res.Events[0].Payload)
	}
}

func TestService_Extend(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.repo.assignments["asg-1"] = &Assignment{ID: "asg-1", AgencyID: "agency-a", EmployerID: "employer-1", EmployeeID: "emp-x", Status: StatusActive, StartDate: day("2025-06-01"), EndDate: day("2025-06-30")}
	f.repo.assignments["asg-2"] = &Assignment{ID: "asg-2", AgencyID: "agency-b", EmployerID: "employer-1", EmployeeID: "emp-x", Status: StatusPending, StartDate: day("2025-07-10"), EndDate: day("2025-07-31")}

	res, err := f.svc.Extend(context.Background(), ExtendInput{Actor: agencyActorA, ID: "asg-1", NewEndDate: day("2025-07-09"), Reason: "busy season"})
	if err != nil {
		t.Fatalf("Extend returned error: %v", err)
	}
	if !res.Assignment.EndDate.Equal(day("2025-07-09")) {
		t.Fatalf("unexpected end date %s", res.Assignment.EndDate)
	}
	if !strings.Contains(res.Assignment.Notes, "end date extended from 2025-06-30 to 2025-07-09: busy season") {
		t.Fatalf("unexpected notes %q", res.Assignment.Notes)
	}

	_, err = f.svc.Extend(context.Background(), ExtendInput{Actor: agencyActorA, ID: "asg-1", NewEndDate: day("2025-07-10")})
	if !errors.Is(err, domainerr.ErrAvailability) {
		t.Fatalf("expected ErrAvailability when extension overlaps asg-2, got %v", err)
	}

	_, err = f.svc.Extend(context.Background(), ExtendInput{Actor: agencyActorA, ID: "asg-1", NewEndDate: day("2025-07-01")})
	if !errors.Is(err, ErrInvalidEndDate) {
		t.Fatalf("expected ErrInvalidEndDate, got %v", err)
	}

	f.repo.assignments["asg-1"].Status = StatusCompleted
	_, err = f.svc.Extend(context.Background(), ExtendInput{Actor: agencyActorA, ID: "asg-1", NewEndDate: day("2025-08-01")})
	if !errors.Is(err, ErrNotExtendable) {
		t.Fatalf("expected ErrNotExtendable, got %v", err)
	}
}
