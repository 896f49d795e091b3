package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
)

var (
	employeeActor = actor.Actor{UserID: "user-emp", Role: actor.RoleEmployee, EmployeeID: "emp-1"}
	agentActor    = actor.Actor{UserID: "user-agent", Role: actor.RoleAgent, AgencyID: "agency-a"}
)

func TestService_RequestAndApproveTimeOff(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	svc := NewService(repo, &stubClock{now: now}, nil, Options{})

	req, err := svc.RequestTimeOff(context.Background(), RequestTimeOffInput{
		Actor:      employeeActor,
		EmployeeID: " emp-1 ",
		StartDate:  at("2025-03-10", "13:00"),
		EndDate:    at("2025-03-11", "00:00"),
		Reason:     "  family  ",
	})
	if err != nil {
		t.Fatalf("RequestTimeOff returned error: %v", err)
	}
	if req.Status != TimeOffPending || req.Reason != "family" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if !req.StartDate.Equal(at("2025-03-10", "00:00")) {
		t.Fatalf("expected start date truncated to day, got %s", req.StartDate)
	}

	conflict, err := svc.Detector().HasConflict(context.Background(), "emp-1", at("2025-03-10", "09:00"), at("2025-03-10", "17:00"), "")
	if err != nil {
		t.Fatalf("HasConflict returned error: %v", err)
	}
	if conflict {
		t.Fatalf("pending time off must not block")
	}

	approved, err := svc.DecideTimeOff(context.Background(), DecideTimeOffInput{Actor: agentActor, ID: req.ID, Decision: TimeOffApproved})
	if err != nil {
		t.Fatalf("DecideTimeOff returned error: %v", err)
	}
	if approved.Status != TimeOffApproved || approved.DecidedBy != "user-agent" || approved.DecidedAt == nil {
		t.Fatalf("unexpected decision: %+v", approved)
	}

	conflict, err = svc.Detector().HasConflict(context.Background(), "emp-1", at("2025-03-10", "09:00"), at("2025-03-10", "17:00"), "")
	if err != nil {
		t.Fatalf("HasConflict returned error: %v", err)
	}
	if !conflict {
		t.Fatalf("approved time off must block")
	}

	_, err = svc.DecideTimeOff(context.Background(), DecideTimeOffInput{Actor: agentActor, ID: req.ID, Decision: TimeOffRejected})
	if !errors.Is(err, ErrInvalidDecision) {
		t.Fatalf("expected ErrInvalidDecision for decided request, got %v", err)
	}
}

func TestService_RequestTimeOff_Forbidden(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo(), &stubClock{now: time.Now().UTC()}, nil, Options{})

	_, err := svc.RequestTimeOff(context.Background(), RequestTimeOffInput{
		Actor:      employeeActor,
		EmployeeID: "emp-2",
		StartDate:  at("2025-03-10", "00:00"),
		EndDate:    at("2025-03-10", "00:00"),
	})
	if !errors.Is(err, domainerr.ErrForbidden) {
		t.Fatalf("expected forbidden for another employee, got %v", err)
	}

	_, err = svc.RequestTimeOff(context.Background(), RequestTimeOffInput{
		Actor:      employeeActor,
		EmployeeID: "emp-1",
		StartDate:  at("2025-03-10", "00:00"),
		EndDate:    at("2025-03-09", "00:00"),
	})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestService_DecideTimeOff_EmployeeCanOnlyCancel(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo(), &stubClock{now: time.Now().UTC()}, nil, Options{})

	req, err := svc.RequestTimeOff(context.Background(), RequestTimeOffInput{
		Actor:      employeeActor,
		EmployeeID: "emp-1",
		StartDate:  at("2025-03-10", "00:00"),
		EndDate:    at("2025-03-10", "00:00"),
	})
	if err != nil {
		t.Fatalf("RequestTimeOff returned error: %v", err)
	}

	if _, err := svc.DecideTimeOff(context.Background(), DecideTimeOffInput{Actor: employeeActor, ID: req.ID, Decision: TimeOffApproved}); !errors.Is(err, domainerr.ErrForbidden) {
		t.Fatalf("expected employee approval to be forbidden, got %v", err)
	}

	cancelled, err := svc.DecideTimeOff(context.Background(), DecideTimeOffInput{Actor: employeeActor, ID: req.ID, Decision: TimeOffCancelled})
	if err != nil {
		t.Fatalf("DecideTimeOff cancel returned error: %v", err)
	}
	if cancelled.Status != TimeOffCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}

	if _, err := svc.DecideTimeOff(context.Background(), DecideTimeOffInput{Actor: agentActor, ID: req.ID, Decision: TimeOffPending}); !errors.Is(err, ErrInvalidDecision) {
		t.Fatalf("expected ErrInvalidDecision for pending decision, got %v", err)
	}
}

func TestService_SetAvailability(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, Options{})

	saved, err := svc.SetAvailability(context.Background(), SetAvailabilityInput{
		Actor:      employeeActor,
		EmployeeID: "emp-1",
		Blocks: []BlockInput{
			{DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "17:00", Type: BlockAvailable},
			{DayOfWeek: time.Friday, StartTime: "22:00", EndTime: "06:00", Type: BlockUnavailable},
		},
	})
	if err != nil {
		t.Fatalf("SetAvailability returned error: %v", err)
	}
	if len(saved) != 2 || saved[1].StartTime.String() != "22:00" || saved[1].EndTime.String() != "06:00" {
		t.Fatalf("unexpected blocks: %+v", saved)
	}

	listed, err := svc.ListAvailability(context.Background(), agentActor, "emp-1")
	if err != nil {
		t.Fatalf("ListAvailability returned error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(listed))
	}

	_, err = svc.SetAvailability(context.Background(), SetAvailabilityInput{
		Actor:      employeeActor,
		EmployeeID: "emp-1",
		Blocks:     []BlockInput{{DayOfWeek: time.Monday, StartTime: "25:00", EndTime: "17:00", Type: BlockAvailable}},
	})
	if !errors.Is(err, ErrInvalidBlock) {
		t.Fatalf("expected ErrInvalidBlock, got %v", err)
	}
	if len(repo.blocks["emp-1"]) != 2 {
		t.Fatalf("invalid input must not replace stored blocks")
	}
}

func TestService_CheckConflict(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.shifts["emp-1"] = []ShiftSlot{{
		ShiftID:   "shift-a",
		AgencyID:  "agency-b",
		Status:    "assigned",
		StartTime: at("2025-03-03", "09:00"),
		EndTime:   at("2025-03-03", "17:00"),
	}}
	svc := NewService(repo, &stubClock{now: time.Now().UTC()}, nil, Options{})
	in := CheckInput{EmployeeID: "emp-1", Start: at("2025-03-03", "16:00"), End: at("2025-03-03", "20:00")}

	res, err := svc.CheckConflict(context.Background(), agentActor, in)
	if err != nil {
		t.Fatalf("CheckConflict returned error: %v", err)
	}
	if !res.Conflict || res.ConflictingID != "shift-a" {
		t.Fatalf("expected conflict with shift-a, got %+v", res)
	}

	other := actor.Actor{UserID: "user-emp-2", Role: actor.RoleEmployee, EmployeeID: "emp-2"}
	if _, err := svc.CheckConflict(context.Background(), other, in); !errors.Is(err, actor.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another employee, got %v", err)
	}
}
