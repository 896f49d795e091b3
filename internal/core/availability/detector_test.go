package availability

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeRepo struct {
	shifts      map[string][]ShiftSlot
	assignments map[string][]AssignmentSlot
	timeOff     map[string]*TimeOffRequest
	blocks      map[string][]*Block
	sequence    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shifts:      make(map[string][]ShiftSlot),
		assignments: make(map[string][]AssignmentSlot),
		timeOff:     make(map[string]*TimeOffRequest),
		blocks:      make(map[string][]*Block),
	}
}

func (r *fakeRepo) ListShiftSlots(_ context.Context, employeeID string, from, to time.Time) ([]ShiftSlot, error) {
	var out []ShiftSlot
	for _, s := range r.shifts[employeeID] {
		if usecase.Overlaps(s.StartTime, s.EndTime, from, to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAssignmentSlots(_ context.Context, employeeID string, startDate, endDate time.Time) ([]AssignmentSlot, error) {
	var out []AssignmentSlot
	for _, a := range r.assignments[employeeID] {
		if usecase.DateRangesOverlap(a.StartDate, a.EndDate, startDate, endDate) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListApprovedTimeOff(_ context.Context, employeeID string, startDate, endDate time.Time) ([]*TimeOffRequest, error) {
	var out []*TimeOffRequest
	for _, req := range r.timeOff {
		if req.EmployeeID != employeeID || req.Status != TimeOffApproved {
			continue
		}
		if usecase.DateRangesOverlap(req.StartDate, req.EndDate, startDate, endDate) {
			clone := *req
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBlocks(_ context.Context, employeeID string) ([]*Block, error) {
	return r.blocks[employeeID], nil
}

func (r *fakeRepo) ReplaceBlocks(_ context.Context, employeeID string, blocks []*Block) ([]*Block, error) {
	saved := make([]*Block, 0, len(blocks))
	for _, b := range blocks {
		clone := *b
		r.sequence++
		clone.ID = fmt.Sprintf("block-%d", r.sequence)
		saved = append(saved, &clone)
	}
	r.blocks[employeeID] = saved
	return saved, nil
}

func (r *fakeRepo) CreateTimeOff(_ context.Context, req *TimeOffRequest) (*TimeOffRequest, error) {
	clone := *req
	r.sequence++
	clone.ID = fmt.Sprintf("timeoff-%d", r.sequence)
	r.timeOff[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) UpdateTimeOff(_ context.Context, req *TimeOffRequest) (*TimeOffRequest, error) {
	if _, ok := r.timeOff[req.ID]; !ok {
		return nil, ErrTimeOffNotFound
	}
	clone := *req
	r.timeOff[req.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) FindTimeOffByID(_ context.Context, id string) (*TimeOffRequest, error) {
	req, ok := r.timeOff[id]
	if !ok {
		return nil, ErrTimeOffNotFound
	}
	clone := *req
	return &clone, nil
}

func at(day string, hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", day+" "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDetector_Check_CrossAgencyOverlap(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.shifts["emp-1"] = []ShiftSlot{{
		ShiftID:   "shift-a",
		AgencyID:  "agency-a",
		Status:    "scheduled",
		StartTime: at("2025-03-03", "09:00"),
		EndTime:   at("2025-03-03", "17:00"),
	}}
	detector := NewDetector(repo)

	res, err := detector.Check(context.Background(), CheckInput{
		EmployeeID: "emp-1",
		Start:      at("2025-03-03", "12:00"),
		End:        at("2025-03-03", "20:00"),
	})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !res.Conflict || res.Kind != domainerr.ConflictKindShift || res.ConflictingID != "shift-a" {
		t.Fatalf("expected shift conflict with shift-a, got %+v", res)
	}

	var availErr *domainerr.AvailabilityError
	if err := res.Err("emp-1"); !errors.As(err, &availErr) || availErr.ConflictingID != "shift-a" {
		t.Fatalf("expected AvailabilityError, got %v", err)
	}
	if !errors.Is(res.Err("emp-1"), domainerr.ErrAvailability) {
		t.Fatalf("expected error to unwrap to ErrAvailability")
	}
}

func TestDetector_Check_TouchingEndpointsDoNotConflict(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.shifts["emp-1"] = []ShiftSlot{{
		ShiftID:   "shift-a",
		Status:    "scheduled",
		StartTime: at("2025-03-03", "09:00"),
		EndTime:   at("2025-03-03", "17:00"),
	}}
	detector := NewDetector(repo)

	conflict, err := detector.HasConflict(context.Background(), "emp-1", at("2025-03-03", "17:00"), at("2025-03-03", "22:00"), "")
	if err != nil {
		t.Fatalf("HasConflict returned error: %v", err)
	}
	if conflict {
		t.Fatalf("expected touching windows to be allowed")
	}
}

func TestDetector_Check_IgnoresCancelledAndExcluded(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.shifts["emp-1"] = []ShiftSlot{
		{ShiftID: "shift-cancelled", Status: "cancelled", StartTime: at("2025-03-03", "09:00"), EndTime: at("2025-03-03", "17:00")},
		{ShiftID: "shift-noshow", Status: "no_show", StartTime: at("2025-03-03", "09:00"), EndTime: at("2025-03-03", "17:00")},
		{ShiftID: "shift-self", Status: "scheduled", StartTime: at("2025-03-03", "09:00"), EndTime: at("2025-03-03", "17:00")},
	}
	detector := NewDetector(repo)

	conflict, err := detector.HasConflict(context.Background(), "emp-1", at("2025-03-03", "10:00"), at("2025-03-03", "11:00"), "shift-self")
	if err != nil {
		t.Fatalf("HasConflict returned error: %v", err)
	}
	if conflict {
		t.Fatalf("expected cancelled, no_show and excluded shifts to be ignored")
	}
}

func TestDetector_Check_ApprovedTimeOff(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.timeOff["timeoff-1"] = &TimeOffRequest{
		ID:         "timeoff-1",
		EmployeeID: "emp-1",
		StartDate:  at("2025-03-05", "00:00"),
		EndDate:    at("2025-03-06", "00:00"),
		Status:     TimeOffApproved,
	}
	repo.timeOff["timeoff-2"] = &TimeOffRequest{
		ID:         "timeoff-2",
		EmployeeID: "emp-1",
		StartDate:  at("2025-03-03", "00:00"),
		EndDate:    at("2025-03-03", "00:00"),
		Status:     TimeOffPending,
	}
	detector := NewDetector(repo)

	res, err := detector.Check(context.Background(), CheckInput{EmployeeID: "emp-1", Start: at("2025-03-06", "09:00"), End: at("2025-03-06", "17:00")})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if res.Kind != domainerr.ConflictKindTimeOff || res.ConflictingID != "timeoff-1" {
		t.Fatalf("expected approved time off conflict, got %+v", res)
	}

	res, err = detector.Check(context.Background(), CheckInput{EmployeeID: "emp-1", Start: at("2025-03-03", "09:00"), End: at("2025-03-03", "17:00")})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if res.Conflict {
		t.Fatalf("pending time off must not block, got %+v", res)
	}
}

func TestDetector_Check_UnavailableBlock(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	// 2025-03-03 は月曜日
	repo.blocks["emp-1"] = []*Block{
		{ID: "block-night", EmployeeID: "emp-1", DayOfWeek: time.Sunday, StartTime: 22 * 60, EndTime: 6 * 60, Type: BlockUnavailable},
		{ID: "block-pref", EmployeeID: "emp-1", DayOfWeek: time.Monday, StartTime: 9 * 60, EndTime: 17 * 60, Type: BlockPreferred},
	}
	detector := NewDetector(repo)

	res, err := detector.Check(context.Background(), CheckInput{EmployeeID: "emp-1", Start: at("2025-03-03", "05:00"), End: at("2025-03-03", "08:00")})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if res.Kind != domainerr.ConflictKindUnavailable || res.ConflictingID != "block-night" {
		t.Fatalf("expected overnight unavailable block conflict, got %+v", res)
	}

	res, err = detector.Check(context.Background(), CheckInput{EmployeeID: "emp-1", Start: at("2025-03-03", "09:00"), End: at("2025-03-03", "17:00")})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if res.Conflict {
		t.Fatalf("preferred block must not block, got %+v", res)
	}
}

func TestDetector_CheckRange(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.shifts["emp-1"] = []ShiftSlot{{
		ShiftID:   "shift-b",
		Status:    "confirmed",
		StartTime: at("2025-03-07", "20:00"),
		EndTime:   at("2025-03-07", "23:00"),
	}}
	detector := NewDetector(repo)

	res, err := detector.CheckRange(context.Background(), RangeInput{
		EmployeeID: "emp-1",
		StartDate:  at("2025-03-03", "00:00"),
		EndDate:    at("2025-03-07", "00:00"),
		DailyStart: 9 * 60,
		DailyEnd:   17 * 60,
	})
	if err != nil {
		t.Fatalf("CheckRange returned error: %v", err)
	}
	if res.Conflict {
		t.Fatalf("expected no conflict for daytime range, got %+v", res)
	}

	res, err = detector.CheckRange(context.Background(), RangeInput{
		EmployeeID: "emp-1",
		StartDate:  at("2025-03-03", "00:00"),
		EndDate:    at("2025-03-07", "00:00"),
		DailyStart: 18 * 60,
		DailyEnd:   2 * 60,
	})
	if err != nil {
		t.Fatalf("CheckRange returned error: %v", err)
	}
	if res.ConflictingID != "shift-b" {
		t.Fatalf("expected overnight range to hit shift-b, got %+v", res)
	}

	_, err = detector.CheckRange(context.Background(), RangeInput{
		EmployeeID: "emp-1",
		StartDate:  at("2025-01-01", "00:00"),
		EndDate:    at("2026-06-01", "00:00"),
		DailyStart: 9 * 60,
		DailyEnd:   17 * 60,
	})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange for oversized range, got %v", err)
	}
}

func TestDetector_CheckAssignment(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.assignments["emp-1"] = []AssignmentSlot{
		{AssignmentID: "asg-done", AgencyID: "agency-a", Status: "completed", StartDate: at("2025-03-01", "00:00"), EndDate: at("2025-03-31", "00:00")},
		{AssignmentID: "asg-live", AgencyID: "agency-b", Status: "active", StartDate: at("2025-04-01", "00:00"), EndDate: at("2025-04-30", "00:00")},
	}
	detector := NewDetector(repo)

	res, err := detector.CheckAssignment(context.Background(), AssignmentInput{EmployeeID: "emp-1", StartDate: at("2025-03-15", "00:00"), EndDate: at("2025-03-20", "00:00")})
	if err != nil {
		t.Fatalf("CheckAssignment returned error: %v", err)
	}
	if res.Conflict {
		t.Fatalf("completed assignment must not block, got %+v", res)
	}

	res, err = detector.CheckAssignment(context.Background(), AssignmentInput{EmployeeID: "emp-1", StartDate: at("2025-03-25", "00:00"), EndDate: at("2025-04-01", "00:00")})
	if err != nil {
		t.Fatalf("CheckAssignment returned error: %v", err)
	}
	if res.Kind != domainerr.ConflictKindAssignment || res.ConflictingID != "asg-live" {
		t.Fatalf("expected conflict with asg-live on shared end date, got %+v", res)
	}

	res, err = detector.CheckAssignment(context.Background(), AssignmentInput{EmployeeID: "emp-1", StartDate: at("2025-04-10", "00:00"), EndDate: at("2025-05-10", "00:00"), ExcludeAssignmentID: "asg-live"})
	if err != nil {
		t.Fatalf("CheckAssignment returned error: %v", err)
	}
	if res.Conflict {
		t.Fatalf("excluded assignment must not block, got %+v", res)
	}
}

func TestDetector_Check_Validation(t *testing.T) {
	t.Parallel()

	detector := NewDetector(newFakeRepo())

	if _, err := detector.Check(context.Background(), CheckInput{EmployeeID: " ", Start: at("2025-03-03", "09:00"), End: at("2025-03-03", "10:00")}); !errors.Is(err, ErrInvalidEmployeeID) {
		t.Fatalf("expected ErrInvalidEmployeeID, got %v", err)
	}
	if _, err := detector.Check(context.Background(), CheckInput{EmployeeID: "emp-1", Start: at("2025-03-03", "09:00"), End: at("2025-03-03", "09:00")}); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
	if _, err := detector.Check(context.Background(), CheckInput{EmployeeID: "emp-1", Start: at("2025-03-03", "09:00"), End: at("2025-03-03", "10:00")}); !errors.Is(err, nil) {
		t.Fatalf("expected no error, got %v", err)
	}
}
