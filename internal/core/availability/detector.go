package availability

import (
	"context"
	"strings"
	"time"

	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

// maxRangeDays は日次範囲チェックで展開する最大日数です。
const maxRangeDays = 366

// Result は重複判定の結果です。重複は例外ではなく値として返します。
type Result struct {
	Conflict      bool
	Kind          domainerr.ConflictKind
	ConflictingID string
}

// Err は重複があれば AvailabilityError を返します。
func (r Result) Err(employeeID string) error {
	if !r.Conflict {
		return nil
	}
	return &domainerr.AvailabilityError{EmployeeID: employeeID, Kind: r.Kind, ConflictingID: r.ConflictingID}
}

// CheckInput は単一時間枠の判定入力です。
type CheckInput struct {
	EmployeeID     string
	Start          time.Time
	End            time.Time
	ExcludeShiftID string
}

// RangeInput は日付範囲 × 日次時間帯の判定入力です。
type RangeInput struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	DailyStart usecase.TimeOfDay
	DailyEnd   usecase.TimeOfDay
}

// AssignmentInput はアサインメント期間の重複判定入力です。
type AssignmentInput struct {
	EmployeeID          string
	StartDate           time.Time
	EndDate             time.Time
	ExcludeAssignmentID string
}

// Detector は社員のスケジュール重複を全派遣会社横断で検出します。
// 副作用はなく、書き込み側は同一トランザクション内でロック取得後に再判定する必要があります。
type Detector struct {
	repo Repository
}

// NewDetector は Detector を生成します。
func NewDetector(repo Repository) *Detector {
	return &Detector{repo: repo}
}

type window struct {
	start time.Time
	end   time.Time
}

// HasConflict は候補時間枠に重複があるかを返します。
func (d *Detector) HasConflict(ctx context.Context, employeeID string, start, end time.Time, excludeShiftID string) (bool, error) {
	res, err := d.Check(ctx, CheckInput{EmployeeID: employeeID, Start: start, End: end, ExcludeShiftID: excludeShiftID})
	if err != nil {
		return false, err
	}
	return res.Conflict, nil
}

// Check は候補時間枠をシフト・承認済み休暇・稼働不可時間帯と照合します。
func (d *Detector) Check(ctx context.Context, in CheckInput) (Result, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return Result{}, ErrInvalidEmployeeID
	}
	if !in.End.After(in.Start) {
		return Result{}, ErrInvalidWindow
	}
	return d.checkWindows(ctx, in.EmployeeID, []window{{start: in.Start, end: in.End}}, in.ExcludeShiftID)
}

// CheckRange は期間内の各日の時間帯をまとめて照合します。
func (d *Detector) CheckRange(ctx context.Context, in RangeInput) (Result, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return Result{}, ErrInvalidEmployeeID
	}
	if usecase.DateOf(in.EndDate).Before(usecase.DateOf(in.StartDate)) {
		return Result{}, ErrInvalidDateRange
	}
	if !in.DailyStart.Valid() || !in.DailyEnd.Valid() {
		return Result{}, ErrInvalidWindow
	}

	windows := make([]window, 0, 8)
	for day := range usecase.Days(in.StartDate, in.EndDate) {
		if len(windows) >= maxRangeDays {
			return Result{}, ErrInvalidDateRange
		}
		s, e := usecase.Window(day, in.DailyStart, in.DailyEnd)
		windows = append(windows, window{start: s, end: e})
	}
	return d.checkWindows(ctx, in.EmployeeID, windows, "")
}

// CheckAssignment は期間（日付単位・両端含む）が重なる有効なアサインメントを全派遣会社横断で検出します。
func (d *Detector) CheckAssignment(ctx context.Context, in AssignmentInput) (Result, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return Result{}, ErrInvalidEmployeeID
	}
	if usecase.DateOf(in.EndDate).Before(usecase.DateOf(in.StartDate)) {
		return Result{}, ErrInvalidDateRange
	}

	slots, err := d.repo.ListAssignmentSlots(ctx, in.EmployeeID, in.StartDate, in.EndDate)
	if err != nil {
		return Result{}, err
	}
	for _, slot := range slots {
		if slot.AssignmentID == in.ExcludeAssignmentID || !slot.Blocking() {
			continue
		}
		if usecase.DateRangesOverlap(slot.StartDate, slot.EndDate, in.StartDate, in.EndDate) {
			return Result{Conflict: true, Kind: domainerr.ConflictKindAssignment, ConflictingID: slot.AssignmentID}, nil
		}
	}
	return Result{}, nil
}

func (d *Detector) checkWindows(ctx context.Context, employeeID string, windows []window, excludeShiftID string) (Result, error) {
	if len(windows) == 0 {
		return Result{}, nil
	}
	from, to := windows[0].start, windows[0].end
	for _, w := range windows[1:] {
		if w.start.Before(from) {
			from = w.start
		}
		if w.end.After(to) {
			to = w.end
		}
	}

	slots, err := d.repo.ListShiftSlots(ctx, employeeID, from, to)
	if err != nil {
		return Result{}, err
	}
	for _, w := range windows {
		for _, slot := range slots {
			if slot.ShiftID == excludeShiftID || !slot.Blocking() {
				continue
			}
			if usecase.Overlaps(slot.StartTime, slot.EndTime, w.start, w.end) {
				return Result{Conflict: true, Kind: domainerr.ConflictKindShift, ConflictingID: slot.ShiftID}, nil
			}
		}
	}

	lastDay := to.Add(-time.Nanosecond)
	timeOff, err := d.repo.ListApprovedTimeOff(ctx, employeeID, usecase.DateOf(from), usecase.DateOf(lastDay))
	if err != nil {
		return Result{}, err
	}
	for _, w := range windows {
		wEnd := w.end.Add(-time.Nanosecond)
		for _, req := range timeOff {
			if req.Status != TimeOffApproved {
				continue
			}
			if usecase.DateRangesOverlap(req.StartDate, req.EndDate, w.start, wEnd) {
				return Result{Conflict: true, Kind: domainerr.ConflictKindTimeOff, ConflictingID: req.ID}, nil
			}
		}
	}

	blocks, err := d.repo.ListBlocks(ctx, employeeID)
	if err != nil {
		return Result{}, err
	}
	for _, w := range windows {
		if id, ok := unavailableDuring(blocks, w); ok {
			return Result{Conflict: true, Kind: domainerr.ConflictKindUnavailable, ConflictingID: id}, nil
		}
	}

	return Result{}, nil
}

func unavailableDuring(blocks []*Block, w window) (string, bool) {
	// 前日の夜勤ブロックが当日へ跨ぐ場合も拾うため、前日から走査する
	for day := range usecase.Days(w.start.AddDate(0, 0, -1), w.end.Add(-time.Nanosecond)) {
		for _, b := range blocks {
			if b.Type != BlockUnavailable || b.DayOfWeek != day.Weekday() {
				continue
			}
			bs, be := usecase.Window(day, b.StartTime, b.EndTime)
			if usecase.Overlaps(bs, be, w.start, w.end) {
				return b.ID, true
			}
		}
	}
	return "", false
}
