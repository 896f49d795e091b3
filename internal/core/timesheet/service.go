package timesheet

import (
	"context"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/event"
	"github.com/ogurasousui/staffing-engine/internal/core/shift"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

const aggregateType = "timesheet"

// Options は Service の任意設定です。
type Options struct {
	Logger *zap.Logger
}

// Service は打刻と二段階承認を扱います。シフトの状態はタイムシートに合わせて進みます。
type Service struct {
	repo        Repository
	shifts      ShiftStore
	assignments AssignmentReader
	clock       usecase.Clock
	tx          usecase.TransactionManager
	logger      *zap.Logger
}

// NewService は Service を生成します。
func NewService(repo Repository, shifts ShiftStore, assignments AssignmentReader, clock usecase.Clock, tx usecase.TransactionManager, opts Options) *Service {
	clock, tx, _ = usecase.Defaults(clock, tx, nil)
	return &Service{repo: repo, shifts: shifts, assignments: assignments, clock: clock, tx: tx, logger: usecase.Logger(opts.Logger)}
}

// Result はタイムシート操作の結果です。
type Result struct {
	Timesheet *Timesheet
	Shift     *shift.Shift
	Events    []event.Event
}

// ClockInInput は出勤打刻の入力です。At が nil なら現在時刻を使います。
type ClockInInput struct {
	Actor   actor.Actor
	ShiftID string
	At      *time.Time
}

// ClockIn はタイムシートを作成し、シフトを in_progress にします。
func (s *Service) ClockIn(ctx context.Context, in ClockInInput) (_ *Result, err error) {
	defer usecase.LogFailure(s.logger, "ClockIn", &err, zap.String("user_id", in.Actor.UserID))

	if strings.TrimSpace(in.ShiftID) == "" {
		return nil, fmt.Errorf("shift_id: %w", ErrInvalidID)
	}

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		sh, err := s.shifts.LockByID(txCtx, in.ShiftID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireEmployee(actor.PermClockTime, sh.EmployeeID); err != nil {
			return err
		}
		if sh.Status != shift.StatusAssigned {
			return domainerr.NewTransitionError("shift", sh.Status, shift.StatusInProgress)
		}

		now := s.clock.Now()
		at := now
		if in.At != nil {
			at = *in.At
		}
		created, err := s.repo.Create(txCtx, &Timesheet{
			ShiftID:      sh.ID,
			AssignmentID: sh.AssignmentID,
			EmployeeID:   sh.EmployeeID,
			ClockIn:      &at,
			Status:       StatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return err
		}
		updatedShift, err := s.mirror(txCtx, sh, shift.StatusInProgress, now)
		if err != nil {
			return err
		}
		result = &Result{
			Timesheet: created,
			Shift:     updatedShift,
			Events:    []event.Event{timesheetEvent(event.TimesheetClockedIn, created, in.Actor.UserID, now, nil)},
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ClockOutInput は退勤打刻の入力です。
type ClockOutInput struct {
	Actor        actor.Actor
	TimesheetID  string
	BreakMinutes int
	At           *time.Time
}

// ClockOut は勤務時間を確定し、シフトを completed にします。
func (s *Service) ClockOut(ctx context.Context, in ClockOutInput) (_ *Result, err error) {
	defer usecase.LogFailure(s.logger, "ClockOut", &err, zap.String("user_id", in.Actor.UserID))

	if strings.TrimSpace(in.TimesheetID) == "" {
		return nil, fmt.Errorf("timesheet_id: %w", ErrInvalidID)
	}
	if in.BreakMinutes < 0 {
		return nil, ErrInvalidBreak
	}

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		ts, err := s.repo.LockByID(txCtx, in.TimesheetID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireEmployee(actor.PermClockTime, ts.EmployeeID); err != nil {
			return err
		}
		if ts.ClockIn == nil {
			return ErrNotClockedIn
		}
		if ts.ClockOut != nil {
			return ErrAlreadyClockedOut
		}

		now := s.clock.Now()
		at := now
		if in.At != nil {
			at = *in.At
		}
		hours, err := ComputeHours(*ts.ClockIn, at, in.BreakMinutes)
		if err != nil {
			return err
		}
		sh, err := s.shifts.LockByID(txCtx, ts.ShiftID)
		if err != nil {
			return err
		}

		ts.ClockOut = &at
		ts.BreakMinutes = in.BreakMinutes
		ts.HoursWorked = hours
		ts.UpdatedAt = now
		updated, err := s.repo.Update(txCtx, ts)
		if err != nil {
			return err
		}
		updatedShift, err := s.mirror(txCtx, sh, shift.StatusCompleted, now)
		if err != nil {
			return err
		}
		result = &Result{
			Timesheet: updated,
			Shift:     updatedShift,
			Events: []event.Event{
				timesheetEvent(event.TimesheetClockedOut, updated, in.Actor.UserID, now, nil),
				event.New(event.ShiftCompleted, "shift", updatedShift.ID, in.Actor.UserID, now, map[string]string{
					"assignment_id": updatedShift.AssignmentID,
					"timesheet_id":  updated.ID,
				}),
			},
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// DecisionInput は承認・却下・異議・解決の入力です。
type DecisionInput struct {
	Actor       actor.Actor
	TimesheetID string
	Reason      string
}

// ApproveAgency は派遣会社による一次承認です。
func (s *Service) ApproveAgency(ctx context.Context, in DecisionInput) (_ *Result, err error) {
	defer usecase.LogFailure(s.logger, "ApproveAgency", &err, zap.String("user_id", in.Actor.UserID))

	return s.transition(ctx, in, StatusAgencyApproved, func(a actor.Actor, sh *shift.Shift) error {
		return a.RequireAgency(actor.PermApproveTimesheetsAgency, sh.AgencyID)
	})
}

// ApproveEmployer は雇用主による最終承認です。派遣会社の承認を経ていなければ失敗します。
func (s *Service) ApproveEmployer(ctx context.Context, in DecisionInput) (_ *Result, err error) {
	defer usecase.LogFailure(s.logger, "ApproveEmployer", &err, zap.String("user_id", in.Actor.UserID))

	return s.transition(ctx, in, StatusEmployerApproved, func(a actor.Actor, sh *shift.Shift) error {
		return a.RequireEmployer(actor.PermApproveTimesheetsEmployer, sh.EmployerID)
	})
}

// Reject はタイムシートを却下します。
func (s *Service) Reject(ctx context.Context, in DecisionInput) (_ *Result, err error) {
	defer usecase.LogFailure(s.logger, "Reject", &err, zap.String("user_id", in.Actor.UserID))

	if strings.TrimSpace(in.Reason) == "" {
		return nil, ErrReasonRequired
	}
	return s.transition(ctx, in, StatusRejected, requireReviewer)
}

// Dispute は勤務実績に異議を申し立てます。
func (s *Service) Dispute(ctx context.Context, in DecisionInput) (_ *Result, err error) {
	defer usecase.LogFailure(s.logger, "Dispute", &err, zap.String("user_id", in.Actor.UserID))

	if strings.TrimSpace(in.Reason) == "" {
		return nil, ErrReasonRequired
	}
	return s.transition(ctx, in, StatusDisputed, requireReviewer)
}

// ResolveDispute は異議を解決し、承認フローを pending からやり直します。
func (s *Service) ResolveDispute(ctx context.Context, in DecisionInput) (_ *Result, err error) {
	defer usecase.LogFailure(s.logger, "ResolveDispute", &err, zap.String("user_id", in.Actor.UserID))

	return s.transition(ctx, in, StatusPending, requireReviewer)
}

// GetTimesheet はタイムシートを取得します。
func (s *Service) GetTimesheet(ctx context.Context, a actor.Actor, id string) (_ *Timesheet, err error) {
	defer usecase.LogFailure(s.logger, "GetTimesheet", &err, zap.String("user_id", a.UserID))

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	var found *Timesheet
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		ts, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if a.Role == actor.RoleEmployee {
			if err := a.RequireEmployee(actor.PermViewSchedule, ts.EmployeeID); err != nil {
				return err
			}
		} else {
			sh, err := s.shifts.FindByID(txCtx, ts.ShiftID)
			if err != nil {
				return err
			}
			if err := a.RequireParty(actor.PermViewSchedule, sh.AgencyID, sh.EmployerID); err != nil {
				return err
			}
		}
		found = ts
		return nil
	}); err != nil {
		return nil, err
	}
	return found, nil
}

func (s *Service) transition(ctx context.Context, in DecisionInput, to Status, authorize func(actor.Actor, *shift.Shift) error) (*Result, error) {
	if strings.TrimSpace(in.TimesheetID) == "" {
		return nil, fmt.Errorf("timesheet_id: %w", ErrInvalidID)
	}

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		ts, err := s.repo.LockByID(txCtx, in.TimesheetID)
		if err != nil {
			return err
		}
		sh, err := s.shifts.LockByID(txCtx, ts.ShiftID)
		if err != nil {
			return err
		}
		if err := authorize(in.Actor, sh); err != nil {
			return err
		}
		if !CanTransition(ts.Status, to) {
			return domainerr.NewTransitionError("timesheet", ts.Status, to)
		}
		if (to == StatusAgencyApproved || to == StatusEmployerApproved) && !ts.ClockedOut() {
			return ErrNotClockedOut
		}

		now := s.clock.Now()
		reason := strings.TrimSpace(in.Reason)
		var (
			name  event.Name
			extra map[string]string
		)
		switch to {
		case StatusAgencyApproved:
			ts.AgencyApprovedBy, ts.AgencyApprovedAt = in.Actor.UserID, &now
			name = event.TimesheetAgencyOK
		case StatusEmployerApproved:
			ts.EmployerApprovedBy, ts.EmployerApprovedAt = in.Actor.UserID, &now
			name = event.TimesheetEmployerOK
			a, err := s.assignments.FindByID(txCtx, ts.AssignmentID)
			if err != nil {
				return err
			}
			extra = map[string]string{
				"agreed_rate": a.AgreedRate.StringFixed(2),
				"pay_rate":    a.PayRate.StringFixed(2),
				"agency_id":   a.AgencyID,
				"employer_id": a.EmployerID,
			}
		case StatusRejected:
			ts.RejectionReason = reason
			name = event.TimesheetRejected
		case StatusDisputed:
			ts.DisputeReason = reason
			name = event.TimesheetDisputed
		case StatusPending:
			// 解決後は一次承認からやり直す
			ts.AgencyApprovedBy, ts.AgencyApprovedAt = "", nil
			name = event.TimesheetResolved
		}
		ts.Status = to
		ts.UpdatedAt = now
		updated, err := s.repo.Update(txCtx, ts)
		if err != nil {
			return err
		}

		updatedShift := sh
		switch to {
		case StatusAgencyApproved:
			updatedShift, err = s.mirror(txCtx, sh, shift.StatusAgencyApproved, now)
		case StatusEmployerApproved:
			updatedShift, err = s.mirror(txCtx, sh, shift.StatusEmployerApproved, now)
		}
		if err != nil {
			return err
		}

		result = &Result{
			Timesheet: updated,
			Shift:     updatedShift,
			Events:    []event.Event{timesheetEvent(name, updated, in.Actor.UserID, now, extra)},
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// mirror はシフトを to へ進めます。既に to にある場合は何もしません。
func (s *Service) mirror(ctx context.Context, sh *shift.Shift, to shift.Status, now time.Time) (*shift.Shift, error) {
	if sh.Status == to {
		return sh, nil
	}
	if !shift.CanTransition(sh.Status, to) {
		return nil, domainerr.NewTransitionError("shift", sh.Status, to)
	}
	sh.Status = to
	sh.UpdatedAt = now
	return s.shifts.Update(ctx, sh)
}

func requireReviewer(a actor.Actor, sh *shift.Shift) error {
	if a.IsSuperAdmin() {
		return a.Require(actor.PermApproveTimesheetsAgency)
	}
	if a.AgencyID != "" {
		return a.RequireAgency(actor.PermApproveTimesheetsAgency, sh.AgencyID)
	}
	return a.RequireEmployer(actor.PermApproveTimesheetsEmployer, sh.EmployerID)
}

func timesheetEvent(name event.Name, ts *Timesheet, actorID string, at time.Time, extra map[string]string) event.Event {
	payload := map[string]string{
		"timesheet_id":  ts.ID,
		"shift_id":      ts.ShiftID,
		"assignment_id": ts.AssignmentID,
		"employee_id":   ts.EmployeeID,
		"status":        string(ts.Status),
		"hours":         ts.HoursWorked.StringFixed(2),
		"break_minutes": strconv.Itoa(ts.BreakMinutes),
	}
	maps.Copy(payload, extra)
	return event.New(name, aggregateType, ts.ID, actorID, at, payload)
}
