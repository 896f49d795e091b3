package shift

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/event"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

const (
	aggregateType = "shift"

	defaultOfferTTL     = 24 * time.Hour
	defaultMaxGenerated = 366
	maxListDays         = 366
)

// Options は Service の調整値です。ゼロ値は既定値で補われます。
type Options struct {
	OfferTTL           time.Duration
	MaxGeneratedShifts int
	Logger             *zap.Logger
}

// Service はシフトの生成・オファー・状態遷移を扱います。
type Service struct {
	repo         Repository
	assignments  AssignmentReader
	workers      AgencyEmployeeReader
	conflicts    ConflictChecker
	locker       usecase.EmployeeLocker
	clock        usecase.Clock
	tx           usecase.TransactionManager
	logger       *zap.Logger
	offerTTL     time.Duration
	maxGenerated int
}

// NewService は Service を生成します。
func NewService(
	repo Repository,
	assignments AssignmentReader,
	workers AgencyEmployeeReader,
	conflicts ConflictChecker,
	locker usecase.EmployeeLocker,
	clock usecase.Clock,
	tx usecase.TransactionManager,
	opts Options,
) *Service {
	clock, tx, locker = usecase.Defaults(clock, tx, locker)
	if opts.OfferTTL <= 0 {
		opts.OfferTTL = defaultOfferTTL
	}
	if opts.MaxGeneratedShifts <= 0 {
		opts.MaxGeneratedShifts = defaultMaxGenerated
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Service{
		repo:         repo,
		assignments:  assignments,
		workers:      workers,
		conflicts:    conflicts,
		locker:       locker,
		clock:        clock,
		tx:           tx,
		logger:       opts.Logger,
		offerTTL:     opts.OfferTTL,
		maxGenerated: opts.MaxGeneratedShifts,
	}
}

// Result はシフト操作の結果です。
type Result struct {
	Shift  *Shift
	Offer  *Offer
	Events []event.Event
}

// CreateShiftInput は個別シフト作成の入力です。Open が true の場合は社員未割当で作成します。
type CreateShiftInput struct {
	Actor        actor.Actor
	AssignmentID string
	Date         time.Time
	StartTime    string
	EndTime      string
	HourlyRate   *decimal.Decimal
	Open         bool
}

// CreateShift はアサインメントにシフトを 1 件追加します。
func (s *Service) CreateShift(ctx context.Context, in CreateShiftInput) (*Result, error) {
	if strings.TrimSpace(in.AssignmentID) == "" {
		return nil, fmt.Errorf("assignment_id: %w", ErrInvalidID)
	}
	start, end, err := parseWindow(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	if in.HourlyRate != nil && !in.HourlyRate.IsPositive() {
		return nil, ErrInvalidRate
	}

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		a, err := s.assignments.FindByID(txCtx, in.AssignmentID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireAgency(actor.PermManageShifts, a.AgencyID); err != nil {
			return err
		}
		if !a.Schedulable() {
			return ErrAssignmentClosed
		}
		if !a.Covers(in.Date) {
			return ErrOutsideAssignment
		}

		rate := a.AgreedRate
		if in.HourlyRate != nil {
			rate = in.HourlyRate.Round(2)
		}
		p := placement{
			assignment: a,
			day:        usecase.DateOf(in.Date),
			start:      start,
			end:        end,
			rate:       rate,
			createdBy:  in.Actor.UserID,
		}

		var created *Shift
		if in.Open {
			created, err = s.repo.Create(txCtx, p.shift(s.clock.Now(), StatusOpen))
		} else {
			created, err = s.place(txCtx, p)
		}
		if err != nil {
			return err
		}
		result = &Result{
			Shift:  created,
			Events: []event.Event{shiftEvent(event.ShiftCreated, created, in.Actor.UserID, created.CreatedAt)},
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateTemplateInput はテンプレート作成の入力です。
type CreateTemplateInput struct {
	Actor              actor.Actor
	AssignmentID       string
	DayOfWeek          time.Weekday
	StartTime          string
	EndTime            string
	Recurrence         Recurrence
	EffectiveStartDate *time.Time
	EffectiveEndDate   *time.Time
	MaxOccurrences     *int
}

// CreateTemplate は繰り返しシフトのテンプレートを登録します。
func (s *Service) CreateTemplate(ctx context.Context, in CreateTemplateInput) (*Template, error) {
	if strings.TrimSpace(in.AssignmentID) == "" {
		return nil, fmt.Errorf("assignment_id: %w", ErrInvalidID)
	}
	if in.DayOfWeek < time.Sunday || in.DayOfWeek > time.Saturday {
		return nil, ErrInvalidDayOfWeek
	}
	start, end, err := parseWindow(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	recurrence := in.Recurrence
	if recurrence == "" {
		recurrence = RecurrenceWeekly
	}
	if !IsValidRecurrence(recurrence) {
		return nil, ErrInvalidRecurrence
	}
	if in.EffectiveStartDate != nil && in.EffectiveEndDate != nil && in.EffectiveEndDate.Before(*in.EffectiveStartDate) {
		return nil, ErrInvalidDateRange
	}
	if in.MaxOccurrences != nil && *in.MaxOccurrences <= 0 {
		return nil, ErrInvalidMaxOccurrence
	}

	var created *Template
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		a, err := s.assignments.FindByID(txCtx, in.AssignmentID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireAgency(actor.PermManageShifts, a.AgencyID); err != nil {
			return err
		}
		if !a.Schedulable() {
			return ErrAssignmentClosed
		}
		created, err = s.repo.CreateTemplate(txCtx, &Template{
			AssignmentID:       a.ID,
			DayOfWeek:          in.DayOfWeek,
			StartTime:          start,
			EndTime:            end,
			Recurrence:         recurrence,
			EffectiveStartDate: dateOrNil(in.EffectiveStartDate),
			EffectiveEndDate:   dateOrNil(in.EffectiveEndDate),
			MaxOccurrences:     in.MaxOccurrences,
			CreatedBy:          in.Actor.UserID,
			CreatedAt:          s.clock.Now(),
		})
		return err
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// OfferInput は空きシフトのオファー入力です。
type OfferInput struct {
	Actor            actor.Actor
	ShiftID          string
	AgencyEmployeeID string
}

// OfferShift は空きシフトを社員へ打診し、シフトを offered にします。
func (s *Service) OfferShift(ctx context.Context, in OfferInput) (*Result, error) {
	if strings.TrimSpace(in.ShiftID) == "" || strings.TrimSpace(in.AgencyEmployeeID) == "" {
		return nil, ErrInvalidID
	}

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		sh, err := s.repo.LockByID(txCtx, in.ShiftID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireAgency(actor.PermManageShifts, sh.AgencyID); err != nil {
			return err
		}
		if sh.Status != StatusOpen {
			return domainerr.NewTransitionError("shift", sh.Status, StatusOffered)
		}
		ae, err := s.workers.FindAgencyEmployeeByID(txCtx, in.AgencyEmployeeID)
		if err != nil {
			return err
		}
		if ae.AgencyID != sh.AgencyID || !ae.IsActive() {
			return ErrEmployeeNotEligible
		}

		now := s.clock.Now()
		offer, err := s.repo.CreateOffer(txCtx, &Offer{
			ShiftID:          sh.ID,
			AgencyEmployeeID: ae.ID,
			EmployeeID:       ae.EmployeeID,
			Status:           OfferPending,
			ExpiresAt:        now.Add(s.offerTTL),
			OfferedBy:        in.Actor.UserID,
			CreatedAt:        now,
		})
		if err != nil {
			return err
		}
		sh.Status = StatusOffered
		sh.UpdatedAt = now
		updated, err := s.repo.Update(txCtx, sh)
		if err != nil {
			return err
		}
		ev := shiftEvent(event.ShiftOffered, updated, in.Actor.UserID, now)
		ev.Payload["offer_id"] = offer.ID
		ev.Payload["offered_employee_id"] = offer.EmployeeID
		result = &Result{Shift: updated, Offer: offer, Events: []event.Event{ev}}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// OfferActionInput はオファーへの応答入力です。
type OfferActionInput struct {
	Actor   actor.Actor
	OfferID string
}

// AcceptOffer は社員がオファーを受諾します。社員ロック取得後に重複を再判定してからシフトを assigned にします。
func (s *Service) AcceptOffer(ctx context.Context, in OfferActionInput) (*Result, error) {
	return s.respond(ctx, in, OfferAccepted)
}

// RejectOffer は社員がオファーを辞退し、シフトを open に戻します。
func (s *Service) RejectOffer(ctx context.Context, in OfferActionInput) (*Result, error) {
	return s.respond(ctx, in, OfferRejected)
}

func (s *Service) respond(ctx context.Context, in OfferActionInput, to OfferStatus) (*Result, error) {
	if strings.TrimSpace(in.OfferID) == "" {
		return nil, fmt.Errorf("offer_id: %w", ErrInvalidID)
	}

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		offer, err := s.repo.FindOfferByID(txCtx, in.OfferID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireEmployee(actor.PermRespondToOffers, offer.EmployeeID); err != nil {
			return err
		}
		if offer.Status != OfferPending {
			return domainerr.NewTransitionError("shift_offer", offer.Status, to)
		}
		now := s.clock.Now()
		if offer.Expired(now) {
			return ErrOfferExpired
		}

		sh, err := s.repo.LockByID(txCtx, offer.ShiftID)
		if err != nil {
			return err
		}
		next := StatusOpen
		name := event.ShiftOfferRejected
		if to == OfferAccepted {
			next = StatusAssigned
			name = event.ShiftOfferAccepted
		}
		if sh.Status != StatusOffered || !CanTransition(sh.Status, next) {
			return domainerr.NewTransitionError("shift", sh.Status, next)
		}

		if to == OfferAccepted {
			if err := s.locker.LockEmployee(txCtx, offer.EmployeeID); err != nil {
				return err
			}
			check, err := s.conflicts.Check(txCtx, availability.CheckInput{
				EmployeeID:     offer.EmployeeID,
				Start:          sh.StartTime,
				End:            sh.EndTime,
				ExcludeShiftID: sh.ID,
			})
			if err != nil {
				return err
			}
			if err := check.Err(offer.EmployeeID); err != nil {
				return err
			}
			sh.EmployeeID = offer.EmployeeID
			sh.AgencyEmployeeID = offer.AgencyEmployeeID
		}

		offer.Status = to
		offer.RespondedAt = &now
		updatedOffer, err := s.repo.UpdateOffer(txCtx, offer)
		if err != nil {
			return err
		}
		sh.Status = next
		sh.UpdatedAt = now
		updated, err := s.repo.Update(txCtx, sh)
		if err != nil {
			return err
		}
		ev := shiftEvent(name, updated, in.Actor.UserID, now)
		ev.Payload["offer_id"] = updatedOffer.ID
		result = &Result{Shift: updated, Offer: updatedOffer, Events: []event.Event{ev}}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ChangeStatusInput は手動の状態変更入力です。勤務実績に連動する状態はタイムシート側で遷移します。
type ChangeStatusInput struct {
	Actor  actor.Actor
	ID     string
	Status Status
}

// ChangeStatus はシフトを cancelled または no_show にします。
func (s *Service) ChangeStatus(ctx context.Context, in ChangeStatusInput) (*Result, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if in.Status != StatusCancelled && in.Status != StatusNoShow {
		return nil, ErrInvalidStatus
	}

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		sh, err := s.repo.LockByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireAgency(actor.PermManageShifts, sh.AgencyID); err != nil {
			return err
		}
		if !CanTransition(sh.Status, in.Status) {
			return domainerr.NewTransitionError("shift", sh.Status, in.Status)
		}
		from := sh.Status
		now := s.clock.Now()
		sh.Status = in.Status
		sh.UpdatedAt = now
		updated, err := s.repo.Update(txCtx, sh)
		if err != nil {
			return err
		}
		ev := shiftEvent(event.ShiftStatusChanged, updated, in.Actor.UserID, now)
		ev.Payload["from"] = string(from)
		result = &Result{Shift: updated, Events: []event.Event{ev}}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// GetShift はシフトを取得します。
func (s *Service) GetShift(ctx context.Context, a actor.Actor, id string) (*Shift, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	var found *Shift
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		sh, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := requireViewer(a, sh); err != nil {
			return err
		}
		found = sh
		return nil
	}); err != nil {
		return nil, err
	}
	return found, nil
}

// ListInput はシフト一覧の入力です。
type ListInput struct {
	Actor      actor.Actor
	EmployeeID string
	From       time.Time
	To         time.Time
}

// ListShifts は期間内のシフトを開始時刻順に返します。社員は自分のシフトのみ参照できます。
func (s *Service) ListShifts(ctx context.Context, in ListInput) ([]*Shift, error) {
	if !in.To.After(in.From) || in.To.Sub(in.From) > maxListDays*24*time.Hour {
		return nil, ErrInvalidDateRange
	}
	filter := ListFilter{EmployeeID: strings.TrimSpace(in.EmployeeID), From: in.From, To: in.To}
	switch {
	case in.Actor.Role == actor.RoleEmployee:
		if err := in.Actor.RequireEmployee(actor.PermViewSchedule, filter.EmployeeID); err != nil {
			return nil, err
		}
	default:
		if err := in.Actor.Require(actor.PermViewSchedule); err != nil {
			return nil, err
		}
		if !in.Actor.IsSuperAdmin() {
			filter.AgencyID = in.Actor.AgencyID
			filter.EmployerID = in.Actor.EmployerID
		}
	}

	var shifts []*Shift
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		shifts, err = s.repo.List(txCtx, filter)
		return err
	}); err != nil {
		return nil, err
	}
	return shifts, nil
}

type placement struct {
	assignment *assignment.Assignment
	day        time.Time
	start      usecase.TimeOfDay
	end        usecase.TimeOfDay
	rate       decimal.Decimal
	templateID string
	createdBy  string
}

func (p placement) shift(now time.Time, status Status) *Shift {
	startAt, endAt := usecase.Window(p.day, p.start, p.end)
	sh := &Shift{
		AssignmentID: p.assignment.ID,
		AgencyID:     p.assignment.AgencyID,
		EmployerID:   p.assignment.EmployerID,
		Date:         p.day,
		StartTime:    startAt,
		EndTime:      endAt,
		HourlyRate:   p.rate,
		Status:       status,
		TemplateID:   p.templateID,
		CreatedBy:    p.createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if status != StatusOpen {
		sh.EmployeeID = p.assignment.EmployeeID
		sh.AgencyEmployeeID = p.assignment.AgencyEmployeeID
	}
	return sh
}

// place は社員ロックを取得し、重複を判定してから重複ガード付きで挿入します。
func (s *Service) place(ctx context.Context, p placement) (*Shift, error) {
	var created *Shift
	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		employeeID := p.assignment.EmployeeID
		if err := s.locker.LockEmployee(txCtx, employeeID); err != nil {
			return err
		}
		candidate := p.shift(s.clock.Now(), StatusAssigned)
		check, err := s.conflicts.Check(txCtx, availability.CheckInput{
			EmployeeID: employeeID,
			Start:      candidate.StartTime,
			End:        candidate.EndTime,
		})
		if err != nil {
			return err
		}
		if err := check.Err(employeeID); err != nil {
			return err
		}
		created, err = s.repo.InsertIfFree(txCtx, candidate)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func requireViewer(a actor.Actor, sh *Shift) error {
	if a.Role == actor.RoleEmployee {
		return a.RequireEmployee(actor.PermViewSchedule, sh.EmployeeID)
	}
	return a.RequireParty(actor.PermViewSchedule, sh.AgencyID, sh.EmployerID)
}

func parseWindow(rawStart, rawEnd string) (usecase.TimeOfDay, usecase.TimeOfDay, error) {
	start, err := usecase.ParseTimeOfDay(rawStart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	end, err := usecase.ParseTimeOfDay(rawEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if start == end {
		return 0, 0, ErrInvalidTime
	}
	return start, end, nil
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := usecase.DateOf(*t)
	return &d
}

func shiftEvent(name event.Name, sh *Shift, actorID string, at time.Time) event.Event {
	payload := map[string]string{
		"assignment_id": sh.AssignmentID,
		"agency_id":     sh.AgencyID,
		"status":        string(sh.Status),
		"start_time":    sh.StartTime.Format(time.RFC3339),
		"end_time":      sh.EndTime.Format(time.RFC3339),
	}
	if sh.EmployeeID != "" {
		payload["employee_id"] = sh.EmployeeID
	}
	return event.New(name, aggregateType, sh.ID, actorID, at, payload)
}
