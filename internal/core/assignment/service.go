package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/event"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

const aggregateType = "assignment"

// Options は Service の任意設定です。
type Options struct {
	Logger *zap.Logger
}

// Service はアサインメントのライフサイクルを扱います。
type Service struct {
	repo      Repository
	contracts ContractReader
	workers   AgencyEmployeeReader
	overlap   OverlapChecker
	locker    usecase.EmployeeLocker
	clock     usecase.Clock
	tx        usecase.TransactionManager
	logger    *zap.Logger
}

// NewService は Service を生成します。
func NewService(
	repo Repository,
	contracts ContractReader,
	workers AgencyEmployeeReader,
	overlap OverlapChecker,
	locker usecase.EmployeeLocker,
	clock usecase.Clock,
	tx usecase.TransactionManager,
	opts Options,
) *Service {
	clock, tx, locker = usecase.Defaults(clock, tx, locker)
	return &Service{
		repo:      repo,
		contracts: contracts,
		workers:   workers,
		overlap:   overlap,
		locker:    locker,
		clock:     clock,
		tx:        tx,
		logger:    usecase.Logger(opts.Logger),
	}
}

// Result は変更後のアサインメントと発生したイベントです。
type Result struct {
	Assignment      *Assignment
	CancelledShifts int64
	Events          []event.Event
}

// CreateFromResponseInput は採用済み応募からの生成入力です。
type CreateFromResponseInput struct {
	Actor      actor.Actor
	ResponseID string
}

// ChangeStatusInput は状態変更の入力です。
type ChangeStatusInput struct {
	Actor  actor.Actor
	ID     string
	Status Status
	Reason string
}

// ExtendInput は期間延長の入力です。
type ExtendInput struct {
	Actor      actor.Actor
	ID         string
	NewEndDate time.Time
	Reason     string
}

// ListInput は一覧取得の入力です。
type ListInput struct {
	Actor     actor.Actor
	Status    *Status
	PageSize  int
	PageToken string
}

// ListResult は一覧取得結果です。
type ListResult struct {
	Assignments   []*Assignment
	NextPageToken string
}

// CreateFromResponse は採用済み応募からアサインメントを生成します。
// 契約と雇用関係が active であること、同じ社員の有効なアサインメントと期間が重ならないことを
// 社員ロック取得後に同一トランザクション内で確認します。
func (s *Service) CreateFromResponse(ctx context.Context, in CreateFromResponseInput) (_ *Result, err error) {
	defer usecase.LogFailure(s.logger, "CreateFromResponse", &err, zap.String("user_id", in.Actor.UserID))

	responseID := strings.TrimSpace(in.ResponseID)
	if responseID == "" {
		return nil, fmt.Errorf("response_id: %w", ErrInvalidID)
	}

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		src, err := s.repo.FindSource(txCtx, responseID)
		if err != nil {
			return err
		}
		if err := requireCreator(in.Actor, src); err != nil {
			return err
		}
		if src.ResponseStatus != "accepted" {
			return ErrResponseNotAccepted
		}
		if linked, err := s.repo.FindByResponseID(txCtx, responseID); err != nil && !errors.Is(err, ErrAssignmentNotFound) {
			return err
		} else if linked != nil {
			return ErrResponseAlreadyLinked
		}

		c, err := s.contracts.FindByParties(txCtx, src.EmployerID, src.AgencyID)
		if err != nil {
			return err
		}
		if !c.IsActive() {
			return ErrContractNotActive
		}

		ae, err := s.workers.FindAgencyEmployeeByID(txCtx, src.AgencyEmployeeID)
		if err != nil {
			return err
		}
		if !ae.IsActive() {
			return ErrEmployeeNotActive
		}

		markup, err := ComputeMarkup(src.ProposedRate, ae.PayRate)
		if err != nil {
			return err
		}

		if err := s.locker.LockEmployee(txCtx, ae.EmployeeID); err != nil {
			return err
		}
		check, err := s.overlap.CheckAssignment(txCtx, availability.AssignmentInput{
			EmployeeID: ae.EmployeeID,
			StartDate:  src.StartDate,
			EndDate:    src.EndDate,
		})
		if err != nil {
			return err
		}
		if err := check.Err(ae.EmployeeID); err != nil {
			return err
		}

		now := s.clock.Now()
		created, err := s.repo.Create(txCtx, &Assignment{
			ContractID:       c.ID,
			AgencyEmployeeID: ae.ID,
			EmployeeID:       ae.EmployeeID,
			AgencyID:         src.AgencyID,
			EmployerID:       src.EmployerID,
			ShiftRequestID:   src.ShiftRequestID,
			AgencyResponseID: src.ResponseID,
			LocationID:       src.LocationID,
			Role:             src.Role,
			StartDate:        usecase.DateOf(src.StartDate),
			EndDate:          usecase.DateOf(src.EndDate),
			DailyStart:       src.DailyStart,
			DailyEnd:         src.DailyEnd,
			AgreedRate:       src.ProposedRate,
			PayRate:          ae.PayRate,
			MarkupAmount:     markup.Amount,
			MarkupPercent:    markup.Percent,
			Status:           StatusPending,
			CreatedBy:        in.Actor.UserID,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		if err != nil {
			return err
		}

		result = &Result{
			Assignment: created,
			Events: []event.Event{event.New(event.AssignmentCreated, aggregateType, created.ID, in.Actor.UserID, now, map[string]string{
				"agency_response_id": created.AgencyResponseID,
				"employee_id":        created.EmployeeID,
				"agency_id":          created.AgencyID,
				"employer_id":        created.EmployerID,
				"agreed_rate":        created.AgreedRate.StringFixed(2),
				"pay_rate":           created.PayRate.StringFixed(2),
			})},
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ChangeStatus は遷移表に従って状態を変更します。取消時は未来の未終了シフトも取消します。
func (s *Service) ChangeStatus(ctx context.Context, in ChangeStatusInput) (_ *Result, err error) {
	defer usecase.LogFailure(s.logger, "ChangeStatus", &err, zap.String("user_id", in.Actor.UserID))

	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if !IsValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.LockByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireParty(actor.PermManageAssignments, existing.AgencyID, existing.EmployerID); err != nil {
			return err
		}

		from := existing.Status
		now := s.clock.Now()
		if err := Transition(existing, in.Status, in.Reason, now); err != nil {
			return err
		}

		var cancelled int64
		if in.Status == StatusCancelled {
			cancelled, err = s.repo.CancelFutureShifts(txCtx, existing.ID, now)
			if err != nil {
				return err
			}
		}

		updated, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		result = &Result{
			Assignment:      updated,
			CancelledShifts: cancelled,
			Events: []event.Event{event.New(event.AssignmentStatusChange, aggregateType, updated.ID, in.Actor.UserID, now, map[string]string{
				"from":   string(from),
				"to":     string(updated.Status),
				"reason": strings.TrimSpace(in.Reason),
			})},
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// Extend は終了日を延長します。延長で増える期間について他のアサインメントとの重複を再確認します。
func (s *Service) Extend(ctx context.Context, in ExtendInput) (_ *Result, err error) {
	defer usecase.LogFailure(s.logger, "Extend", &err, zap.String("user_id", in.Actor.UserID))

	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	newEnd := usecase.DateOf(in.NewEndDate)

	var result *Result
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.LockByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireParty(actor.PermManageAssignments, existing.AgencyID, existing.EmployerID); err != nil {
			return err
		}
		if !existing.Schedulable() {
			return ErrNotExtendable
		}
		oldEnd := usecase.DateOf(existing.EndDate)
		if !newEnd.After(oldEnd) {
			return ErrInvalidEndDate
		}

		if err := s.locker.LockEmployee(txCtx, existing.EmployeeID); err != nil {
			return err
		}
		check, err := s.overlap.CheckAssignment(txCtx, availability.AssignmentInput{
			EmployeeID:          existing.EmployeeID,
			StartDate:           oldEnd.AddDate(0, 0, 1),
			EndDate:             newEnd,
			ExcludeAssignmentID: existing.ID,
		})
		if err != nil {
			return err
		}
		if err := check.Err(existing.EmployeeID); err != nil {
			return err
		}

		now := s.clock.Now()
		note := fmt.Sprintf("[%s] end date extended from %s to %s", now.UTC().Format(noteTimeLayout), oldEnd.Format(usecase.DateLayout), newEnd.Format(usecase.DateLayout))
		if r := strings.TrimSpace(in.Reason); r != "" {
			note += ": " + r
		}
		existing.Notes = appendNote(existing.Notes, note)
		existing.EndDate = newEnd
		existing.UpdatedAt = now

		updated, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		result = &Result{
			Assignment: updated,
			Events: []event.Event{event.New(event.AssignmentExtended, aggregateType, updated.ID, in.Actor.UserID, now, map[string]string{
				"previous_end_date": oldEnd.Format(usecase.DateLayout),
				"end_date":          newEnd.Format(usecase.DateLayout),
			})},
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// Get はアサインメントを取得します。
func (s *Service) Get(ctx context.Context, a actor.Actor, id string) (_ *Assignment, err error) {
	defer usecase.LogFailure(s.logger, "Get", &err, zap.String("user_id", a.UserID))

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var found *Assignment
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := requireViewer(a, result); err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}
	return found, nil
}

// List は操作者の所属で絞り込んだアサインメント一覧を返します。
func (s *Service) List(ctx context.Context, in ListInput) (_ *ListResult, err error) {
	defer usecase.LogFailure(s.logger, "List", &err, zap.String("user_id", in.Actor.UserID))

	if err := in.Actor.Require(actor.PermViewSchedule); err != nil {
		return nil, err
	}
	if in.Status != nil && !IsValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}
	page, err := usecase.ParsePage(in.PageSize, in.PageToken)
	if err != nil {
		return nil, err
	}

	filter := ListFilter{Status: in.Status, Limit: page.Limit, Offset: page.Offset}
	switch in.Actor.Role {
	case actor.RoleSuperAdmin:
	case actor.RoleEmployee:
		filter.EmployeeID = in.Actor.EmployeeID
	case actor.RoleAgencyAdmin, actor.RoleAgent:
		filter.AgencyID = in.Actor.AgencyID
	default:
		filter.EmployerID = in.Actor.EmployerID
	}

	var result ListResult
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		items, token, err := s.repo.List(txCtx, filter)
		if err != nil {
			return err
		}
		result.Assignments = items
		result.NextPageToken = token
		return nil
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// requireCreator はアサインメント管理権限、または応募の決裁権限を持つ当事者かを確認します。
func requireCreator(a actor.Actor, src *Source) error {
	err := a.RequireParty(actor.PermManageAssignments, src.AgencyID, src.EmployerID)
	if err == nil {
		return nil
	}
	if a.RequireEmployer(actor.PermDecideResponses, src.EmployerID) == nil {
		return nil
	}
	return err
}

func requireViewer(a actor.Actor, asg *Assignment) error {
	if a.Role == actor.RoleEmployee {
		return a.RequireEmployee(actor.PermViewSchedule, asg.EmployeeID)
	}
	return a.RequireParty(actor.PermViewSchedule, asg.AgencyID, asg.EmployerID)
}
