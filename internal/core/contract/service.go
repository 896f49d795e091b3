package contract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

// Options は Service の任意設定です。
type Options struct {
	Logger *zap.Logger
}

// Service は雇用主と派遣会社の契約に関するユースケースをまとめます。
type Service struct {
	repo   Repository
	clock  usecase.Clock
	tx     usecase.TransactionManager
	logger *zap.Logger
}

// NewService は Service を生成します。
func NewService(repo Repository, clock usecase.Clock, tx usecase.TransactionManager, opts Options) *Service {
	clock, tx, _ = usecase.Defaults(clock, tx, nil)
	return &Service{repo: repo, clock: clock, tx: tx, logger: usecase.Logger(opts.Logger)}
}

// CreateContractInput は契約作成時の入力です。
type CreateContractInput struct {
	Actor      actor.Actor
	EmployerID string
	AgencyID   string
	StartDate  time.Time
	EndDate    *time.Time
}

// ChangeStatusInput は契約状態の変更入力です。
type ChangeStatusInput struct {
	Actor  actor.Actor
	ID     string
	Status Status
}

// ListContractsInput は一覧取得時の入力です。
type ListContractsInput struct {
	Actor     actor.Actor
	PageSize  int
	PageToken string
	Status    *Status
}

// ListContractsResult は一覧取得結果を表します。
type ListContractsResult struct {
	Contracts     []*Contract
	NextPageToken string
}

// CreateContract は pending 状態の契約を作成します。どちらの当事者からも作成できます。
func (s *Service) CreateContract(ctx context.Context, in CreateContractInput) (_ *Contract, err error) {
	defer usecase.LogFailure(s.logger, "CreateContract", &err, zap.String("user_id", in.Actor.UserID))

	employerID := strings.TrimSpace(in.EmployerID)
	agencyID := strings.TrimSpace(in.AgencyID)
	if employerID == "" || agencyID == "" {
		return nil, ErrInvalidParty
	}
	if err := in.Actor.RequireParty(actor.PermManageContracts, agencyID, employerID); err != nil {
		return nil, err
	}
	start := usecase.DateOf(in.StartDate)
	var end *time.Time
	if in.EndDate != nil {
		d := usecase.DateOf(*in.EndDate)
		if d.Before(start) {
			return nil, ErrInvalidDateRange
		}
		end = &d
	}

	var created *Contract
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByParties(txCtx, employerID, agencyID)
		if err != nil && !errors.Is(err, ErrContractNotFound) {
			return err
		}
		if existing != nil {
			return ErrContractAlreadyExists
		}

		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Contract{
			EmployerID: employerID,
			AgencyID:   agencyID,
			Status:     StatusPending,
			StartDate:  start,
			EndDate:    end,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// ChangeStatus は契約状態を遷移させます。
func (s *Service) ChangeStatus(ctx context.Context, in ChangeStatusInput) (_ *Contract, err error) {
	defer usecase.LogFailure(s.logger, "ChangeStatus", &err, zap.String("user_id", in.Actor.UserID))

	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	switch in.Status {
	case StatusPending, StatusActive, StatusSuspended, StatusTerminated:
	default:
		return nil, ErrInvalidStatus
	}

	var updated *Contract
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireParty(actor.PermManageContracts, existing.AgencyID, existing.EmployerID); err != nil {
			return err
		}
		if !CanTransition(existing.Status, in.Status) {
			return domainerr.NewTransitionError("contract", existing.Status, in.Status)
		}

		existing.Status = in.Status
		existing.UpdatedAt = s.clock.Now()
		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

// GetContract は契約を取得します。
func (s *Service) GetContract(ctx context.Context, a actor.Actor, id string) (_ *Contract, err error) {
	defer usecase.LogFailure(s.logger, "GetContract", &err, zap.String("user_id", a.UserID))

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Contract
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := a.RequireParty(actor.PermViewSchedule, found.AgencyID, found.EmployerID); err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ListContracts は操作者が当事者となっている契約の一覧を取得します。
func (s *Service) ListContracts(ctx context.Context, in ListContractsInput) (_ *ListContractsResult, err error) {
	defer usecase.LogFailure(s.logger, "ListContracts", &err, zap.String("user_id", in.Actor.UserID))

	if err := in.Actor.Require(actor.PermManageContracts); err != nil {
		return nil, err
	}
	page, err := usecase.ParsePage(in.PageSize, in.PageToken)
	if err != nil {
		return nil, err
	}

	filter := ListContractsFilter{Status: in.Status, Limit: page.Limit, Offset: page.Offset}
	if !in.Actor.IsSuperAdmin() {
		filter.AgencyID = in.Actor.AgencyID
		filter.EmployerID = in.Actor.EmployerID
	}

	var result ListContractsResult
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		items, token, err := s.repo.List(txCtx, filter)
		if err != nil {
			return err
		}
		result.Contracts = items
		result.NextPageToken = token
		return nil
	}); err != nil {
		return nil, err
	}
	return &result, nil
}
