package workforce

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

// Options は Service の任意設定です。
type Options struct {
	Logger *zap.Logger
}

// Service は社員と派遣会社の雇用関係に関するユースケースをまとめます。
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

// CreateEmployeeInput は社員作成時の入力です。
type CreateEmployeeInput struct {
	Actor     actor.Actor
	FirstName string
	LastName  string
	Email     string
}

// RegisterAgencyEmployeeInput は派遣会社への登録入力です。
type RegisterAgencyEmployeeInput struct {
	Actor          actor.Actor
	AgencyID       string
	EmployeeID     string
	PayRate        decimal.Decimal
	EmploymentType EmploymentType
}

// ChangeStatusInput は雇用関係の状態変更入力です。
type ChangeStatusInput struct {
	Actor            actor.Actor
	AgencyEmployeeID string
	Status           Status
}

// ListAgencyEmployeesInput は一覧取得時の入力です。
type ListAgencyEmployeesInput struct {
	Actor     actor.Actor
	AgencyID  string
	PageSize  int
	PageToken string
	Status    *Status
}

// ListAgencyEmployeesResult は一覧取得結果です。
type ListAgencyEmployeesResult struct {
	AgencyEmployees []*AgencyEmployee
	NextPageToken   string
}

// CreateEmployee は社員を作成します。社員は派遣会社に属さない独立したエンティティです。
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (_ *Employee, err error) {
	defer usecase.LogFailure(s.logger, "CreateEmployee", &err, zap.String("user_id", in.Actor.UserID))

	if err := in.Actor.Require(actor.PermManageWorkforce); err != nil {
		return nil, err
	}
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return nil, ErrInvalidName
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.CreateEmployee(txCtx, &Employee{
			FirstName: first,
			LastName:  last,
			Email:     email,
			Status:    EmployeeActive,
			CreatedAt: now,
			UpdatedAt: now,
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

// GetEmployee は社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, a actor.Actor, id string) (_ *Employee, err error) {
	defer usecase.LogFailure(s.logger, "GetEmployee", &err, zap.String("user_id", a.UserID))

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if err := a.Require(actor.PermViewSchedule); err != nil {
		return nil, err
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindEmployeeByID(txCtx, id)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// RegisterAgencyEmployee は社員を派遣会社に登録します。
// 同じ派遣会社で既に active な登録があれば ErrAlreadyEmployed です。別の派遣会社での登録は妨げません。
func (s *Service) RegisterAgencyEmployee(ctx context.Context, in RegisterAgencyEmployeeInput) (_ *AgencyEmployee, err error) {
	defer usecase.LogFailure(s.logger, "RegisterAgencyEmployee", &err, zap.String("user_id", in.Actor.UserID))

	agencyID := strings.TrimSpace(in.AgencyID)
	if agencyID == "" {
		return nil, ErrInvalidAgencyID
	}
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, fmt.Errorf("employee_id: %w", ErrInvalidID)
	}
	if err := in.Actor.RequireAgency(actor.PermManageWorkforce, agencyID); err != nil {
		return nil, err
	}
	if in.PayRate.IsNegative() {
		return nil, ErrInvalidPayRate
	}
	employmentType := in.EmploymentType
	if employmentType == "" {
		employmentType = EmploymentTemporary
	}
	if !isValidEmploymentType(employmentType) {
		return nil, ErrInvalidEmploymentType
	}

	var created *AgencyEmployee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		emp, err := s.repo.FindEmployeeByID(txCtx, employeeID)
		if err != nil {
			return err
		}
		if emp.Status != EmployeeActive {
			return ErrEmployeeNotActive
		}

		existing, err := s.repo.FindActiveAgencyEmployee(txCtx, agencyID, employeeID)
		if err != nil && !errors.Is(err, ErrAgencyEmployeeNotFound) {
			return err
		}
		if existing != nil {
			return ErrAlreadyEmployed
		}

		now := s.clock.Now()
		result, err := s.repo.CreateAgencyEmployee(txCtx, &AgencyEmployee{
			AgencyID:       agencyID,
			EmployeeID:     employeeID,
			PayRate:        in.PayRate.Round(2),
			EmploymentType: employmentType,
			Status:         StatusActive,
			CreatedAt:      now,
			UpdatedAt:      now,
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

// ChangeStatus は雇用関係の状態を遷移させます。
func (s *Service) ChangeStatus(ctx context.Context, in ChangeStatusInput) (_ *AgencyEmployee, err error) {
	defer usecase.LogFailure(s.logger, "ChangeStatus", &err, zap.String("user_id", in.Actor.UserID))

	if strings.TrimSpace(in.AgencyEmployeeID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if !isValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	var updated *AgencyEmployee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindAgencyEmployeeByID(txCtx, in.AgencyEmployeeID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireAgency(actor.PermManageWorkforce, existing.AgencyID); err != nil {
			return err
		}
		if !CanTransition(existing.Status, in.Status) {
			return domainerr.NewTransitionError("agency_employee", existing.Status, in.Status)
		}
		if in.Status == StatusActive {
			// 再有効化で同一ペアの active 行が 2 件にならないことを確認する
			other, err := s.repo.FindActiveAgencyEmployee(txCtx, existing.AgencyID, existing.EmployeeID)
			if err != nil && !errors.Is(err, ErrAgencyEmployeeNotFound) {
				return err
			}
			if other != nil && other.ID != existing.ID {
				return ErrAlreadyEmployed
			}
		}

		existing.Status = in.Status
		existing.UpdatedAt = s.clock.Now()
		result, err := s.repo.UpdateAgencyEmployee(txCtx, existing)
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

// GetAgencyEmployee は雇用関係を取得します。
func (s *Service) GetAgencyEmployee(ctx context.Context, a actor.Actor, id string) (_ *AgencyEmployee, err error) {
	defer usecase.LogFailure(s.logger, "GetAgencyEmployee", &err, zap.String("user_id", a.UserID))

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *AgencyEmployee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindAgencyEmployeeByID(txCtx, id)
		if err != nil {
			return err
		}
		if a.Role == actor.RoleEmployee {
			if err := a.RequireEmployee(actor.PermViewSchedule, found.EmployeeID); err != nil {
				return err
			}
		} else if err := a.RequireAgency(actor.PermViewSchedule, found.AgencyID); err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAgencyEmployees は派遣会社に所属する社員の一覧を取得します。
func (s *Service) ListAgencyEmployees(ctx context.Context, in ListAgencyEmployeesInput) (_ *ListAgencyEmployeesResult, err error) {
	defer usecase.LogFailure(s.logger, "ListAgencyEmployees", &err, zap.String("user_id", in.Actor.UserID))

	agencyID := strings.TrimSpace(in.AgencyID)
	if agencyID == "" {
		return nil, ErrInvalidAgencyID
	}
	if err := in.Actor.RequireAgency(actor.PermViewSchedule, agencyID); err != nil {
		return nil, err
	}
	page, err := usecase.ParsePage(in.PageSize, in.PageToken)
	if err != nil {
		return nil, err
	}
	if in.Status != nil && !isValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	var result ListAgencyEmployeesResult
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		items, token, err := s.repo.ListAgencyEmployees(txCtx, ListAgencyEmployeesFilter{
			AgencyID: agencyID,
			Status:   in.Status,
			Limit:    page.Limit,
			Offset:   page.Offset,
		})
		if err != nil {
			return err
		}
		result.AgencyEmployees = items
		result.NextPageToken = token
		return nil
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive, StatusSuspended, StatusTerminated:
		return true
	default:
		return false
	}
}

func isValidEmploymentType(t EmploymentType) bool {
	switch t {
	case EmploymentTemporary, EmploymentPermanent, EmploymentContract:
		return true
	default:
		return false
	}
}
