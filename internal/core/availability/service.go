package availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

// Options は Service の任意設定です。
type Options struct {
	Logger *zap.Logger
}

// Service は社員の稼働可否（休暇・曜日別時間帯）を管理します。
type Service struct {
	repo     Repository
	detector *Detector
	clock    usecase.Clock
	tx       usecase.TransactionManager
	logger   *zap.Logger
}

// NewService は Service を生成します。
func NewService(repo Repository, clock usecase.Clock, tx usecase.TransactionManager, opts Options) *Service {
	clock, tx, _ = usecase.Defaults(clock, tx, nil)
	return &Service{repo: repo, detector: NewDetector(repo), clock: clock, tx: tx, logger: usecase.Logger(opts.Logger)}
}

// Detector は同じリポジトリを共有する重複検出器を返します。
func (s *Service) Detector() *Detector {
	return s.detector
}

// RequestTimeOffInput は休暇申請の入力です。
type RequestTimeOffInput struct {
	Actor      actor.Actor
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
}

// DecideTimeOffInput は休暇申請の決裁入力です。
type DecideTimeOffInput struct {
	Actor    actor.Actor
	ID       string
	Decision TimeOffStatus
}

// SetAvailabilityInput は曜日別時間帯の置き換え入力です。
type SetAvailabilityInput struct {
	Actor      actor.Actor
	EmployeeID string
	Blocks     []BlockInput
}

// BlockInput は時間帯 1 件分の入力です。
type BlockInput struct {
	DayOfWeek time.Weekday
	StartTime string
	EndTime   string
	Type      BlockType
}

// RequestTimeOff は本人の休暇を申請します。
func (s *Service) RequestTimeOff(ctx context.Context, in RequestTimeOffInput) (_ *TimeOffRequest, err error) {
	defer usecase.LogFailure(s.logger, "RequestTimeOff", &err, zap.String("user_id", in.Actor.UserID))

	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	if err := in.Actor.RequireEmployee(actor.PermManageOwnAvailability, employeeID); err != nil {
		return nil, err
	}
	start, end := usecase.DateOf(in.StartDate), usecase.DateOf(in.EndDate)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	var created *TimeOffRequest
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.CreateTimeOff(txCtx, &TimeOffRequest{
			EmployeeID: employeeID,
			StartDate:  start,
			EndDate:    end,
			Reason:     strings.TrimSpace(in.Reason),
			Status:     TimeOffPending,
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

// DecideTimeOff は保留中の休暇申請を承認・却下・取消します。
func (s *Service) DecideTimeOff(ctx context.Context, in DecideTimeOffInput) (_ *TimeOffRequest, err error) {
	defer usecase.LogFailure(s.logger, "DecideTimeOff", &err, zap.String("user_id", in.Actor.UserID))

	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrTimeOffNotFound)
	}
	switch in.Decision {
	case TimeOffApproved, TimeOffRejected, TimeOffCancelled:
	default:
		return nil, ErrInvalidDecision
	}

	var updated *TimeOffRequest
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		req, err := s.repo.FindTimeOffByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		if in.Decision == TimeOffCancelled {
			if err := in.Actor.RequireEmployee(actor.PermManageOwnAvailability, req.EmployeeID); err != nil {
				return err
			}
		} else if err := in.Actor.Require(actor.PermDecideTimeOff); err != nil {
			return err
		}
		if req.Status != TimeOffPending {
			return fmt.Errorf("time off %s is %s: %w", req.ID, req.Status, ErrInvalidDecision)
		}

		now := s.clock.Now()
		req.Status = in.Decision
		req.DecidedBy = in.Actor.UserID
		req.DecidedAt = &now
		req.UpdatedAt = now

		result, err := s.repo.UpdateTimeOff(txCtx, req)
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

// SetAvailability は本人の曜日別時間帯を丸ごと置き換えます。
func (s *Service) SetAvailability(ctx context.Context, in SetAvailabilityInput) (_ []*Block, err error) {
	defer usecase.LogFailure(s.logger, "SetAvailability", &err, zap.String("user_id", in.Actor.UserID))

	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	if err := in.Actor.RequireEmployee(actor.PermManageOwnAvailability, employeeID); err != nil {
		return nil, err
	}

	blocks := make([]*Block, 0, len(in.Blocks))
	for i, b := range in.Blocks {
		block, err := toBlock(employeeID, b)
		if err != nil {
			return nil, fmt.Errorf("blocks[%d]: %w", i, err)
		}
		blocks = append(blocks, block)
	}

	var saved []*Block
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.ReplaceBlocks(txCtx, employeeID, blocks)
		if err != nil {
			return err
		}
		saved = result
		return nil
	}); err != nil {
		return nil, err
	}
	return saved, nil
}

// ListAvailability は社員の曜日別時間帯を返します。
func (s *Service) ListAvailability(ctx context.Context, a actor.Actor, employeeID string) (_ []*Block, err error) {
	defer usecase.LogFailure(s.logger, "ListAvailability", &err, zap.String("user_id", a.UserID))

	if strings.TrimSpace(employeeID) == "" {
		return nil, ErrInvalidEmployeeID
	}
	if err := a.Require(actor.PermViewSchedule); err != nil {
		return nil, err
	}

	var blocks []*Block
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.ListBlocks(txCtx, employeeID)
		if err != nil {
			return err
		}
		blocks = result
		return nil
	}); err != nil {
		return nil, err
	}
	return blocks, nil
}

func toBlock(employeeID string, in BlockInput) (*Block, error) {
	if in.DayOfWeek < time.Sunday || in.DayOfWeek > time.Saturday {
		return nil, ErrInvalidBlock
	}
	switch in.Type {
	case BlockAvailable, BlockUnavailable, BlockPreferred:
	default:
		return nil, ErrInvalidBlock
	}
	start, err := usecase.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}
	end, err := usecase.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}
	if start == end {
		return nil, ErrInvalidBlock
	}
	return &Block{EmployeeID: employeeID, DayOfWeek: in.DayOfWeek, StartTime: start, EndTime: end, Type: in.Type}, nil
}

// CheckConflict は時間枠の重複を判定します。社員は自分の予定のみ判定できます。
func (s *Service) CheckConflict(ctx context.Context, a actor.Actor, in CheckInput) (_ Result, err error) {
	defer usecase.LogFailure(s.logger, "CheckConflict", &err, zap.String("user_id", a.UserID))

	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	if in.EmployeeID == "" {
		return Result{}, ErrInvalidEmployeeID
	}
	if a.Role == actor.RoleEmployee {
		if err := a.RequireEmployee(actor.PermViewSchedule, in.EmployeeID); err != nil {
			return Result{}, err
		}
	} else if err := a.Require(actor.PermViewSchedule); err != nil {
		return Result{}, err
	}

	var result Result
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		r, err := s.detector.Check(txCtx, in)
		if err != nil {
			return err
		}
		result = r
		return nil
	}); err != nil {
		return Result{}, err
	}
	return result, nil
}
