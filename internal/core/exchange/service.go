package exchange

import (
	"context"
	"errors"
	"fmt"
	"slices"
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
	requestAggregate  = "shift_request"
	responseAggregate = "agency_response"
)

// Options は Service の任意設定です。
type Options struct {
	Logger *zap.Logger
}

// Service は募集と派遣会社の応募のやり取りを扱います。
type Service struct {
	repo        Repository
	workers     AgencyEmployeeReader
	conflicts   ConflictChecker
	assignments AssignmentCreator
	clock       usecase.Clock
	tx          usecase.TransactionManager
	logger      *zap.Logger
}

// NewService は Service を生成します。
func NewService(
	repo Repository,
	workers AgencyEmployeeReader,
	conflicts ConflictChecker,
	assignments AssignmentCreator,
	clock usecase.Clock,
	tx usecase.TransactionManager,
	opts Options,
) *Service {
	clock, tx, _ = usecase.Defaults(clock, tx, nil)
	return &Service{
		repo:        repo,
		workers:     workers,
		conflicts:   conflicts,
		assignments: assignments,
		clock:       clock,
		tx:          tx,
		logger:      usecase.Logger(opts.Logger),
	}
}

// CreateShiftRequestInput は募集作成の入力です。StartTime/EndTime は "HH:MM" です。
type CreateShiftRequestInput struct {
	Actor           actor.Actor
	EmployerID      string
	LocationID      string
	Role            string
	StartDate       time.Time
	EndDate         time.Time
	StartTime       string
	EndTime         string
	MaxHourlyRate   decimal.Decimal
	NumberOfWorkers int
	TargetScope     TargetScope
	TargetAgencyIDs []string
}

// RequestActionInput は募集に対する公開・取消の入力です。
type RequestActionInput struct {
	Actor actor.Actor
	ID    string
}

// RequestResult は募集の変更結果です。
type RequestResult struct {
	Request  *ShiftRequest
	Rejected []*Response
	Events   []event.Event
}

// SubmitResponseInput は応募の入力です。
type SubmitResponseInput struct {
	Actor              actor.Actor
	ShiftRequestID     string
	AgencyID           string
	ProposedRate       decimal.Decimal
	ProposedEmployeeID string
	ProposedStartDate  time.Time
	ProposedEndDate    time.Time
	Notes              string
	ExpiresAt          *time.Time
}

// ResponseActionInput は応募の採用・不採用・取下げの入力です。
type ResponseActionInput struct {
	Actor      actor.Actor
	ResponseID string
	Reason     string
}

// ResponseResult は応募の変更結果です。
type ResponseResult struct {
	Response *Response
	Events   []event.Event
}

// AcceptResult は採用処理の結果です。
type AcceptResult struct {
	Request    *ShiftRequest
	Response   *Response
	Rejected   []*Response
	Assignment *assignment.Assignment
	Events     []event.Event
}

// CreateShiftRequest は下書き状態の募集を作成します。
func (s *Service) CreateShiftRequest(ctx context.Context, in CreateShiftRequestInput) (_ *ShiftRequest, err error) {
	defer usecase.LogFailure(s.logger, "CreateShiftRequest", &err, zap.String("user_id", in.Actor.UserID))

	employerID := strings.TrimSpace(in.EmployerID)
	if employerID == "" {
		return nil, fmt.Errorf("employer_id: %w", ErrInvalidID)
	}
	if err := in.Actor.RequireEmployer(actor.PermManageShiftRequests, employerID); err != nil {
		return nil, err
	}
	req, err := buildRequest(in)
	if err != nil {
		return nil, err
	}
	req.EmployerID = employerID
	req.CreatedBy = in.Actor.UserID

	var created *ShiftRequest
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		req.CreatedAt = now
		req.UpdatedAt = now
		result, err := s.repo.CreateRequest(txCtx, req)
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

// PublishShiftRequest は下書きの募集を公開します。
func (s *Service) PublishShiftRequest(ctx context.Context, in RequestActionInput) (_ *RequestResult, err error) {
	defer usecase.LogFailure(s.logger, "PublishShiftRequest", &err, zap.String("user_id", in.Actor.UserID))

	return s.changeRequest(ctx, in, RequestPublished, func(r *ShiftRequest) bool {
		return r.Status == RequestDraft
	})
}

// CancelShiftRequest は募集を取り消し、判断待ちの応募を不採用にします。
func (s *Service) CancelShiftRequest(ctx context.Context, in RequestActionInput) (_ *RequestResult, err error) {
	defer usecase.LogFailure(s.logger, "CancelShiftRequest", &err, zap.String("user_id", in.Actor.UserID))

	return s.changeRequest(ctx, in, RequestCancelled, func(r *ShiftRequest) bool {
		return r.Status == RequestDraft || r.Status == RequestPublished || r.Status == RequestInProgress
	})
}

func (s *Service) changeRequest(ctx context.Context, in RequestActionInput, to RequestStatus, allowed func(*ShiftRequest) bool) (*RequestResult, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *RequestResult
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		req, err := s.repo.LockRequest(txCtx, in.ID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireEmployer(actor.PermManageShiftRequests, req.EmployerID); err != nil {
			return err
		}
		if !allowed(req) {
			return domainerr.NewTransitionError("shift_request", req.Status, to)
		}

		now := s.clock.Now()
		out := &RequestResult{}
		if to == RequestCancelled {
			responses, err := s.repo.LockResponses(txCtx, req.ID)
			if err != nil {
				return err
			}
			for _, resp := range responses {
				if !resp.Decidable() {
					continue
				}
				rejected, err := s.reject(txCtx, resp, reasonRequestCancelled, now)
				if err != nil {
					return err
				}
				out.Rejected = append(out.Rejected, rejected)
				out.Events = append(out.Events, responseEvent(event.ResponseRejected, rejected, in.Actor.UserID, now))
			}
		}

		req.Status = to
		req.UpdatedAt = now
		updated, err := s.repo.UpdateRequest(txCtx, req)
		if err != nil {
			return err
		}
		name := event.ShiftRequestPublished
		if to == RequestCancelled {
			name = event.ShiftRequestCancelled
		}
		out.Request = updated
		out.Events = append([]event.Event{event.New(name, requestAggregate, updated.ID, in.Actor.UserID, now, map[string]string{
			"employer_id": updated.EmployerID,
		})}, out.Events...)
		result = out
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// SubmitResponse は派遣会社の応募を登録します。
// 単価上限・期間・重複応募・提案社員の予定重複（全派遣会社横断）を検証します。
func (s *Service) SubmitResponse(ctx context.Context, in SubmitResponseInput) (_ *ResponseResult, err error) {
	defer usecase.LogFailure(s.logger, "SubmitResponse", &err, zap.String("user_id", in.Actor.UserID))

	requestID := strings.TrimSpace(in.ShiftRequestID)
	agencyID := strings.TrimSpace(in.AgencyID)
	agencyEmployeeID := strings.TrimSpace(in.ProposedEmployeeID)
	if requestID == "" || agencyID == "" || agencyEmployeeID == "" {
		return nil, ErrInvalidID
	}
	if err := in.Actor.RequireAgency(actor.PermRespondToRequests, agencyID); err != nil {
		return nil, err
	}
	if !in.ProposedRate.IsPositive() {
		return nil, ErrInvalidRate
	}
	start, end := usecase.DateOf(in.ProposedStartDate), usecase.DateOf(in.ProposedEndDate)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	if in.ExpiresAt != nil && !in.ExpiresAt.After(s.clock.Now()) {
		return nil, ErrInvalidExpiry
	}

	var result *ResponseResult
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		req, err := s.repo.FindRequestByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if !req.OpenForResponses() {
			return ErrRequestNotOpen
		}
		if !req.Targets(agencyID) {
			return ErrAgencyNotTargeted
		}
		if in.ProposedRate.GreaterThan(req.MaxHourlyRate) {
			return fmt.Errorf("%w: %s > %s", ErrRateExceedsCeiling, in.ProposedRate.StringFixed(2), req.MaxHourlyRate.StringFixed(2))
		}
		if start.Before(usecase.DateOf(req.StartDate)) || end.After(usecase.DateOf(req.EndDate)) {
			return ErrDatesOutsideRequest
		}

		existing, err := s.repo.FindActiveResponse(txCtx, req.ID, agencyID)
		if err != nil && !errors.Is(err, ErrResponseNotFound) {
			return err
		}
		if existing != nil {
			return ErrDuplicateResponse
		}

		ae, err := s.workers.FindAgencyEmployeeByID(txCtx, agencyEmployeeID)
		if err != nil {
			return err
		}
		if ae.AgencyID != agencyID || !ae.IsActive() {
			return ErrInvalidEmployee
		}

		check, err := s.conflicts.CheckRange(txCtx, availability.RangeInput{
			EmployeeID: ae.EmployeeID,
			StartDate:  start,
			EndDate:    end,
			DailyStart: req.StartTime,
			DailyEnd:   req.EndTime,
		})
		if err != nil {
			return err
		}
		if err := check.Err(ae.EmployeeID); err != nil {
			return err
		}
		check, err = s.conflicts.CheckAssignment(txCtx, availability.AssignmentInput{EmployeeID: ae.EmployeeID, StartDate: start, EndDate: end})
		if err != nil {
			return err
		}
		if err := check.Err(ae.EmployeeID); err != nil {
			return err
		}

		now := s.clock.Now()
		created, err := s.repo.CreateResponse(txCtx, &Response{
			ShiftRequestID:     req.ID,
			AgencyID:           agencyID,
			ProposedRate:       in.ProposedRate.Round(2),
			ProposedEmployeeID: ae.ID,
			ProposedStartDate:  start,
			ProposedEndDate:    end,
			Notes:              strings.TrimSpace(in.Notes),
			Status:             ResponsePending,
			ExpiresAt:          in.ExpiresAt,
			SubmittedBy:        in.Actor.UserID,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
		if err != nil {
			return err
		}
		result = &ResponseResult{
			Response: created,
			Events:   []event.Event{responseEvent(event.ResponseSubmitted, created, in.Actor.UserID, now)},
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// AcceptResponse は応募を採用し、他の応募を不採用にし、アサインメントを生成して募集の状態を進めます。
// 募集行と全応募を FOR UPDATE で確保した同一トランザクション内で行い、途中で失敗すれば全て巻き戻ります。
func (s *Service) AcceptResponse(ctx context.Context, in ResponseActionInput) (_ *AcceptResult, err error) {
	defer usecase.LogFailure(s.logger, "AcceptResponse", &err, zap.String("user_id", in.Actor.UserID))

	if strings.TrimSpace(in.ResponseID) == "" {
		return nil, fmt.Errorf("response_id: %w", ErrInvalidID)
	}

	var result *AcceptResult
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		target, err := s.repo.FindResponseByID(txCtx, in.ResponseID)
		if err != nil {
			return err
		}
		req, err := s.repo.LockRequest(txCtx, target.ShiftRequestID)
		if err != nil {
			return err
		}
		if err := in.Actor.RequireEmployer(actor.PermDecideResponses, req.EmployerID); err != nil {
			return err
		}
		if !req.OpenForResponses() {
			return ErrRequestNotOpen
		}

		responses, err := s.repo.LockResponses(txCtx, req.ID)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(responses, func(r *Response) bool { return r.ID == target.ID })
		if idx < 0 {
			return ErrResponseNotFound
		}
		target = responses[idx]
		if slices.ContainsFunc(responses, func(r *Response) bool { return r.Status == ResponseAccepted }) {
			return ErrAlreadyAccepted
		}

		now := s.clock.Now()
		if !target.Decidable() {
			return domainerr.NewTransitionError("agency_response", target.Status, ResponseAccepted)
		}
		if target.Expired(now) {
			return ErrResponseExpired
		}

		out := &AcceptResult{}
		target.Status = ResponseAccepted
		target.EmployerDecisionAt = &now
		target.UpdatedAt = now
		accepted, err := s.repo.UpdateResponse(txCtx, target)
		if err != nil {
			return err
		}
		out.Response = accepted
		out.Events = append(out.Events, responseEvent(event.ResponseAccepted, accepted, in.Actor.UserID, now))

		for _, sibling := range responses {
			if sibling.ID == target.ID || !sibling.Decidable() {
				continue
			}
			rejected, err := s.reject(txCtx, sibling, reasonAnotherAgency, now)
			if err != nil {
				return err
			}
			out.Rejected = append(out.Rejected, rejected)
			out.Events = append(out.Events, responseEvent(event.ResponseRejected, rejected, in.Actor.UserID, now))
		}

		created, err := s.assignments.CreateFromResponse(txCtx, assignment.CreateFromResponseInput{Actor: in.Actor, ResponseID: accepted.ID})
		if err != nil {
			return err
		}
		out.Assignment = created.Assignment
		out.Events = append(out.Events, created.Events...)

		// 1 名募集は充足、複数名募集は一部充足として進行中にする
		if req.NumberOfWorkers <= 1 {
			req.Status = RequestFilled
		} else {
			req.Status = RequestInProgress
		}
		req.UpdatedAt = now
		updatedReq, err := s.repo.UpdateRequest(txCtx, req)
		if err != nil {
			return err
		}
		out.Request = updatedReq
		result = out
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// RejectResponse は雇用主が応募を不採用にします。他の応募には影響しません。
func (s *Service) RejectResponse(ctx context.Context, in ResponseActionInput) (_ *ResponseResult, err error) {
	defer usecase.LogFailure(s.logger, "RejectResponse", &err, zap.String("user_id", in.Actor.UserID))

	return s.decide(ctx, in, ResponseRejected)
}

// WithdrawResponse は派遣会社が自社の応募を取り下げます。他の応募には影響しません。
func (s *Service) WithdrawResponse(ctx context.Context, in ResponseActionInput) (_ *ResponseResult, err error) {
	defer usecase.LogFailure(s.logger, "WithdrawResponse", &err, zap.String("user_id", in.Actor.UserID))

	return s.decide(ctx, in, ResponseWithdrawn)
}

func (s *Service) decide(ctx context.Context, in ResponseActionInput, to ResponseStatus) (*ResponseResult, error) {
	if strings.TrimSpace(in.ResponseID) == "" {
		return nil, fmt.Errorf("response_id: %w", ErrInvalidID)
	}

	var result *ResponseResult
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		resp, err := s.repo.FindResponseByID(txCtx, in.ResponseID)
		if err != nil {
			return err
		}
		if to == ResponseWithdrawn {
			if err := in.Actor.RequireAgency(actor.PermRespondToRequests, resp.AgencyID); err != nil {
				return err
			}
		} else {
			req, err := s.repo.FindRequestByID(txCtx, resp.ShiftRequestID)
			if err != nil {
				return err
			}
			if err := in.Actor.RequireEmployer(actor.PermDecideResponses, req.EmployerID); err != nil {
				return err
			}
		}

		now := s.clock.Now()
		if !resp.Decidable() {
			return domainerr.NewTransitionError("agency_response", resp.Status, to)
		}
		if resp.Expired(now) {
			return ErrResponseExpired
		}

		var updated *Response
		name := event.ResponseWithdrawn
		if to == ResponseRejected {
			name = event.ResponseRejected
			updated, err = s.reject(txCtx, resp, in.Reason, now)
		} else {
			resp.Status = ResponseWithdrawn
			resp.UpdatedAt = now
			updated, err = s.repo.UpdateResponse(txCtx, resp)
		}
		if err != nil {
			return err
		}
		result = &ResponseResult{
			Response: updated,
			Events:   []event.Event{responseEvent(name, updated, in.Actor.UserID, now)},
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// GetShiftRequest は募集を取得します。
func (s *Service) GetShiftRequest(ctx context.Context, a actor.Actor, id string) (_ *ShiftRequest, err error) {
	defer usecase.LogFailure(s.logger, "GetShiftRequest", &err, zap.String("user_id", a.UserID))

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if err := a.Require(actor.PermViewSchedule); err != nil {
		return nil, err
	}

	var found *ShiftRequest
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		req, err := s.repo.FindRequestByID(txCtx, id)
		if err != nil {
			return err
		}
		if a.EmployerID != "" && a.EmployerID != req.EmployerID {
			return fmt.Errorf("%w: employer %s is outside actor scope", actor.ErrForbidden, req.EmployerID)
		}
		found = req
		return nil
	}); err != nil {
		return nil, err
	}
	return found, nil
}

func (s *Service) reject(ctx context.Context, resp *Response, reason string, now time.Time) (*Response, error) {
	resp.Status = ResponseRejected
	resp.RejectionReason = strings.TrimSpace(reason)
	resp.EmployerDecisionAt = &now
	resp.UpdatedAt = now
	return s.repo.UpdateResponse(ctx, resp)
}

func responseEvent(name event.Name, r *Response, actorID string, at time.Time) event.Event {
	return event.New(name, responseAggregate, r.ID, actorID, at, map[string]string{
		"shift_request_id": r.ShiftRequestID,
		"agency_id":        r.AgencyID,
		"status":           string(r.Status),
		"proposed_rate":    r.ProposedRate.StringFixed(2),
	})
}

func buildRequest(in CreateShiftRequestInput) (*ShiftRequest, error) {
	role := strings.TrimSpace(in.Role)
	if role == "" {
		return nil, ErrInvalidRole
	}
	location := strings.TrimSpace(in.LocationID)
	if location == "" {
		return nil, ErrInvalidLocation
	}
	start, end := usecase.DateOf(in.StartDate), usecase.DateOf(in.EndDate)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	startTime, err := usecase.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeWindow, err)
	}
	endTime, err := usecase.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeWindow, err)
	}
	if startTime == endTime {
		return nil, ErrInvalidTimeWindow
	}
	if !in.MaxHourlyRate.IsPositive() {
		return nil, ErrInvalidRate
	}
	workers := in.NumberOfWorkers
	if workers == 0 {
		workers = 1
	}
	if workers < 1 {
		return nil, ErrInvalidWorkers
	}

	scope := in.TargetScope
	if scope == "" {
		scope = ScopeAll
	}
	var targets []string
	switch scope {
	case ScopeAll:
	case ScopeSpecific:
		for _, id := range in.TargetAgencyIDs {
			if id = strings.TrimSpace(id); id != "" && !slices.Contains(targets, id) {
				targets = append(targets, id)
			}
		}
		if len(targets) == 0 {
			return nil, ErrInvalidTargets
		}
	default:
		return nil, ErrInvalidTargets
	}

	return &ShiftRequest{
		LocationID:      location,
		Role:            role,
		StartDate:       start,
		EndDate:         end,
		StartTime:       startTime,
		EndTime:         endTime,
		MaxHourlyRate:   in.MaxHourlyRate.Round(2),
		NumberOfWorkers: workers,
		TargetScope:     scope,
		TargetAgencyIDs: targets,
		Status:          RequestDraft,
	}, nil
}
