package handler

import (
	"context"

	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
	"github.com/ogurasousui/staffing-engine/internal/core/exchange"
)

// CreateShiftRequest は下書きの募集を作成します。
func (h *StaffingHandler) CreateShiftRequest(ctx context.Context, req *staffingv1.CreateShiftRequestRequest) (*staffingv1.ShiftRequestResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", req.GetStartDate())
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.GetEndDate())
	if err != nil {
		return nil, err
	}
	maxRate, err := parseDecimal("max_hourly_rate", req.GetMaxHourlyRate())
	if err != nil {
		return nil, err
	}

	created, err := h.exchange.CreateShiftRequest(ctx, exchange.CreateShiftRequestInput{
		Actor:           a,
		EmployerID:      req.GetEmployerId(),
		LocationID:      req.GetLocationId(),
		Role:            req.GetRole(),
		StartDate:       start,
		EndDate:         end,
		StartTime:       req.GetStartTime(),
		EndTime:         req.GetEndTime(),
		MaxHourlyRate:   maxRate,
		NumberOfWorkers: int(req.GetNumberOfWorkers()),
		TargetScope:     exchange.TargetScope(req.GetTargetScope()),
		TargetAgencyIDs: req.GetTargetAgencyIds(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.ShiftRequestResponse{ShiftRequest: toShiftRequestMessage(created)}, nil
}

// GetShiftRequest は募集を取得します。
func (h *StaffingHandler) GetShiftRequest(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.ShiftRequestResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	found, err := h.exchange.GetShiftRequest(ctx, a, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.ShiftRequestResponse{ShiftRequest: toShiftRequestMessage(found)}, nil
}

// PublishShiftRequest は募集を公開します。
func (h *StaffingHandler) PublishShiftRequest(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.ShiftRequestResponse, error) {
	return h.requestAction(ctx, req, h.exchange.PublishShiftRequest)
}

// CancelShiftRequest は募集を取り消し、保留中の応募を不採用にします。
func (h *StaffingHandler) CancelShiftRequest(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.ShiftRequestResponse, error) {
	return h.requestAction(ctx, req, h.exchange.CancelShiftRequest)
}

func (h *StaffingHandler) requestAction(
	ctx context.Context,
	req *staffingv1.IDRequest,
	call func(context.Context, exchange.RequestActionInput) (*exchange.RequestResult, error),
) (*staffingv1.ShiftRequestResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := call(ctx, exchange.RequestActionInput{Actor: a, ID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return &staffingv1.ShiftRequestResponse{
		ShiftRequest: toShiftRequestMessage(res.Request),
		Rejected:     toAgencyResponseMessages(res.Rejected),
	}, nil
}

// SubmitResponse は派遣会社として募集に応募します。
func (h *StaffingHandler) SubmitResponse(ctx context.Context, req *staffingv1.SubmitResponseRequest) (*staffingv1.AgencyResponseResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("proposed_start_date", req.GetProposedStartDate())
	if err != nil {
		return nil, err
	}
	end, err := parseDate("proposed_end_date", req.GetProposedEndDate())
	if err != nil {
		return nil, err
	}
	rate, err := parseDecimal("proposed_rate", req.GetProposedRate())
	if err != nil {
		return nil, err
	}
	expiresAt, err := parseOptionalTime("expires_at", req.GetExpiresAt())
	if err != nil {
		return nil, err
	}

	res, err := h.exchange.SubmitResponse(ctx, exchange.SubmitResponseInput{
		Actor:              a,
		ShiftRequestID:     req.GetShiftRequestId(),
		AgencyID:           req.GetAgencyId(),
		ProposedRate:       rate,
		ProposedEmployeeID: req.GetProposedEmployeeId(),
		ProposedStartDate:  start,
		ProposedEndDate:    end,
		Notes:              req.GetNotes(),
		ExpiresAt:          expiresAt,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return &staffingv1.AgencyResponseResponse{Response: toAgencyResponseMessage(res.Response)}, nil
}

// AcceptResponse は応募を採用し、アサインメントを作成します。
func (h *StaffingHandler) AcceptResponse(ctx context.Context, req *staffingv1.ActionRequest) (*staffingv1.AcceptResponseResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := h.exchange.AcceptResponse(ctx, exchange.ResponseActionInput{Actor: a, ResponseID: req.GetId(), Reason: req.GetReason()})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return &staffingv1.AcceptResponseResponse{
		ShiftRequest: toShiftRequestMessage(res.Request),
		Response:     toAgencyResponseMessage(res.Response),
		Rejected:     toAgencyResponseMessages(res.Rejected),
		Assignment:   toAssignmentMessage(res.Assignment),
	}, nil
}

// RejectResponse は応募を不採用にします。
func (h *StaffingHandler) RejectResponse(ctx context.Context, req *staffingv1.ActionRequest) (*staffingv1.AgencyResponseResponse, error) {
	return h.responseAction(ctx, req, h.exchange.RejectResponse)
}

// WithdrawResponse は応募を取り下げます。
func (h *StaffingHandler) WithdrawResponse(ctx context.Context, req *staffingv1.ActionRequest) (*staffingv1.AgencyResponseResponse, error) {
	return h.responseAction(ctx, req, h.exchange.WithdrawResponse)
}

func (h *StaffingHandler) responseAction(
	ctx context.Context,
	req *staffingv1.ActionRequest,
	call func(context.Context, exchange.ResponseActionInput) (*exchange.ResponseResult, error),
) (*staffingv1.AgencyResponseResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := call(ctx, exchange.ResponseActionInput{Actor: a, ResponseID: req.GetId(), Reason: req.GetReason()})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return &staffingv1.AgencyResponseResponse{Response: toAgencyResponseMessage(res.Response)}, nil
}

func toShiftRequestMessage(r *exchange.ShiftRequest) *staffingv1.ShiftRequestMessage {
	if r == nil {
		return nil
	}
	return &staffingv1.ShiftRequestMessage{
		Id:              r.ID,
		EmployerId:      r.EmployerID,
		LocationId:      r.LocationID,
		Role:            r.Role,
		StartDate:       formatDate(r.StartDate),
		EndDate:         formatDate(r.EndDate),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		MaxHourlyRate:   r.MaxHourlyRate.String(),
		NumberOfWorkers: int32(r.NumberOfWorkers),
		TargetScope:     string(r.TargetScope),
		TargetAgencyIds: r.TargetAgencyIDs,
		Status:          string(r.Status),
		CreatedBy:       r.CreatedBy,
		CreatedAt:       toTimestamp(r.CreatedAt),
		UpdatedAt:       toTimestamp(r.UpdatedAt),
	}
}

func toAgencyResponseMessage(r *exchange.Response) *staffingv1.AgencyResponseMessage {
	if r == nil {
		return nil
	}
	return &staffingv1.AgencyResponseMessage{
		Id:                 r.ID,
		ShiftRequestId:     r.ShiftRequestID,
		AgencyId:           r.AgencyID,
		ProposedRate:       r.ProposedRate.String(),
		ProposedEmployeeId: r.ProposedEmployeeID,
		ProposedStartDate:  formatDate(r.ProposedStartDate),
		ProposedEndDate:    formatDate(r.ProposedEndDate),
		Notes:              r.Notes,
		Status:             string(r.Status),
		RejectionReason:    r.RejectionReason,
		ExpiresAt:          toOptionalTimestamp(r.ExpiresAt),
		EmployerDecisionAt: toOptionalTimestamp(r.EmployerDecisionAt),
		SubmittedBy:        r.SubmittedBy,
		CreatedAt:          toTimestamp(r.CreatedAt),
	}
}

func toAgencyResponseMessages(responses []*exchange.Response) []*staffingv1.AgencyResponseMessage {
	if len(responses) == 0 {
		return nil
	}
	out := make([]*staffingv1.AgencyResponseMessage, 0, len(responses))
	for _, r := range responses {
		out = append(out, toAgencyResponseMessage(r))
	}
	return out
}
