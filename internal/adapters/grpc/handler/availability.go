package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
)

// RequestTimeOff は休暇を申請します。
func (h *StaffingHandler) RequestTimeOff(ctx context.Context, req *staffingv1.RequestTimeOffRequest) (*staffingv1.TimeOffResponse, error) {
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
	created, err := h.availability.RequestTimeOff(ctx, availability.RequestTimeOffInput{
		Actor: a, EmployeeID: req.GetEmployeeId(), StartDate: start, EndDate: end, Reason: req.GetReason(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.TimeOffResponse{TimeOff: toTimeOffMessage(created)}, nil
}

// DecideTimeOff は休暇申請を承認または却下します。
func (h *StaffingHandler) DecideTimeOff(ctx context.Context, req *staffingv1.DecideTimeOffRequest) (*staffingv1.TimeOffResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	decided, err := h.availability.DecideTimeOff(ctx, availability.DecideTimeOffInput{
		Actor: a, ID: req.GetId(), Decision: availability.TimeOffStatus(req.GetDecision()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.TimeOffResponse{TimeOff: toTimeOffMessage(decided)}, nil
}

// SetAvailability は社員の週次ブロックを差し替えます。
func (h *StaffingHandler) SetAvailability(ctx context.Context, req *staffingv1.SetAvailabilityRequest) (*staffingv1.AvailabilityResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	blocks := make([]availability.BlockInput, 0, len(req.GetBlocks()))
	for _, b := range req.GetBlocks() {
		if b == nil || b.GetDayOfWeek() < 0 || b.GetDayOfWeek() > 6 {
			return nil, status.Error(codes.InvalidArgument, "day_of_week must be between 0 and 6")
		}
		blocks = append(blocks, availability.BlockInput{
			DayOfWeek: time.Weekday(b.GetDayOfWeek()),
			StartTime: b.GetStartTime(),
			EndTime:   b.GetEndTime(),
			Type:      availability.BlockType(b.GetType()),
		})
	}
	saved, err := h.availability.SetAvailability(ctx, availability.SetAvailabilityInput{Actor: a, EmployeeID: req.GetEmployeeId(), Blocks: blocks})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.AvailabilityResponse{Blocks: toBlockMessages(saved)}, nil
}

// ListAvailability は社員の週次ブロックを返します。
func (h *StaffingHandler) ListAvailability(ctx context.Context, req *staffingv1.ListAvailabilityRequest) (*staffingv1.AvailabilityResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	blocks, err := h.availability.ListAvailability(ctx, a, req.GetEmployeeId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.AvailabilityResponse{Blocks: toBlockMessages(blocks)}, nil
}

func toTimeOffMessage(r *availability.TimeOffRequest) *staffingv1.TimeOffMessage {
	return &staffingv1.TimeOffMessage{
		Id:         r.ID,
		EmployeeId: r.EmployeeID,
		StartDate:  formatDate(r.StartDate),
		EndDate:    formatDate(r.EndDate),
		Reason:     r.Reason,
		Status:     string(r.Status),
		DecidedBy:  r.DecidedBy,
		DecidedAt:  toOptionalTimestamp(r.DecidedAt),
		CreatedAt:  toTimestamp(r.CreatedAt),
		UpdatedAt:  toTimestamp(r.UpdatedAt),
	}
}

func toBlockMessages(blocks []*availability.Block) []*staffingv1.BlockMessage {
	out := make([]*staffingv1.BlockMessage, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, &staffingv1.BlockMessage{
			Id:        b.ID,
			DayOfWeek: int32(b.DayOfWeek),
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			Type:      string(b.Type),
		})
	}
	return out
}
