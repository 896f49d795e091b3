package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/shift"
)

// CreateShift はアサインメント配下にシフトを作成します。
func (h *StaffingHandler) CreateShift(ctx context.Context, req *staffingv1.CreateShiftRequest) (*staffingv1.ShiftResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	date, err := parseDate("date", req.GetDate())
	if err != nil {
		return nil, err
	}
	rate, err := parseOptionalDecimal("hourly_rate", req.GetHourlyRate())
	if err != nil {
		return nil, err
	}
	res, err := h.shifts.CreateShift(ctx, shift.CreateShiftInput{
		Actor:        a,
		AssignmentID: req.GetAssignmentId(),
		Date:         date,
		StartTime:    req.GetStartTime(),
		EndTime:      req.GetEndTime(),
		HourlyRate:   rate,
		Open:         req.GetOpen(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return toShiftResponse(res), nil
}

// CreateTemplate は繰り返しテンプレートを登録します。
func (h *StaffingHandler) CreateTemplate(ctx context.Context, req *staffingv1.CreateTemplateRequest) (*staffingv1.TemplateResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	if req.GetDayOfWeek() < 0 || req.GetDayOfWeek() > 6 {
		return nil, status.Error(codes.InvalidArgument, "day_of_week must be between 0 and 6")
	}
	effectiveStart, err := parseOptionalDateValue("effective_start_date", req.GetEffectiveStartDate())
	if err != nil {
		return nil, err
	}
	effectiveEnd, err := parseOptionalDateValue("effective_end_date", req.GetEffectiveEndDate())
	if err != nil {
		return nil, err
	}
	var maxOccurrences *int
	if v := req.GetMaxOccurrences(); v != nil {
		n := int(v.GetValue())
		maxOccurrences = &n
	}

	tpl, err := h.shifts.CreateTemplate(ctx, shift.CreateTemplateInput{
		Actor:              a,
		AssignmentID:       req.GetAssignmentId(),
		DayOfWeek:          time.Weekday(req.GetDayOfWeek()),
		StartTime:          req.GetStartTime(),
		EndTime:            req.GetEndTime(),
		Recurrence:         shift.Recurrence(req.GetRecurrence()),
		EffectiveStartDate: effectiveStart,
		EffectiveEndDate:   effectiveEnd,
		MaxOccurrences:     maxOccurrences,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.TemplateResponse{Template: toTemplateMessage(tpl)}, nil
}

// GenerateShifts はテンプレートから範囲内のシフトを生成します。
func (h *StaffingHandler) GenerateShifts(ctx context.Context, req *staffingv1.GenerateShiftsRequest) (*staffingv1.GenerateShiftsResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	start, end, err := parseRange(req)
	if err != nil {
		return nil, err
	}
	res, err := h.shifts.GenerateFromTemplate(ctx, shift.GenerateFromTemplateInput{
		Actor: a, TemplateID: req.GetId(), RangeStart: start, RangeEnd: end,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return toGenerateResponse(res), nil
}

// GenerateAssignmentShifts はアサインメントの勤務時間帯で範囲内の毎日のシフトを生成します。
func (h *StaffingHandler) GenerateAssignmentShifts(ctx context.Context, req *staffingv1.GenerateShiftsRequest) (*staffingv1.GenerateShiftsResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	start, end, err := parseRange(req)
	if err != nil {
		return nil, err
	}
	res, err := h.shifts.GenerateForAssignment(ctx, shift.GenerateForAssignmentInput{
		Actor: a, AssignmentID: req.GetId(), RangeStart: start, RangeEnd: end,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return toGenerateResponse(res), nil
}

// OfferShift はオープンシフトを社員へオファーします。
func (h *StaffingHandler) OfferShift(ctx context.Context, req *staffingv1.OfferShiftRequest) (*staffingv1.ShiftResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := h.shifts.OfferShift(ctx, shift.OfferInput{Actor: a, ShiftID: req.GetShiftId(), AgencyEmployeeID: req.GetAgencyEmployeeId()})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return toShiftResponse(res), nil
}

// AcceptOffer は社員としてオファーを承諾します。
func (h *StaffingHandler) AcceptOffer(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.ShiftResponse, error) {
	return h.offerAction(ctx, req, h.shifts.AcceptOffer)
}

// RejectOffer は社員としてオファーを辞退します。
func (h *StaffingHandler) RejectOffer(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.ShiftResponse, error) {
	return h.offerAction(ctx, req, h.shifts.RejectOffer)
}

func (h *StaffingHandler) offerAction(
	ctx context.Context,
	req *staffingv1.IDRequest,
	call func(context.Context, shift.OfferActionInput) (*shift.Result, error),
) (*staffingv1.ShiftResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := call(ctx, shift.OfferActionInput{Actor: a, OfferID: req.GetId()})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return toShiftResponse(res), nil
}

// ChangeShiftStatus はシフトを取消または不就業にします。
func (h *StaffingHandler) ChangeShiftStatus(ctx context.Context, req *staffingv1.ChangeShiftStatusRequest) (*staffingv1.ShiftResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := h.shifts.ChangeStatus(ctx, shift.ChangeStatusInput{Actor: a, ID: req.GetId(), Status: shift.Status(req.GetStatus())})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return toShiftResponse(res), nil
}

// GetShift はシフトを取得します。
func (h *StaffingHandler) GetShift(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.ShiftResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	found, err := h.shifts.GetShift(ctx, a, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.ShiftResponse{Shift: toShiftMessage(found)}, nil
}

// ListShifts は社員の期間内のシフトを返します。
func (h *StaffingHandler) ListShifts(ctx context.Context, req *staffingv1.ListShiftsRequest) (*staffingv1.ListShiftsResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	from, err := parseTime("from", req.GetFrom())
	if err != nil {
		return nil, err
	}
	to, err := parseTime("to", req.GetTo())
	if err != nil {
		return nil, err
	}
	shifts, err := h.shifts.ListShifts(ctx, shift.ListInput{Actor: a, EmployeeID: req.GetEmployeeId(), From: from, To: to})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.ListShiftsResponse{Shifts: toShiftMessages(shifts)}, nil
}

// CheckConflict は時間枠が社員の既存予定と重なるかを返します。
func (h *StaffingHandler) CheckConflict(ctx context.Context, req *staffingv1.CheckConflictRequest) (*staffingv1.CheckConflictResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	start, err := parseTime("start", req.GetStart())
	if err != nil {
		return nil, err
	}
	end, err := parseTime("end", req.GetEnd())
	if err != nil {
		return nil, err
	}
	res, err := h.availability.CheckConflict(ctx, a, availability.CheckInput{
		EmployeeID:     req.GetEmployeeId(),
		Start:          start,
		End:            end,
		ExcludeShiftID: req.GetExcludeShiftId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.CheckConflictResponse{Conflict: res.Conflict, Kind: string(res.Kind), ConflictingId: res.ConflictingID}, nil
}

func parseRange(req *staffingv1.GenerateShiftsRequest) (time.Time, time.Time, error) {
	start, err := parseDate("range_start", req.GetRangeStart())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate("range_end", req.GetRangeEnd())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func toShiftResponse(res *shift.Result) *staffingv1.ShiftResponse {
	return &staffingv1.ShiftResponse{Shift: toShiftMessage(res.Shift), Offer: toOfferMessage(res.Offer)}
}

func toGenerateResponse(res *shift.GenerateResult) *staffingv1.GenerateShiftsResponse {
	out := &staffingv1.GenerateShiftsResponse{Shifts: toShiftMessages(res.Shifts)}
	for _, day := range res.Skipped {
		out.Skipped = append(out.Skipped, formatDate(day))
	}
	return out
}

func toShiftMessage(s *shift.Shift) *staffingv1.ShiftMessage {
	if s == nil {
		return nil
	}
	return &staffingv1.ShiftMessage{
		Id:               s.ID,
		AssignmentId:     s.AssignmentID,
		AgencyId:         s.AgencyID,
		EmployerId:       s.EmployerID,
		EmployeeId:       s.EmployeeID,
		AgencyEmployeeId: s.AgencyEmployeeID,
		Date:             formatDate(s.Date),
		StartTime:        toTimestamp(s.StartTime),
		EndTime:          toTimestamp(s.EndTime),
		HourlyRate:       s.HourlyRate.String(),
		Status:           string(s.Status),
		TemplateId:       s.TemplateID,
		CreatedBy:        s.CreatedBy,
		CreatedAt:        toTimestamp(s.CreatedAt),
		UpdatedAt:        toTimestamp(s.UpdatedAt),
	}
}

func toShiftMessages(shifts []*shift.Shift) []*staffingv1.ShiftMessage {
	out := make([]*staffingv1.ShiftMessage, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, toShiftMessage(s))
	}
	return out
}

func toOfferMessage(o *shift.Offer) *staffingv1.OfferMessage {
	if o == nil {
		return nil
	}
	return &staffingv1.OfferMessage{
		Id:               o.ID,
		ShiftId:          o.ShiftID,
		AgencyEmployeeId: o.AgencyEmployeeID,
		EmployeeId:       o.EmployeeID,
		Status:           string(o.Status),
		ExpiresAt:        toTimestamp(o.ExpiresAt),
		OfferedBy:        o.OfferedBy,
		RespondedAt:      toOptionalTimestamp(o.RespondedAt),
		CreatedAt:        toTimestamp(o.CreatedAt),
	}
}

func toTemplateMessage(t *shift.Template) *staffingv1.TemplateMessage {
	msg := &staffingv1.TemplateMessage{
		Id:                 t.ID,
		AssignmentId:       t.AssignmentID,
		DayOfWeek:          int32(t.DayOfWeek),
		StartTime:          t.StartTime.String(),
		EndTime:            t.EndTime.String(),
		Recurrence:         string(t.Recurrence),
		EffectiveStartDate: optionalDateValue(t.EffectiveStartDate),
		EffectiveEndDate:   optionalDateValue(t.EffectiveEndDate),
		CreatedBy:          t.CreatedBy,
		CreatedAt:          toTimestamp(t.CreatedAt),
	}
	if t.MaxOccurrences != nil {
		msg.MaxOccurrences = wrapperspb.Int32(int32(*t.MaxOccurrences))
	}
	return msg
}
