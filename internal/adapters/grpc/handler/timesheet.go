package handler

import (
	"context"

	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
	"github.com/ogurasousui/staffing-engine/internal/core/timesheet"
)

// ClockIn は出勤を打刻し、タイムシートを作成します。
func (h *StaffingHandler) ClockIn(ctx context.Context, req *staffingv1.ClockInRequest) (*staffingv1.TimesheetResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	at, err := parseOptionalTime("at", req.GetAt())
	if err != nil {
		return nil, err
	}
	res, err := h.timesheets.ClockIn(ctx, timesheet.ClockInInput{Actor: a, ShiftID: req.GetShiftId(), At: at})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return toTimesheetResponse(res), nil
}

// ClockOut は退勤を打刻し、勤務時間を確定します。
func (h *StaffingHandler) ClockOut(ctx context.Context, req *staffingv1.ClockOutRequest) (*staffingv1.TimesheetResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	at, err := parseOptionalTime("at", req.GetAt())
	if err != nil {
		return nil, err
	}
	res, err := h.timesheets.ClockOut(ctx, timesheet.ClockOutInput{
		Actor: a, TimesheetID: req.GetTimesheetId(), BreakMinutes: int(req.GetBreakMinutes()), At: at,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return toTimesheetResponse(res), nil
}

// ApproveTimesheetAgency は派遣会社の承認です。
func (h *StaffingHandler) ApproveTimesheetAgency(ctx context.Context, req *staffingv1.ActionRequest) (*staffingv1.TimesheetResponse, error) {
	return h.decideTimesheet(ctx, req, h.timesheets.ApproveAgency)
}

// ApproveTimesheetEmployer は雇用主の最終承認です。承認後に請求が作成されます。
func (h *StaffingHandler) ApproveTimesheetEmployer(ctx context.Context, req *staffingv1.ActionRequest) (*staffingv1.TimesheetResponse, error) {
	return h.decideTimesheet(ctx, req, h.timesheets.ApproveEmployer)
}

// RejectTimesheet はタイムシートを差し戻します。
func (h *StaffingHandler) RejectTimesheet(ctx context.Context, req *staffingv1.ActionRequest) (*staffingv1.TimesheetResponse, error) {
	return h.decideTimesheet(ctx, req, h.timesheets.Reject)
}

// DisputeTimesheet は異議を申し立てます。
func (h *StaffingHandler) DisputeTimesheet(ctx context.Context, req *staffingv1.ActionRequest) (*staffingv1.TimesheetResponse, error) {
	return h.decideTimesheet(ctx, req, h.timesheets.Dispute)
}

// ResolveDispute は異議を解消し、承認待ちに戻します。
func (h *StaffingHandler) ResolveDispute(ctx context.Context, req *staffingv1.ActionRequest) (*staffingv1.TimesheetResponse, error) {
	return h.decideTimesheet(ctx, req, h.timesheets.ResolveDispute)
}

func (h *StaffingHandler) decideTimesheet(
	ctx context.Context,
	req *staffingv1.ActionRequest,
	call func(context.Context, timesheet.DecisionInput) (*timesheet.Result, error),
) (*staffingv1.TimesheetResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := call(ctx, timesheet.DecisionInput{Actor: a, TimesheetID: req.GetId(), Reason: req.GetReason()})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return toTimesheetResponse(res), nil
}

// GetTimesheet はタイムシートを取得します。
func (h *StaffingHandler) GetTimesheet(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.TimesheetResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	found, err := h.timesheets.GetTimesheet(ctx, a, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.TimesheetResponse{Timesheet: toTimesheetMessage(found)}, nil
}

func toTimesheetResponse(res *timesheet.Result) *staffingv1.TimesheetResponse {
	return &staffingv1.TimesheetResponse{Timesheet: toTimesheetMessage(res.Timesheet), Shift: toShiftMessage(res.Shift)}
}

func toTimesheetMessage(t *timesheet.Timesheet) *staffingv1.TimesheetMessage {
	if t == nil {
		return nil
	}
	return &staffingv1.TimesheetMessage{
		Id:                 t.ID,
		ShiftId:            t.ShiftID,
		AssignmentId:       t.AssignmentID,
		EmployeeId:         t.EmployeeID,
		ClockIn:            toOptionalTimestamp(t.ClockIn),
		ClockOut:           toOptionalTimestamp(t.ClockOut),
		BreakMinutes:       int32(t.BreakMinutes),
		HoursWorked:        t.HoursWorked.StringFixed(2),
		Status:             string(t.Status),
		AgencyApprovedBy:   t.AgencyApprovedBy,
		AgencyApprovedAt:   toOptionalTimestamp(t.AgencyApprovedAt),
		EmployerApprovedBy: t.EmployerApprovedBy,
		EmployerApprovedAt: toOptionalTimestamp(t.EmployerApprovedAt),
		RejectionReason:    t.RejectionReason,
		DisputeReason:      t.DisputeReason,
		CreatedAt:          toTimestamp(t.CreatedAt),
		UpdatedAt:          toTimestamp(t.UpdatedAt),
	}
}
