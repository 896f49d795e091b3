package handler

import (
	"context"

	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
)

// GetAssignment はアサインメントを取得します。
func (h *StaffingHandler) GetAssignment(ctx context.Context, req *staffingv1.IDRequest) (*staffingv1.AssignmentResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	found, err := h.assignments.Get(ctx, a, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.AssignmentResponse{Assignment: toAssignmentMessage(found)}, nil
}

// ListAssignments は Actor から見えるアサインメントを返します。
func (h *StaffingHandler) ListAssignments(ctx context.Context, req *staffingv1.ListAssignmentsRequest) (*staffingv1.ListAssignmentsResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	in := assignment.ListInput{Actor: a, PageSize: int(req.GetPageSize()), PageToken: req.GetPageToken()}
	if req.GetStatus() != "" {
		st := assignment.Status(req.GetStatus())
		in.Status = &st
	}
	res, err := h.assignments.List(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*staffingv1.AssignmentMessage, 0, len(res.Assignments))
	for _, item := range res.Assignments {
		out = append(out, toAssignmentMessage(item))
	}
	return &staffingv1.ListAssignmentsResponse{Assignments: out, NextPageToken: res.NextPageToken}, nil
}

// ChangeAssignmentStatus は状態を遷移させます。取消時は未来のシフトも取り消されます。
func (h *StaffingHandler) ChangeAssignmentStatus(ctx context.Context, req *staffingv1.ChangeAssignmentStatusRequest) (*staffingv1.AssignmentResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := h.assignments.ChangeStatus(ctx, assignment.ChangeStatusInput{
		Actor:  a,
		ID:     req.GetId(),
		Status: assignment.Status(req.GetStatus()),
		Reason: req.GetReason(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return &staffingv1.AssignmentResponse{Assignment: toAssignmentMessage(res.Assignment), CancelledShifts: res.CancelledShifts}, nil
}

// ExtendAssignment は終了日を延長します。
func (h *StaffingHandler) ExtendAssignment(ctx context.Context, req *staffingv1.ExtendAssignmentRequest) (*staffingv1.AssignmentResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("new_end_date", req.GetNewEndDate())
	if err != nil {
		return nil, err
	}
	res, err := h.assignments.Extend(ctx, assignment.ExtendInput{Actor: a, ID: req.GetId(), NewEndDate: end, Reason: req.GetReason()})
	if err != nil {
		return nil, toStatusError(err)
	}
	h.dispatch(ctx, res.Events)
	return &staffingv1.AssignmentResponse{Assignment: toAssignmentMessage(res.Assignment)}, nil
}

func toAssignmentMessage(a *assignment.Assignment) *staffingv1.AssignmentMessage {
	if a == nil {
		return nil
	}
	return &staffingv1.AssignmentMessage{
		Id:               a.ID,
		ContractId:       a.ContractID,
		AgencyEmployeeId: a.AgencyEmployeeID,
		EmployeeId:       a.EmployeeID,
		AgencyId:         a.AgencyID,
		EmployerId:       a.EmployerID,
		ShiftRequestId:   a.ShiftRequestID,
		AgencyResponseId: a.AgencyResponseID,
		LocationId:       a.LocationID,
		Role:             a.Role,
		StartDate:        formatDate(a.StartDate),
		EndDate:          formatDate(a.EndDate),
		DailyStart:       a.DailyStart.String(),
		DailyEnd:         a.DailyEnd.String(),
		AgreedRate:       a.AgreedRate.String(),
		PayRate:          a.PayRate.String(),
		MarkupAmount:     a.MarkupAmount.String(),
		MarkupPercent:    a.MarkupPercent.String(),
		Status:           string(a.Status),
		Notes:            a.Notes,
		CreatedBy:        a.CreatedBy,
		CreatedAt:        toTimestamp(a.CreatedAt),
		UpdatedAt:        toTimestamp(a.UpdatedAt),
	}
}
