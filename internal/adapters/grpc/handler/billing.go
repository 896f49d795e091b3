package handler

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/staffing-engine/internal/adapters/calendar"
	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
	"github.com/ogurasousui/staffing-engine/internal/core/billing"
)

// ApplyPaymentResult は請求書に決済結果を反映します。
func (h *StaffingHandler) ApplyPaymentResult(ctx context.Context, req *staffingv1.ApplyPaymentResultRequest) (*staffingv1.InvoiceResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	fee := decimal.Zero
	if strings.TrimSpace(req.GetFeeAmount()) != "" {
		if fee, err = parseDecimal("fee_amount", req.GetFeeAmount()); err != nil {
			return nil, err
		}
	}
	updated, err := h.billing.ApplyPaymentResult(ctx, billing.ApplyPaymentInput{
		Actor:     a,
		InvoiceID: req.GetInvoiceId(),
		Result: billing.PaymentResult{
			ProcessorID: req.GetProcessorId(),
			Status:      billing.InvoiceStatus(req.GetStatus()),
			FeeAmount:   fee,
		},
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.InvoiceResponse{Invoice: toInvoiceMessage(updated)}, nil
}

// AggregatePayout は期間内の未払い給与を合計します。
func (h *StaffingHandler) AggregatePayout(ctx context.Context, req *staffingv1.AggregatePayoutRequest) (*staffingv1.PayoutResponse, error) {
	a, err := begin(ctx, req)
	if err != nil {
		return nil, err
	}
	payout, err := h.billing.AggregatePayout(ctx, billing.PayoutInput{
		Actor:       a,
		AgencyID:    req.GetAgencyId(),
		EmployeeID:  req.GetEmployeeId(),
		PeriodStart: req.GetPeriodStart(),
		PeriodEnd:   req.GetPeriodEnd(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.PayoutResponse{
		AgencyId:    payout.AgencyID,
		EmployeeId:  payout.EmployeeID,
		PeriodStart: formatDate(payout.PeriodStart),
		PeriodEnd:   formatDate(payout.PeriodEnd),
		Total:       payout.Total.String(),
		PayrollIds:  payout.PayrollIDs,
	}, nil
}

// ExportShiftCalendar は社員のシフトを iCalendar で返します。
func (h *StaffingHandler) ExportShiftCalendar(ctx context.Context, req *staffingv1.ExportCalendarRequest) (*staffingv1.ExportCalendarResponse, error) {
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
	body, err := h.calendar.Export(ctx, calendar.ExportInput{Actor: a, EmployeeID: req.GetEmployeeId(), From: from, To: to})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &staffingv1.ExportCalendarResponse{Calendar: body}, nil
}

func toInvoiceMessage(inv *billing.Invoice) *staffingv1.InvoiceMessage {
	return &staffingv1.InvoiceMessage{
		Id:          inv.ID,
		TimesheetId: inv.TimesheetID,
		From:        &staffingv1.PartyMessage{Kind: string(inv.From.Kind), Id: inv.From.ID},
		To:          &staffingv1.PartyMessage{Kind: string(inv.To.Kind), Id: inv.To.ID},
		Hours:       inv.Hours.String(),
		Rate:        inv.Rate.String(),
		Amount:      inv.Amount.String(),
		Status:      string(inv.Status),
		ProcessorId: inv.ProcessorID,
		FeeAmount:   inv.FeeAmount.String(),
		CreatedAt:   toTimestamp(inv.CreatedAt),
		UpdatedAt:   toTimestamp(inv.UpdatedAt),
	}
}
