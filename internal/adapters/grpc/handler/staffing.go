//go:generate protoc -I ../../../../api --go_out=../../../.. --go_opt=module=github.com/ogurasousui/staffing-engine --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/ogurasousui/staffing-engine staffing/v1/staffing.proto

package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/ogurasousui/staffing-engine/internal/adapters/calendar"
	staffingv1 "github.com/ogurasousui/staffing-engine/internal/adapters/grpc/gen/staffing/v1"
	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/billing"
	"github.com/ogurasousui/staffing-engine/internal/core/contract"
	"github.com/ogurasousui/staffing-engine/internal/core/event"
	"github.com/ogurasousui/staffing-engine/internal/core/exchange"
	"github.com/ogurasousui/staffing-engine/internal/core/shift"
	"github.com/ogurasousui/staffing-engine/internal/core/timesheet"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
	"github.com/ogurasousui/staffing-engine/internal/core/workforce"
)

// ExchangeUseCase は募集と応募のユースケースです。
type ExchangeUseCase interface {
	CreateShiftRequest(ctx context.Context, in exchange.CreateShiftRequestInput) (*exchange.ShiftRequest, error)
	PublishShiftRequest(ctx context.Context, in exchange.RequestActionInput) (*exchange.RequestResult, error)
	CancelShiftRequest(ctx context.Context, in exchange.RequestActionInput) (*exchange.RequestResult, error)
	GetShiftRequest(ctx context.Context, a actor.Actor, id string) (*exchange.ShiftRequest, error)
	SubmitResponse(ctx context.Context, in exchange.SubmitResponseInput) (*exchange.ResponseResult, error)
	AcceptResponse(ctx context.Context, in exchange.ResponseActionInput) (*exchange.AcceptResult, error)
	RejectResponse(ctx context.Context, in exchange.ResponseActionInput) (*exchange.ResponseResult, error)
	WithdrawResponse(ctx context.Context, in exchange.ResponseActionInput) (*exchange.ResponseResult, error)
}

// AssignmentUseCase はアサインメントのユースケースです。
type AssignmentUseCase interface {
	ChangeStatus(ctx context.Context, in assignment.ChangeStatusInput) (*assignment.Result, error)
	Extend(ctx context.Context, in assignment.ExtendInput) (*assignment.Result, error)
	Get(ctx context.Context, a actor.Actor, id string) (*assignment.Assignment, error)
	List(ctx context.Context, in assignment.ListInput) (*assignment.ListResult, error)
}

// ShiftUseCase はシフトのユースケースです。
type ShiftUseCase interface {
	CreateShift(ctx context.Context, in shift.CreateShiftInput) (*shift.Result, error)
	CreateTemplate(ctx context.Context, in shift.CreateTemplateInput) (*shift.Template, error)
	GenerateFromTemplate(ctx context.Context, in shift.GenerateFromTemplateInput) (*shift.GenerateResult, error)
	GenerateForAssignment(ctx context.Context, in shift.GenerateForAssignmentInput) (*shift.GenerateResult, error)
	OfferShift(ctx context.Context, in shift.OfferInput) (*shift.Result, error)
	AcceptOffer(ctx context.Context, in shift.OfferActionInput) (*shift.Result, error)
	RejectOffer(ctx context.Context, in shift.OfferActionInput) (*shift.Result, error)
	ChangeStatus(ctx context.Context, in shift.ChangeStatusInput) (*shift.Result, error)
	GetShift(ctx context.Context, a actor.Actor, id string) (*shift.Shift, error)
	ListShifts(ctx context.Context, in shift.ListInput) ([]*shift.Shift, error)
}

// TimesheetUseCase はタイムシートのユースケースです。
type TimesheetUseCase interface {
	ClockIn(ctx context.Context, in timesheet.ClockInInput) (*timesheet.Result, error)
	ClockOut(ctx context.Context, in timesheet.ClockOutInput) (*timesheet.Result, error)
	ApproveAgency(ctx context.Context, in timesheet.DecisionInput) (*timesheet.Result, error)
	ApproveEmployer(ctx context.Context, in timesheet.DecisionInput) (*timesheet.Result, error)
	Reject(ctx context.Context, in timesheet.DecisionInput) (*timesheet.Result, error)
	Dispute(ctx context.Context, in timesheet.DecisionInput) (*timesheet.Result, error)
	ResolveDispute(ctx context.Context, in timesheet.DecisionInput) (*timesheet.Result, error)
	GetTimesheet(ctx context.Context, a actor.Actor, id string) (*timesheet.Timesheet, error)
}

// WorkforceUseCase は社員と派遣会社の雇用関係のユースケースです。
type WorkforceUseCase interface {
	CreateEmployee(ctx context.Context, in workforce.CreateEmployeeInput) (*workforce.Employee, error)
	GetEmployee(ctx context.Context, a actor.Actor, id string) (*workforce.Employee, error)
	RegisterAgencyEmployee(ctx context.Context, in workforce.RegisterAgencyEmployeeInput) (*workforce.AgencyEmployee, error)
	ChangeStatus(ctx context.Context, in workforce.ChangeStatusInput) (*workforce.AgencyEmployee, error)
	GetAgencyEmployee(ctx context.Context, a actor.Actor, id string) (*workforce.AgencyEmployee, error)
	ListAgencyEmployees(ctx context.Context, in workforce.ListAgencyEmployeesInput) (*workforce.ListAgencyEmployeesResult, error)
}

// ContractUseCase は雇用主と派遣会社の契約のユースケースです。
type ContractUseCase interface {
	CreateContract(ctx context.Context, in contract.CreateContractInput) (*contract.Contract, error)
	ChangeStatus(ctx context.Context, in contract.ChangeStatusInput) (*contract.Contract, error)
	GetContract(ctx context.Context, a actor.Actor, id string) (*contract.Contract, error)
	ListContracts(ctx context.Context, in contract.ListContractsInput) (*contract.ListContractsResult, error)
}

// AvailabilityUseCase は休暇・稼働可否・重複判定のユースケースです。
type AvailabilityUseCase interface {
	RequestTimeOff(ctx context.Context, in availability.RequestTimeOffInput) (*availability.TimeOffRequest, error)
	DecideTimeOff(ctx context.Context, in availability.DecideTimeOffInput) (*availability.TimeOffRequest, error)
	SetAvailability(ctx context.Context, in availability.SetAvailabilityInput) ([]*availability.Block, error)
	ListAvailability(ctx context.Context, a actor.Actor, employeeID string) ([]*availability.Block, error)
	CheckConflict(ctx context.Context, a actor.Actor, in availability.CheckInput) (availability.Result, error)
}

// BillingUseCase は決済結果の反映と支払集計のユースケースです。
type BillingUseCase interface {
	ApplyPaymentResult(ctx context.Context, in billing.ApplyPaymentInput) (*billing.Invoice, error)
	AggregatePayout(ctx context.Context, in billing.PayoutInput) (*billing.Payout, error)
}

// CalendarExporter はシフトの iCalendar 書き出しです。
type CalendarExporter interface {
	Export(ctx context.Context, in calendar.ExportInput) (string, error)
}

// Deps は StaffingHandler の依存です。Dispatcher が nil ならイベントは破棄されます。
type Deps struct {
	Exchange     ExchangeUseCase
	Assignments  AssignmentUseCase
	Shifts       ShiftUseCase
	Timesheets   TimesheetUseCase
	Workforce    WorkforceUseCase
	Contracts    ContractUseCase
	Availability AvailabilityUseCase
	Billing      BillingUseCase
	Calendar     CalendarExporter
	Dispatcher   event.Dispatcher
}

// StaffingHandler は StaffingService の gRPC 実装です。
// ユースケースがコミットした後に、返却されたイベントを Dispatcher へ渡します。
type StaffingHandler struct {
	staffingv1.UnimplementedStaffingServiceServer

	exchange     ExchangeUseCase
	assignments  AssignmentUseCase
	shifts       ShiftUseCase
	timesheets   TimesheetUseCase
	workforce    WorkforceUseCase
	contracts    ContractUseCase
	availability AvailabilityUseCase
	billing      BillingUseCase
	calendar     CalendarExporter
	dispatcher   event.Dispatcher
}

var _ staffingv1.StaffingServiceServer = (*StaffingHandler)(nil)

// NewStaffingHandler は StaffingHandler を生成します。
func NewStaffingHandler(d Deps) *StaffingHandler {
	return &StaffingHandler{
		exchange:     d.Exchange,
		assignments:  d.Assignments,
		shifts:       d.Shifts,
		timesheets:   d.Timesheets,
		workforce:    d.Workforce,
		contracts:    d.Contracts,
		availability: d.Availability,
		billing:      d.Billing,
		calendar:     d.Calendar,
		dispatcher:   d.Dispatcher,
	}
}

func (h *StaffingHandler) dispatch(ctx context.Context, events []event.Event) {
	if h.dispatcher == nil || len(events) == 0 {
		return
	}
	h.dispatcher.Dispatch(ctx, events)
}

// begin はリクエストの存在と認証済み Actor を確認します。
func begin[T any](ctx context.Context, req *T) (actor.Actor, error) {
	if req == nil {
		return actor.Actor{}, status.Error(codes.InvalidArgument, "request is required")
	}
	return requireActor(ctx)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(usecase.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be YYYY-MM-DD", field))
	}
	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(usecase.DateLayout)
}

func parseOptionalDateValue(field string, v *wrapperspb.StringValue) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	return parseOptionalDate(field, v.GetValue())
}

func optionalDateValue(t *time.Time) *wrapperspb.StringValue {
	if t == nil {
		return nil
	}
	return wrapperspb.String(formatDate(*t))
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a decimal number", field))
	}
	return d, nil
}

func parseOptionalDecimal(field string, v *wrapperspb.StringValue) (*decimal.Decimal, error) {
	if v == nil {
		return nil, nil
	}
	d, err := parseDecimal(field, v.GetValue())
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseTime は必須の時刻を検証します。
func parseTime(field string, ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil {
		return time.Time{}, status.Error(codes.InvalidArgument, fmt.Sprintf("%s is required", field))
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, status.Error(codes.InvalidArgument, fmt.Sprintf("%s is invalid", field))
	}
	return ts.AsTime(), nil
}

func parseOptionalTime(field string, ts *timestamppb.Timestamp) (*time.Time, error) {
	if ts == nil {
		return nil, nil
	}
	t, err := parseTime(field, ts)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toOptionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return toTimestamp(*t)
}
