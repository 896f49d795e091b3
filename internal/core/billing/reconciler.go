package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/event"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

const approvedStatus = "employer_approved"

// Options は Reconciler の設定です。
type Options struct {
	PlatformFeePercent decimal.Decimal
	Logger             *zap.Logger
}

// Reconciler は雇用主承認済みのタイムシートから請求と給与を起こします。
// event.Dispatcher として登録でき、timesheet.employer_approved 以外のイベントは無視します。
type Reconciler struct {
	repo       Repository
	clock      usecase.Clock
	tx         usecase.TransactionManager
	feePercent decimal.Decimal
	logger     *zap.Logger
}

var _ event.Dispatcher = (*Reconciler)(nil)

// NewReconciler は Reconciler を生成します。
func NewReconciler(repo Repository, clock usecase.Clock, tx usecase.TransactionManager, opts Options) *Reconciler {
	clock, tx, _ = usecase.Defaults(clock, tx, nil)
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{repo: repo, clock: clock, tx: tx, feePercent: opts.PlatformFeePercent, logger: logger}
}

// Reconciliation はタイムシート 1 件分の精算結果です。Created が false なら既存の精算を返しています。
type Reconciliation struct {
	Invoices []*Invoice
	Payroll  *Payroll
	Created  bool
}

// Dispatch は承認イベントを精算に回します。失敗はログに残し、呼び出し元へは返しません。
// 承認はコミット済みのため、呼び出し元のキャンセルは精算に伝えません。
func (r *Reconciler) Dispatch(ctx context.Context, events []event.Event) {
	ctx = context.WithoutCancel(ctx)
	for _, e := range events {
		if e.Name != event.TimesheetEmployerOK {
			continue
		}
		rec, err := r.OnEmployerApproved(ctx, e.AggregateID)
		if err != nil {
			r.logger.Error("reconcile timesheet",
				zap.String("timesheet_id", e.AggregateID),
				zap.String("event_id", e.ID),
				zap.Error(err),
			)
			continue
		}
		if rec.Created {
			r.logger.Info("timesheet reconciled",
				zap.String("timesheet_id", e.AggregateID),
				zap.Int("invoices", len(rec.Invoices)),
			)
		}
	}
}

// OnEmployerApproved は請求と給与を作成します。同じタイムシートに対して繰り返し呼んでも 1 組しか作りません。
func (r *Reconciler) OnEmployerApproved(ctx context.Context, timesheetID string) (*Reconciliation, error) {
	if strings.TrimSpace(timesheetID) == "" {
		return nil, fmt.Errorf("timesheet_id: %w", ErrInvalidID)
	}

	var rec *Reconciliation
	err := r.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		src, err := r.repo.LockSource(txCtx, timesheetID)
		if err != nil {
			return err
		}
		if src.TimesheetStatus != approvedStatus {
			return fmt.Errorf("%w: status %s", ErrNotApproved, src.TimesheetStatus)
		}

		existing, err := r.repo.ListInvoicesByTimesheet(txCtx, timesheetID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			payroll, err := r.repo.FindPayrollByTimesheet(txCtx, timesheetID)
			if err != nil {
				return err
			}
			rec = &Reconciliation{Invoices: existing, Payroll: payroll}
			return nil
		}

		plan, err := Compute(*src, r.feePercent)
		if err != nil {
			return err
		}
		now := r.clock.Now()

		drafts := []*Invoice{&plan.EmployerInvoice}
		if plan.PlatformInvoice != nil {
			drafts = append(drafts, plan.PlatformInvoice)
		}
		created := make([]*Invoice, 0, len(drafts))
		for _, draft := range drafts {
			draft.CreatedAt, draft.UpdatedAt = now, now
			inv, err := r.repo.CreateInvoice(txCtx, draft)
			if err != nil {
				return err
			}
			created = append(created, inv)
		}

		plan.Payroll.CreatedAt = now
		payroll, err := r.repo.CreatePayroll(txCtx, &plan.Payroll)
		if err != nil {
			return err
		}
		rec = &Reconciliation{Invoices: created, Payroll: payroll, Created: true}
		return nil
	})
	if errors.Is(err, ErrAlreadyReconciled) {
		// 並行した別トランザクションが先に作成した
		return r.load(ctx, timesheetID)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *Reconciler) load(ctx context.Context, timesheetID string) (*Reconciliation, error) {
	var rec *Reconciliation
	if err := r.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		invoices, err := r.repo.ListInvoicesByTimesheet(txCtx, timesheetID)
		if err != nil {
			return err
		}
		payroll, err := r.repo.FindPayrollByTimesheet(txCtx, timesheetID)
		if err != nil {
			return err
		}
		rec = &Reconciliation{Invoices: invoices, Payroll: payroll}
		return nil
	}); err != nil {
		return nil, err
	}
	return rec, nil
}

// ApplyPaymentInput は決済結果の反映入力です。
type ApplyPaymentInput struct {
	Actor     actor.Actor
	InvoiceID string
	Result    PaymentResult
}

// ApplyPaymentResult は決済事業者の結果を請求書へ反映します。
// 同じ ProcessorID での再通知は現在の請求書をそのまま返します。
func (r *Reconciler) ApplyPaymentResult(ctx context.Context, in ApplyPaymentInput) (*Invoice, error) {
	if !in.Actor.IsSuperAdmin() {
		return nil, fmt.Errorf("%w: payment results are applied by the platform", actor.ErrForbidden)
	}
	if strings.TrimSpace(in.InvoiceID) == "" {
		return nil, fmt.Errorf("invoice_id: %w", ErrInvalidID)
	}
	if in.Result.Status != InvoicePaid && in.Result.Status != InvoiceFailed {
		return nil, ErrInvalidPaymentStatus
	}
	if in.Result.FeeAmount.IsNegative() {
		return nil, ErrInvalidRate
	}

	var updated *Invoice
	if err := r.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		inv, err := r.repo.LockInvoice(txCtx, in.InvoiceID)
		if err != nil {
			return err
		}
		if inv.Status == in.Result.Status && inv.ProcessorID == in.Result.ProcessorID {
			updated = inv
			return nil
		}
		// failed からの再決済は許可する
		if inv.Status == InvoicePaid {
			return domainerr.NewTransitionError("invoice", inv.Status, in.Result.Status)
		}
		inv.Status = in.Result.Status
		inv.ProcessorID = in.Result.ProcessorID
		inv.FeeAmount = in.Result.FeeAmount.Round(2)
		inv.UpdatedAt = r.clock.Now()
		updated, err = r.repo.UpdateInvoice(txCtx, inv)
		return err
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

// PayoutInput は給与集計の入力です。期間は日付単位で両端を含みます。
type PayoutInput struct {
	Actor       actor.Actor
	AgencyID    string
	EmployeeID  string
	PeriodStart string
	PeriodEnd   string
}

// AggregatePayout は期間内の未払い給与を合計します。
func (r *Reconciler) AggregatePayout(ctx context.Context, in PayoutInput) (*Payout, error) {
	if strings.TrimSpace(in.AgencyID) == "" || strings.TrimSpace(in.EmployeeID) == "" {
		return nil, ErrInvalidID
	}
	if err := in.Actor.RequireAgency(actor.PermManageWorkforce, in.AgencyID); err != nil {
		return nil, err
	}
	start, err := time.Parse(usecase.DateLayout, in.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("period_start: %w", ErrInvalidPeriod)
	}
	end, err := time.Parse(usecase.DateLayout, in.PeriodEnd)
	if err != nil || end.Before(start) {
		return nil, fmt.Errorf("period_end: %w", ErrInvalidPeriod)
	}

	payout := &Payout{
		AgencyID:    in.AgencyID,
		EmployeeID:  in.EmployeeID,
		PeriodStart: start,
		PeriodEnd:   end,
		Total:       decimal.Zero,
	}
	if err := r.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		payrolls, err := r.repo.ListPendingPayrolls(txCtx, in.AgencyID, in.EmployeeID, start, end.AddDate(0, 0, 1))
		if err != nil {
			return err
		}
		for _, p := range payrolls {
			payout.Total = payout.Total.Add(p.GrossAmount)
			payout.PayrollIDs = append(payout.PayrollIDs, p.ID)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	payout.Total = payout.Total.Round(2)
	return payout, nil
}
