package billing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/event"
)

type stubClock struct{ now time.Time }

func (s stubClock) Now() time.Time { return s.now }

type fakeRepo struct {
	sources  map[string]*Source
	invoices []*Invoice
	payrolls []*Payroll
	seq      int
}

func newFakeRepo() *fakeRepo {
	src := source()
	return &fakeRepo{sources: map[string]*Source{src.TimesheetID: &src}}
}

func (r *fakeRepo) LockSource(_ context.Context, id string) (*Source, error) {
	src, ok := r.sources[id]
	if !ok {
		return nil, ErrSourceNotFound
	}
	clone := *src
	return &clone, nil
}

func (r *fakeRepo) ListInvoicesByTimesheet(_ context.Context, id string) ([]*Invoice, error) {
	var out []*Invoice
	for _, inv := range r.invoices {
		if inv.TimesheetID == id {
			clone := *inv
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindPayrollByTimesheet(_ context.Context, id string) (*Payroll, error) {
	for _, p := range r.payrolls {
		if p.TimesheetID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) CreateInvoice(_ context.Context, inv *Invoice) (*Invoice, error) {
	for _, existing := range r.invoices {
		if existing.TimesheetID == inv.TimesheetID && existing.From == inv.From && existing.To == inv.To {
			return nil, ErrAlreadyReconciled
		}
	}
	clone := *inv
	r.seq++
	clone.ID = fmt.Sprintf("inv-%d", r.seq)
	r.invoices = append(r.invoices, &clone)
	out := clone
	return &out, nil
}

func (r *fakeRepo) CreatePayroll(_ context.Context, p *Payroll) (*Payroll, error) {
	clone := *p
	r.seq++
	clone.ID = fmt.Sprintf("pay-%d", r.seq)
	r.payrolls = append(r.payrolls, &clone)
	out := clone
	return &out, nil
}

func (r *fakeRepo) LockInvoice(_ context.Context, id string) (*Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			clone := *inv
			return &clone, nil
		}
	}
	return nil, ErrInvoiceNotFound
}

func (r *fakeRepo) UpdateInvoice(_ context.Context, inv *Invoice) (*Invoice, error) {
	for i, existing := range r.invoices {
		if existing.ID == inv.ID {
			clone := *inv
			r.invoices[i] = &clone
			out := clone
			return &out, nil
		}
	}
	return nil, ErrInvoiceNotFound
}

func (r *fakeRepo) ListPendingPayrolls(_ context.Context, agencyID, employeeID string, from, to time.Time) ([]*Payroll, error) {
	var out []*Payroll
	for _, p := range r.payrolls {
		if p.AgencyID != agencyID || p.EmployeeID != employeeID || p.Status != PayrollPending {
			continue
		}
		if p.CreatedAt.Before(from) || !p.CreatedAt.Before(to) {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

var now = time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)

func newReconciler(repo Repository) *Reconciler {
	return NewReconciler(repo, stubClock{now: now}, nil, Options{PlatformFeePercent: decimal.NewFromInt(10)})
}

func TestOnEmployerApproved_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	r := newReconciler(repo)

	first, err := r.OnEmployerApproved(context.Background(), "ts-1")
	require.NoError(t, err)
	assert.True(t, first.Created)
	require.Len(t, first.Invoices, 2)
	require.NotNil(t, first.Payroll)

	second, err := r.OnEmployerApproved(context.Background(), "ts-1")
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Len(t, second.Invoices, 2)
	assert.Equal(t, first.Payroll.ID, second.Payroll.ID)

	assert.Len(t, repo.invoices, 2)
	assert.Len(t, repo.payrolls, 1)
}

func TestOnEmployerApproved_RequiresApproval(t *testing.T) {
	repo := newFakeRepo()
	repo.sources["ts-1"].TimesheetStatus = "agency_approved"

	_, err := newReconciler(repo).OnEmployerApproved(context.Background(), "ts-1")
	require.ErrorIs(t, err, ErrNotApproved)
	assert.ErrorIs(t, err, domainerr.ErrInvalidTransition)
	assert.Empty(t, repo.invoices)
}

func TestDispatch_IgnoresOtherEvents(t *testing.T) {
	repo := newFakeRepo()
	r := newReconciler(repo)

	r.Dispatch(context.Background(), []event.Event{
		event.New(event.TimesheetAgencyOK, "timesheet", "ts-1", "u", now, nil),
		event.New(event.TimesheetEmployerOK, "timesheet", "missing", "u", now, nil),
	})
	assert.Empty(t, repo.invoices)

	r.Dispatch(context.Background(), []event.Event{
		event.New(event.TimesheetEmployerOK, "timesheet", "ts-1", "u", now, nil),
		event.New(event.TimesheetEmployerOK, "timesheet", "ts-1", "u", now, nil),
	})
	assert.Len(t, repo.invoices, 2)
	assert.Len(t, repo.payrolls, 1)
}

// ctxTransactionManager は開始時にコンテキストのキャンセルを検査します。
type ctxTransactionManager struct{}

func (ctxTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	return fn(ctx)
}

func (ctxTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	return fn(ctx)
}

func TestDispatch_SurvivesCancelledCaller(t *testing.T) {
	repo := newFakeRepo()
	r := NewReconciler(repo, stubClock{now: now}, ctxTransactionManager{}, Options{PlatformFeePercent: decimal.NewFromInt(10)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.OnEmployerApproved(ctx, "ts-1")
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, repo.invoices)

	r.Dispatch(ctx, []event.Event{
		event.New(event.TimesheetEmployerOK, "timesheet", "ts-1", "u", now, nil),
	})
	assert.Len(t, repo.invoices, 2)
	assert.Len(t, repo.payrolls, 1)
}

func TestApplyPaymentResult(t *testing.T) {
	repo := newFakeRepo()
	r := newReconciler(repo)
	rec, err := r.OnEmployerApproved(context.Background(), "ts-1")
	require.NoError(t, err)
	invoiceID := rec.Invoices[0].ID
	system := actor.Actor{UserID: "system", Role: actor.RoleSuperAdmin}

	_, err = r.ApplyPaymentResult(context.Background(), ApplyPaymentInput{
		Actor:     actor.Actor{UserID: "u", Role: actor.RoleEmployerAdmin, EmployerID: "employer-e"},
		InvoiceID: invoiceID,
		Result:    PaymentResult{ProcessorID: "ch_1", Status: InvoicePaid},
	})
	require.ErrorIs(t, err, actor.ErrForbidden)

	_, err = r.ApplyPaymentResult(context.Background(), ApplyPaymentInput{
		Actor: system, InvoiceID: invoiceID, Result: PaymentResult{Status: InvoicePending},
	})
	require.ErrorIs(t, err, ErrInvalidPaymentStatus)

	failed, err := r.ApplyPaymentResult(context.Background(), ApplyPaymentInput{
		Actor: system, InvoiceID: invoiceID, Result: PaymentResult{ProcessorID: "ch_1", Status: InvoiceFailed},
	})
	require.NoError(t, err)
	assert.Equal(t, InvoiceFailed, failed.Status)

	paid, err := r.ApplyPaymentResult(context.Background(), ApplyPaymentInput{
		Actor: system, InvoiceID: invoiceID,
		Result: PaymentResult{ProcessorID: "ch_2", Status: InvoicePaid, FeeAmount: dec("5.738")},
	})
	require.NoError(t, err)
	assert.Equal(t, InvoicePaid, paid.Status)
	assert.Equal(t, "ch_2", paid.ProcessorID)
	assert.True(t, dec("5.74").Equal(paid.FeeAmount))

	again, err := r.ApplyPaymentResult(context.Background(), ApplyPaymentInput{
		Actor: system, InvoiceID: invoiceID, Result: PaymentResult{ProcessorID: "ch_2", Status: InvoicePaid},
	})
	require.NoError(t, err)
	assert.Equal(t, InvoicePaid, again.Status)

	_, err = r.ApplyPaymentResult(context.Background(), ApplyPaymentInput{
		Actor: system, InvoiceID: invoiceID, Result: PaymentResult{ProcessorID: "ch_3", Status: InvoiceFailed},
	})
	var te *domainerr.TransitionError
	require.ErrorAs(t, err, &te)
}

func TestAggregatePayout(t *testing.T) {
	repo := newFakeRepo()
	second := source()
	second.TimesheetID = "ts-2"
	second.Hours = dec("4")
	repo.sources["ts-2"] = &second
	r := newReconciler(repo)

	for _, id := range []string{"ts-1", "ts-2"} {
		_, err := r.OnEmployerApproved(context.Background(), id)
		require.NoError(t, err)
	}
	admin := actor.Actor{UserID: "u", Role: actor.RoleAgencyAdmin, AgencyID: "agency-a"}

	payout, err := r.AggregatePayout(context.Background(), PayoutInput{
		Actor: admin, AgencyID: "agency-a", EmployeeID: "emp-1",
		PeriodStart: "2025-06-10", PeriodEnd: "2025-06-10",
	})
	require.NoError(t, err)
	// 18 × 7.5 + 18 × 4
	assert.True(t, dec("207").Equal(payout.Total), payout.Total.String())
	assert.Len(t, payout.PayrollIDs, 2)

	empty, err := r.AggregatePayout(context.Background(), PayoutInput{
		Actor: admin, AgencyID: "agency-a", EmployeeID: "emp-1",
		PeriodStart: "2025-06-11", PeriodEnd: "2025-06-30",
	})
	require.NoError(t, err)
	assert.True(t, empty.Total.IsZero())

	_, err = r.AggregatePayout(context.Background(), PayoutInput{
		Actor: admin, AgencyID: "agency-a", EmployeeID: "emp-1",
		PeriodStart: "2025-06-30", PeriodEnd: "2025-06-01",
	})
	require.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = r.AggregatePayout(context.Background(), PayoutInput{
		Actor:    actor.Actor{UserID: "u", Role: actor.RoleAgencyAdmin, AgencyID: "agency-b"},
		AgencyID: "agency-a", EmployeeID: "emp-1", PeriodStart: "2025-06-01", PeriodEnd: "2025-06-30",
	})
	require.ErrorIs(t, err, actor.ErrForbidden)
}
