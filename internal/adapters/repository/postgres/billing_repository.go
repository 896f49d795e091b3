package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/staffing-engine/internal/core/billing"
	pgdb "github.com/ogurasousui/staffing-engine/internal/platform/db/postgres"
)

// BillingRepository は請求書と給与明細を永続化します。
type BillingRepository struct {
	pool pgdb.Queryer
}

// NewBillingRepository は BillingRepository を生成します。
func NewBillingRepository(pool pgdb.Queryer) *BillingRepository {
	return &BillingRepository{pool: pool}
}

// LockSource はタイムシート行をロックし、アサインメントの単価と合わせて返します。
func (r *BillingRepository) LockSource(ctx context.Context, timesheetID string) (*billing.Source, error) {
	if !validID(timesheetID) {
		return nil, billing.ErrSourceNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT t.id, t.status, a.id, a.agency_id, a.employer_id, t.employee_id,
               t.hours_worked, a.agreed_rate, a.pay_rate, a.markup_amount
          FROM timesheets t
          JOIN assignments a ON a.id = t.assignment_id
         WHERE t.id = $1
           FOR UPDATE OF t`, timesheetID)

	var src billing.Source
	if err := row.Scan(&src.TimesheetID, &src.TimesheetStatus, &src.AssignmentID, &src.AgencyID, &src.EmployerID,
		&src.EmployeeID, &src.Hours, &src.AgreedRate, &src.PayRate, &src.MarkupAmount); err != nil {
		return nil, translateNoRows(err, billing.ErrSourceNotFound)
	}
	return &src, nil
}

const invoiceColumns = `id, timesheet_id, from_kind, from_id, to_kind, to_id, hours, rate, amount, status,
       processor_id, fee_amount, created_at, updated_at`

// ListInvoicesByTimesheet はタイムシートの請求書を作成順に返します。
func (r *BillingRepository) ListInvoicesByTimesheet(ctx context.Context, timesheetID string) ([]*billing.Invoice, error) {
	if !validID(timesheetID) {
		return nil, nil
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE timesheet_id = $1 ORDER BY created_at, id`, timesheetID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*billing.Invoice, error) {
		return scanInvoice(row)
	})
}

// CreateInvoice は請求書を登録します。当事者の組の重複は ErrAlreadyReconciled です。
func (r *BillingRepository) CreateInvoice(ctx context.Context, inv *billing.Invoice) (*billing.Invoice, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO invoices (timesheet_id, from_kind, from_id, to_kind, to_id, hours, rate, amount, status,
                              processor_id, fee_amount, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING `+invoiceColumns,
		inv.TimesheetID, string(inv.From.Kind), inv.From.ID, string(inv.To.Kind), inv.To.ID, inv.Hours, inv.Rate,
		inv.Amount, string(inv.Status), inv.ProcessorID, inv.FeeAmount, inv.CreatedAt, inv.UpdatedAt,
	)
	created, err := scanInvoice(row)
	if err != nil {
		return nil, translateBillingPgError(err)
	}
	return created, nil
}

// LockInvoice は請求書を FOR UPDATE で取得します。
func (r *BillingRepository) LockInvoice(ctx context.Context, id string) (*billing.Invoice, error) {
	if !validID(id) {
		return nil, billing.ErrInvoiceNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanInvoice(exec.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, translateBillingPgError(err)
	}
	return found, nil
}

// UpdateInvoice は決済結果を保存します。
func (r *BillingRepository) UpdateInvoice(ctx context.Context, inv *billing.Invoice) (*billing.Invoice, error) {
	if !validID(inv.ID) {
		return nil, billing.ErrInvoiceNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE invoices
           SET status = $1,
               processor_id = $2,
               fee_amount = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+invoiceColumns,
		string(inv.Status), inv.ProcessorID, inv.FeeAmount, inv.UpdatedAt, inv.ID,
	)
	updated, err := scanInvoice(row)
	if err != nil {
		return nil, translateBillingPgError(err)
	}
	return updated, nil
}

const payrollColumns = `id, timesheet_id, agency_id, employee_id, hours, pay_rate, gross_amount, status, created_at`

// CreatePayroll は給与明細を登録します。
func (r *BillingRepository) CreatePayroll(ctx context.Context, p *billing.Payroll) (*billing.Payroll, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO payrolls (timesheet_id, agency_id, employee_id, hours, pay_rate, gross_amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+payrollColumns,
		p.TimesheetID, p.AgencyID, p.EmployeeID, p.Hours, p.PayRate, p.GrossAmount, string(p.Status), p.CreatedAt,
	)
	created, err := scanPayroll(row)
	if err != nil {
		return nil, translateBillingPgError(err)
	}
	return created, nil
}

// FindPayrollByTimesheet はタイムシートの給与明細を返します。無ければ nil です。
func (r *BillingRepository) FindPayrollByTimesheet(ctx context.Context, timesheetID string) (*billing.Payroll, error) {
	if !validID(timesheetID) {
		return nil, nil
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanPayroll(exec.QueryRow(ctx, `SELECT `+payrollColumns+` FROM payrolls WHERE timesheet_id = $1`, timesheetID))
	if err != nil {
		if translateNoRows(err, nil) == nil {
			return nil, nil
		}
		return nil, err
	}
	return found, nil
}

// ListPendingPayrolls は作成日時が [from, to) の未払い給与を返します。
func (r *BillingRepository) ListPendingPayrolls(ctx context.Context, agencyID, employeeID string, from, to time.Time) ([]*billing.Payroll, error) {
	if !validIDs(agencyID, employeeID) {
		return nil, nil
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+payrollColumns+`
          FROM payrolls
         WHERE agency_id = $1
           AND employee_id = $2
           AND status = 'pending'
           AND created_at >= $3
           AND created_at < $4
         ORDER BY created_at, id`, agencyID, employeeID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*billing.Payroll, error) {
		return scanPayroll(row)
	})
}

func scanInvoice(row pgx.Row) (*billing.Invoice, error) {
	var (
		inv      billing.Invoice
		fromKind string
		toKind   string
		status   string
	)
	if err := row.Scan(&inv.ID, &inv.TimesheetID, &fromKind, &inv.From.ID, &toKind, &inv.To.ID, &inv.Hours, &inv.Rate,
		&inv.Amount, &status, &inv.ProcessorID, &inv.FeeAmount, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return nil, err
	}
	inv.From.Kind = billing.PartyKind(fromKind)
	inv.To.Kind = billing.PartyKind(toKind)
	inv.Status = billing.InvoiceStatus(status)
	return &inv, nil
}

func scanPayroll(row pgx.Row) (*billing.Payroll, error) {
	var (
		p      billing.Payroll
		status string
	)
	if err := row.Scan(&p.ID, &p.TimesheetID, &p.AgencyID, &p.EmployeeID, &p.Hours, &p.PayRate, &p.GrossAmount,
		&status, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Status = billing.PayrollStatus(status)
	return &p, nil
}

func translateBillingPgError(err error) error {
	if err == nil {
		return nil
	}
	code, _, ok := pgError(err)
	if !ok {
		return translateNoRows(err, billing.ErrInvoiceNotFound)
	}
	switch code {
	case uniqueViolationCode:
		return billing.ErrAlreadyReconciled
	case foreignKeyViolationCode:
		return billing.ErrSourceNotFound
	case checkViolationCode:
		return billing.ErrInvalidPaymentStatus
	}
	return err
}
