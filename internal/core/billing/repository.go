package billing

import (
	"context"
	"time"
)

// Repository は精算データの永続化抽象です。
type Repository interface {
	// LockSource はタイムシート行を FOR UPDATE で確保し、精算元の値を返します。
	LockSource(ctx context.Context, timesheetID string) (*Source, error)
	ListInvoicesByTimesheet(ctx context.Context, timesheetID string) ([]*Invoice, error)
	FindPayrollByTimesheet(ctx context.Context, timesheetID string) (*Payroll, error)
	// CreateInvoice は (timesheet_id, from, to) の一意制約違反を ErrAlreadyReconciled として返します。
	CreateInvoice(ctx context.Context, inv *Invoice) (*Invoice, error)
	CreatePayroll(ctx context.Context, p *Payroll) (*Payroll, error)
	LockInvoice(ctx context.Context, id string) (*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) (*Invoice, error)
	// ListPendingPayrolls は作成日時が [from, to) の未払い給与を返します。
	ListPendingPayrolls(ctx context.Context, agencyID, employeeID string, from, to time.Time) ([]*Payroll, error)
}
