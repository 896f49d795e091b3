package billing

import "github.com/ogurasousui/staffing-engine/internal/core/domainerr"

var (
	ErrInvalidID            = domainerr.New(domainerr.ErrValidation, "billing: invalid id")
	ErrInvalidHours         = domainerr.New(domainerr.ErrValidation, "billing: hours must not be negative")
	ErrInvalidRate          = domainerr.New(domainerr.ErrValidation, "billing: rates must not be negative")
	ErrInvalidFeePercent    = domainerr.New(domainerr.ErrValidation, "billing: platform fee percent must be between 0 and 100")
	ErrInvalidPaymentStatus = domainerr.New(domainerr.ErrValidation, "billing: payment result must be paid or failed")
	ErrInvalidPeriod        = domainerr.New(domainerr.ErrValidation, "billing: invalid payout period")
	ErrNotApproved          = domainerr.New(domainerr.ErrInvalidTransition, "billing: timesheet is not employer approved")
	ErrAlreadyReconciled    = domainerr.New(domainerr.ErrConflict, "billing: timesheet already reconciled")
	ErrInvoiceNotFound      = domainerr.New(domainerr.ErrNotFound, "billing: invoice not found")
	ErrSourceNotFound       = domainerr.New(domainerr.ErrNotFound, "billing: timesheet not found")
)
