package timesheet

import "github.com/ogurasousui/staffing-engine/internal/core/domainerr"

var (
	ErrInvalidID         = domainerr.New(domainerr.ErrValidation, "timesheet: invalid id")
	ErrInvalidBreak      = domainerr.New(domainerr.ErrValidation, "timesheet: break minutes must not be negative")
	ErrClockOutBeforeIn  = domainerr.New(domainerr.ErrValidation, "timesheet: clock out must be after clock in")
	ErrNegativeHours     = domainerr.New(domainerr.ErrValidation, "timesheet: break exceeds worked time")
	ErrReasonRequired    = domainerr.New(domainerr.ErrValidation, "timesheet: reason is required")
	ErrNotClockedIn      = domainerr.New(domainerr.ErrInvalidTransition, "timesheet: not clocked in")
	ErrAlreadyClockedOut = domainerr.New(domainerr.ErrInvalidTransition, "timesheet: already clocked out")
	ErrNotClockedOut     = domainerr.New(domainerr.ErrInvalidTransition, "timesheet: clock out is required before approval")
	ErrAlreadyClockedIn  = domainerr.New(domainerr.ErrConflict, "timesheet: shift already has a timesheet")
	ErrTimesheetNotFound = domainerr.New(domainerr.ErrNotFound, "timesheet: timesheet not found")
)
