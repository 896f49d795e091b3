package shift

import "github.com/ogurasousui/staffing-engine/internal/core/domainerr"

var (
	ErrInvalidID            = domainerr.New(domainerr.ErrValidation, "shift: invalid id")
	ErrInvalidTime          = domainerr.New(domainerr.ErrValidation, "shift: invalid time window")
	ErrInvalidDateRange     = domainerr.New(domainerr.ErrValidation, "shift: invalid date range")
	ErrInvalidRate          = domainerr.New(domainerr.ErrValidation, "shift: hourly rate must be positive")
	ErrInvalidRecurrence    = domainerr.New(domainerr.ErrValidation, "shift: invalid recurrence")
	ErrInvalidDayOfWeek     = domainerr.New(domainerr.ErrValidation, "shift: invalid day of week")
	ErrInvalidMaxOccurrence = domainerr.New(domainerr.ErrValidation, "shift: max occurrences must be positive")
	ErrInvalidStatus        = domainerr.New(domainerr.ErrValidation, "shift: status cannot be set directly")
	ErrOutsideAssignment    = domainerr.New(domainerr.ErrValidation, "shift: date is outside the assignment period")
	ErrEmployeeNotEligible  = domainerr.New(domainerr.ErrValidation, "shift: employee is not an active employee of the agency")
	ErrAssignmentClosed     = domainerr.New(domainerr.ErrInvalidTransition, "shift: assignment does not accept new shifts")
	ErrSlotTaken            = domainerr.New(domainerr.ErrAvailability, "shift: employee already has an overlapping shift")
	ErrOfferExpired         = domainerr.New(domainerr.ErrInvalidTransition, "shift: offer has expired")
	ErrShiftNotFound        = domainerr.New(domainerr.ErrNotFound, "shift: shift not found")
	ErrTemplateNotFound     = domainerr.New(domainerr.ErrNotFound, "shift: template not found")
	ErrOfferNotFound        = domainerr.New(domainerr.ErrNotFound, "shift: offer not found")
)
