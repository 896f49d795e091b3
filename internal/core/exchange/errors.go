package exchange

import "github.com/ogurasousui/staffing-engine/internal/core/domainerr"

const (
	reasonAnotherAgency    = "another agency selected"
	reasonRequestCancelled = "shift request cancelled"
)

var (
	ErrInvalidID            = domainerr.New(domainerr.ErrValidation, "exchange: invalid id")
	ErrInvalidRole          = domainerr.New(domainerr.ErrValidation, "exchange: role is required")
	ErrInvalidLocation      = domainerr.New(domainerr.ErrValidation, "exchange: location is required")
	ErrInvalidDateRange     = domainerr.New(domainerr.ErrValidation, "exchange: invalid date range")
	ErrInvalidTimeWindow    = domainerr.New(domainerr.ErrValidation, "exchange: invalid daily time window")
	ErrInvalidRate          = domainerr.New(domainerr.ErrValidation, "exchange: rate must be positive")
	ErrInvalidWorkers       = domainerr.New(domainerr.ErrValidation, "exchange: number of workers must be at least 1")
	ErrInvalidTargets       = domainerr.New(domainerr.ErrValidation, "exchange: specific scope requires target agencies")
	ErrRateExceedsCeiling   = domainerr.New(domainerr.ErrValidation, "exchange: proposed rate exceeds max hourly rate")
	ErrDatesOutsideRequest  = domainerr.New(domainerr.ErrValidation, "exchange: proposed dates are outside the shift request")
	ErrInvalidEmployee      = domainerr.New(domainerr.ErrValidation, "exchange: proposed employee is not an active employee of the agency")
	ErrInvalidExpiry        = domainerr.New(domainerr.ErrValidation, "exchange: expires_at must be in the future")
	ErrAgencyNotTargeted    = domainerr.New(domainerr.ErrForbidden, "exchange: shift request does not target the agency")
	ErrRequestNotOpen       = domainerr.New(domainerr.ErrInvalidTransition, "exchange: shift request is not accepting responses")
	ErrResponseExpired      = domainerr.New(domainerr.ErrInvalidTransition, "exchange: agency response has expired")
	ErrDuplicateResponse    = domainerr.New(domainerr.ErrConflict, "exchange: agency already has an active response")
	ErrAlreadyAccepted      = domainerr.New(domainerr.ErrConflict, "exchange: shift request already has an accepted response")
	ErrShiftRequestNotFound = domainerr.New(domainerr.ErrNotFound, "exchange: shift request not found")
	ErrResponseNotFound     = domainerr.New(domainerr.ErrNotFound, "exchange: agency response not found")
)
