package availability

import "github.com/ogurasousui/staffing-engine/internal/core/domainerr"

var (
	ErrInvalidEmployeeID = domainerr.New(domainerr.ErrValidation, "availability: invalid employee id")
	ErrInvalidWindow     = domainerr.New(domainerr.ErrValidation, "availability: end must be after start")
	ErrInvalidDateRange  = domainerr.New(domainerr.ErrValidation, "availability: end date before start date")
	ErrInvalidBlock      = domainerr.New(domainerr.ErrValidation, "availability: invalid availability block")
	ErrInvalidDecision   = domainerr.New(domainerr.ErrValidation, "availability: invalid time off decision")
	ErrTimeOffNotFound   = domainerr.New(domainerr.ErrNotFound, "availability: time off request not found")
)
