package assignment

import "github.com/ogurasousui/staffing-engine/internal/core/domainerr"

var (
	ErrInvalidID             = domainerr.New(domainerr.ErrValidation, "assignment: invalid id")
	ErrInvalidRate           = domainerr.New(domainerr.ErrValidation, "assignment: rates must not be negative")
	ErrAgreedBelowPay        = domainerr.New(domainerr.ErrValidation, "assignment: agreed rate is below pay rate")
	ErrInvalidStatus         = domainerr.New(domainerr.ErrValidation, "assignment: invalid status")
	ErrInvalidEndDate        = domainerr.New(domainerr.ErrValidation, "assignment: new end date must be after current end date")
	ErrContractNotActive     = domainerr.New(domainerr.ErrValidation, "assignment: employer agency contract is not active")
	ErrEmployeeNotActive     = domainerr.New(domainerr.ErrValidation, "assignment: agency employee is not active")
	ErrResponseNotAccepted   = domainerr.New(domainerr.ErrValidation, "assignment: agency response is not accepted")
	ErrNotExtendable         = domainerr.New(domainerr.ErrInvalidTransition, "assignment: only pending or active assignments can be extended")
	ErrAssignmentNotFound    = domainerr.New(domainerr.ErrNotFound, "assignment: not found")
	ErrResponseNotFound      = domainerr.New(domainerr.ErrNotFound, "assignment: agency response not found")
	ErrResponseAlreadyLinked = domainerr.New(domainerr.ErrConflict, "assignment: agency response already has an assignment")
)
