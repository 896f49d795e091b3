package workforce

import "github.com/ogurasousui/staffing-engine/internal/core/domainerr"

var (
	ErrInvalidID              = domainerr.New(domainerr.ErrValidation, "workforce: invalid id")
	ErrInvalidAgencyID        = domainerr.New(domainerr.ErrValidation, "workforce: invalid agency id")
	ErrInvalidEmail           = domainerr.New(domainerr.ErrValidation, "workforce: invalid email")
	ErrInvalidName            = domainerr.New(domainerr.ErrValidation, "workforce: invalid name")
	ErrInvalidPayRate         = domainerr.New(domainerr.ErrValidation, "workforce: pay rate must not be negative")
	ErrInvalidEmploymentType  = domainerr.New(domainerr.ErrValidation, "workforce: invalid employment type")
	ErrInvalidStatus          = domainerr.New(domainerr.ErrValidation, "workforce: invalid status")
	ErrEmployeeNotFound       = domainerr.New(domainerr.ErrNotFound, "workforce: employee not found")
	ErrAgencyEmployeeNotFound = domainerr.New(domainerr.ErrNotFound, "workforce: agency employee not found")
	ErrEmailAlreadyExists     = domainerr.New(domainerr.ErrConflict, "workforce: email already exists")
	ErrAlreadyEmployed        = domainerr.New(domainerr.ErrConflict, "workforce: employee already has an active relationship with the agency")
	ErrEmployeeNotActive      = domainerr.New(domainerr.ErrValidation, "workforce: employee is not active")
)
