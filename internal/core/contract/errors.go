package contract

import "github.com/ogurasousui/staffing-engine/internal/core/domainerr"

var (
	// ErrContractNotFound は契約が存在しない場合に返却されます。
	ErrContractNotFound = domainerr.New(domainerr.ErrNotFound, "contract: not found")
	// ErrContractAlreadyExists は同一の雇用主・派遣会社の契約が既にある場合に返却されます。
	ErrContractAlreadyExists = domainerr.New(domainerr.ErrConflict, "contract: already exists for employer and agency")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = domainerr.New(domainerr.ErrValidation, "contract: invalid id")
	// ErrInvalidParty は雇用主または派遣会社の指定が不正な場合に返却されます。
	ErrInvalidParty = domainerr.New(domainerr.ErrValidation, "contract: employer and agency are required")
	// ErrInvalidStatus はステータスが不正な場合に返却されます。
	ErrInvalidStatus = domainerr.New(domainerr.ErrValidation, "contract: invalid status")
	// ErrInvalidDateRange は終了日が開始日より前の場合に返却されます。
	ErrInvalidDateRange = domainerr.New(domainerr.ErrValidation, "contract: end date before start date")
)
