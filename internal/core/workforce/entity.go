package workforce

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeStatus は社員本人の状態を表します。
type EmployeeStatus string

const (
	EmployeeActive    EmployeeStatus = "active"
	EmployeeInactive  EmployeeStatus = "inactive"
	EmployeeSuspended EmployeeStatus = "suspended"
)

// Employee は派遣会社をまたいで一意な社員です。雇用主とは直接紐づきません。
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Status    EmployeeStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status は派遣会社との雇用関係の状態を表します。
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusSuspended  Status = "suspended"
	StatusTerminated Status = "terminated"
)

// EmploymentType は雇用形態です。
type EmploymentType string

const (
	EmploymentTemporary EmploymentType = "temporary"
	EmploymentPermanent EmploymentType = "permanent"
	EmploymentContract  EmploymentType = "contract"
)

// AgencyEmployee は社員と派遣会社の雇用関係です。
// 同一 (AgencyID, EmployeeID) で active な行は高々 1 件です。
type AgencyEmployee struct {
	ID             string
	AgencyID       string
	EmployeeID     string
	PayRate        decimal.Decimal
	EmploymentType EmploymentType
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive は雇用関係が有効かを返します。
func (a *AgencyEmployee) IsActive() bool {
	return a != nil && a.Status == StatusActive
}

var transitions = map[Status][]Status{
	StatusActive:    {StatusInactive, StatusSuspended, StatusTerminated},
	StatusInactive:  {StatusActive, StatusTerminated},
	StatusSuspended: {StatusActive, StatusTerminated},
}

// CanTransition は雇用関係の状態遷移が許可されているかを返します。terminated は終端です。
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
