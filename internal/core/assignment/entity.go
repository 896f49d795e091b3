package assignment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

// Status はアサインメントの状態です。
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusSuspended Status = "suspended"
)

// Assignment は採用された応募から作られる就業契約です。配下のシフトを所有します。
type Assignment struct {
	ID               string
	ContractID       string
	AgencyEmployeeID string
	EmployeeID       string
	AgencyID         string
	EmployerID       string
	ShiftRequestID   string
	AgencyResponseID string
	LocationID       string
	Role             string
	StartDate        time.Time
	EndDate          time.Time
	DailyStart       usecase.TimeOfDay
	DailyEnd         usecase.TimeOfDay
	AgreedRate       decimal.Decimal
	PayRate          decimal.Decimal
	MarkupAmount     decimal.Decimal
	MarkupPercent    decimal.Decimal
	Status           Status
	Notes            string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Schedulable はシフトを追加できる状態かを返します。
func (a *Assignment) Schedulable() bool {
	return a.Status == StatusPending || a.Status == StatusActive
}

// Covers は日付がアサインメント期間（両端含む）に含まれるかを返します。
func (a *Assignment) Covers(day time.Time) bool {
	d := usecase.DateOf(day)
	return !d.Before(usecase.DateOf(a.StartDate)) && !d.After(usecase.DateOf(a.EndDate))
}

// Source はアサインメント生成元となる採用済み応募と募集の情報です。
type Source struct {
	ResponseID       string
	ResponseStatus   string
	ShiftRequestID   string
	EmployerID       string
	AgencyID         string
	AgencyEmployeeID string
	LocationID       string
	Role             string
	ProposedRate     decimal.Decimal
	StartDate        time.Time
	EndDate          time.Time
	DailyStart       usecase.TimeOfDay
	DailyEnd         usecase.TimeOfDay
}
