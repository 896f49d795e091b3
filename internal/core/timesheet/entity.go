package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status はタイムシートの承認状態です。
type Status string

const (
	StatusPending          Status = "pending"
	StatusAgencyApproved   Status = "agency_approved"
	StatusEmployerApproved Status = "employer_approved"
	StatusDisputed         Status = "disputed"
	StatusRejected         Status = "rejected"
)

// Timesheet はシフト 1 件に対する勤務実績です。
type Timesheet struct {
	ID                 string
	ShiftID            string
	AssignmentID       string
	EmployeeID         string
	ClockIn            *time.Time
	ClockOut           *time.Time
	BreakMinutes       int
	HoursWorked        decimal.Decimal
	Status             Status
	AgencyApprovedBy   string
	AgencyApprovedAt   *time.Time
	EmployerApprovedBy string
	EmployerApprovedAt *time.Time
	RejectionReason    string
	DisputeReason      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ClockedOut は退勤打刻済みかを返します。
func (t *Timesheet) ClockedOut() bool {
	return t.ClockIn != nil && t.ClockOut != nil
}

var transitions = map[Status][]Status{
	StatusPending:        {StatusAgencyApproved, StatusRejected, StatusDisputed},
	StatusAgencyApproved: {StatusEmployerApproved, StatusRejected, StatusDisputed},
	StatusDisputed:       {StatusPending, StatusRejected},
}

// CanTransition は from から to への遷移が許されるかを返します。
// pending から employer_approved へ直接進むことはできません。
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
