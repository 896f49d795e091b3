package contract

import "time"

// Status は雇用主と派遣会社の契約状態です。
type Status string

const (
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusSuspended  Status = "suspended"
	StatusTerminated Status = "terminated"
)

// Contract は雇用主と派遣会社の取引契約です。(EmployerID, AgencyID) ごとに 1 件です。
type Contract struct {
	ID         string
	EmployerID string
	AgencyID   string
	Status     Status
	StartDate  time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive は契約が有効かを返します。
func (c *Contract) IsActive() bool {
	return c != nil && c.Status == StatusActive
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusActive, StatusTerminated},
	StatusActive:    {StatusSuspended, StatusTerminated},
	StatusSuspended: {StatusActive, StatusTerminated},
}

// CanTransition は契約状態の遷移が許可されているかを返します。
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
