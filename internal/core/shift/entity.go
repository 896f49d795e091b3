package shift

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

// Status はシフトの状態です。
type Status string

const (
	StatusOpen             Status = "open"
	StatusOffered          Status = "offered"
	StatusAssigned         Status = "assigned"
	StatusInProgress       Status = "in_progress"
	StatusCompleted        Status = "completed"
	StatusAgencyApproved   Status = "agency_approved"
	StatusEmployerApproved Status = "employer_approved"
	StatusCancelled        Status = "cancelled"
	StatusNoShow           Status = "no_show"
)

// Shift はアサインメント配下の 1 回分の勤務枠です。
type Shift struct {
	ID               string
	AssignmentID     string
	AgencyID         string
	EmployerID       string
	EmployeeID       string
	AgencyEmployeeID string
	Date             time.Time
	StartTime        time.Time
	EndTime          time.Time
	HourlyRate       decimal.Decimal
	Status           Status
	TemplateID       string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Staffed は社員が割り当てられているかを返します。
func (s *Shift) Staffed() bool {
	return s.EmployeeID != ""
}

// Recurrence はテンプレートの繰り返し規則です。
type Recurrence string

const (
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiweekly Recurrence = "biweekly"
	RecurrenceMonthly  Recurrence = "monthly"
)

// Template は曜日ごとの繰り返しシフト定義です。
type Template struct {
	ID                 string
	AssignmentID       string
	DayOfWeek          time.Weekday
	StartTime          usecase.TimeOfDay
	EndTime            usecase.TimeOfDay
	Recurrence         Recurrence
	EffectiveStartDate *time.Time
	EffectiveEndDate   *time.Time
	MaxOccurrences     *int
	CreatedBy          string
	CreatedAt          time.Time
}

// OfferStatus はシフトオファーの状態です。
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
	OfferExpired  OfferStatus = "expired"
)

// Offer は空きシフトを特定の社員へ打診するレコードです。
type Offer struct {
	ID               string
	ShiftID          string
	AgencyEmployeeID string
	EmployeeID       string
	Status           OfferStatus
	ExpiresAt        time.Time
	OfferedBy        string
	RespondedAt      *time.Time
	CreatedAt        time.Time
}

// Expired は now 時点で期限切れかを返します。
func (o *Offer) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
