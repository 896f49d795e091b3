package availability

import (
	"time"

	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

// TimeOffStatus は休暇申請の状態です。
type TimeOffStatus string

const (
	TimeOffPending   TimeOffStatus = "pending"
	TimeOffApproved  TimeOffStatus = "approved"
	TimeOffRejected  TimeOffStatus = "rejected"
	TimeOffCancelled TimeOffStatus = "cancelled"
)

// TimeOffRequest は社員単位（派遣会社をまたぐ）の休暇申請です。
type TimeOffRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     TimeOffStatus
	DecidedBy  string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BlockType は曜日ごとの時間帯の種類です。
type BlockType string

const (
	BlockAvailable   BlockType = "available"
	BlockUnavailable BlockType = "unavailable"
	BlockPreferred   BlockType = "preferred"
)

// Block は繰り返しの稼働可否時間帯です。
type Block struct {
	ID         string
	EmployeeID string
	DayOfWeek  time.Weekday
	StartTime  usecase.TimeOfDay
	EndTime    usecase.TimeOfDay
	Type       BlockType
}

// ShiftStatus は重複判定で参照するシフト状態です。
type ShiftStatus string

const (
	shiftCancelled ShiftStatus = "cancelled"
	shiftNoShow    ShiftStatus = "no_show"
)

// ShiftSlot は任意の派遣会社経由で社員に紐づくシフトの時間枠です。
type ShiftSlot struct {
	ShiftID   string
	AgencyID  string
	Status    ShiftStatus
	StartTime time.Time
	EndTime   time.Time
}

// Blocking は重複判定の対象となる状態かを返します。
func (s ShiftSlot) Blocking() bool {
	return s.Status != shiftCancelled && s.Status != shiftNoShow
}

// AssignmentSlot は社員に紐づくアサインメントの期間です。
type AssignmentSlot struct {
	AssignmentID string
	AgencyID     string
	Status       string
	StartDate    time.Time
	EndDate      time.Time
}

// Blocking は期間重複の対象となる状態（pending/active/suspended）かを返します。
func (a AssignmentSlot) Blocking() bool {
	switch a.Status {
	case "pending", "active", "suspended":
		return true
	default:
		return false
	}
}
