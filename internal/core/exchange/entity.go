package exchange

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

// RequestStatus は募集の状態です。
type RequestStatus string

const (
	RequestDraft      RequestStatus = "draft"
	RequestPublished  RequestStatus = "published"
	RequestInProgress RequestStatus = "in_progress"
	RequestFilled     RequestStatus = "filled"
	RequestCancelled  RequestStatus = "cancelled"
	RequestCompleted  RequestStatus = "completed"
)

// TargetScope は募集の公開範囲です。
type TargetScope string

const (
	ScopeAll      TargetScope = "all"
	ScopeSpecific TargetScope = "specific"
)

// ShiftRequest は雇用主の人員募集です。
type ShiftRequest struct {
	ID              string
	EmployerID      string
	LocationID      string
	Role            string
	StartDate       time.Time
	EndDate         time.Time
	StartTime       usecase.TimeOfDay
	EndTime         usecase.TimeOfDay
	MaxHourlyRate   decimal.Decimal
	NumberOfWorkers int
	TargetScope     TargetScope
	TargetAgencyIDs []string
	Status          RequestStatus
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OpenForResponses は応募を受け付ける状態かを返します。
// 一件でも承諾されると in_progress か filled になり、以後の応募と承諾は締め切ります。
func (r *ShiftRequest) OpenForResponses() bool {
	return r.Status == RequestPublished
}

// Targets は派遣会社が募集の対象かを返します。
func (r *ShiftRequest) Targets(agencyID string) bool {
	if r.TargetScope == ScopeAll {
		return true
	}
	return slices.Contains(r.TargetAgencyIDs, agencyID)
}

// ResponseStatus は応募の状態です。
type ResponseStatus string

const (
	ResponsePending        ResponseStatus = "pending"
	ResponseAccepted       ResponseStatus = "accepted"
	ResponseRejected       ResponseStatus = "rejected"
	ResponseWithdrawn      ResponseStatus = "withdrawn"
	ResponseCounterOffered ResponseStatus = "counter_offered"
)

// Response は募集に対する派遣会社の提案です。
type Response struct {
	ID                 string
	ShiftRequestID     string
	AgencyID           string
	ProposedRate       decimal.Decimal
	ProposedEmployeeID string
	ProposedStartDate  time.Time
	ProposedEndDate    time.Time
	Notes              string
	Status             ResponseStatus
	RejectionReason    string
	ExpiresAt          *time.Time
	EmployerDecisionAt *time.Time
	SubmittedBy        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Active は (募集, 派遣会社) あたり 1 件に制限される有効な応募かを返します。
func (r *Response) Active() bool {
	return r.Status != ResponseWithdrawn && r.Status != ResponseRejected
}

// Decidable は採否・取下げの対象となる状態かを返します。
func (r *Response) Decidable() bool {
	return r.Status == ResponsePending || r.Status == ResponseCounterOffered
}

// Expired は now 時点で期限切れかを返します。
func (r *Response) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && !now.Before(*r.ExpiresAt)
}
