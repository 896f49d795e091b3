// Package event はユースケースが返却するドメインイベントを定義します。
// コアはイベントを配信せず、呼び出し側（アダプタ層）が Dispatcher へ渡します。
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Name はイベント名です。
type Name string

const (
	ShiftRequestPublished  Name = "shift_request.published"
	ShiftRequestCancelled  Name = "shift_request.cancelled"
	ResponseSubmitted      Name = "agency_response.submitted"
	ResponseAccepted       Name = "agency_response.accepted"
	ResponseRejected       Name = "agency_response.rejected"
	ResponseWithdrawn      Name = "agency_response.withdrawn"
	AssignmentCreated      Name = "assignment.created"
	AssignmentStatusChange Name = "assignment.status_changed"
	AssignmentExtended     Name = "assignment.extended"
	ShiftCreated           Name = "shift.created"
	ShiftOffered           Name = "shift.offered"
	ShiftOfferAccepted     Name = "shift.offer_accepted"
	ShiftOfferRejected     Name = "shift.offer_rejected"
	ShiftStatusChanged     Name = "shift.status_changed"
	ShiftCompleted         Name = "shift.completed"
	TimesheetClockedIn     Name = "timesheet.clocked_in"
	TimesheetClockedOut    Name = "timesheet.clocked_out"
	TimesheetAgencyOK      Name = "timesheet.agency_approved"
	TimesheetEmployerOK    Name = "timesheet.employer_approved"
	TimesheetRejected      Name = "timesheet.rejected"
	TimesheetDisputed      Name = "timesheet.disputed"
	TimesheetResolved      Name = "timesheet.dispute_resolved"
)

// Event はドメインイベントです。
type Event struct {
	ID            string
	Name          Name
	AggregateType string
	AggregateID   string
	ActorID       string
	OccurredAt    time.Time
	Payload       map[string]string
}

// New はイベントを生成します。
func New(name Name, aggregateType, aggregateID, actorID string, at time.Time, payload map[string]string) Event {
	if payload == nil {
		payload = map[string]string{}
	}
	return Event{
		ID:            uuid.NewString(),
		Name:          name,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		ActorID:       actorID,
		OccurredAt:    at,
		Payload:       payload,
	}
}

// Dispatcher はイベントの配信先です。配信結果はコアへ返されません。
type Dispatcher interface {
	Dispatch(ctx context.Context, events []Event)
}

// Recorder はユースケース内でイベントを蓄積します。
type Recorder struct {
	events []Event
}

// Record はイベントを追加します。
func (r *Recorder) Record(e Event) {
	r.events = append(r.events, e)
}

// Events は蓄積されたイベントを返します。
func (r *Recorder) Events() []Event {
	if len(r.events) == 0 {
		return nil
	}
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset はトランザクション再試行前などに蓄積をクリアします。
func (r *Recorder) Reset() {
	r.events = r.events[:0]
}
