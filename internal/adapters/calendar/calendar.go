// Package calendar は社員のシフトを iCalendar 形式で書き出します。
package calendar

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/shift"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
)

const productID = "-//staffing-engine//shift calendar//EN"

// ShiftLister は期間内のシフト一覧を返します。権限確認は呼び出し先で行われます。
type ShiftLister interface {
	ListShifts(ctx context.Context, in shift.ListInput) ([]*shift.Shift, error)
}

// Exporter は ExportShiftCalendar を提供します。
type Exporter struct {
	shifts ShiftLister
	clock  usecase.Clock
}

// NewExporter は Exporter を生成します。
func NewExporter(shifts ShiftLister, clock usecase.Clock) *Exporter {
	if clock == nil {
		clock = usecase.RealClock()
	}
	return &Exporter{shifts: shifts, clock: clock}
}

// ExportInput は書き出し対象の社員と期間 [From, To) です。
type ExportInput struct {
	Actor      actor.Actor
	EmployeeID string
	From       time.Time
	To         time.Time
}

// Export は期間内のシフトを VCALENDAR 文字列にします。
func (e *Exporter) Export(ctx context.Context, in ExportInput) (string, error) {
	shifts, err := e.shifts.ListShifts(ctx, shift.ListInput{
		Actor:      in.Actor,
		EmployeeID: in.EmployeeID,
		From:       in.From,
		To:         in.To,
	})
	if err != nil {
		return "", err
	}
	return Render(in.EmployeeID, shifts, e.clock.Now()), nil
}

// Render はシフトを 1 件 1 VEVENT として並べます。取消済みと欠勤は CANCELLED です。
func Render(employeeID string, shifts []*shift.Shift, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName("Shifts " + employeeID)
	cal.SetXWRTimezone("UTC")

	for _, s := range shifts {
		ev := cal.AddEvent(s.ID + "@staffing-engine")
		ev.SetDtStampTime(now)
		ev.SetCreatedTime(s.CreatedAt)
		ev.SetModifiedAt(s.UpdatedAt)
		ev.SetStartAt(s.StartTime)
		ev.SetEndAt(s.EndTime)
		ev.SetSummary(fmt.Sprintf("Shift %s", s.Date.Format(usecase.DateLayout)))
		ev.SetDescription(fmt.Sprintf("assignment=%s status=%s hourly_rate=%s", s.AssignmentID, s.Status, s.HourlyRate.StringFixed(2)))
		ev.SetStatus(eventStatus(s.Status))
	}
	return cal.Serialize()
}

func eventStatus(s shift.Status) ics.ObjectStatus {
	switch s {
	case shift.StatusCancelled, shift.StatusNoShow:
		return ics.ObjectStatusCancelled
	case shift.StatusOpen, shift.StatusOffered:
		return ics.ObjectStatusTentative
	default:
		return ics.ObjectStatusConfirmed
	}
}
