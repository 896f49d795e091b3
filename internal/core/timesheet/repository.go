package timesheet

import (
	"context"

	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	"github.com/ogurasousui/staffing-engine/internal/core/shift"
)

// Repository はタイムシートの永続化抽象です。
type Repository interface {
	// Create は shift_id の一意制約違反を ErrAlreadyClockedIn として返します。
	Create(ctx context.Context, t *Timesheet) (*Timesheet, error)
	Update(ctx context.Context, t *Timesheet) (*Timesheet, error)
	FindByID(ctx context.Context, id string) (*Timesheet, error)
	// LockByID はタイムシート行を FOR UPDATE で取得します。
	LockByID(ctx context.Context, id string) (*Timesheet, error)
	FindByShiftID(ctx context.Context, shiftID string) (*Timesheet, error)
}

// ShiftStore はタイムシートに連動してシフト状態を更新するポートです。
type ShiftStore interface {
	FindByID(ctx context.Context, id string) (*shift.Shift, error)
	LockByID(ctx context.Context, id string) (*shift.Shift, error)
	Update(ctx context.Context, s *shift.Shift) (*shift.Shift, error)
}

// AssignmentReader は承認イベントに載せる単価の参照ポートです。
type AssignmentReader interface {
	FindByID(ctx context.Context, id string) (*assignment.Assignment, error)
}
