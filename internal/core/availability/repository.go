package availability

import (
	"context"
	"time"
)

// Repository は重複判定と稼働可否ストアの永続化抽象です。
type Repository interface {
	// ListShiftSlots は社員に任意の派遣会社経由で紐づくシフトのうち、[from, to) と交差しうるものを返します。
	ListShiftSlots(ctx context.Context, employeeID string, from, to time.Time) ([]ShiftSlot, error)
	// ListAssignmentSlots は社員に紐づくアサインメントのうち日付範囲と交差しうるものを返します。
	ListAssignmentSlots(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]AssignmentSlot, error)
	// ListApprovedTimeOff は日付範囲と交差する承認済み休暇を返します。
	ListApprovedTimeOff(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]*TimeOffRequest, error)
	ListBlocks(ctx context.Context, employeeID string) ([]*Block, error)
	ReplaceBlocks(ctx context.Context, employeeID string, blocks []*Block) ([]*Block, error)

	CreateTimeOff(ctx context.Context, req *TimeOffRequest) (*TimeOffRequest, error)
	UpdateTimeOff(ctx context.Context, req *TimeOffRequest) (*TimeOffRequest, error)
	FindTimeOffByID(ctx context.Context, id string) (*TimeOffRequest, error)
}
