package exchange

import (
	"context"

	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/workforce"
)

// Repository は募集と応募の永続化抽象です。
type Repository interface {
	CreateRequest(ctx context.Context, r *ShiftRequest) (*ShiftRequest, error)
	UpdateRequest(ctx context.Context, r *ShiftRequest) (*ShiftRequest, error)
	FindRequestByID(ctx context.Context, id string) (*ShiftRequest, error)
	// LockRequest は募集行を FOR UPDATE で取得します。
	LockRequest(ctx context.Context, id string) (*ShiftRequest, error)

	// CreateResponse は有効な応募の部分一意インデックス違反を ErrDuplicateResponse として返します。
	CreateResponse(ctx context.Context, r *Response) (*Response, error)
	UpdateResponse(ctx context.Context, r *Response) (*Response, error)
	FindResponseByID(ctx context.Context, id string) (*Response, error)
	FindActiveResponse(ctx context.Context, shiftRequestID, agencyID string) (*Response, error)
	// LockResponses は募集に紐づく全応募を FOR UPDATE で取得します。
	LockResponses(ctx context.Context, shiftRequestID string) ([]*Response, error)
	ListResponses(ctx context.Context, shiftRequestID string) ([]*Response, error)
}

// AgencyEmployeeReader は雇用関係の参照ポートです。
type AgencyEmployeeReader interface {
	FindAgencyEmployeeByID(ctx context.Context, id string) (*workforce.AgencyEmployee, error)
}

// ConflictChecker は応募社員の予定重複判定ポートです。
type ConflictChecker interface {
	CheckRange(ctx context.Context, in availability.RangeInput) (availability.Result, error)
	CheckAssignment(ctx context.Context, in availability.AssignmentInput) (availability.Result, error)
}

// AssignmentCreator は採用済み応募からアサインメントを生成するポートです。
type AssignmentCreator interface {
	CreateFromResponse(ctx context.Context, in assignment.CreateFromResponseInput) (*assignment.Result, error)
}
