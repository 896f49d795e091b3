package assignment

import (
	"context"
	"time"

	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/contract"
	"github.com/ogurasousui/staffing-engine/internal/core/workforce"
)

// Repository はアサインメント永続化の抽象です。
type Repository interface {
	// Create は agency_response_id の一意制約違反を ErrResponseAlreadyLinked として返します。
	Create(ctx context.Context, a *Assignment) (*Assignment, error)
	Update(ctx context.Context, a *Assignment) (*Assignment, error)
	FindByID(ctx context.Context, id string) (*Assignment, error)
	// LockByID は行ロック（FOR UPDATE）付きで取得します。
	LockByID(ctx context.Context, id string) (*Assignment, error)
	FindByResponseID(ctx context.Context, responseID string) (*Assignment, error)
	List(ctx context.Context, filter ListFilter) ([]*Assignment, string, error)

	// FindSource は応募と募集を結合した生成元情報を返します。
	FindSource(ctx context.Context, responseID string) (*Source, error)
	// CancelFutureShifts は after 以降に開始する未終了のシフトを取消し、件数を返します。
	CancelFutureShifts(ctx context.Context, assignmentID string, after time.Time) (int64, error)
}

// ListFilter は一覧取得用フィルタです。空文字の項目は絞り込みません。
type ListFilter struct {
	AgencyID   string
	EmployerID string
	EmployeeID string
	Status     *Status
	Limit      int
	Offset     int
}

// ContractReader は契約の参照ポートです。
type ContractReader interface {
	FindByParties(ctx context.Context, employerID, agencyID string) (*contract.Contract, error)
}

// AgencyEmployeeReader は雇用関係の参照ポートです。
type AgencyEmployeeReader interface {
	FindAgencyEmployeeByID(ctx context.Context, id string) (*workforce.AgencyEmployee, error)
}

// OverlapChecker はアサインメント期間の重複判定ポートです。
type OverlapChecker interface {
	CheckAssignment(ctx context.Context, in availability.AssignmentInput) (availability.Result, error)
}
