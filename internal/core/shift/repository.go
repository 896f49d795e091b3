package shift

import (
	"context"
	"time"

	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/workforce"
)

// ListFilter はシフト一覧の絞り込み条件です。期間は [From, To) の開始時刻で判定します。
type ListFilter struct {
	EmployeeID   string
	AssignmentID string
	AgencyID     string
	EmployerID   string
	From         time.Time
	To           time.Time
}

// Repository はシフト・テンプレート・オファーの永続化抽象です。
type Repository interface {
	// Create は社員未割当のシフトを登録します。
	Create(ctx context.Context, s *Shift) (*Shift, error)
	// InsertIfFree は同一社員の重複シフトが存在しない場合のみ挿入し、挿入 0 行なら ErrSlotTaken を返します。
	InsertIfFree(ctx context.Context, s *Shift) (*Shift, error)
	Update(ctx context.Context, s *Shift) (*Shift, error)
	FindByID(ctx context.Context, id string) (*Shift, error)
	// LockByID はシフト行を FOR UPDATE で取得します。
	LockByID(ctx context.Context, id string) (*Shift, error)
	List(ctx context.Context, filter ListFilter) ([]*Shift, error)
	// CountByTemplate はテンプレートから生成済みのシフト数を返します。
	CountByTemplate(ctx context.Context, templateID string) (int, error)

	CreateTemplate(ctx context.Context, t *Template) (*Template, error)
	FindTemplateByID(ctx context.Context, id string) (*Template, error)

	CreateOffer(ctx context.Context, o *Offer) (*Offer, error)
	UpdateOffer(ctx context.Context, o *Offer) (*Offer, error)
	FindOfferByID(ctx context.Context, id string) (*Offer, error)
}

// AssignmentReader はアサインメントの参照ポートです。
type AssignmentReader interface {
	FindByID(ctx context.Context, id string) (*assignment.Assignment, error)
}

// AgencyEmployeeReader は雇用関係の参照ポートです。
type AgencyEmployeeReader interface {
	FindAgencyEmployeeByID(ctx context.Context, id string) (*workforce.AgencyEmployee, error)
}

// ConflictChecker はシフト単位の重複判定ポートです。
type ConflictChecker interface {
	Check(ctx context.Context, in availability.CheckInput) (availability.Result, error)
}
