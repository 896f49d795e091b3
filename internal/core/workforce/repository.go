package workforce

import "context"

// Repository は社員と雇用関係の永続化抽象です。
type Repository interface {
	CreateEmployee(ctx context.Context, e *Employee) (*Employee, error)
	FindEmployeeByID(ctx context.Context, id string) (*Employee, error)

	CreateAgencyEmployee(ctx context.Context, ae *AgencyEmployee) (*AgencyEmployee, error)
	UpdateAgencyEmployee(ctx context.Context, ae *AgencyEmployee) (*AgencyEmployee, error)
	FindAgencyEmployeeByID(ctx context.Context, id string) (*AgencyEmployee, error)
	// FindActiveAgencyEmployee は (agency, employee) の active な行を返します。無ければ ErrAgencyEmployeeNotFound です。
	FindActiveAgencyEmployee(ctx context.Context, agencyID, employeeID string) (*AgencyEmployee, error)
	ListAgencyEmployees(ctx context.Context, filter ListAgencyEmployeesFilter) ([]*AgencyEmployee, string, error)
}

// ListAgencyEmployeesFilter は一覧取得用フィルタです。
type ListAgencyEmployeesFilter struct {
	AgencyID string
	Status   *Status
	Limit    int
	Offset   int
}
