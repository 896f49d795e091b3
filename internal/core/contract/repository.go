package contract

import "context"

// Repository は契約エンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, c *Contract) (*Contract, error)
	Update(ctx context.Context, c *Contract) (*Contract, error)
	FindByID(ctx context.Context, id string) (*Contract, error)
	FindByParties(ctx context.Context, employerID, agencyID string) (*Contract, error)
	List(ctx context.Context, filter ListContractsFilter) ([]*Contract, string, error)
}

// ListContractsFilter は一覧取得時の検索条件を表します。
type ListContractsFilter struct {
	EmployerID string
	AgencyID   string
	Status     *Status
	Limit      int
	Offset     int
}
