package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/staffing-engine/internal/core/contract"
	pgdb "github.com/ogurasousui/staffing-engine/internal/platform/db/postgres"
)

// ContractRepository は雇用主と派遣会社の契約を永続化します。
type ContractRepository struct {
	pool pgdb.Queryer
}

// NewContractRepository は ContractRepository を生成します。
func NewContractRepository(pool pgdb.Queryer) *ContractRepository {
	return &ContractRepository{pool: pool}
}

const contractColumns = `id, employer_id, agency_id, status, start_date, end_date, created_at, updated_at`

// Create は契約を登録します。
func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) (*contract.Contract, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employer_agency_contracts (employer_id, agency_id, status, start_date, end_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+contractColumns,
		c.EmployerID, c.AgencyID, string(c.Status), dateParam(c.StartDate), nullableDate(c.EndDate), c.CreatedAt, c.UpdatedAt,
	)
	created, err := scanContract(row)
	if err != nil {
		return nil, translateContractPgError(err)
	}
	return created, nil
}

// Update は状態と期間を更新します。
func (r *ContractRepository) Update(ctx context.Context, c *contract.Contract) (*contract.Contract, error) {
	if !validID(c.ID) {
		return nil, contract.ErrContractNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE employer_agency_contracts
           SET status = $1,
               start_date = $2,
               end_date = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+contractColumns,
		string(c.Status), dateParam(c.StartDate), nullableDate(c.EndDate), c.UpdatedAt, c.ID,
	)
	updated, err := scanContract(row)
	if err != nil {
		return nil, translateContractPgError(err)
	}
	return updated, nil
}

// FindByID は ID で契約を取得します。
func (r *ContractRepository) FindByID(ctx context.Context, id string) (*contract.Contract, error) {
	if !validID(id) {
		return nil, contract.ErrContractNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT `+contractColumns+` FROM employer_agency_contracts WHERE id = $1`, id)
	found, err := scanContract(row)
	if err != nil {
		return nil, translateContractPgError(err)
	}
	return found, nil
}

// FindByParties は当事者の組で契約を取得します。
func (r *ContractRepository) FindByParties(ctx context.Context, employerID, agencyID string) (*contract.Contract, error) {
	if !validIDs(employerID, agencyID) {
		return nil, contract.ErrContractNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+contractColumns+`
          FROM employer_agency_contracts
         WHERE employer_id = $1 AND agency_id = $2`, employerID, agencyID)
	found, err := scanContract(row)
	if err != nil {
		return nil, translateContractPgError(err)
	}
	return found, nil
}

// List は契約を新しい順に返します。
func (r *ContractRepository) List(ctx context.Context, filter contract.ListContractsFilter) ([]*contract.Contract, string, error) {
	var p placeholders
	if filter.EmployerID != "" {
		if !validID(filter.EmployerID) {
			return nil, "", nil
		}
		p.add("employer_id = ?", filter.EmployerID)
	}
	if filter.AgencyID != "" {
		if !validID(filter.AgencyID) {
			return nil, "", nil
		}
		p.add("agency_id = ?", filter.AgencyID)
	}
	if filter.Status != nil {
		p.add("status = ?", string(*filter.Status))
	}
	query := `SELECT ` + contractColumns + ` FROM employer_agency_contracts` + p.where() +
		` ORDER BY created_at DESC, id DESC LIMIT ` + p.next(filter.Limit+1) + ` OFFSET ` + p.next(filter.Offset)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, p.args...)
	if err != nil {
		return nil, "", translateContractPgError(err)
	}
	defer rows.Close()

	items := make([]*contract.Contract, 0, filter.Limit+1)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, "", translateContractPgError(err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translateContractPgError(err)
	}

	items, token := paginate(items, filter.Limit, filter.Offset)
	return items, token, nil
}

func scanContract(row pgx.Row) (*contract.Contract, error) {
	var (
		c       contract.Contract
		status  string
		endDate sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.EmployerID, &c.AgencyID, &status, &c.StartDate, &endDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Status = contract.Status(status)
	c.StartDate = dateParam(c.StartDate)
	c.EndDate = datePtr(endDate)
	return &c, nil
}

func translateContractPgError(err error) error {
	if err == nil {
		return nil
	}
	code, constraint, ok := pgError(err)
	if !ok {
		return translateNoRows(err, contract.ErrContractNotFound)
	}
	switch code {
	case uniqueViolationCode:
		return contract.ErrContractAlreadyExists
	case checkViolationCode:
		if constraint == "employer_agency_contracts_dates_check" {
			return contract.ErrInvalidDateRange
		}
		return contract.ErrInvalidStatus
	}
	return err
}
