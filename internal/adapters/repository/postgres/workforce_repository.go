package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/staffing-engine/internal/core/workforce"
	pgdb "github.com/ogurasousui/staffing-engine/internal/platform/db/postgres"
)

// WorkforceRepository は社員と派遣会社との雇用関係を永続化します。
type WorkforceRepository struct {
	pool pgdb.Queryer
}

// NewWorkforceRepository は WorkforceRepository を生成します。
func NewWorkforceRepository(pool pgdb.Queryer) *WorkforceRepository {
	return &WorkforceRepository{pool: pool}
}

const employeeColumns = `id, first_name, last_name, email, status, created_at, updated_at`

// CreateEmployee は社員を登録します。
func (r *WorkforceRepository) CreateEmployee(ctx context.Context, e *workforce.Employee) (*workforce.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (first_name, last_name, email, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+employeeColumns,
		e.FirstName, e.LastName, e.Email, string(e.Status), e.CreatedAt, e.UpdatedAt,
	)
	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateWorkforcePgError(err, workforce.ErrEmployeeNotFound)
	}
	return created, nil
}

// FindEmployeeByID は ID で社員を取得します。
func (r *WorkforceRepository) FindEmployeeByID(ctx context.Context, id string) (*workforce.Employee, error) {
	if !validID(id) {
		return nil, workforce.ErrEmployeeNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateWorkforcePgError(err, workforce.ErrEmployeeNotFound)
	}
	return found, nil
}

const agencyEmployeeColumns = `id, agency_id, employee_id, pay_rate, employment_type, status, created_at, updated_at`

// CreateAgencyEmployee は雇用関係を登録します。
func (r *WorkforceRepository) CreateAgencyEmployee(ctx context.Context, ae *workforce.AgencyEmployee) (*workforce.AgencyEmployee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO agency_employees (agency_id, employee_id, pay_rate, employment_type, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+agencyEmployeeColumns,
		ae.AgencyID, ae.EmployeeID, ae.PayRate, string(ae.EmploymentType), string(ae.Status), ae.CreatedAt, ae.UpdatedAt,
	)
	created, err := scanAgencyEmployee(row)
	if err != nil {
		return nil, translateWorkforcePgError(err, workforce.ErrAgencyEmployeeNotFound)
	}
	return created, nil
}

// UpdateAgencyEmployee は単価・雇用形態・状態を更新します。
func (r *WorkforceRepository) UpdateAgencyEmployee(ctx context.Context, ae *workforce.AgencyEmployee) (*workforce.AgencyEmployee, error) {
	if !validID(ae.ID) {
		return nil, workforce.ErrAgencyEmployeeNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE agency_employees
           SET pay_rate = $1,
               employment_type = $2,
               status = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+agencyEmployeeColumns,
		ae.PayRate, string(ae.EmploymentType), string(ae.Status), ae.UpdatedAt, ae.ID,
	)
	updated, err := scanAgencyEmployee(row)
	if err != nil {
		return nil, translateWorkforcePgError(err, workforce.ErrAgencyEmployeeNotFound)
	}
	return updated, nil
}

// FindAgencyEmployeeByID は ID で雇用関係を取得します。
func (r *WorkforceRepository) FindAgencyEmployeeByID(ctx context.Context, id string) (*workforce.AgencyEmployee, error) {
	if !validID(id) {
		return nil, workforce.ErrAgencyEmployeeNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT `+agencyEmployeeColumns+` FROM agency_employees WHERE id = $1`, id)
	found, err := scanAgencyEmployee(row)
	if err != nil {
		return nil, translateWorkforcePgError(err, workforce.ErrAgencyEmployeeNotFound)
	}
	return found, nil
}

// FindActiveAgencyEmployee は (agency, employee) の active な行を取得します。
func (r *WorkforceRepository) FindActiveAgencyEmployee(ctx context.Context, agencyID, employeeID string) (*workforce.AgencyEmployee, error) {
	if !validIDs(agencyID, employeeID) {
		return nil, workforce.ErrAgencyEmployeeNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+agencyEmployeeColumns+`
          FROM agency_employees
         WHERE agency_id = $1 AND employee_id = $2 AND status = 'active'
         LIMIT 1`, agencyID, employeeID)
	found, err := scanAgencyEmployee(row)
	if err != nil {
		return nil, translateWorkforcePgError(err, workforce.ErrAgencyEmployeeNotFound)
	}
	return found, nil
}

// ListAgencyEmployees は派遣会社の雇用関係を新しい順に返します。
func (r *WorkforceRepository) ListAgencyEmployees(ctx context.Context, filter workforce.ListAgencyEmployeesFilter) ([]*workforce.AgencyEmployee, string, error) {
	if !validID(filter.AgencyID) {
		return nil, "", nil
	}

	var p placeholders
	p.add("agency_id = ?", filter.AgencyID)
	if filter.Status != nil {
		p.add("status = ?", string(*filter.Status))
	}
	query := `SELECT ` + agencyEmployeeColumns + ` FROM agency_employees` + p.where() +
		` ORDER BY created_at DESC, id DESC LIMIT ` + p.next(filter.Limit+1) + ` OFFSET ` + p.next(filter.Offset)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, p.args...)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	items := make([]*workforce.AgencyEmployee, 0, filter.Limit+1)
	for rows.Next() {
		ae, err := scanAgencyEmployee(rows)
		if err != nil {
			return nil, "", err
		}
		items = append(items, ae)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	items, token := paginate(items, filter.Limit, filter.Offset)
	return items, token, nil
}

func scanEmployee(row pgx.Row) (*workforce.Employee, error) {
	var (
		e      workforce.Employee
		status string
	)
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &status, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Status = workforce.EmployeeStatus(status)
	return &e, nil
}

func scanAgencyEmployee(row pgx.Row) (*workforce.AgencyEmployee, error) {
	var (
		ae             workforce.AgencyEmployee
		employmentType string
		status         string
	)
	if err := row.Scan(&ae.ID, &ae.AgencyID, &ae.EmployeeID, &ae.PayRate, &employmentType, &status, &ae.CreatedAt, &ae.UpdatedAt); err != nil {
		return nil, err
	}
	ae.EmploymentType = workforce.EmploymentType(employmentType)
	ae.Status = workforce.Status(status)
	return &ae, nil
}

func translateWorkforcePgError(err, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}

	code, constraint, ok := pgError(err)
	if !ok {
		return err
	}
	switch code {
	case uniqueViolationCode:
		switch constraint {
		case "employees_email_key":
			return workforce.ErrEmailAlreadyExists
		case "agency_employees_active_key":
			return workforce.ErrAlreadyEmployed
		}
	case foreignKeyViolationCode:
		return workforce.ErrEmployeeNotFound
	case checkViolationCode:
		switch constraint {
		case "agency_employees_pay_rate_check":
			return workforce.ErrInvalidPayRate
		case "agency_employees_employment_type_check":
			return workforce.ErrInvalidEmploymentType
		default:
			return workforce.ErrInvalidStatus
		}
	}
	return err
}
