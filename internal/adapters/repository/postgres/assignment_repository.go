package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	pgdb "github.com/ogurasousui/staffing-engine/internal/platform/db/postgres"
)

// AssignmentRepository はアサインメントを永続化します。
type AssignmentRepository struct {
	pool pgdb.Queryer
}

// NewAssignmentRepository は AssignmentRepository を生成します。
func NewAssignmentRepository(pool pgdb.Queryer) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

const assignmentColumns = `id, contract_id, agency_employee_id, employee_id, agency_id, employer_id,
       shift_request_id, agency_response_id, location_id, role, start_date, end_date,
       daily_start, daily_end, agreed_rate, pay_rate, markup_amount, markup_percent,
       status, notes, created_by, created_at, updated_at`

// Create はアサインメントを登録します。
func (r *AssignmentRepository) Create(ctx context.Context, a *assignment.Assignment) (*assignment.Assignment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO assignments (contract_id, agency_employee_id, employee_id, agency_id, employer_id,
                                 shift_request_id, agency_response_id, location_id, role, start_date, end_date,
                                 daily_start, daily_end, agreed_rate, pay_rate, markup_amount, markup_percent,
                                 status, notes, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
        RETURNING `+assignmentColumns,
		a.ContractID, a.AgencyEmployeeID, a.EmployeeID, a.AgencyID, a.EmployerID,
		a.ShiftRequestID, a.AgencyResponseID, a.LocationID, a.Role, dateParam(a.StartDate), dateParam(a.EndDate),
		timeOfDayParam(a.DailyStart), timeOfDayParam(a.DailyEnd), a.AgreedRate, a.PayRate, a.MarkupAmount, a.MarkupPercent,
		string(a.Status), a.Notes, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)
	created, err := scanAssignment(row)
	if err != nil {
		return nil, translateAssignmentPgError(err)
	}
	return created, nil
}

// Update は期間・状態・備考を更新します。
func (r *AssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) (*assignment.Assignment, error) {
	if !validID(a.ID) {
		return nil, assignment.ErrAssignmentNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE assignments
           SET end_date = $1,
               status = $2,
               notes = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+assignmentColumns,
		dateParam(a.EndDate), string(a.Status), a.Notes, a.UpdatedAt, a.ID,
	)
	updated, err := scanAssignment(row)
	if err != nil {
		return nil, translateAssignmentPgError(err)
	}
	return updated, nil
}

// FindByID は ID でアサインメントを取得します。
func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*assignment.Assignment, error) {
	return r.findOne(ctx, `SELECT `+assignmentColumns+` FROM assignments WHERE id = $1`, id)
}

// LockByID は行ロック付きで取得します。
func (r *AssignmentRepository) LockByID(ctx context.Context, id string) (*assignment.Assignment, error) {
	return r.findOne(ctx, `SELECT `+assignmentColumns+` FROM assignments WHERE id = $1 FOR UPDATE`, id)
}

// FindByResponseID は採用された応募からアサインメントを取得します。
func (r *AssignmentRepository) FindByResponseID(ctx context.Context, responseID string) (*assignment.Assignment, error) {
	return r.findOne(ctx, `SELECT `+assignmentColumns+` FROM assignments WHERE agency_response_id = $1`, responseID)
}

func (r *AssignmentRepository) findOne(ctx context.Context, query, id string) (*assignment.Assignment, error) {
	if !validID(id) {
		return nil, assignment.ErrAssignmentNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanAssignment(exec.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateAssignmentPgError(err)
	}
	return found, nil
}

// List はフィルタに一致するアサインメントを開始日の新しい順に返します。
func (r *AssignmentRepository) List(ctx context.Context, filter assignment.ListFilter) ([]*assignment.Assignment, string, error) {
	var p placeholders
	for _, f := range []struct{ column, value string }{
		{"agency_id", filter.AgencyID},
		{"employer_id", filter.EmployerID},
		{"employee_id", filter.EmployeeID},
	} {
		if f.value == "" {
			continue
		}
		if !validID(f.value) {
			return nil, "", nil
		}
		p.add(f.column+" = ?", f.value)
	}
	if filter.Status != nil {
		p.add("status = ?", string(*filter.Status))
	}
	query := `SELECT ` + assignmentColumns + ` FROM assignments` + p.where() +
		` ORDER BY start_date DESC, id DESC LIMIT ` + p.next(filter.Limit+1) + ` OFFSET ` + p.next(filter.Offset)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, p.args...)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	items := make([]*assignment.Assignment, 0, filter.Limit+1)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, "", err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	items, token := paginate(items, filter.Limit, filter.Offset)
	return items, token, nil
}

// FindSource は応募と募集を結合した生成元を返します。
func (r *AssignmentRepository) FindSource(ctx context.Context, responseID string) (*assignment.Source, error) {
	if !validID(responseID) {
		return nil, assignment.ErrResponseNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT ar.id, ar.status, sr.id, sr.employer_id, ar.agency_id, ar.proposed_employee_id,
               sr.location_id, sr.role, ar.proposed_rate, ar.proposed_start_date, ar.proposed_end_date,
               sr.start_time, sr.end_time
          FROM agency_responses ar
          JOIN shift_requests sr ON sr.id = ar.shift_request_id
         WHERE ar.id = $1`, responseID)

	var (
		src            assignment.Source
		dailyStart     pgtype.Time
		dailyEnd       pgtype.Time
	)
	if err := row.Scan(
		&src.ResponseID, &src.ResponseStatus, &src.ShiftRequestID, &src.EmployerID, &src.AgencyID, &src.AgencyEmployeeID,
		&src.LocationID, &src.Role, &src.ProposedRate, &src.StartDate, &src.EndDate,
		&dailyStart, &dailyEnd,
	); err != nil {
		return nil, translateNoRows(err, assignment.ErrResponseNotFound)
	}
	src.StartDate = dateParam(src.StartDate)
	src.EndDate = dateParam(src.EndDate)
	src.DailyStart = timeOfDayFrom(dailyStart)
	src.DailyEnd = timeOfDayFrom(dailyEnd)
	return &src, nil
}

// CancelFutureShifts は after 以降に開始する未着手のシフトを取消します。
func (r *AssignmentRepository) CancelFutureShifts(ctx context.Context, assignmentID string, after time.Time) (int64, error) {
	if !validID(assignmentID) {
		return 0, assignment.ErrAssignmentNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE shifts
           SET status = 'cancelled',
               updated_at = $2
         WHERE assignment_id = $1
           AND start_time >= $2
           AND status IN ('open', 'offered', 'assigned')`, assignmentID, after.UTC())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanAssignment(row pgx.Row) (*assignment.Assignment, error) {
	var (
		a          assignment.Assignment
		dailyStart pgtype.Time
		dailyEnd   pgtype.Time
		status     string
	)
	if err := row.Scan(
		&a.ID, &a.ContractID, &a.AgencyEmployeeID, &a.EmployeeID, &a.AgencyID, &a.EmployerID,
		&a.ShiftRequestID, &a.AgencyResponseID, &a.LocationID, &a.Role, &a.StartDate, &a.EndDate,
		&dailyStart, &dailyEnd, &a.AgreedRate, &a.PayRate, &a.MarkupAmount, &a.MarkupPercent,
		&status, &a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.StartDate = dateParam(a.StartDate)
	a.EndDate = dateParam(a.EndDate)
	a.DailyStart = timeOfDayFrom(dailyStart)
	a.DailyEnd = timeOfDayFrom(dailyEnd)
	a.Status = assignment.Status(status)
	return &a, nil
}

func translateAssignmentPgError(err error) error {
	if err == nil {
		return nil
	}
	code, constraint, ok := pgError(err)
	if !ok {
		return translateNoRows(err, assignment.ErrAssignmentNotFound)
	}
	switch code {
	case uniqueViolationCode:
		if constraint == "assignments_agency_response_id_key" {
			return assignment.ErrResponseAlreadyLinked
		}
	case foreignKeyViolationCode:
		return assignment.ErrResponseNotFound
	case checkViolationCode:
		switch constraint {
		case "assignments_rates_check":
			return assignment.ErrAgreedBelowPay
		case "assignments_dates_check":
			return assignment.ErrInvalidEndDate
		default:
			return assignment.ErrInvalidStatus
		}
	}
	return err
}
