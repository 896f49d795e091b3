package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ogurasousui/staffing-engine/internal/core/exchange"
	pgdb "github.com/ogurasousui/staffing-engine/internal/platform/db/postgres"
)

// ExchangeRepository は募集と派遣会社からの応募を永続化します。
type ExchangeRepository struct {
	pool pgdb.Queryer
}

// NewExchangeRepository は ExchangeRepository を生成します。
func NewExchangeRepository(pool pgdb.Queryer) *ExchangeRepository {
	return &ExchangeRepository{pool: pool}
}

const shiftRequestColumns = `id, employer_id, location_id, role, start_date, end_date, start_time, end_time,
       max_hourly_rate, number_of_workers, target_scope, target_agency_ids, status, created_by, created_at, updated_at`

// CreateRequest は募集を登録します。
func (r *ExchangeRepository) CreateRequest(ctx context.Context, req *exchange.ShiftRequest) (*exchange.ShiftRequest, error) {
	targets := req.TargetAgencyIDs
	if targets == nil {
		targets = []string{}
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO shift_requests (employer_id, location_id, role, start_date, end_date, start_time, end_time,
                                    max_hourly_rate, number_of_workers, target_scope, target_agency_ids, status,
                                    created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING `+shiftRequestColumns,
		req.EmployerID, req.LocationID, req.Role, dateParam(req.StartDate), dateParam(req.EndDate),
		timeOfDayParam(req.StartTime), timeOfDayParam(req.EndTime), req.MaxHourlyRate, req.NumberOfWorkers,
		string(req.TargetScope), targets, string(req.Status), req.CreatedBy, req.CreatedAt, req.UpdatedAt,
	)
	created, err := scanShiftRequest(row)
	if err != nil {
		return nil, translateExchangePgError(err, exchange.ErrShiftRequestNotFound)
	}
	return created, nil
}

// UpdateRequest は募集の状態を更新します。
func (r *ExchangeRepository) UpdateRequest(ctx context.Context, req *exchange.ShiftRequest) (*exchange.ShiftRequest, error) {
	if !validID(req.ID) {
		return nil, exchange.ErrShiftRequestNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE shift_requests
           SET status = $1,
               updated_at = $2
         WHERE id = $3
        RETURNING `+shiftRequestColumns,
		string(req.Status), req.UpdatedAt, req.ID,
	)
	updated, err := scanShiftRequest(row)
	if err != nil {
		return nil, translateExchangePgError(err, exchange.ErrShiftRequestNotFound)
	}
	return updated, nil
}

// FindRequestByID は募集を取得します。
func (r *ExchangeRepository) FindRequestByID(ctx context.Context, id string) (*exchange.ShiftRequest, error) {
	return r.findRequest(ctx, `SELECT `+shiftRequestColumns+` FROM shift_requests WHERE id = $1`, id)
}

// LockRequest は募集行を FOR UPDATE で取得します。
func (r *ExchangeRepository) LockRequest(ctx context.Context, id string) (*exchange.ShiftRequest, error) {
	return r.findRequest(ctx, `SELECT `+shiftRequestColumns+` FROM shift_requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *ExchangeRepository) findRequest(ctx context.Context, query, id string) (*exchange.ShiftRequest, error) {
	if !validID(id) {
		return nil, exchange.ErrShiftRequestNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanShiftRequest(exec.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateExchangePgError(err, exchange.ErrShiftRequestNotFound)
	}
	return found, nil
}

const responseColumns = `id, shift_request_id, agency_id, proposed_rate, proposed_employee_id, proposed_start_date,
       proposed_end_date, notes, status, rejection_reason, expires_at, employer_decision_at, submitted_by,
       created_at, updated_at`

// CreateResponse は応募を登録します。有効な応募の重複は ErrDuplicateResponse です。
func (r *ExchangeRepository) CreateResponse(ctx context.Context, resp *exchange.Response) (*exchange.Response, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO agency_responses (shift_request_id, agency_id, proposed_rate, proposed_employee_id,
                                      proposed_start_date, proposed_end_date, notes, status, rejection_reason,
                                      expires_at, employer_decision_at, submitted_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING `+responseColumns,
		resp.ShiftRequestID, resp.AgencyID, resp.ProposedRate, resp.ProposedEmployeeID,
		dateParam(resp.ProposedStartDate), dateParam(resp.ProposedEndDate), resp.Notes, string(resp.Status),
		resp.RejectionReason, nullableTime(resp.ExpiresAt), nullableTime(resp.EmployerDecisionAt), resp.SubmittedBy,
		resp.CreatedAt, resp.UpdatedAt,
	)
	created, err := scanResponse(row)
	if err != nil {
		return nil, translateExchangePgError(err, exchange.ErrResponseNotFound)
	}
	return created, nil
}

// UpdateResponse は応募の状態と判断結果を更新します。
func (r *ExchangeRepository) UpdateResponse(ctx context.Context, resp *exchange.Response) (*exchange.Response, error) {
	if !validID(resp.ID) {
		return nil, exchange.ErrResponseNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE agency_responses
           SET status = $1,
               rejection_reason = $2,
               employer_decision_at = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+responseColumns,
		string(resp.Status), resp.RejectionReason, nullableTime(resp.EmployerDecisionAt), resp.UpdatedAt, resp.ID,
	)
	updated, err := scanResponse(row)
	if err != nil {
		return nil, translateExchangePgError(err, exchange.ErrResponseNotFound)
	}
	return updated, nil
}

// FindResponseByID は応募を取得します。
func (r *ExchangeRepository) FindResponseByID(ctx context.Context, id string) (*exchange.Response, error) {
	if !validID(id) {
		return nil, exchange.ErrResponseNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanResponse(exec.QueryRow(ctx, `SELECT `+responseColumns+` FROM agency_responses WHERE id = $1`, id))
	if err != nil {
		return nil, translateExchangePgError(err, exchange.ErrResponseNotFound)
	}
	return found, nil
}

// FindActiveResponse は (募集, 派遣会社) の有効な応募を取得します。
func (r *ExchangeRepository) FindActiveResponse(ctx context.Context, shiftRequestID, agencyID string) (*exchange.Response, error) {
	if !validIDs(shiftRequestID, agencyID) {
		return nil, exchange.ErrResponseNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+responseColumns+`
          FROM agency_responses
         WHERE shift_request_id = $1
           AND agency_id = $2
           AND status NOT IN ('withdrawn', 'rejected')
         LIMIT 1`, shiftRequestID, agencyID)
	found, err := scanResponse(row)
	if err != nil {
		return nil, translateExchangePgError(err, exchange.ErrResponseNotFound)
	}
	return found, nil
}

// LockResponses は募集に紐づく全応募を FOR UPDATE で取得します。
func (r *ExchangeRepository) LockResponses(ctx context.Context, shiftRequestID string) ([]*exchange.Response, error) {
	return r.listResponses(ctx, `SELECT `+responseColumns+` FROM agency_responses WHERE shift_request_id = $1 ORDER BY created_at, id FOR UPDATE`, shiftRequestID)
}

// ListResponses は募集に紐づく全応募を提出順に返します。
func (r *ExchangeRepository) ListResponses(ctx context.Context, shiftRequestID string) ([]*exchange.Response, error) {
	return r.listResponses(ctx, `SELECT `+responseColumns+` FROM agency_responses WHERE shift_request_id = $1 ORDER BY created_at, id`, shiftRequestID)
}

func (r *ExchangeRepository) listResponses(ctx context.Context, query, shiftRequestID string) ([]*exchange.Response, error) {
	if !validID(shiftRequestID) {
		return nil, exchange.ErrShiftRequestNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, shiftRequestID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*exchange.Response, error) {
		return scanResponse(row)
	})
}

func scanShiftRequest(row pgx.Row) (*exchange.ShiftRequest, error) {
	var (
		req       exchange.ShiftRequest
		startTime pgtype.Time
		endTime   pgtype.Time
		scope     string
		status    string
	)
	if err := row.Scan(
		&req.ID, &req.EmployerID, &req.LocationID, &req.Role, &req.StartDate, &req.EndDate, &startTime, &endTime,
		&req.MaxHourlyRate, &req.NumberOfWorkers, &scope, &req.TargetAgencyIDs, &status, &req.CreatedBy,
		&req.CreatedAt, &req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	req.StartDate = dateParam(req.StartDate)
	req.EndDate = dateParam(req.EndDate)
	req.StartTime = timeOfDayFrom(startTime)
	req.EndTime = timeOfDayFrom(endTime)
	req.TargetScope = exchange.TargetScope(scope)
	req.Status = exchange.RequestStatus(status)
	return &req, nil
}

func scanResponse(row pgx.Row) (*exchange.Response, error) {
	var (
		resp       exchange.Response
		status     string
		expiresAt  sql.NullTime
		decisionAt sql.NullTime
	)
	if err := row.Scan(
		&resp.ID, &resp.ShiftRequestID, &resp.AgencyID, &resp.ProposedRate, &resp.ProposedEmployeeID,
		&resp.ProposedStartDate, &resp.ProposedEndDate, &resp.Notes, &status, &resp.RejectionReason,
		&expiresAt, &decisionAt, &resp.SubmittedBy, &resp.CreatedAt, &resp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	resp.ProposedStartDate = dateParam(resp.ProposedStartDate)
	resp.ProposedEndDate = dateParam(resp.ProposedEndDate)
	resp.Status = exchange.ResponseStatus(status)
	resp.ExpiresAt = timePtr(expiresAt)
	resp.EmployerDecisionAt = timePtr(decisionAt)
	return &resp, nil
}

func translateExchangePgError(err, notFound error) error {
	if err == nil {
		return nil
	}
	code, constraint, ok := pgError(err)
	if !ok {
		return translateNoRows(err, notFound)
	}
	switch code {
	case uniqueViolationCode:
		if constraint == "agency_responses_active_key" {
			return exchange.ErrDuplicateResponse
		}
	case foreignKeyViolationCode:
		switch constraint {
		case "agency_responses_proposed_employee_id_fkey":
			return exchange.ErrInvalidEmployee
		default:
			return exchange.ErrShiftRequestNotFound
		}
	case checkViolationCode:
		switch constraint {
		case "shift_requests_dates_check":
			return exchange.ErrInvalidDateRange
		case "shift_requests_number_of_workers_check":
			return exchange.ErrInvalidWorkers
		default:
			return exchange.ErrInvalidRate
		}
	}
	return err
}
