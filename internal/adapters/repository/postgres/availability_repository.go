package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	pgdb "github.com/ogurasousui/staffing-engine/internal/platform/db/postgres"
)

// AvailabilityRepository は重複判定の読み取りと稼働可否・休暇の永続化を担います。
type AvailabilityRepository struct {
	pool pgdb.Queryer
}

// NewAvailabilityRepository は AvailabilityRepository を生成します。
func NewAvailabilityRepository(pool pgdb.Queryer) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

// ListShiftSlots は社員がいずれかの派遣会社経由で持つシフトのうち [from, to) と交差するものを返します。
func (r *AvailabilityRepository) ListShiftSlots(ctx context.Context, employeeID string, from, to time.Time) ([]availability.ShiftSlot, error) {
	if !validID(employeeID) {
		return nil, nil
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT s.id, ae.agency_id, s.status, s.start_time, s.end_time
          FROM shifts s
          JOIN agency_employees ae ON ae.id = s.agency_employee_id
         WHERE ae.employee_id = $1
           AND s.start_time < $3
           AND s.end_time > $2
           AND s.status NOT IN ('cancelled', 'no_show')
         ORDER BY s.start_time`, employeeID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (availability.ShiftSlot, error) {
		var (
			slot   availability.ShiftSlot
			status string
		)
		err := row.Scan(&slot.ShiftID, &slot.AgencyID, &status, &slot.StartTime, &slot.EndTime)
		slot.Status = availability.ShiftStatus(status)
		return slot, err
	})
}

// ListAssignmentSlots は日付範囲と交差するアサインメントを全派遣会社から返します。
func (r *AvailabilityRepository) ListAssignmentSlots(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]availability.AssignmentSlot, error) {
	if !validID(employeeID) {
		return nil, nil
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, agency_id, status, start_date, end_date
          FROM assignments
         WHERE employee_id = $1
           AND start_date <= $3
           AND end_date >= $2
         ORDER BY start_date`, employeeID, dateParam(startDate), dateParam(endDate))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (availability.AssignmentSlot, error) {
		var slot availability.AssignmentSlot
		err := row.Scan(&slot.AssignmentID, &slot.AgencyID, &slot.Status, &slot.StartDate, &slot.EndDate)
		slot.StartDate = dateParam(slot.StartDate)
		slot.EndDate = dateParam(slot.EndDate)
		return slot, err
	})
}

const timeOffColumns = `id, employee_id, start_date, end_date, reason, status, decided_by, decided_at, created_at, updated_at`

// ListApprovedTimeOff は日付範囲と交差する承認済み休暇を返します。
func (r *AvailabilityRepository) ListApprovedTimeOff(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]*availability.TimeOffRequest, error) {
	if !validID(employeeID) {
		return nil, nil
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+timeOffColumns+`
          FROM time_off_requests
         WHERE employee_id = $1
           AND status = 'approved'
           AND start_date <= $3
           AND end_date >= $2
         ORDER BY start_date`, employeeID, dateParam(startDate), dateParam(endDate))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*availability.TimeOffRequest, error) {
		return scanTimeOff(row)
	})
}

// ListBlocks は社員の週次ブロックを返します。
func (r *AvailabilityRepository) ListBlocks(ctx context.Context, employeeID string) ([]*availability.Block, error) {
	if !validID(employeeID) {
		return nil, nil
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, employee_id, day_of_week, start_time, end_time, block_type
          FROM employee_availability
         WHERE employee_id = $1
         ORDER BY day_of_week, start_time`, employeeID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*availability.Block, error) {
		return scanBlock(row)
	})
}

// ReplaceBlocks は社員の週次ブロックを差し替えます。呼び出し側のトランザクション内で実行されます。
func (r *AvailabilityRepository) ReplaceBlocks(ctx context.Context, employeeID string, blocks []*availability.Block) ([]*availability.Block, error) {
	if !validID(employeeID) {
		return nil, availability.ErrInvalidEmployeeID
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `DELETE FROM employee_availability WHERE employee_id = $1`, employeeID); err != nil {
		return nil, err
	}

	saved := make([]*availability.Block, 0, len(blocks))
	for _, b := range blocks {
		row := exec.QueryRow(ctx, `
            INSERT INTO employee_availability (employee_id, day_of_week, start_time, end_time, block_type)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id, employee_id, day_of_week, start_time, end_time, block_type`,
			employeeID, int16(b.DayOfWeek), timeOfDayParam(b.StartTime), timeOfDayParam(b.EndTime), string(b.Type),
		)
		block, err := scanBlock(row)
		if err != nil {
			return nil, translateAvailabilityPgError(err)
		}
		saved = append(saved, block)
	}
	return saved, nil
}

// CreateTimeOff は休暇申請を登録します。
func (r *AvailabilityRepository) CreateTimeOff(ctx context.Context, req *availability.TimeOffRequest) (*availability.TimeOffRequest, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO time_off_requests (employee_id, start_date, end_date, reason, status, decided_by, decided_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING `+timeOffColumns,
		req.EmployeeID, dateParam(req.StartDate), dateParam(req.EndDate), req.Reason, string(req.Status),
		req.DecidedBy, nullableTime(req.DecidedAt), req.CreatedAt, req.UpdatedAt,
	)
	created, err := scanTimeOff(row)
	if err != nil {
		return nil, translateAvailabilityPgError(err)
	}
	return created, nil
}

// UpdateTimeOff は休暇申請の判断結果を保存します。
func (r *AvailabilityRepository) UpdateTimeOff(ctx context.Context, req *availability.TimeOffRequest) (*availability.TimeOffRequest, error) {
	if !validID(req.ID) {
		return nil, availability.ErrTimeOffNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE time_off_requests
           SET status = $1,
               decided_by = $2,
               decided_at = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+timeOffColumns,
		string(req.Status), req.DecidedBy, nullableTime(req.DecidedAt), req.UpdatedAt, req.ID,
	)
	updated, err := scanTimeOff(row)
	if err != nil {
		return nil, translateAvailabilityPgError(err)
	}
	return updated, nil
}

// FindTimeOffByID は休暇申請を取得します。
func (r *AvailabilityRepository) FindTimeOffByID(ctx context.Context, id string) (*availability.TimeOffRequest, error) {
	if !validID(id) {
		return nil, availability.ErrTimeOffNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanTimeOff(exec.QueryRow(ctx, `SELECT `+timeOffColumns+` FROM time_off_requests WHERE id = $1`, id))
	if err != nil {
		return nil, translateAvailabilityPgError(err)
	}
	return found, nil
}

func scanTimeOff(row pgx.Row) (*availability.TimeOffRequest, error) {
	var (
		req       availability.TimeOffRequest
		status    string
		decidedAt sql.NullTime
	)
	if err := row.Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason, &status,
		&req.DecidedBy, &decidedAt, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return nil, err
	}
	req.StartDate = dateParam(req.StartDate)
	req.EndDate = dateParam(req.EndDate)
	req.Status = availability.TimeOffStatus(status)
	req.DecidedAt = timePtr(decidedAt)
	return &req, nil
}

func scanBlock(row pgx.Row) (*availability.Block, error) {
	var (
		b         availability.Block
		dayOfWeek int16
		start     pgtype.Time
		end       pgtype.Time
		blockType string
	)
	if err := row.Scan(&b.ID, &b.EmployeeID, &dayOfWeek, &start, &end, &blockType); err != nil {
		return nil, err
	}
	b.DayOfWeek = time.Weekday(dayOfWeek)
	b.StartTime = timeOfDayFrom(start)
	b.EndTime = timeOfDayFrom(end)
	b.Type = availability.BlockType(blockType)
	return &b, nil
}

func translateAvailabilityPgError(err error) error {
	if err == nil {
		return nil
	}
	code, constraint, ok := pgError(err)
	if !ok {
		return translateNoRows(err, availability.ErrTimeOffNotFound)
	}
	switch code {
	case foreignKeyViolationCode:
		return availability.ErrInvalidEmployeeID
	case checkViolationCode:
		if constraint == "time_off_requests_dates_check" {
			return availability.ErrInvalidDateRange
		}
		return availability.ErrInvalidBlock
	}
	return err
}
