package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/staffing-engine/internal/core/timesheet"
	pgdb "github.com/ogurasousui/staffing-engine/internal/platform/db/postgres"
)

// TimesheetRepository はタイムシートを永続化します。
type TimesheetRepository struct {
	pool pgdb.Queryer
}

// NewTimesheetRepository は TimesheetRepository を生成します。
func NewTimesheetRepository(pool pgdb.Queryer) *TimesheetRepository {
	return &TimesheetRepository{pool: pool}
}

const timesheetColumns = `id, shift_id, assignment_id, employee_id, clock_in, clock_out, break_minutes, hours_worked,
       status, agency_approved_by, agency_approved_at, employer_approved_by, employer_approved_at,
       rejection_reason, dispute_reason, created_at, updated_at`

// Create はタイムシートを登録します。シフトごとに 1 件で、重複は ErrAlreadyClockedIn です。
func (r *TimesheetRepository) Create(ctx context.Context, t *timesheet.Timesheet) (*timesheet.Timesheet, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO timesheets (shift_id, assignment_id, employee_id, clock_in, clock_out, break_minutes, hours_worked,
                                status, agency_approved_by, agency_approved_at, employer_approved_by, employer_approved_at,
                                rejection_reason, dispute_reason, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING `+timesheetColumns,
		t.ShiftID, t.AssignmentID, t.EmployeeID, nullableTime(t.ClockIn), nullableTime(t.ClockOut), t.BreakMinutes,
		t.HoursWorked, string(t.Status), t.AgencyApprovedBy, nullableTime(t.AgencyApprovedAt), t.EmployerApprovedBy,
		nullableTime(t.EmployerApprovedAt), t.RejectionReason, t.DisputeReason, t.CreatedAt, t.UpdatedAt,
	)
	created, err := scanTimesheet(row)
	if err != nil {
		return nil, translateTimesheetPgError(err)
	}
	return created, nil
}

// Update は打刻・承認・差戻しの内容を保存します。
func (r *TimesheetRepository) Update(ctx context.Context, t *timesheet.Timesheet) (*timesheet.Timesheet, error) {
	if !validID(t.ID) {
		return nil, timesheet.ErrTimesheetNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE timesheets
           SET clock_in = $1,
               clock_out = $2,
               break_minutes = $3,
               hours_worked = $4,
               status = $5,
               agency_approved_by = $6,
               agency_approved_at = $7,
               employer_approved_by = $8,
               employer_approved_at = $9,
               rejection_reason = $10,
               dispute_reason = $11,
               updated_at = $12
         WHERE id = $13
        RETURNING `+timesheetColumns,
		nullableTime(t.ClockIn), nullableTime(t.ClockOut), t.BreakMinutes, t.HoursWorked, string(t.Status),
		t.AgencyApprovedBy, nullableTime(t.AgencyApprovedAt), t.EmployerApprovedBy, nullableTime(t.EmployerApprovedAt),
		t.RejectionReason, t.DisputeReason, t.UpdatedAt, t.ID,
	)
	updated, err := scanTimesheet(row)
	if err != nil {
		return nil, translateTimesheetPgError(err)
	}
	return updated, nil
}

// FindByID はタイムシートを取得します。
func (r *TimesheetRepository) FindByID(ctx context.Context, id string) (*timesheet.Timesheet, error) {
	return r.findOne(ctx, `SELECT `+timesheetColumns+` FROM timesheets WHERE id = $1`, id)
}

// LockByID はタイムシート行を FOR UPDATE で取得します。
func (r *TimesheetRepository) LockByID(ctx context.Context, id string) (*timesheet.Timesheet, error) {
	return r.findOne(ctx, `SELECT `+timesheetColumns+` FROM timesheets WHERE id = $1 FOR UPDATE`, id)
}

// FindByShiftID はシフトのタイムシートを取得します。
func (r *TimesheetRepository) FindByShiftID(ctx context.Context, shiftID string) (*timesheet.Timesheet, error) {
	return r.findOne(ctx, `SELECT `+timesheetColumns+` FROM timesheets WHERE shift_id = $1`, shiftID)
}

func (r *TimesheetRepository) findOne(ctx context.Context, query, id string) (*timesheet.Timesheet, error) {
	if !validID(id) {
		return nil, timesheet.ErrTimesheetNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanTimesheet(exec.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateTimesheetPgError(err)
	}
	return found, nil
}

func scanTimesheet(row pgx.Row) (*timesheet.Timesheet, error) {
	var (
		t                  timesheet.Timesheet
		clockIn            sql.NullTime
		clockOut           sql.NullTime
		status             string
		agencyApprovedAt   sql.NullTime
		employerApprovedAt sql.NullTime
	)
	if err := row.Scan(
		&t.ID, &t.ShiftID, &t.AssignmentID, &t.EmployeeID, &clockIn, &clockOut, &t.BreakMinutes, &t.HoursWorked,
		&status, &t.AgencyApprovedBy, &agencyApprovedAt, &t.EmployerApprovedBy, &employerApprovedAt,
		&t.RejectionReason, &t.DisputeReason, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	t.ClockIn = timePtr(clockIn)
	t.ClockOut = timePtr(clockOut)
	t.Status = timesheet.Status(status)
	t.AgencyApprovedAt = timePtr(agencyApprovedAt)
	t.EmployerApprovedAt = timePtr(employerApprovedAt)
	return &t, nil
}

func translateTimesheetPgError(err error) error {
	if err == nil {
		return nil
	}
	code, constraint, ok := pgError(err)
	if !ok {
		return translateNoRows(err, timesheet.ErrTimesheetNotFound)
	}
	switch code {
	case uniqueViolationCode:
		if constraint == "timesheets_shift_id_key" {
			return timesheet.ErrAlreadyClockedIn
		}
	case foreignKeyViolationCode:
		return timesheet.ErrInvalidID
	case checkViolationCode:
		switch constraint {
		case "timesheets_clock_check":
			return timesheet.ErrClockOutBeforeIn
		case "timesheets_break_minutes_check":
			return timesheet.ErrInvalidBreak
		case "timesheets_hours_worked_check":
			return timesheet.ErrNegativeHours
		}
	}
	return err
}
