package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ogurasousui/staffing-engine/internal/core/shift"
	pgdb "github.com/ogurasousui/staffing-engine/internal/platform/db/postgres"
)

// ShiftRepository はシフト・テンプレート・オファーを永続化します。
type ShiftRepository struct {
	pool pgdb.Queryer
}

// NewShiftRepository は ShiftRepository を生成します。
func NewShiftRepository(pool pgdb.Queryer) *ShiftRepository {
	return &ShiftRepository{pool: pool}
}

// シフトの所属派遣会社・雇用主はアサインメントから引きます。
const (
	shiftColumns = `s.id, s.assignment_id, s.employee_id, s.agency_employee_id, s.shift_date, s.start_time, s.end_time,
       s.hourly_rate, s.status, s.template_id, s.created_by, s.created_at, s.updated_at, a.agency_id, a.employer_id`
	shiftReturning = `id, assignment_id, employee_id, agency_employee_id, shift_date, start_time, end_time,
       hourly_rate, status, template_id, created_by, created_at, updated_at`
	shiftFrom = ` FROM shifts s JOIN assignments a ON a.id = s.assignment_id`
)

// Create は社員未割当のシフトを登録します。
func (r *ShiftRepository) Create(ctx context.Context, s *shift.Shift) (*shift.Shift, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        WITH s AS (
            INSERT INTO shifts (assignment_id, employee_id, agency_employee_id, shift_date, start_time, end_time,
                                hourly_rate, status, template_id, created_by, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
            RETURNING `+shiftReturning+`
        )
        SELECT `+shiftColumns+` FROM s JOIN assignments a ON a.id = s.assignment_id`,
		shiftArgs(s)...,
	)
	created, err := scanShift(row)
	if err != nil {
		return nil, translateShiftPgError(err, shift.ErrShiftNotFound)
	}
	return created, nil
}

// InsertIfFree は同一社員の有効なシフトと時間帯が重ならない場合だけ挿入します。
// 挿入 0 行と排他制約違反はどちらも ErrSlotTaken です。
func (r *ShiftRepository) InsertIfFree(ctx context.Context, s *shift.Shift) (*shift.Shift, error) {
	if !validIDs(s.AssignmentID, s.EmployeeID, s.AgencyEmployeeID) {
		return nil, shift.ErrInvalidID
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        WITH s AS (
            INSERT INTO shifts (assignment_id, employee_id, agency_employee_id, shift_date, start_time, end_time,
                                hourly_rate, status, template_id, created_by, created_at, updated_at)
            SELECT $1::uuid, $2::uuid, $3::uuid, $4::date, $5::timestamptz, $6::timestamptz,
                   $7::numeric, $8::text, $9::uuid, $10::text, $11::timestamptz, $12::timestamptz
             WHERE NOT EXISTS (
                   SELECT 1
                     FROM shifts x
                     JOIN agency_employees ae ON ae.id = x.agency_employee_id
                    WHERE ae.employee_id = $2::uuid
                      AND x.status NOT IN ('cancelled', 'no_show')
                      AND x.start_time < $6::timestamptz
                      AND x.end_time > $5::timestamptz
             )
            RETURNING `+shiftReturning+`
        )
        SELECT `+shiftColumns+` FROM s JOIN assignments a ON a.id = s.assignment_id`,
		shiftArgs(s)...,
	)
	created, err := scanShift(row)
	if err != nil {
		return nil, translateShiftPgError(err, shift.ErrSlotTaken)
	}
	return created, nil
}

func shiftArgs(s *shift.Shift) []any {
	return []any{
		s.AssignmentID, nullableString(s.EmployeeID), nullableString(s.AgencyEmployeeID), dateParam(s.Date),
		s.StartTime.UTC(), s.EndTime.UTC(), s.HourlyRate, string(s.Status), nullableString(s.TemplateID),
		s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	}
}

// Update は割当社員・単価・状態を更新します。
func (r *ShiftRepository) Update(ctx context.Context, s *shift.Shift) (*shift.Shift, error) {
	if !validID(s.ID) {
		return nil, shift.ErrShiftNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        WITH s AS (
            UPDATE shifts
               SET employee_id = $1,
                   agency_employee_id = $2,
                   hourly_rate = $3,
                   status = $4,
                   updated_at = $5
             WHERE id = $6
            RETURNING `+shiftReturning+`
        )
        SELECT `+shiftColumns+` FROM s JOIN assignments a ON a.id = s.assignment_id`,
		nullableString(s.EmployeeID), nullableString(s.AgencyEmployeeID), s.HourlyRate, string(s.Status), s.UpdatedAt, s.ID,
	)
	updated, err := scanShift(row)
	if err != nil {
		return nil, translateShiftPgError(err, shift.ErrShiftNotFound)
	}
	return updated, nil
}

// FindByID はシフトを取得します。
func (r *ShiftRepository) FindByID(ctx context.Context, id string) (*shift.Shift, error) {
	return r.findShift(ctx, `SELECT `+shiftColumns+shiftFrom+` WHERE s.id = $1`, id)
}

// LockByID はシフト行を FOR UPDATE で取得します。
func (r *ShiftRepository) LockByID(ctx context.Context, id string) (*shift.Shift, error) {
	return r.findShift(ctx, `SELECT `+shiftColumns+shiftFrom+` WHERE s.id = $1 FOR UPDATE OF s`, id)
}

func (r *ShiftRepository) findShift(ctx context.Context, query, id string) (*shift.Shift, error) {
	if !validID(id) {
		return nil, shift.ErrShiftNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanShift(exec.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateShiftPgError(err, shift.ErrShiftNotFound)
	}
	return found, nil
}

// List は条件に一致するシフトを開始時刻順に返します。
func (r *ShiftRepository) List(ctx context.Context, filter shift.ListFilter) ([]*shift.Shift, error) {
	var p placeholders
	for _, f := range []struct{ column, value string }{
		{"s.employee_id", filter.EmployeeID},
		{"s.assignment_id", filter.AssignmentID},
		{"a.agency_id", filter.AgencyID},
		{"a.employer_id", filter.EmployerID},
	} {
		if f.value == "" {
			continue
		}
		if !validID(f.value) {
			return nil, nil
		}
		p.add(f.column+" = ?", f.value)
	}
	if !filter.From.IsZero() {
		p.add("s.start_time >= ?", filter.From.UTC())
	}
	if !filter.To.IsZero() {
		p.add("s.start_time < ?", filter.To.UTC())
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `SELECT `+shiftColumns+shiftFrom+p.where()+` ORDER BY s.start_time, s.id`, p.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*shift.Shift, error) {
		return scanShift(row)
	})
}

// CountByTemplate はテンプレートから生成済みのシフト数を返します。
func (r *ShiftRepository) CountByTemplate(ctx context.Context, templateID string) (int, error) {
	if !validID(templateID) {
		return 0, shift.ErrTemplateNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	var n int
	if err := exec.QueryRow(ctx, `SELECT count(*) FROM shifts WHERE template_id = $1`, templateID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

const templateColumns = `id, assignment_id, day_of_week, start_time, end_time, recurrence, effective_start_date,
       effective_end_date, max_occurrences, created_by, created_at`

// CreateTemplate はテンプレートを登録します。
func (r *ShiftRepository) CreateTemplate(ctx context.Context, t *shift.Template) (*shift.Template, error) {
	var maxOccurrences any
	if t.MaxOccurrences != nil {
		maxOccurrences = *t.MaxOccurrences
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO shift_templates (assignment_id, day_of_week, start_time, end_time, recurrence,
                                     effective_start_date, effective_end_date, max_occurrences, created_by, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING `+templateColumns,
		t.AssignmentID, int16(t.DayOfWeek), timeOfDayParam(t.StartTime), timeOfDayParam(t.EndTime), string(t.Recurrence),
		nullableDate(t.EffectiveStartDate), nullableDate(t.EffectiveEndDate), maxOccurrences, t.CreatedBy, t.CreatedAt,
	)
	created, err := scanTemplate(row)
	if err != nil {
		return nil, translateShiftPgError(err, shift.ErrTemplateNotFound)
	}
	return created, nil
}

// FindTemplateByID はテンプレートを取得します。
func (r *ShiftRepository) FindTemplateByID(ctx context.Context, id string) (*shift.Template, error) {
	if !validID(id) {
		return nil, shift.ErrTemplateNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanTemplate(exec.QueryRow(ctx, `SELECT `+templateColumns+` FROM shift_templates WHERE id = $1`, id))
	if err != nil {
		return nil, translateShiftPgError(err, shift.ErrTemplateNotFound)
	}
	return found, nil
}

const offerColumns = `id, shift_id, agency_employee_id, employee_id, status, expires_at, offered_by, responded_at, created_at`

// CreateOffer はオファーを登録します。
func (r *ShiftRepository) CreateOffer(ctx context.Context, o *shift.Offer) (*shift.Offer, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO shift_offers (shift_id, agency_employee_id, employee_id, status, expires_at, offered_by, responded_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+offerColumns,
		o.ShiftID, o.AgencyEmployeeID, o.EmployeeID, string(o.Status), o.ExpiresAt.UTC(), o.OfferedBy,
		nullableTime(o.RespondedAt), o.CreatedAt,
	)
	created, err := scanOffer(row)
	if err != nil {
		return nil, translateShiftPgError(err, shift.ErrOfferNotFound)
	}
	return created, nil
}

// UpdateOffer はオファーの回答を保存します。
func (r *ShiftRepository) UpdateOffer(ctx context.Context, o *shift.Offer) (*shift.Offer, error) {
	if !validID(o.ID) {
		return nil, shift.ErrOfferNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE shift_offers
           SET status = $1,
               responded_at = $2
         WHERE id = $3
        RETURNING `+offerColumns,
		string(o.Status), nullableTime(o.RespondedAt), o.ID,
	)
	updated, err := scanOffer(row)
	if err != nil {
		return nil, translateShiftPgError(err, shift.ErrOfferNotFound)
	}
	return updated, nil
}

// FindOfferByID はオファーを取得します。
func (r *ShiftRepository) FindOfferByID(ctx context.Context, id string) (*shift.Offer, error) {
	if !validID(id) {
		return nil, shift.ErrOfferNotFound
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanOffer(exec.QueryRow(ctx, `SELECT `+offerColumns+` FROM shift_offers WHERE id = $1`, id))
	if err != nil {
		return nil, translateShiftPgError(err, shift.ErrOfferNotFound)
	}
	return found, nil
}

func scanShift(row pgx.Row) (*shift.Shift, error) {
	var (
		s                shift.Shift
		employeeID       sql.NullString
		agencyEmployeeID sql.NullString
		templateID       sql.NullString
		status           string
	)
	if err := row.Scan(
		&s.ID, &s.AssignmentID, &employeeID, &agencyEmployeeID, &s.Date, &s.StartTime, &s.EndTime,
		&s.HourlyRate, &status, &templateID, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt, &s.AgencyID, &s.EmployerID,
	); err != nil {
		return nil, err
	}
	s.EmployeeID = employeeID.String
	s.AgencyEmployeeID = agencyEmployeeID.String
	s.TemplateID = templateID.String
	s.Date = dateParam(s.Date)
	s.StartTime = s.StartTime.UTC()
	s.EndTime = s.EndTime.UTC()
	s.Status = shift.Status(status)
	return &s, nil
}

func scanTemplate(row pgx.Row) (*shift.Template, error) {
	var (
		t              shift.Template
		dayOfWeek      int16
		start          pgtype.Time
		end            pgtype.Time
		recurrence     string
		effectiveStart sql.NullTime
		effectiveEnd   sql.NullTime
		maxOccurrences sql.NullInt32
	)
	if err := row.Scan(&t.ID, &t.AssignmentID, &dayOfWeek, &start, &end, &recurrence,
		&effectiveStart, &effectiveEnd, &maxOccurrences, &t.CreatedBy, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.DayOfWeek = time.Weekday(dayOfWeek)
	t.StartTime = timeOfDayFrom(start)
	t.EndTime = timeOfDayFrom(end)
	t.Recurrence = shift.Recurrence(recurrence)
	t.EffectiveStartDate = datePtr(effectiveStart)
	t.EffectiveEndDate = datePtr(effectiveEnd)
	if maxOccurrences.Valid {
		n := int(maxOccurrences.Int32)
		t.MaxOccurrences = &n
	}
	return &t, nil
}

func scanOffer(row pgx.Row) (*shift.Offer, error) {
	var (
		o           shift.Offer
		status      string
		respondedAt sql.NullTime
	)
	if err := row.Scan(&o.ID, &o.ShiftID, &o.AgencyEmployeeID, &o.EmployeeID, &status, &o.ExpiresAt,
		&o.OfferedBy, &respondedAt, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.Status = shift.OfferStatus(status)
	o.ExpiresAt = o.ExpiresAt.UTC()
	o.RespondedAt = timePtr(respondedAt)
	return &o, nil
}

func translateShiftPgError(err, notFound error) error {
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
	case exclusionViolationCode:
		return shift.ErrSlotTaken
	case foreignKeyViolationCode:
		switch constraint {
		case "shifts_template_id_fkey":
			return shift.ErrTemplateNotFound
		case "shift_offers_shift_id_fkey":
			return shift.ErrShiftNotFound
		default:
			return shift.ErrInvalidID
		}
	case checkViolationCode:
		switch constraint {
		case "shifts_times_check":
			return shift.ErrInvalidTime
		case "shift_templates_recurrence_check":
			return shift.ErrInvalidRecurrence
		case "shift_templates_day_of_week_check":
			return shift.ErrInvalidDayOfWeek
		case "shift_templates_max_occurrences_check":
			return shift.ErrInvalidMaxOccurrence
		case "shifts_hourly_rate_check":
			return shift.ErrInvalidRate
		default:
			return shift.ErrInvalidStatus
		}
	}
	return err
}
