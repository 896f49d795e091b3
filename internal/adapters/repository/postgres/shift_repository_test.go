package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/ogurasousui/staffing-engine/internal/core/shift"
)

const (
	testAssignmentID     = "0b9d3c6a-58f1-4a0e-9d6b-1f7e2a3c4d50"
	testEmployeeID       = "6b0d8f3e-1c4a-4e1b-8f9d-2a7c5e3b1d44"
	testAgencyEmployeeID = "9c3e7a21-4d5b-4f86-b1a2-7e8f9d0c1b22"
	testAgencyID         = "2f1a1c5e-7f3b-4f67-9a57-3c2e1e0c9b11"
	testEmployerID       = "d4e5f6a7-b8c9-4d0e-8f1a-2b3c4d5e6f70"
	testShiftID          = "5a6b7c8d-9e0f-4a1b-8c2d-3e4f5a6b7c8d"
)

var shiftTestColumns = []string{
	"id", "assignment_id", "employee_id", "agency_employee_id", "shift_date", "start_time", "end_time",
	"hourly_rate", "status", "template_id", "created_by", "created_at", "updated_at", "agency_id", "employer_id",
}

func newStaffedShift() *shift.Shift {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &shift.Shift{
		AssignmentID:     testAssignmentID,
		EmployeeID:       testEmployeeID,
		AgencyEmployeeID: testAgencyEmployeeID,
		Date:             start,
		StartTime:        start,
		EndTime:          start.Add(8 * time.Hour),
		HourlyRate:       decimal.RequireFromString("25.00"),
		Status:           shift.StatusAssigned,
		CreatedBy:        "agent-1",
		CreatedAt:        start.Add(-24 * time.Hour),
		UpdatedAt:        start.Add(-24 * time.Hour),
	}
}

func TestShiftRepository_InsertIfFree_Inserted(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	s := newStaffedShift()
	rows := pgxmock.NewRows(shiftTestColumns).AddRow(
		testShiftID, s.AssignmentID, s.EmployeeID, s.AgencyEmployeeID, s.Date, s.StartTime, s.EndTime,
		"25.00", string(s.Status), nil, s.CreatedBy, s.CreatedAt, s.UpdatedAt, testAgencyID, testEmployerID,
	)
	mock.ExpectQuery(`WHERE NOT EXISTS`).WillReturnRows(rows)

	created, err := NewShiftRepository(mock).InsertIfFree(context.Background(), s)
	if err != nil {
		t.Fatalf("InsertIfFree returned error: %v", err)
	}
	if created.ID != testShiftID || created.AgencyID != testAgencyID || created.EmployerID != testEmployerID {
		t.Fatalf("unexpected shift: %+v", created)
	}
	if created.TemplateID != "" {
		t.Fatalf("expected empty template id, got %q", created.TemplateID)
	}
	if !created.HourlyRate.Equal(decimal.RequireFromString("25")) {
		t.Fatalf("unexpected hourly rate: %s", created.HourlyRate)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestShiftRepository_InsertIfFree_SlotTaken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expect func(mock pgxmock.PgxPoolIface)
	}{
		{
			name: "overlap guard inserts nothing",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WHERE NOT EXISTS`).WillReturnRows(pgxmock.NewRows(shiftTestColumns))
			},
		},
		{
			name: "exclusion constraint",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WHERE NOT EXISTS`).
					WillReturnError(&pgconn.PgError{Code: exclusionViolationCode, ConstraintName: "shifts_no_overlap"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create mock pool: %v", err)
			}
			defer mock.Close()

			tt.expect(mock)

			_, err = NewShiftRepository(mock).InsertIfFree(context.Background(), newStaffedShift())
			if !errors.Is(err, shift.ErrSlotTaken) {
				t.Fatalf("expected ErrSlotTaken, got %v", err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestShiftRepository_InsertIfFree_InvalidID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	s := newStaffedShift()
	s.EmployeeID = "employee-1"

	if _, err := NewShiftRepository(mock).InsertIfFree(context.Background(), s); !errors.Is(err, shift.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected query issued: %v", err)
	}
}

func TestShiftRepository_FindByID_InvalidIDSkipsQuery(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	if _, err := NewShiftRepository(mock).FindByID(context.Background(), "not-a-uuid"); !errors.Is(err, shift.ErrShiftNotFound) {
		t.Fatalf("expected ErrShiftNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected query issued: %v", err)
	}
}

func TestShiftRepository_List_BuildsFilters(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	mock.ExpectQuery(`WHERE a\.agency_id = \$1 AND s\.start_time >= \$2 AND s\.start_time < \$3 ORDER BY s\.start_time`).
		WithArgs(testAgencyID, from, to).
		WillReturnRows(pgxmock.NewRows(shiftTestColumns))

	shifts, err := NewShiftRepository(mock).List(context.Background(), shift.ListFilter{AgencyID: testAgencyID, From: from, To: to})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(shifts) != 0 {
		t.Fatalf("expected no shifts, got %d", len(shifts))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslateShiftPgError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"template fk", &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "shifts_template_id_fkey"}, shift.ErrTemplateNotFound},
		{"other fk", &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "shifts_assignment_id_fkey"}, shift.ErrInvalidID},
		{"times check", &pgconn.PgError{Code: checkViolationCode, ConstraintName: "shifts_times_check"}, shift.ErrInvalidTime},
		{"exclusion", &pgconn.PgError{Code: exclusionViolationCode}, shift.ErrSlotTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := translateShiftPgError(tt.err, shift.ErrShiftNotFound); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
