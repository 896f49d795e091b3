package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/ogurasousui/staffing-engine/internal/core/workforce"
)

var agencyEmployeeTestColumns = []string{
	"id", "agency_id", "employee_id", "pay_rate", "employment_type", "status", "created_at", "updated_at",
}

func TestWorkforceRepository_CreateEmployee_EmailConflict(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO employees`).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "employees_email_key"})

	now := time.Now().UTC()
	_, err = NewWorkforceRepository(mock).CreateEmployee(context.Background(), &workforce.Employee{
		FirstName: "Hanako",
		LastName:  "Yamada",
		Email:     "hanako@example.com",
		Status:    workforce.EmployeeActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if !errors.Is(err, workforce.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWorkforceRepository_FindActiveAgencyEmployee(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(agencyEmployeeTestColumns).
		AddRow(testAgencyEmployeeID, testAgencyID, testEmployeeID, "15.00", "temporary", "active", now, now)
	mock.ExpectQuery(`status = 'active'`).WithArgs(testAgencyID, testEmployeeID).WillReturnRows(rows)

	ae, err := NewWorkforceRepository(mock).FindActiveAgencyEmployee(context.Background(), testAgencyID, testEmployeeID)
	if err != nil {
		t.Fatalf("FindActiveAgencyEmployee returned error: %v", err)
	}
	if ae.EmploymentType != workforce.EmploymentTemporary || ae.Status != workforce.StatusActive {
		t.Fatalf("unexpected agency employee: %+v", ae)
	}
	if !ae.PayRate.Equal(decimal.RequireFromString("15")) {
		t.Fatalf("unexpected pay rate: %s", ae.PayRate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWorkforceRepository_FindAgencyEmployeeByID_InvalidID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	if _, err := NewWorkforceRepository(mock).FindAgencyEmployeeByID(context.Background(), "ae-1"); !errors.Is(err, workforce.ErrAgencyEmployeeNotFound) {
		t.Fatalf("expected ErrAgencyEmployeeNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected query issued: %v", err)
	}
}

func TestWorkforceRepository_ListAgencyEmployees(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(agencyEmployeeTestColumns).
		AddRow("a1111111-1111-4111-8111-111111111111", testAgencyID, testEmployeeID, "15.00", "temporary", "active", now, now).
		AddRow("a2222222-2222-4222-8222-222222222222", testAgencyID, testEmployeeID, "16.00", "contract", "active", now, now).
		AddRow("a3333333-3333-4333-8333-333333333333", testAgencyID, testEmployeeID, "17.00", "permanent", "active", now, now)
	mock.ExpectQuery(`FROM agency_employees WHERE agency_id = \$1 AND status = \$2`).
		WithArgs(testAgencyID, "active", 3, 0).
		WillReturnRows(rows)

	status := workforce.StatusActive
	items, token, err := NewWorkforceRepository(mock).ListAgencyEmployees(context.Background(), workforce.ListAgencyEmployeesFilter{
		AgencyID: testAgencyID,
		Status:   &status,
		Limit:    2,
	})
	if err != nil {
		t.Fatalf("ListAgencyEmployees returned error: %v", err)
	}
	if len(items) != 2 || token != "2" {
		t.Fatalf("expected 2 items and token 2, got %d %q", len(items), token)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslateWorkforcePgError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, workforce.ErrAgencyEmployeeNotFound},
		{"active duplicate", &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "agency_employees_active_key"}, workforce.ErrAlreadyEmployed},
		{"foreign key", &pgconn.PgError{Code: foreignKeyViolationCode}, workforce.ErrEmployeeNotFound},
		{"pay rate", &pgconn.PgError{Code: checkViolationCode, ConstraintName: "agency_employees_pay_rate_check"}, workforce.ErrInvalidPayRate},
		{"status", &pgconn.PgError{Code: checkViolationCode, ConstraintName: "agency_employees_status_check"}, workforce.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := translateWorkforcePgError(tt.err, workforce.ErrAgencyEmployeeNotFound); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
