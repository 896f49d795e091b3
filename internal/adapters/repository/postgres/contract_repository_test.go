package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/ogurasousui/staffing-engine/internal/core/contract"
)

const testContractID = "c0ffee00-1234-4abc-8def-0123456789ab"

type stubRow struct {
	scanFn func(dest ...any) error
}

func (s stubRow) Scan(dest ...any) error {
	return s.scanFn(dest...)
}

func TestScanContract_OpenEnded(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2026, 1, 10, 12, 30, 0, 0, time.UTC)
	row := stubRow{scanFn: func(dest ...any) error {
		if len(dest) != 8 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = testContractID
		*(dest[1].(*string)) = testEmployerID
		*(dest[2].(*string)) = testAgencyID
		*(dest[3].(*string)) = string(contract.StatusActive)
		*(dest[4].(*time.Time)) = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		*(dest[5].(*sql.NullTime)) = sql.NullTime{}
		*(dest[6].(*time.Time)) = createdAt
		*(dest[7].(*time.Time)) = createdAt
		return nil
	}}

	c, err := scanContract(row)
	if err != nil {
		t.Fatalf("scanContract returned error: %v", err)
	}
	if c.Status != contract.StatusActive || c.EndDate != nil {
		t.Fatalf("unexpected contract: %+v", c)
	}
}

func TestScanContract_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...any) error { return pgx.ErrNoRows }}
	if _, err := scanContract(row); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}

func TestContractRepository_FindByParties(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`WHERE employer_id = \$1 AND agency_id = \$2`).
		WithArgs(testEmployerID, testAgencyID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	repo := NewContractRepository(mock)
	if _, err := repo.FindByParties(context.Background(), testEmployerID, testAgencyID); !errors.Is(err, contract.ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound, got %v", err)
	}
	if _, err := repo.FindByParties(context.Background(), "employer", testAgencyID); !errors.Is(err, contract.ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound for invalid id, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestContractRepository_Create_Duplicate(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO employer_agency_contracts`).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "employer_agency_contracts_employer_id_agency_id_key"})

	now := time.Now().UTC()
	_, err = NewContractRepository(mock).Create(context.Background(), &contract.Contract{
		EmployerID: testEmployerID,
		AgencyID:   testAgencyID,
		Status:     contract.StatusPending,
		StartDate:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if !errors.Is(err, contract.ErrContractAlreadyExists) {
		t.Fatalf("expected ErrContractAlreadyExists, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslateContractPgError_DateRange(t *testing.T) {
	t.Parallel()

	err := translateContractPgError(&pgconn.PgError{Code: checkViolationCode, ConstraintName: "employer_agency_contracts_dates_check"})
	if !errors.Is(err, contract.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if err := translateContractPgError(&pgconn.PgError{Code: checkViolationCode}); !errors.Is(err, contract.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
