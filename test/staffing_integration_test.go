//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"

	"github.com/ogurasousui/staffing-engine/internal/adapters/events"
	repo "github.com/ogurasousui/staffing-engine/internal/adapters/repository/postgres"
	"github.com/ogurasousui/staffing-engine/internal/core/actor"
	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/billing"
	"github.com/ogurasousui/staffing-engine/internal/core/contract"
	"github.com/ogurasousui/staffing-engine/internal/core/domainerr"
	"github.com/ogurasousui/staffing-engine/internal/core/exchange"
	"github.com/ogurasousui/staffing-engine/internal/core/shift"
	"github.com/ogurasousui/staffing-engine/internal/core/timesheet"
	"github.com/ogurasousui/staffing-engine/internal/core/workforce"
	"github.com/ogurasousui/staffing-engine/internal/platform/config"
	pg "github.com/ogurasousui/staffing-engine/internal/platform/db/postgres"
)

const migrationsDir = "../assets/migrations"

func TestStaffingLifecycleIntegration(t *testing.T) {
	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	pool, err := pg.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	clock := stubClock{now: time.Date(2030, 1, 15, 8, 0, 0, 0, time.UTC)}
	tx := pg.NewTransactionManager(pool, pg.WithLogger(logger))
	locker := pg.NewAdvisoryLocker(pool)

	workforceRepo := repo.NewWorkforceRepository(pool)
	contractRepo := repo.NewContractRepository(pool)
	assignmentRepo := repo.NewAssignmentRepository(pool)
	shiftRepo := repo.NewShiftRepository(pool)
	billingRepo := repo.NewBillingRepository(pool)

	workforceSvc := workforce.NewService(workforceRepo, clock, tx, workforce.Options{Logger: logger})
	contractSvc := contract.NewService(contractRepo, clock, tx, contract.Options{Logger: logger})
	detector := availability.NewService(repo.NewAvailabilityRepository(pool), clock, tx, availability.Options{Logger: logger}).Detector()
	assignmentSvc := assignment.NewService(assignmentRepo, contractRepo, workforceRepo, detector, locker, clock, tx, assignment.Options{Logger: logger})
	exchangeSvc := exchange.NewService(repo.NewExchangeRepository(pool), workforceRepo, detector, assignmentSvc, clock, tx, exchange.Options{Logger: logger})
	shiftSvc := shift.NewService(shiftRepo, assignmentRepo, workforceRepo, detector, locker, clock, tx, shift.Options{Logger: logger})
	timesheetSvc := timesheet.NewService(repo.NewTimesheetRepository(pool), shiftRepo, assignmentRepo, clock, tx, timesheet.Options{Logger: logger})
	reconciler := billing.NewReconciler(billingRepo, clock, tx, billing.Options{
		PlatformFeePercent: decimal.NewFromInt(5),
		Logger:             logger,
	})
	dispatch := events.Fanout{events.NewLog(logger), reconciler}

	agencyID := uuid.NewString()
	employerID := uuid.NewString()
	admin := actor.Actor{UserID: uuid.NewString(), Role: actor.RoleSuperAdmin}
	agencyAdmin := actor.Actor{UserID: uuid.NewString(), Role: actor.RoleAgencyAdmin, AgencyID: agencyID}
	employerAdmin := actor.Actor{UserID: uuid.NewString(), Role: actor.RoleEmployerAdmin, EmployerID: employerID}

	emp, err := workforceSvc.CreateEmployee(ctx, workforce.CreateEmployeeInput{Actor: admin, FirstName: "Aiko", LastName: "Sato", Email: "aiko@example.com"})
	if err != nil {
		t.Fatalf("CreateEmployee error: %v", err)
	}
	employee := actor.Actor{UserID: uuid.NewString(), Role: actor.RoleEmployee, EmployeeID: emp.ID}

	ae, err := workforceSvc.RegisterAgencyEmployee(ctx, workforce.RegisterAgencyEmployeeInput{
		Actor:          agencyAdmin,
		AgencyID:       agencyID,
		EmployeeID:     emp.ID,
		PayRate:        decimal.RequireFromString("15.00"),
		EmploymentType: workforce.EmploymentTemporary,
	})
	if err != nil {
		t.Fatalf("RegisterAgencyEmployee error: %v", err)
	}

	c, err := contractSvc.CreateContract(ctx, contract.CreateContractInput{
		Actor: employerAdmin, EmployerID: employerID, AgencyID: agencyID, StartDate: date(2030, 1, 1),
	})
	if err != nil {
		t.Fatalf("CreateContract error: %v", err)
	}
	if _, err := contractSvc.ChangeStatus(ctx, contract.ChangeStatusInput{Actor: admin, ID: c.ID, Status: contract.StatusActive}); err != nil {
		t.Fatalf("activate contract error: %v", err)
	}

	req, err := exchangeSvc.CreateShiftRequest(ctx, exchange.CreateShiftRequestInput{
		Actor:           employerAdmin,
		EmployerID:      employerID,
		LocationID:      uuid.NewString(),
		Role:            "picker",
		StartDate:       date(2030, 2, 4),
		EndDate:         date(2030, 2, 8),
		StartTime:       "09:00",
		EndTime:         "17:00",
		MaxHourlyRate:   decimal.RequireFromString("25.00"),
		NumberOfWorkers: 1,
		TargetScope:     exchange.ScopeAll,
	})
	if err != nil {
		t.Fatalf("CreateShiftRequest error: %v", err)
	}
	published, err := exchangeSvc.PublishShiftRequest(ctx, exchange.RequestActionInput{Actor: employerAdmin, ID: req.ID})
	if err != nil {
		t.Fatalf("PublishShiftRequest error: %v", err)
	}
	dispatch.Dispatch(ctx, published.Events)

	submitted, err := exchangeSvc.SubmitResponse(ctx, exchange.SubmitResponseInput{
		Actor:              agencyAdmin,
		ShiftRequestID:     req.ID,
		AgencyID:           agencyID,
		ProposedRate:       decimal.RequireFromString("20.00"),
		ProposedEmployeeID: ae.ID,
		ProposedStartDate:  date(2030, 2, 4),
		ProposedEndDate:    date(2030, 2, 8),
	})
	if err != nil {
		t.Fatalf("SubmitResponse error: %v", err)
	}

	accepted, err := exchangeSvc.AcceptResponse(ctx, exchange.ResponseActionInput{Actor: employerAdmin, ResponseID: submitted.Response.ID})
	if err != nil {
		t.Fatalf("AcceptResponse error: %v", err)
	}
	dispatch.Dispatch(ctx, accepted.Events)
	if accepted.Assignment == nil || !accepted.Assignment.MarkupAmount.Equal(decimal.RequireFromString("5.00")) {
		t.Fatalf("unexpected assignment: %+v", accepted.Assignment)
	}

	created, err := shiftSvc.CreateShift(ctx, shift.CreateShiftInput{
		Actor:        agencyAdmin,
		AssignmentID: accepted.Assignment.ID,
		Date:         date(2030, 2, 4),
		StartTime:    "09:00",
		EndTime:      "17:00",
	})
	if err != nil {
		t.Fatalf("CreateShift error: %v", err)
	}

	_, err = shiftSvc.CreateShift(ctx, shift.CreateShiftInput{
		Actor:        agencyAdmin,
		AssignmentID: accepted.Assignment.ID,
		Date:         date(2030, 2, 4),
		StartTime:    "12:00",
		EndTime:      "14:00",
	})
	if !errors.Is(err, domainerr.ErrAvailability) {
		t.Fatalf("expected double booking to be rejected, got %v", err)
	}

	clockIn := time.Date(2030, 2, 4, 9, 0, 0, 0, time.UTC)
	in, err := timesheetSvc.ClockIn(ctx, timesheet.ClockInInput{Actor: employee, ShiftID: created.Shift.ID, At: &clockIn})
	if err != nil {
		t.Fatalf("ClockIn error: %v", err)
	}
	clockOut := time.Date(2030, 2, 4, 17, 0, 0, 0, time.UTC)
	out, err := timesheetSvc.ClockOut(ctx, timesheet.ClockOutInput{Actor: employee, TimesheetID: in.Timesheet.ID, BreakMinutes: 30, At: &clockOut})
	if err != nil {
		t.Fatalf("ClockOut error: %v", err)
	}
	if !out.Timesheet.HoursWorked.Equal(decimal.RequireFromString("7.5")) {
		t.Fatalf("expected 7.5 hours, got %s", out.Timesheet.HoursWorked)
	}

	if _, err := timesheetSvc.ApproveAgency(ctx, timesheet.DecisionInput{Actor: agencyAdmin, TimesheetID: in.Timesheet.ID}); err != nil {
		t.Fatalf("ApproveAgency error: %v", err)
	}
	approved, err := timesheetSvc.ApproveEmployer(ctx, timesheet.DecisionInput{Actor: employerAdmin, TimesheetID: in.Timesheet.ID})
	if err != nil {
		t.Fatalf("ApproveEmployer error: %v", err)
	}
	dispatch.Dispatch(ctx, approved.Events)
	// 再配信しても請求は増えない
	dispatch.Dispatch(ctx, approved.Events)

	invoices, err := billingRepo.ListInvoicesByTimesheet(ctx, in.Timesheet.ID)
	if err != nil {
		t.Fatalf("ListInvoicesByTimesheet error: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("expected agency and platform invoices, got %d", len(invoices))
	}
	var employerInvoice *billing.Invoice
	for _, inv := range invoices {
		if inv.To.Kind == billing.PartyEmployer {
			employerInvoice = inv
		}
	}
	if employerInvoice == nil || !employerInvoice.Amount.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("expected 150.00 billed to employer, got %+v", employerInvoice)
	}

	payout, err := reconciler.AggregatePayout(ctx, billing.PayoutInput{
		Actor: agencyAdmin, AgencyID: agencyID, EmployeeID: emp.ID, PeriodStart: "2030-01-15", PeriodEnd: "2030-01-15",
	})
	if err != nil {
		t.Fatalf("AggregatePayout error: %v", err)
	}
	if !payout.Total.Equal(decimal.RequireFromString("112.50")) || len(payout.PayrollIDs) != 1 {
		t.Fatalf("unexpected payout: %+v", payout)
	}

	paid, err := reconciler.ApplyPaymentResult(ctx, billing.ApplyPaymentInput{
		Actor:     admin,
		InvoiceID: employerInvoice.ID,
		Result:    billing.PaymentResult{ProcessorID: "pi_123", Status: billing.InvoicePaid, FeeAmount: decimal.RequireFromString("4.65")},
	})
	if err != nil {
		t.Fatalf("ApplyPaymentResult error: %v", err)
	}
	if paid.Status != billing.InvoicePaid {
		t.Fatalf("expected paid invoice, got %s", paid.Status)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "../assets/local.yaml"
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
