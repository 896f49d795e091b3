package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ogurasousui/staffing-engine/internal/adapters/calendar"
	"github.com/ogurasousui/staffing-engine/internal/adapters/events"
	"github.com/ogurasousui/staffing-engine/internal/adapters/grpc/handler"
	"github.com/ogurasousui/staffing-engine/internal/adapters/repository/postgres"
	"github.com/ogurasousui/staffing-engine/internal/core/assignment"
	"github.com/ogurasousui/staffing-engine/internal/core/availability"
	"github.com/ogurasousui/staffing-engine/internal/core/billing"
	"github.com/ogurasousui/staffing-engine/internal/core/contract"
	"github.com/ogurasousui/staffing-engine/internal/core/exchange"
	"github.com/ogurasousui/staffing-engine/internal/core/shift"
	"github.com/ogurasousui/staffing-engine/internal/core/timesheet"
	"github.com/ogurasousui/staffing-engine/internal/core/usecase"
	"github.com/ogurasousui/staffing-engine/internal/core/workforce"
	"github.com/ogurasousui/staffing-engine/internal/platform/config"
	pg "github.com/ogurasousui/staffing-engine/internal/platform/db/postgres"
	"github.com/ogurasousui/staffing-engine/internal/platform/logger"
	"github.com/ogurasousui/staffing-engine/internal/platform/redis"
	"github.com/ogurasousui/staffing-engine/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(ctx, cfg, zl); err != nil {
		zl.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	dbPool, err := pg.NewPool(ctx, cfg.Database, zl)
	if err != nil {
		return fmt.Errorf("initialize database pool: %w", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool, pg.WithLogger(zl))
	locker := pg.NewAdvisoryLocker(dbPool)
	clock := usecase.RealClock()

	workforceRepo := postgres.NewWorkforceRepository(dbPool)
	contractRepo := postgres.NewContractRepository(dbPool)
	availabilityRepo := postgres.NewAvailabilityRepository(dbPool)
	exchangeRepo := postgres.NewExchangeRepository(dbPool)
	assignmentRepo := postgres.NewAssignmentRepository(dbPool)
	shiftRepo := postgres.NewShiftRepository(dbPool)
	timesheetRepo := postgres.NewTimesheetRepository(dbPool)
	billingRepo := postgres.NewBillingRepository(dbPool)

	workforceSvc := workforce.NewService(workforceRepo, clock, txManager, workforce.Options{Logger: zl.Named("workforce")})
	contractSvc := contract.NewService(contractRepo, clock, txManager, contract.Options{Logger: zl.Named("contract")})
	availabilitySvc := availability.NewService(availabilityRepo, clock, txManager, availability.Options{Logger: zl.Named("availability")})
	detector := availabilitySvc.Detector()

	assignmentSvc := assignment.NewService(assignmentRepo, contractRepo, workforceRepo, detector, locker, clock, txManager, assignment.Options{Logger: zl.Named("assignment")})
	exchangeSvc := exchange.NewService(exchangeRepo, workforceRepo, detector, assignmentSvc, clock, txManager, exchange.Options{Logger: zl.Named("exchange")})
	shiftSvc := shift.NewService(shiftRepo, assignmentRepo, workforceRepo, detector, locker, clock, txManager, shift.Options{
		OfferTTL:           cfg.Scheduling.OfferTTL,
		MaxGeneratedShifts: cfg.Scheduling.MaxGeneratedShifts,
		Logger:             zl.Named("shift"),
	})
	timesheetSvc := timesheet.NewService(timesheetRepo, shiftRepo, assignmentRepo, clock, txManager, timesheet.Options{Logger: zl.Named("timesheet")})
	reconciler := billing.NewReconciler(billingRepo, clock, txManager, billing.Options{
		PlatformFeePercent: cfg.Billing.PlatformFeePercent,
		Logger:             zl.Named("billing"),
	})

	dispatchers := events.Fanout{events.NewLog(zl.Named("events"))}
	if cfg.Redis.Enabled() {
		rdb, err := redis.NewClient(ctx, cfg.Redis, zl)
		if err != nil {
			return fmt.Errorf("initialize redis: %w", err)
		}
		defer rdb.Close()
		stream := events.NewRedisStream(rdb, cfg.Redis.Stream, zl.Named("events"))
		defer stream.Close()
		dispatchers = append(dispatchers, stream)
	}
	dispatchers = append(dispatchers, reconciler)

	staffing := handler.NewStaffingHandler(handler.Deps{
		Exchange:     exchangeSvc,
		Assignments:  assignmentSvc,
		Shifts:       shiftSvc,
		Timesheets:   timesheetSvc,
		Workforce:    workforceSvc,
		Contracts:    contractSvc,
		Availability: availabilitySvc,
		Billing:      reconciler,
		Calendar:     calendar.NewExporter(shiftSvc, clock),
		Dispatcher:   dispatchers,
	})

	auth := handler.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	grpcServer := server.New(cfg.Server.ListenAddr, staffing, auth, zl.Named("grpc"))

	return grpcServer.Run(ctx)
}
