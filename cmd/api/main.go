package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/peoplehr/hrms-backend-go/internal/config"
	appHTTP "github.com/peoplehr/hrms-backend-go/internal/handler/http"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/cron"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/jwt"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/storage"
	"github.com/peoplehr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplehr/hrms-backend-go/internal/service/attendance"
	authService "github.com/peoplehr/hrms-backend-go/internal/service/auth"
	claimService "github.com/peoplehr/hrms-backend-go/internal/service/claim"
	employeeService "github.com/peoplehr/hrms-backend-go/internal/service/employee"
	leaveService "github.com/peoplehr/hrms-backend-go/internal/service/leave"
	scheduleService "github.com/peoplehr/hrms-backend-go/internal/service/schedule"
	timesheetService "github.com/peoplehr/hrms-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logLevel := parseLogLevel(cfg.App.LogLevel)
	slog.SetLogLoggerLevel(logLevel)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	claimRepo := postgresql.NewClaimRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(shiftRepo, assignmentRepo, employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, assignmentRepo, employeeRepo, timesheetSvc, slog.Default())
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	claimSvc := claimService.NewClaimService(claimRepo, employeeRepo, fileStorage)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := scheduleSvc.SeedDefaultShifts(ctx); err != nil {
		log.Fatal("Failed to seed default shifts: ", err)
	}

	sweepInterval, err := time.ParseDuration(cfg.Sweep.Interval)
	if err != nil {
		log.Fatal("Invalid ABSENCE_SWEEP_INTERVAL: ", err)
	}

	scheduler := cron.NewScheduler()
	scheduler.AddJob("absence-sweep", sweepInterval, cron.AbsenceSweepJob(attendanceSvc, cfg.Sweep.Target))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		JWTService:  JWTService,
		FrontendURL: cfg.App.FrontendURL,
		Env:         cfg.App.Env,
		LogLevel:    logLevel,

		AuthHandler:       appHTTP.NewAuthHandler(authSvc),
		EmployeeHandler:   appHTTP.NewEmployeeHandler(employeeSvc),
		ScheduleHandler:   appHTTP.NewScheduleHandler(scheduleSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		TimesheetHandler:  appHTTP.NewTimesheetHandler(timesheetSvc),
		LeaveHandler:      appHTTP.NewLeaveHandler(leaveSvc),
		ClaimHandler:      appHTTP.NewClaimHandler(claimSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
