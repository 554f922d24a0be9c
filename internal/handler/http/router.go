package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	JWTService  jwt.Service
	FrontendURL string
	Env         string
	LogLevel    slog.Level

	AuthHandler       AuthHandler
	EmployeeHandler   EmployeeHandler
	ScheduleHandler   ScheduleHandler
	AttendanceHandler AttendanceHandler
	TimesheetHandler  TimesheetHandler
	LeaveHandler      LeaveHandler
	ClaimHandler      ClaimHandler
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))

				r.Get("/verify", cfg.AuthHandler.Verify)
				r.Post("/change-password", cfg.AuthHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/profile", cfg.EmployeeHandler.GetProfile)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", cfg.EmployeeHandler.List)
					r.Post("/", cfg.EmployeeHandler.Create)
					r.Get("/stats", cfg.EmployeeHandler.GetStats)
					r.Put("/bulk-status", cfg.EmployeeHandler.BulkUpdateStatus)
					r.Get("/{id}", cfg.EmployeeHandler.Get)
					r.Put("/{id}", cfg.EmployeeHandler.Update)
					r.Delete("/{id}", cfg.EmployeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", cfg.AttendanceHandler.ClockIn)
				r.Post("/clock-out", cfg.AttendanceHandler.ClockOut)
				r.Get("/status", cfg.AttendanceHandler.GetStatus)
				r.Get("/my", cfg.AttendanceHandler.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", cfg.AttendanceHandler.List)
					r.Get("/late-arrivals", cfg.AttendanceHandler.GetLateArrivals)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", cfg.ScheduleHandler.Query)
				r.Get("/shifts", cfg.ScheduleHandler.ListShifts)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/assign", cfg.ScheduleHandler.Assign)
					r.Delete("/remove", cfg.ScheduleHandler.Remove)
				})
			})

			r.Route("/timesheet", func(r chi.Router) {
				r.Get("/", cfg.TimesheetHandler.List)
				r.Get("/stats", cfg.TimesheetHandler.GetStats)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", cfg.TimesheetHandler.Create)
					r.Put("/", cfg.TimesheetHandler.Upsert)
					r.Get("/summary", cfg.TimesheetHandler.GetMonthlySummary)
					r.Get("/{id}", cfg.TimesheetHandler.Get)
					r.Put("/{id}", cfg.TimesheetHandler.Update)
					r.Delete("/{id}", cfg.TimesheetHandler.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", cfg.LeaveHandler.List)
				r.Post("/", cfg.LeaveHandler.Create)
				r.Get("/balance", cfg.LeaveHandler.GetBalance)
				r.Get("/{id}", cfg.LeaveHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}/review", cfg.LeaveHandler.Review)
				})
			})

			r.Route("/claims", func(r chi.Router) {
				r.Get("/", cfg.ClaimHandler.List)
				r.Post("/", cfg.ClaimHandler.Create)
				r.Get("/{id}", cfg.ClaimHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}/review", cfg.ClaimHandler.Review)
				})
			})
		})
	})
	return r
}
