package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/moderntech-solutions/hrms-backend-go/internal/config"
	"github.com/moderntech-solutions/hrms-backend-go/internal/handler/http/middleware"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-moderntech"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			// Logout only needs the token parsed, not validated, so a stale
			// session can still be cleared.
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Post("/logout", authHandler.Logout)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Get("/departments", employeeHandler.ListDepartments)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Put("/{id}", employeeHandler.UpdateEmployee)
				r.Delete("/{id}", employeeHandler.DeleteEmployee)
			})

			r.Get("/attendance", attendanceHandler.ListRecords)

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", leaveHandler.ListQueue)
				r.Get("/summary", leaveHandler.Summary)
				r.Post("/approve", leaveHandler.Approve)
				r.Post("/deny", leaveHandler.Deny)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPayroll)
				r.Get("/summary", payrollHandler.Summary)
				r.Get("/{employeeId}/payslip", payrollHandler.GetPayslip)
				r.Post("/{employeeId}/payslip/download", payrollHandler.DownloadPayslip)
			})

			r.Get("/dashboard", dashboardHandler.GetDashboard)
		})
	})
	return r
}
