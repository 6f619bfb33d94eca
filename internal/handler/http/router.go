package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workzen/hrms-backend-go/internal/config"
	"github.com/workzen/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workzen/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	reviewHandler ReviewHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workzen-hrms"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Post("/employee-code", authHandler.LoginWithEmployeeCode)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.Get)
				r.Get("/code/{code}", employeeHandler.GetByCode)
				r.Get("/{id}/subordinates", employeeHandler.Subordinates)

				r.Group(func(r chi.Router) {
					r.Use(middleware.CanManageEmployees)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/{id}", attendanceHandler.Get)
				r.Get("/employee/{employeeID}", attendanceHandler.ListByEmployee)
				r.Get("/employee/{employeeID}/monthly", attendanceHandler.Monthly)
				r.Get("/employee/{employeeID}/summary", attendanceHandler.Summary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", attendanceHandler.ListByDate)
					r.Post("/", attendanceHandler.Create)
					r.Put("/{id}", attendanceHandler.Update)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/{id}", leaveHandler.Get)
				r.Post("/{id}/cancel", leaveHandler.Cancel)
				r.Get("/employee/{employeeID}", leaveHandler.ListByEmployee)
				r.Get("/employee/{employeeID}/balance", leaveHandler.Balance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.CanApproveLeave)
					r.Get("/pending", leaveHandler.ListPending)
					r.Get("/approver/{approverID}/pending", leaveHandler.PendingApprovals)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/{id}", payrollHandler.Get)
				r.Get("/{id}/payslip", payrollHandler.Payslip)
				r.Get("/employee/{employeeID}", payrollHandler.GetByEmployeeAndMonth)
				r.Get("/employee/{employeeID}/yearly", payrollHandler.ListByYear)

				r.Group(func(r chi.Router) {
					r.Use(middleware.CanProcessPayroll)
					r.Post("/generate", payrollHandler.Generate)
					r.Get("/", payrollHandler.ListByMonth)
				})
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/{id}", reviewHandler.Get)
				r.Post("/{id}/acknowledge", reviewHandler.Acknowledge)
				r.Get("/employee/{employeeID}", reviewHandler.ListByEmployee)
				r.Get("/employee/{employeeID}/average-rating", reviewHandler.AverageRating)

				r.Group(func(r chi.Router) {
					r.Use(middleware.CanReviewPerformance)
					r.Post("/", reviewHandler.Create)
					r.Put("/{id}", reviewHandler.Update)
					r.Post("/{id}/submit", reviewHandler.Submit)
					r.Post("/{id}/complete", reviewHandler.Complete)
					r.Get("/reviewer/{reviewerID}", reviewHandler.ListByReviewer)
				})
			})
		})
	})

	return r
}
