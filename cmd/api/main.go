package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/workzen/hrms-backend-go/internal/config"
	appHTTP "github.com/workzen/hrms-backend-go/internal/handler/http"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
	"github.com/workzen/hrms-backend-go/internal/pkg/jwt"
	"github.com/workzen/hrms-backend-go/internal/pkg/oauth"
	"github.com/workzen/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workzen/hrms-backend-go/internal/service/attendance"
	authService "github.com/workzen/hrms-backend-go/internal/service/auth"
	employeeService "github.com/workzen/hrms-backend-go/internal/service/employee"
	leaveService "github.com/workzen/hrms-backend-go/internal/service/leave"
	payrollService "github.com/workzen/hrms-backend-go/internal/service/payroll"
	reviewService "github.com/workzen/hrms-backend-go/internal/service/review"
	"github.com/workzen/hrms-backend-go/migrations"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.App.Env == "development" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(cfg.DatabaseURL(), migrations.FS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)

	// Shared infrastructure
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiration,
		cfg.JWT.RefreshExpiration,
	)

	var googleService oauth.GoogleService
	if cfg.GoogleLoginEnabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	// Services
	empService := employeeService.NewEmployeeService(db, employeeRepo)
	attService := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	lvService := leaveService.NewLeaveService(db, leaveRepo, employeeRepo)
	payService := payrollService.NewPayrollService(db, payrollRepo, attendanceRepo, employeeRepo)
	revService := reviewService.NewReviewService(db, reviewRepo, employeeRepo)
	autService := authService.NewAuthService(db, employeeRepo, jwtService, googleService)

	// Handlers
	authHandler := appHTTP.NewAuthHandler(jwtService, autService)
	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attService)
	leaveHandler := appHTTP.NewLeaveHandler(lvService)
	payrollHandler := appHTTP.NewPayrollHandler(payService)
	reviewHandler := appHTTP.NewReviewHandler(revService)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		reviewHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
