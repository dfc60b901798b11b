package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/staffhive/payroll-backend-go/internal/config"
	appHTTP "github.com/staffhive/payroll-backend-go/internal/handler/http"
	"github.com/staffhive/payroll-backend-go/internal/pkg/database"
	"github.com/staffhive/payroll-backend-go/internal/pkg/jwt"
	"github.com/staffhive/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhive/payroll-backend-go/internal/service/attendance"
	serviceAuth "github.com/staffhive/payroll-backend-go/internal/service/auth"
	employeeService "github.com/staffhive/payroll-backend-go/internal/service/employee"
	"github.com/staffhive/payroll-backend-go/internal/service/master"
	reportService "github.com/staffhive/payroll-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	}))

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	masterSvc := master.NewMasterService(branchRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, logger)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, logger)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		masterHandler,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
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
