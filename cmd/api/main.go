package main

import (
	"fmt"
	"net/http"

	"github.com/moderntech-solutions/hrms-backend-go/internal/config"
	"github.com/moderntech-solutions/hrms-backend-go/internal/fixtures"
	appHTTP "github.com/moderntech-solutions/hrms-backend-go/internal/handler/http"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/jwt"
	"github.com/moderntech-solutions/hrms-backend-go/internal/repository/memory"
	attendanceService "github.com/moderntech-solutions/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/moderntech-solutions/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/moderntech-solutions/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/moderntech-solutions/hrms-backend-go/internal/service/employee"
	leaveService "github.com/moderntech-solutions/hrms-backend-go/internal/service/leave"
	payrollService "github.com/moderntech-solutions/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	employeeRepo := memory.NewEmployeeRepository(fixtures.Employees())
	attendanceRepo := memory.NewAttendanceRepository(fixtures.AttendanceRecords())
	leaveRepo := memory.NewLeaveRepository(fixtures.LeaveRequests())
	payrollRepo := memory.NewPayrollRepository(fixtures.PayrollRecords())

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiration)

	authSvc := serviceAuth.NewAuthService(fixtures.Credentials(), JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, fixtures.CompanyName)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRepo, payrollRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
