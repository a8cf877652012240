package payroll

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/employee"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/payroll"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/format"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	companyName  string
}

func NewPayrollService(repo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository, companyName string) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: repo,
		employeeRepo:      employeeRepo,
		companyName:       companyName,
	}
}

// ListPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayroll(ctx context.Context, query string) ([]payroll.PayrollRowResponse, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]payroll.PayrollRowResponse, 0, len(records))
	for _, rec := range records {
		emp, err := s.employeeRepo.GetByID(ctx, rec.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				// Orphaned record, e.g. after an employee delete. Skip it
				// from the joined view rather than failing the whole list.
				slog.Warn("payroll record references missing employee", "employee_id", rec.EmployeeID)
				continue
			}
			return nil, err
		}

		if needle != "" &&
			!strings.Contains(strings.ToLower(emp.Name), needle) &&
			!strings.Contains(strings.ToLower(emp.Department), needle) {
			continue
		}

		out = append(out, joinRow(rec, emp))
	}
	return out, nil
}

// Summary implements payroll.PayrollService. Totals are exact sums; only the
// display string is abbreviated.
func (s *PayrollServiceImpl) Summary(ctx context.Context) (payroll.PayrollSummaryResponse, error) {
	records, err := s.List(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	total := decimal.Zero
	hours := 0
	deductionHours := 0
	for _, rec := range records {
		total = total.Add(rec.FinalSalary)
		hours += rec.HoursWorked
		deductionHours += rec.LeaveDeductions
	}

	return payroll.PayrollSummaryResponse{
		TotalPayroll:        total,
		TotalPayrollDisplay: format.MoneyThousands(total),
		TotalHours:          hours,
		TotalDeductionHours: deductionHours,
	}, nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID int) (payroll.PayslipResponse, error) {
	rec, err := s.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	deduction := emp.Salary.Sub(rec.FinalSalary)
	now := time.Now()

	return payroll.PayslipResponse{
		CompanyName:  s.companyName,
		Period:       format.MonthYear(now),
		EmployeeName: emp.Name,
		EmployeeCode: format.EmployeeCode(emp.EmployeeID),
		Department:   emp.Department,
		Position:     emp.Position,

		BasicSalary:        emp.Salary,
		BasicSalaryDisplay: format.Money(emp.Salary),
		HoursWorked:        rec.HoursWorked,

		LeaveDeductionHours: rec.LeaveDeductions,
		Deduction:           deduction,
		DeductionDisplay:    format.Money(deduction),

		NetPay:        rec.FinalSalary,
		NetPayDisplay: format.Money(rec.FinalSalary),

		GeneratedOn: format.NumericDate(now),
	}, nil
}

// DownloadPayslip implements payroll.PayrollService. The download is a
// notification-only stub: it confirms the action but produces no file.
func (s *PayrollServiceImpl) DownloadPayslip(ctx context.Context, employeeID int) (payroll.DownloadPayslipResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.DownloadPayslipResponse{}, err
	}
	if _, err := s.GetByEmployeeID(ctx, employeeID); err != nil {
		return payroll.DownloadPayslipResponse{}, err
	}

	return payroll.DownloadPayslipResponse{
		Message: "Payslip for " + emp.Name + " has been downloaded.",
	}, nil
}

func joinRow(rec payroll.PayrollRecord, emp employee.Employee) payroll.PayrollRowResponse {
	deduction := emp.Salary.Sub(rec.FinalSalary)
	return payroll.PayrollRowResponse{
		EmployeeID:         rec.EmployeeID,
		EmployeeName:       emp.Name,
		Position:           emp.Position,
		Department:         emp.Department,
		HoursWorked:        rec.HoursWorked,
		BaseSalary:         emp.Salary,
		BaseSalaryDisplay:  format.Money(emp.Salary),
		Deduction:          deduction,
		DeductionDisplay:   format.Money(deduction),
		FinalSalary:        rec.FinalSalary,
		FinalSalaryDisplay: format.Money(rec.FinalSalary),
	}
}
