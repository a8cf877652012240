package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/payroll"
	"github.com/moderntech-solutions/hrms-backend-go/internal/fixtures"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/format"
	"github.com/moderntech-solutions/hrms-backend-go/internal/repository/memory"
)

func newTestPayrollService() (payroll.PayrollService, *memory.EmployeeRepository) {
	employeeRepo := memory.NewEmployeeRepository(fixtures.Employees())
	payrollRepo := memory.NewPayrollRepository(fixtures.PayrollRecords())
	return NewPayrollService(payrollRepo, employeeRepo, fixtures.CompanyName), employeeRepo
}

// Test the joined payroll table over the full fixture set
func TestPayrollService_ListPayroll_All(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestPayrollService()

	rows, err := service.ListPayroll(ctx, "")
	assert.NoError(t, err)
	require.Len(t, rows, 10)

	first := rows[0]
	assert.Equal(t, 1, first.EmployeeID)
	assert.Equal(t, "Sibongile Nkosi", first.EmployeeName)
	assert.Equal(t, "Development", first.Department)
	assert.Equal(t, 160, first.HoursWorked)
	assert.Equal(t, "R70,000", first.BaseSalaryDisplay)
	assert.Equal(t, "R2,000", first.DeductionDisplay)
	assert.Equal(t, "R68,000", first.FinalSalaryDisplay)
	assert.True(t, first.Deduction.Equal(decimal.NewFromInt(2000)))
}

// Test the payroll filter matches name and department
func TestPayrollService_ListPayroll_Filter(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestPayrollService()

	byName, err := service.ListPayroll(ctx, "patel")
	assert.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, 10, byName[0].EmployeeID)

	byDepartment, err := service.ListPayroll(ctx, "marketing")
	assert.NoError(t, err)
	assert.Len(t, byDepartment, 2)
}

// Test that records of a deleted employee drop out of the joined view
func TestPayrollService_ListPayroll_SkipsOrphans(t *testing.T) {
	ctx := context.Background()
	service, employeeRepo := newTestPayrollService()

	require.NoError(t, employeeRepo.Delete(ctx, 4))

	rows, err := service.ListPayroll(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, rows, 9)
	for _, row := range rows {
		assert.NotEqual(t, 4, row.EmployeeID)
	}
}

// Test the summary totals and abbreviated display
func TestPayrollService_Summary(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestPayrollService()

	summary, err := service.Summary(ctx)
	assert.NoError(t, err)
	assert.True(t, summary.TotalPayroll.Equal(decimal.NewFromInt(615000)))
	assert.Equal(t, "R615K", summary.TotalPayrollDisplay)
	assert.Equal(t, 1596, summary.TotalHours)
	assert.Equal(t, 48, summary.TotalDeductionHours)
}

// Test the payslip assembly for one employee
func TestPayrollService_GetPayslip(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestPayrollService()

	payslip, err := service.GetPayslip(ctx, 1)
	assert.NoError(t, err)

	now := time.Now()
	assert.Equal(t, "ModernTech Solutions", payslip.CompanyName)
	assert.Equal(t, format.MonthYear(now), payslip.Period)
	assert.Equal(t, "Sibongile Nkosi", payslip.EmployeeName)
	assert.Equal(t, "EMP-0001", payslip.EmployeeCode)
	assert.Equal(t, "Development", payslip.Department)
	assert.Equal(t, "Software Engineer", payslip.Position)
	assert.Equal(t, "R70,000", payslip.BasicSalaryDisplay)
	assert.Equal(t, 160, payslip.HoursWorked)
	assert.Equal(t, 8, payslip.LeaveDeductionHours)
	assert.Equal(t, "R2,000", payslip.DeductionDisplay)
	assert.Equal(t, "R68,000", payslip.NetPayDisplay)
	assert.Equal(t, format.NumericDate(now), payslip.GeneratedOn)
}

// Test payslip for an unknown employee
func TestPayrollService_GetPayslip_NotFound(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestPayrollService()

	_, err := service.GetPayslip(ctx, 99)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

// Test the download stub confirms without producing a file
func TestPayrollService_DownloadPayslip(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestPayrollService()

	result, err := service.DownloadPayslip(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, "Payslip for Lungile Moyo has been downloaded.", result.Message)
}
