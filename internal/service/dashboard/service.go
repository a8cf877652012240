package dashboard

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/attendance"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/dashboard"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/employee"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/leave"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/payroll"
	"github.com/moderntech-solutions/hrms-backend-go/internal/pkg/format"
)

const recentLeaveLimit = 5

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	payrollRepo    payroll.PayrollRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	payrollRepo payroll.PayrollRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
	}
}

// GetDashboard returns combined dashboard data. The four aggregates are
// independent, so they run in parallel goroutines.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	var (
		totalEmployees int
		distribution   []dashboard.DepartmentCount
		attendanceRate int
		pendingLeaves  int
		recentLeaves   []dashboard.RecentLeave
		totalPayroll   decimal.Decimal
		payrollByDept  []dashboard.DepartmentAmount
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employee head count and department distribution
	g.Go(func() error {
		employees, err := s.employeeRepo.List(gCtx)
		if err != nil {
			return err
		}
		totalEmployees = len(employees)
		distribution = departmentDistribution(employees)
		return nil
	})

	// 2. Overall attendance rate
	g.Go(func() error {
		records, err := s.attendanceRepo.List(gCtx)
		if err != nil {
			return err
		}
		attendanceRate = overallRate(records)
		return nil
	})

	// 3. Pending count and the five most recent requests
	g.Go(func() error {
		requests, err := s.leaveRepo.ListAll(gCtx)
		if err != nil {
			return err
		}
		for _, req := range requests {
			if req.Status == leave.LeaveRequestStatusPending {
				pendingLeaves++
			}
		}
		recentLeaves = mostRecent(requests, recentLeaveLimit)
		return nil
	})

	// 4. Payroll total and per-department sums (joined with employees)
	g.Go(func() error {
		records, err := s.payrollRepo.List(gCtx)
		if err != nil {
			return err
		}
		employees, err := s.employeeRepo.List(gCtx)
		if err != nil {
			return err
		}
		totalPayroll, payrollByDept = payrollAggregates(records, employees)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		TotalEmployees:         totalEmployees,
		AttendanceRate:         attendanceRate,
		AttendanceRateDisplay:  format.Percent(attendanceRate),
		PendingLeaves:          pendingLeaves,
		MonthlyPayroll:         totalPayroll,
		MonthlyPayrollDisplay:  format.MoneyThousands(totalPayroll),
		DepartmentDistribution: distribution,
		PayrollByDepartment:    payrollByDept,
		RecentLeaves:           recentLeaves,
	}, nil
}

// departmentDistribution groups employees by department in first-seen order.
// An empty department name forms its own group rather than being dropped.
func departmentDistribution(employees []employee.Employee) []dashboard.DepartmentCount {
	index := make(map[string]int)
	var out []dashboard.DepartmentCount
	for _, emp := range employees {
		i, ok := index[emp.Department]
		if !ok {
			i = len(out)
			index[emp.Department] = i
			out = append(out, dashboard.DepartmentCount{Department: emp.Department})
		}
		out[i].Count++
	}
	return out
}

// overallRate is the present-day share across every attendance day of every
// employee, rounded to the nearest integer percent.
func overallRate(records []attendance.EmployeeAttendance) int {
	present, total := 0, 0
	for _, rec := range records {
		for _, d := range rec.Days {
			total++
			if d.Status == attendance.DayStatusPresent {
				present++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

func mostRecent(requests []leave.LeaveRequest, limit int) []dashboard.RecentLeave {
	sorted := make([]leave.LeaveRequest, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]dashboard.RecentLeave, 0, len(sorted))
	for _, req := range sorted {
		out = append(out, dashboard.RecentLeave{
			EmployeeName: req.EmployeeName,
			Reason:       req.Reason,
			Date:         format.ISODate(req.Date),
			DateDisplay:  format.ShortDate(req.Date),
			Status:       string(req.Status),
		})
	}
	return out
}

// payrollAggregates joins payroll onto employees and sums final salaries,
// overall and per department in first-seen order. Orphaned records are
// skipped with a diagnostic.
func payrollAggregates(records []payroll.PayrollRecord, employees []employee.Employee) (decimal.Decimal, []dashboard.DepartmentAmount) {
	byID := make(map[int]employee.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.EmployeeID] = emp
	}

	total := decimal.Zero
	index := make(map[string]int)
	var byDept []dashboard.DepartmentAmount
	for _, rec := range records {
		emp, ok := byID[rec.EmployeeID]
		if !ok {
			slog.Warn("payroll record references missing employee", "employee_id", rec.EmployeeID)
			continue
		}
		total = total.Add(rec.FinalSalary)

		i, ok := index[emp.Department]
		if !ok {
			i = len(byDept)
			index[emp.Department] = i
			byDept = append(byDept, dashboard.DepartmentAmount{Department: emp.Department})
		}
		byDept[i].Amount = byDept[i].Amount.Add(rec.FinalSalary)
	}

	for i := range byDept {
		byDept[i].AmountDisplay = format.MoneyThousands(byDept[i].Amount)
	}
	return total, byDept
}
