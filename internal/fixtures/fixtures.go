// Package fixtures is the sole data source of the dashboard: a static
// ModernTech Solutions sample dataset loaded once at startup. A restart
// restores it; nothing here is ever persisted.
package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/attendance"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/auth"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/employee"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/leave"
	"github.com/moderntech-solutions/hrms-backend-go/internal/domain/payroll"
)

// CompanyName appears on payslips.
const CompanyName = "ModernTech Solutions"

func zar(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// ==========================================
// MOCK CREDENTIALS
// ==========================================

// Credentials is the fixed login list. Secrets are bcrypt hashes of the
// well-known sample passwords (admin123, hr123).
func Credentials() []auth.Credential {
	return []auth.Credential{
		{
			Email:        "admin@moderntech.com",
			PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeMiMwiT/hYv/GXAzJLiUmBNwmYD4kh02",
			Name:         "Admin User",
			Role:         "Administrator",
		},
		{
			Email:        "hr@moderntech.com",
			PasswordHash: "$2a$10$wSsBAiVFXIT8pSTfWGnWteUSRe84ttnjj7USgaEq0CsY5CcBywiCi",
			Name:         "HR Manager",
			Role:         "HR Staff",
		},
	}
}

// ==========================================
// EMPLOYEES
// ==========================================

func Employees() []employee.Employee {
	return []employee.Employee{
		{EmployeeID: 1, Name: "Sibongile Nkosi", Position: "Software Engineer", Department: "Development", Salary: zar(70000), EmploymentHistory: "Joined in 2015, promoted to Senior in 2018", Contact: "sibongile.nkosi@moderntech.com"},
		{EmployeeID: 2, Name: "Lungile Moyo", Position: "HR Manager", Department: "HR", Salary: zar(80000), EmploymentHistory: "Joined in 2013, promoted to Manager in 2017", Contact: "lungile.moyo@moderntech.com"},
		{EmployeeID: 3, Name: "Thabo Molefe", Position: "Quality Analyst", Department: "QA", Salary: zar(55000), EmploymentHistory: "Joined in 2018", Contact: "thabo.molefe@moderntech.com"},
		{EmployeeID: 4, Name: "Keshav Naidoo", Position: "Sales Representative", Department: "Sales", Salary: zar(60000), EmploymentHistory: "Joined in 2020", Contact: "keshav.naidoo@moderntech.com"},
		{EmployeeID: 5, Name: "Zanele Khumalo", Position: "Marketing Specialist", Department: "Marketing", Salary: zar(58000), EmploymentHistory: "Joined in 2019", Contact: "zanele.khumalo@moderntech.com"},
		{EmployeeID: 6, Name: "Sipho Zulu", Position: "UI/UX Designer", Department: "Design", Salary: zar(65000), EmploymentHistory: "Joined in 2016", Contact: "sipho.zulu@moderntech.com"},
		{EmployeeID: 7, Name: "Naledi Moeketsi", Position: "DevOps Engineer", Department: "IT", Salary: zar(72000), EmploymentHistory: "Joined in 2017", Contact: "naledi.moeketsi@moderntech.com"},
		{EmployeeID: 8, Name: "Farai Gumbo", Position: "Content Strategist", Department: "Marketing", Salary: zar(56000), EmploymentHistory: "Joined in 2021", Contact: "farai.gumbo@moderntech.com"},
		{EmployeeID: 9, Name: "Karabo Dlamini", Position: "Accountant", Department: "Finance", Salary: zar(62000), EmploymentHistory: "Joined in 2018", Contact: "karabo.dlamini@moderntech.com"},
		{EmployeeID: 10, Name: "Fatima Patel", Position: "Customer Support Lead", Department: "Support", Salary: zar(58000), EmploymentHistory: "Joined in 2014, promoted to Lead in 2019", Contact: "fatima.patel@moderntech.com"},
	}
}

// ==========================================
// ATTENDANCE
// ==========================================

// AttendanceRecords covers the working week of 21-25 July 2025, one day per
// (employee, date). 45 of the 50 days are Present, for a 90% overall rate.
func AttendanceRecords() []attendance.EmployeeAttendance {
	week := []time.Time{
		day(2025, time.July, 21),
		day(2025, time.July, 22),
		day(2025, time.July, 23),
		day(2025, time.July, 24),
		day(2025, time.July, 25),
	}

	// absentOn marks the single absent day per employee, zero for none.
	sheet := func(id int, name string, absentOn time.Time) attendance.EmployeeAttendance {
		days := make([]attendance.AttendanceDay, 0, len(week))
		for _, date := range week {
			status := attendance.DayStatusPresent
			if date.Equal(absentOn) {
				status = attendance.DayStatusAbsent
			}
			days = append(days, attendance.AttendanceDay{Date: date, Status: status})
		}
		return attendance.EmployeeAttendance{EmployeeID: id, Name: name, Days: days}
	}

	var none time.Time
	return []attendance.EmployeeAttendance{
		sheet(1, "Sibongile Nkosi", day(2025, time.July, 22)),
		sheet(2, "Lungile Moyo", none),
		sheet(3, "Thabo Molefe", day(2025, time.July, 23)),
		sheet(4, "Keshav Naidoo", none),
		sheet(5, "Zanele Khumalo", day(2025, time.July, 21)),
		sheet(6, "Sipho Zulu", none),
		sheet(7, "Naledi Moeketsi", day(2025, time.July, 24)),
		sheet(8, "Farai Gumbo", none),
		sheet(9, "Karabo Dlamini", none),
		sheet(10, "Fatima Patel", day(2025, time.July, 23)),
	}
}

// ==========================================
// LEAVE REQUESTS
// ==========================================

func LeaveRequests() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{EmployeeID: 1, EmployeeName: "Sibongile Nkosi", Date: day(2025, time.July, 22), Reason: "Sick Leave", Status: leave.LeaveRequestStatusApproved},
		{EmployeeID: 2, EmployeeName: "Lungile Moyo", Date: day(2025, time.July, 28), Reason: "Family Responsibility", Status: leave.LeaveRequestStatusPending},
		{EmployeeID: 3, EmployeeName: "Thabo Molefe", Date: day(2025, time.July, 23), Reason: "Personal", Status: leave.LeaveRequestStatusDenied},
		{EmployeeID: 4, EmployeeName: "Keshav Naidoo", Date: day(2025, time.July, 30), Reason: "Vacation", Status: leave.LeaveRequestStatusPending},
		{EmployeeID: 5, EmployeeName: "Zanele Khumalo", Date: day(2025, time.July, 21), Reason: "Medical Appointment", Status: leave.LeaveRequestStatusApproved},
		{EmployeeID: 6, EmployeeName: "Sipho Zulu", Date: day(2025, time.August, 1), Reason: "Vacation", Status: leave.LeaveRequestStatusPending},
		{EmployeeID: 7, EmployeeName: "Naledi Moeketsi", Date: day(2025, time.July, 24), Reason: "Sick Leave", Status: leave.LeaveRequestStatusApproved},
		{EmployeeID: 8, EmployeeName: "Farai Gumbo", Date: day(2025, time.July, 25), Reason: "Personal", Status: leave.LeaveRequestStatusDenied},
		{EmployeeID: 9, EmployeeName: "Karabo Dlamini", Date: day(2025, time.July, 29), Reason: "Study Leave", Status: leave.LeaveRequestStatusPending},
		{EmployeeID: 10, EmployeeName: "Fatima Patel", Date: day(2025, time.July, 23), Reason: "Sick Leave", Status: leave.LeaveRequestStatusApproved},
	}
}

// ==========================================
// PAYROLL
// ==========================================

func PayrollRecords() []payroll.PayrollRecord {
	return []payroll.PayrollRecord{
		{EmployeeID: 1, HoursWorked: 160, LeaveDeductions: 8, FinalSalary: zar(68000)},
		{EmployeeID: 2, HoursWorked: 152, LeaveDeductions: 10, FinalSalary: zar(76000)},
		{EmployeeID: 3, HoursWorked: 168, LeaveDeductions: 4, FinalSalary: zar(53000)},
		{EmployeeID: 4, HoursWorked: 160, LeaveDeductions: 0, FinalSalary: zar(60000)},
		{EmployeeID: 5, HoursWorked: 156, LeaveDeductions: 6, FinalSalary: zar(55000)},
		{EmployeeID: 6, HoursWorked: 168, LeaveDeductions: 0, FinalSalary: zar(65000)},
		{EmployeeID: 7, HoursWorked: 160, LeaveDeductions: 8, FinalSalary: zar(69000)},
		{EmployeeID: 8, HoursWorked: 160, LeaveDeductions: 4, FinalSalary: zar(54000)},
		{EmployeeID: 9, HoursWorked: 152, LeaveDeductions: 5, FinalSalary: zar(59000)},
		{EmployeeID: 10, HoursWorked: 160, LeaveDeductions: 3, FinalSalary: zar(56000)},
	}
}
