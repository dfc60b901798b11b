package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	"github.com/staffhive/payroll-backend-go/internal/domain/payroll"
)

// ComputeESI derives one Employee State Insurance report row. Earnings
// strictly above the exemption threshold zero out both contributions;
// earnings at exactly the threshold are still insurable.
func ComputeESI(emp employee.Employee, stats attendance.MonthlyStats) payroll.ESILineItem {
	earned := earnedAmounts(emp, stats)
	grossEarnings := earned.Gross()

	employeeESI := decimal.Zero
	employerESI := decimal.Zero
	if !grossEarnings.GreaterThan(esiExemptionThreshold) {
		employeeESI = round(grossEarnings.Mul(esiEmployeeRate))
		employerESI = round(grossEarnings.Mul(esiEmployerRate))
	}

	return payroll.ESILineItem{
		EmployeeNo:    emp.EmployeeNo,
		Name:          emp.FullName,
		ESINumber:     emp.ESINumber,
		DaysPresent:   stats.PresentDays,
		GrossEarnings: grossEarnings,
		EmployeeESI:   employeeESI,
		EmployerESI:   employerESI,
		TotalESI:      employeeESI.Add(employerESI),
	}
}
