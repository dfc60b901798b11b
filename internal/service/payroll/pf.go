package payroll

import (
	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	"github.com/staffhive/payroll-backend-go/internal/domain/payroll"
)

// ComputePF derives one Provident Fund report row. The PF-eligible gross
// includes overtime; the employee's 12% share is capped at the statutory
// ceiling while the employer split is not.
func ComputePF(emp employee.Employee, stats attendance.MonthlyStats) payroll.PFLineItem {
	earned := earnedAmounts(emp, stats)
	pfBasic := earned.Gross()

	employeeContribution := round(pfBasic.Mul(pfEmployeeRate))
	if employeeContribution.GreaterThan(pfCeiling) {
		employeeContribution = pfCeiling
	}

	employerEPF := round(pfBasic.Mul(epfRate))
	employerEPS := round(pfBasic.Mul(epsRate))

	return payroll.PFLineItem{
		EmployeeNo:           emp.EmployeeNo,
		Name:                 emp.FullName,
		PFNumber:             emp.PFNumber,
		DaysPresent:          stats.PresentDays,
		PFBasic:              pfBasic,
		EmployeeContribution: employeeContribution,
		EmployerEPF:          employerEPF,
		EmployerEPS:          employerEPS,
		EmployerTotal:        employerEPF.Add(employerEPS),
	}
}
