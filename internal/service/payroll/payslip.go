package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	"github.com/staffhive/payroll-backend-go/internal/domain/payroll"
)

// ComputePayslip derives one printable monthly slip. The slip works off the
// fixed monthly gross (the stored gross salary, else basic + HRA +
// allowances), not the attendance-prorated earnings the PF and ESI reports
// use. Its PF base excludes overtime and its ESI line ignores the exemption
// threshold. These formulas intentionally differ from ComputePF/ComputeESI;
// do not unify them without sign-off from payroll.
func ComputePayslip(emp employee.Employee, stats attendance.MonthlyStats) payroll.Payslip {
	monthlyGross := emp.BasicSalary.Add(emp.HRA).Add(emp.Allowances)
	if emp.GrossSalary != nil && !emp.GrossSalary.IsZero() {
		monthlyGross = *emp.GrossSalary
	}

	otAmount := round(decimal.NewFromFloat(stats.OTHours).Mul(overtimeRate))

	pfBase := emp.BasicSalary.Add(emp.HRA).Add(emp.Allowances)
	pf := round(pfBase.Mul(pfEmployeeRate))
	if pf.GreaterThan(pfCeiling) {
		pf = pfCeiling
	}

	esi := round(monthlyGross.Mul(esiEmployeeRate))

	totalDeductions := pf.Add(esi)
	netPay := monthlyGross.Add(otAmount).Sub(totalDeductions)

	return payroll.Payslip{
		EmployeeNo: emp.EmployeeNo,
		Name:       emp.FullName,
		Position:   emp.Position,
		PFNumber:   emp.PFNumber,
		ESINumber:  emp.ESINumber,

		BasicDA:         monthlyGross,
		HRA:             emp.HRA,
		Conveyance:      decimal.Zero,
		OtherAllowances: emp.Allowances,
		OvertimeAmount:  otAmount,
		GrossEarnings:   monthlyGross,

		PF:              pf,
		ESI:             esi,
		Advance:         decimal.Zero,
		Food:            decimal.Zero,
		OtherDeductions: decimal.Zero,
		TotalDeductions: totalDeductions,

		NetPay: netPay,
	}
}
