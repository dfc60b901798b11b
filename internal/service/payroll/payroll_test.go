package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputePF_StandardScenario(t *testing.T) {
	emp := employee.Employee{
		EmployeeNo:  "EMP-001",
		FullName:    "Asha Verma",
		PFNumber:    "PF/123",
		BasicSalary: dec("10000"),
		DAAmount:    dec("2000"),
	}
	stats := attendance.MonthlyStats{PresentDays: 25, OTHours: 10}

	item := ComputePF(emp, stats)

	assert.Equal(t, "300600", item.PFBasic.String()) // 250000 + 50000 + 600
	assert.Equal(t, "1800", item.EmployeeContribution.String())
	assert.Equal(t, "25040", item.EmployerEPF.String()) // 300600 * 0.0833 = 25039.98
	assert.Equal(t, "11032", item.EmployerEPS.String()) // 300600 * 0.0367 = 11032.02
	assert.Equal(t, "36072", item.EmployerTotal.String())
	assert.Equal(t, 25.0, item.DaysPresent)
}

func TestComputePF_BelowCeiling(t *testing.T) {
	emp := employee.Employee{
		EmployeeNo:  "EMP-002",
		BasicSalary: dec("400"),
	}
	stats := attendance.MonthlyStats{PresentDays: 25}

	item := ComputePF(emp, stats)

	assert.Equal(t, "10000", item.PFBasic.String())
	assert.Equal(t, "1200", item.EmployeeContribution.String())
}

func TestComputePF_OvertimeCountsTowardBase(t *testing.T) {
	emp := employee.Employee{BasicSalary: dec("500")}

	withOT := ComputePF(emp, attendance.MonthlyStats{PresentDays: 20, OTHours: 5})
	withoutOT := ComputePF(emp, attendance.MonthlyStats{PresentDays: 20})

	assert.Equal(t, "10300", withOT.PFBasic.String())
	assert.Equal(t, "10000", withoutOT.PFBasic.String())
}

func TestComputeESI_AtThresholdStillInsurable(t *testing.T) {
	// 840/day over 25 days lands exactly on the 21000 exemption threshold.
	emp := employee.Employee{
		EmployeeNo:  "EMP-003",
		ESINumber:   "ESI/456",
		BasicSalary: dec("840"),
	}
	stats := attendance.MonthlyStats{PresentDays: 25}

	item := ComputeESI(emp, stats)

	assert.Equal(t, "21000", item.GrossEarnings.String())
	assert.Equal(t, "158", item.EmployeeESI.String()) // 157.5 rounds up
	assert.Equal(t, "683", item.EmployerESI.String()) // 682.5 rounds up
	assert.Equal(t, "841", item.TotalESI.String())
}

func TestComputeESI_AboveThresholdExempt(t *testing.T) {
	emp := employee.Employee{BasicSalary: dec("840.04")}
	stats := attendance.MonthlyStats{PresentDays: 25}

	item := ComputeESI(emp, stats)

	assert.Equal(t, "21001", item.GrossEarnings.String())
	assert.True(t, item.EmployeeESI.IsZero())
	assert.True(t, item.EmployerESI.IsZero())
	assert.True(t, item.TotalESI.IsZero())
}

func TestComputePayslip_ComponentGross(t *testing.T) {
	emp := employee.Employee{
		EmployeeNo:  "EMP-004",
		FullName:    "Ravi Iyer",
		Position:    "Fitter",
		BasicSalary: dec("15000"),
		HRA:         dec("3000"),
		Allowances:  dec("2000"),
	}
	stats := attendance.MonthlyStats{OTHours: 10}

	slip := ComputePayslip(emp, stats)

	assert.Equal(t, "20000", slip.GrossEarnings.String())
	assert.Equal(t, "600", slip.OvertimeAmount.String())
	assert.Equal(t, "1800", slip.PF.String()) // 12% of 20000 hits the cap
	assert.Equal(t, "150", slip.ESI.String()) // no exemption on the slip
	assert.Equal(t, "1950", slip.TotalDeductions.String())
	assert.Equal(t, "18650", slip.NetPay.String())
}

func TestComputePayslip_StoredGrossOverrides(t *testing.T) {
	gross := dec("25000")
	emp := employee.Employee{
		BasicSalary: dec("15000"),
		HRA:         dec("3000"),
		Allowances:  dec("2000"),
		GrossSalary: &gross,
	}

	slip := ComputePayslip(emp, attendance.MonthlyStats{})

	assert.Equal(t, "25000", slip.GrossEarnings.String())
	// PF base stays on the salary components, not the stored gross.
	assert.Equal(t, "1800", slip.PF.String())
	// ESI follows the stored gross.
	assert.Equal(t, "188", slip.ESI.String()) // 187.5 rounds up
	assert.Equal(t, "23012", slip.NetPay.String())
}

func TestComputePayslip_ZeroStoredGrossIgnored(t *testing.T) {
	zero := decimal.Zero
	emp := employee.Employee{
		BasicSalary: dec("10000"),
		GrossSalary: &zero,
	}

	slip := ComputePayslip(emp, attendance.MonthlyStats{})

	assert.Equal(t, "10000", slip.GrossEarnings.String())
}

func TestHasQualifyingAttendance(t *testing.T) {
	tests := []struct {
		name  string
		stats attendance.MonthlyStats
		want  bool
	}{
		{name: "days present", stats: attendance.MonthlyStats{PresentDays: 1}, want: true},
		{name: "overtime only", stats: attendance.MonthlyStats{OTHours: 0.5}, want: true},
		{name: "absences only", stats: attendance.MonthlyStats{AbsentDays: 20, TotalDays: 20}, want: false},
		{name: "empty", stats: attendance.MonthlyStats{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasQualifyingAttendance(tt.stats))
		})
	}
}

func TestRound_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "158", round(dec("157.5")).String())
	assert.Equal(t, "157", round(dec("157.4")).String())
	assert.Equal(t, "-158", round(dec("-157.5")).String())
}
