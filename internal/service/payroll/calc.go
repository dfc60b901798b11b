package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
)

// Statutory rates and ceilings. The employer's 12% PF contribution splits
// into pension (8.33%) and provident fund (3.67%) components, each rounded
// independently, so the two need not sum to exactly 12% of the base.
var (
	overtimeRate = decimal.NewFromInt(60)

	pfEmployeeRate = decimal.RequireFromString("0.12")
	pfCeiling      = decimal.NewFromInt(1800)
	epfRate        = decimal.RequireFromString("0.0833")
	epsRate        = decimal.RequireFromString("0.0367")

	esiExemptionThreshold = decimal.NewFromInt(21000)
	esiEmployeeRate       = decimal.RequireFromString("0.0075")
	esiEmployerRate       = decimal.RequireFromString("0.0325")
)

// round applies the statutory rounding rule: half away from zero, at every
// intermediate step, never deferred to the final total. decimal.Round
// implements exactly this mode.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// earnings holds the attendance-prorated amounts shared by the PF and ESI
// derivations.
type earnings struct {
	EarnedBasic decimal.Decimal
	EarnedDA    decimal.Decimal
	OTAmount    decimal.Decimal
}

func (e earnings) Gross() decimal.Decimal {
	return e.EarnedBasic.Add(e.EarnedDA).Add(e.OTAmount)
}

// earnedAmounts prorates the per-day basic and DA rates by days present and
// prices overtime at the fixed hourly rate.
func earnedAmounts(emp employee.Employee, stats attendance.MonthlyStats) earnings {
	presentDays := decimal.NewFromFloat(stats.PresentDays)
	otHours := decimal.NewFromFloat(stats.OTHours)

	return earnings{
		EarnedBasic: round(emp.BasicSalary.Mul(presentDays)),
		EarnedDA:    round(emp.DAAmount.Mul(presentDays)),
		OTAmount:    round(otHours.Mul(overtimeRate)),
	}
}

// HasQualifyingAttendance reports whether the employee appears on statutory
// reports for the month. Zero days present and zero overtime means the
// employee is filtered out before any computation.
func HasQualifyingAttendance(stats attendance.MonthlyStats) bool {
	return stats.PresentDays != 0 || stats.OTHours != 0
}
