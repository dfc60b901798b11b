package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee holds the static payroll attributes of one person. BasicSalary
// and DAAmount are per-day rates; GrossSalary, when set, overrides the
// computed monthly gross on payslips.
type Employee struct {
	ID          string
	BranchID    *string
	EmployeeNo  string
	FullName    string
	Position    string
	JoinDate    time.Time
	BasicSalary decimal.Decimal
	DAAmount    decimal.Decimal
	HRA         decimal.Decimal
	Allowances  decimal.Decimal
	GrossSalary *decimal.Decimal
	PFNumber    string
	ESINumber   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	// Joined for display
	BranchName *string
}
