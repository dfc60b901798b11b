package payroll

import (
	"github.com/shopspring/decimal"
)

// Line items are ephemeral: computed from one employee and one month's
// attendance stats, serialized into an export, never persisted.

// PFLineItem is one Provident Fund report row.
type PFLineItem struct {
	EmployeeNo           string          `json:"employee_no"`
	Name                 string          `json:"name"`
	PFNumber             string          `json:"pf_number"`
	DaysPresent          float64         `json:"days_present"`
	PFBasic              decimal.Decimal `json:"pf_basic"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerEPF          decimal.Decimal `json:"employer_epf"`
	EmployerEPS          decimal.Decimal `json:"employer_eps"`
	EmployerTotal        decimal.Decimal `json:"employer_total"`
}

// ESILineItem is one Employee State Insurance report row.
type ESILineItem struct {
	EmployeeNo    string          `json:"employee_no"`
	Name          string          `json:"name"`
	ESINumber     string          `json:"esi_number"`
	DaysPresent   float64         `json:"days_present"`
	GrossEarnings decimal.Decimal `json:"gross_earnings"`
	EmployeeESI   decimal.Decimal `json:"employee_esi"`
	EmployerESI   decimal.Decimal `json:"employer_esi"`
	TotalESI      decimal.Decimal `json:"total_esi"`
}

// Payslip is one employee's printable monthly slip.
type Payslip struct {
	EmployeeNo string `json:"employee_no"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	PFNumber   string `json:"pf_number"`
	ESINumber  string `json:"esi_number"`

	BasicDA         decimal.Decimal `json:"basic_da"`
	HRA             decimal.Decimal `json:"hra"`
	Conveyance      decimal.Decimal `json:"conveyance"`
	OtherAllowances decimal.Decimal `json:"other_allowances"`
	OvertimeAmount  decimal.Decimal `json:"overtime_amount"`
	GrossEarnings   decimal.Decimal `json:"gross_earnings"`

	PF              decimal.Decimal `json:"pf"`
	ESI             decimal.Decimal `json:"esi"`
	Advance         decimal.Decimal `json:"advance"`
	Food            decimal.Decimal `json:"food"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	NetPay decimal.Decimal `json:"net_pay"`
}
