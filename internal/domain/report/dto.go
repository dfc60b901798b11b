package report

import (
	"github.com/staffhive/payroll-backend-go/internal/domain/payroll"
	"github.com/staffhive/payroll-backend-go/internal/pkg/validator"
)

// MonthlyReportRequest selects the calendar month for a statutory report.
// The month selector is mandatory: report generation never falls back to
// the current month.
type MonthlyReportRequest struct {
	Month string `json:"month"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PFReport struct {
	Month       string               `json:"month"`
	GeneratedAt string               `json:"generated_at"`
	Rows        []payroll.PFLineItem `json:"rows"`
}

type ESIReport struct {
	Month       string                `json:"month"`
	GeneratedAt string                `json:"generated_at"`
	Rows        []payroll.ESILineItem `json:"rows"`
}

type PayslipReport struct {
	Month       string            `json:"month"`
	GeneratedAt string            `json:"generated_at"`
	Slips       []payroll.Payslip `json:"slips"`
}
