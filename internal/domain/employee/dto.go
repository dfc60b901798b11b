package employee

import (
	"github.com/shopspring/decimal"
	"github.com/staffhive/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	BranchID    *string          `json:"branch_id,omitempty"`
	EmployeeNo  string           `json:"employee_no"`
	FullName    string           `json:"full_name"`
	Position    string           `json:"position"`
	JoinDate    string           `json:"join_date"`
	BasicSalary decimal.Decimal  `json:"basic_salary"`
	DAAmount    decimal.Decimal  `json:"da_amount"`
	HRA         decimal.Decimal  `json:"hra"`
	Allowances  decimal.Decimal  `json:"allowances"`
	GrossSalary *decimal.Decimal `json:"gross_salary,omitempty"`
	PFNumber    string           `json:"pf_number"`
	ESINumber   string           `json:"esi_number"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeNo(r.EmployeeNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_no",
			Message: "employee_no must be 2-20 uppercase letters, digits or dashes",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "must be non-negative",
		})
	}
	if r.DAAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "da_amount",
			Message: "must be non-negative",
		})
	}
	if r.GrossSalary != nil && r.GrossSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_salary",
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	BranchID    *string          `json:"branch_id,omitempty"`
	FullName    *string          `json:"full_name,omitempty"`
	Position    *string          `json:"position,omitempty"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
	DAAmount    *decimal.Decimal `json:"da_amount,omitempty"`
	HRA         *decimal.Decimal `json:"hra,omitempty"`
	Allowances  *decimal.Decimal `json:"allowances,omitempty"`
	GrossSalary *decimal.Decimal `json:"gross_salary,omitempty"`
	PFNumber    *string          `json:"pf_number,omitempty"`
	ESINumber   *string          `json:"esi_number,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "must not be empty",
		})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "must be non-negative",
		})
	}
	if r.DAAmount != nil && r.DAAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "da_amount",
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string           `json:"id"`
	BranchID    *string          `json:"branch_id,omitempty"`
	BranchName  *string          `json:"branch_name,omitempty"`
	EmployeeNo  string           `json:"employee_no"`
	FullName    string           `json:"full_name"`
	Position    string           `json:"position"`
	JoinDate    string           `json:"join_date"`
	BasicSalary decimal.Decimal  `json:"basic_salary"`
	DAAmount    decimal.Decimal  `json:"da_amount"`
	HRA         decimal.Decimal  `json:"hra"`
	Allowances  decimal.Decimal  `json:"allowances"`
	GrossSalary *decimal.Decimal `json:"gross_salary,omitempty"`
	PFNumber    string           `json:"pf_number"`
	ESINumber   string           `json:"esi_number"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		BranchID:    e.BranchID,
		BranchName:  e.BranchName,
		EmployeeNo:  e.EmployeeNo,
		FullName:    e.FullName,
		Position:    e.Position,
		JoinDate:    e.JoinDate.Format("2006-01-02"),
		BasicSalary: e.BasicSalary,
		DAAmount:    e.DAAmount,
		HRA:         e.HRA,
		Allowances:  e.Allowances,
		GrossSalary: e.GrossSalary,
		PFNumber:    e.PFNumber,
		ESINumber:   e.ESINumber,
	}
}
