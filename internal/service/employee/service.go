package employee

import (
	"context"

	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	"github.com/staffhive/payroll-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByEmployeeNo(ctx, req.EmployeeNo)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNoExists
	}

	joinDate, _ := validator.IsValidDate(req.JoinDate)

	emp := employee.Employee{
		BranchID:    req.BranchID,
		EmployeeNo:  req.EmployeeNo,
		FullName:    req.FullName,
		Position:    req.Position,
		JoinDate:    joinDate,
		BasicSalary: req.BasicSalary,
		DAAmount:    req.DAAmount,
		HRA:         req.HRA,
		Allowances:  req.Allowances,
		GrossSalary: req.GrossSalary,
		PFNumber:    req.PFNumber,
		ESINumber:   req.ESINumber,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.BranchID != nil {
		emp.BranchID = req.BranchID
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}
	if req.DAAmount != nil {
		emp.DAAmount = *req.DAAmount
	}
	if req.HRA != nil {
		emp.HRA = *req.HRA
	}
	if req.Allowances != nil {
		emp.Allowances = *req.Allowances
	}
	if req.GrossSalary != nil {
		emp.GrossSalary = req.GrossSalary
	}
	if req.PFNumber != nil {
		emp.PFNumber = *req.PFNumber
	}
	if req.ESINumber != nil {
		emp.ESINumber = *req.ESINumber
	}

	return s.employeeRepo.Update(ctx, emp)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
