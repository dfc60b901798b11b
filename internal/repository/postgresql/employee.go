package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	"github.com/staffhive/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.branch_id, e.employee_no, e.full_name, e.position, e.join_date,
	e.basic_salary, e.da_amount, e.hra, e.allowances, e.gross_salary,
	e.pf_number, e.esi_number, e.created_at, e.updated_at, e.deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.BranchID, &emp.EmployeeNo, &emp.FullName, &emp.Position, &emp.JoinDate,
		&emp.BasicSalary, &emp.DAAmount, &emp.HRA, &emp.Allowances, &emp.GrossSalary,
		&emp.PFNumber, &emp.ESINumber, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, branch_id, employee_no, full_name, position, join_date,
			basic_salary, da_amount, hra, allowances, gross_salary,
			pf_number, esi_number
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	emp.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		emp.ID, emp.BranchID, emp.EmployeeNo, emp.FullName, emp.Position, emp.JoinDate,
		emp.BasicSalary, emp.DAAmount, emp.HRA, emp.Allowances, emp.GrossSalary,
		emp.PFNumber, emp.ESINumber,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeNoExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, b.name
		FROM employees e
		LEFT JOIN branches b ON e.branch_id = b.id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.BranchID, &emp.EmployeeNo, &emp.FullName, &emp.Position, &emp.JoinDate,
		&emp.BasicSalary, &emp.DAAmount, &emp.HRA, &emp.Allowances, &emp.GrossSalary,
		&emp.PFNumber, &emp.ESINumber, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		&emp.BranchName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByEmployeeNo implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmployeeNo(ctx context.Context, employeeNo string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.employee_no = $1 AND e.deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by number: %w", err)
	}

	return &emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `, b.name
		FROM employees e
		LEFT JOIN branches b ON e.branch_id = b.id
		WHERE e.deleted_at IS NULL
		ORDER BY e.employee_no ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var result []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.BranchID, &emp.EmployeeNo, &emp.FullName, &emp.Position, &emp.JoinDate,
			&emp.BasicSalary, &emp.DAAmount, &emp.HRA, &emp.Allowances, &emp.GrossSalary,
			&emp.PFNumber, &emp.ESINumber, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
			&emp.BranchName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		result = append(result, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return result, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			branch_id = $2, full_name = $3, position = $4,
			basic_salary = $5, da_amount = $6, hra = $7, allowances = $8,
			gross_salary = $9, pf_number = $10, esi_number = $11,
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.BranchID, emp.FullName, emp.Position,
		emp.BasicSalary, emp.DAAmount, emp.HRA, emp.Allowances,
		emp.GrossSalary, emp.PFNumber, emp.ESINumber,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository. Soft delete; refused while
// attendance rows still reference the employee. The existence check and the
// update run in one transaction so a concurrent attendance insert cannot
// slip between them.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		var hasRecords bool
		err := q.QueryRow(txCtx, `SELECT EXISTS(SELECT 1 FROM attendances WHERE employee_id = $1)`, id).Scan(&hasRecords)
		if err != nil {
			return fmt.Errorf("failed to check attendance records: %w", err)
		}
		if hasRecords {
			return employee.ErrEmployeeHasRecords
		}

		tag, err := q.Exec(txCtx, `UPDATE employees SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
		if err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}

		return nil
	})
}
