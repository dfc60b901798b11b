package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhive/payroll-backend-go/internal/domain/master/branch"
	"github.com/staffhive/payroll-backend-go/internal/pkg/database"
)

type branchRepository struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepository{db: db}
}

// Create implements branch.BranchRepository.
func (r *branchRepository) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, name, address, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	b.ID = uuid.NewString()
	err := q.QueryRow(ctx, query, b.ID, b.Name, b.Address, b.Phone).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return branch.Branch{}, branch.ErrBranchNameExists
		}
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return b, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepository) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, address, phone, created_at, updated_at FROM branches WHERE id = $1`

	var b branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Address, &b.Phone, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return b, nil
}

// List implements branch.BranchRepository.
func (r *branchRepository) List(ctx context.Context) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, address, phone, created_at, updated_at FROM branches ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var result []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.Phone, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read branches: %w", err)
	}

	return result, nil
}

// Update implements branch.BranchRepository.
func (r *branchRepository) Update(ctx context.Context, req branch.UpdateBranchRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE branches SET
			name = COALESCE($2, name),
			address = COALESCE($3, address),
			phone = COALESCE($4, phone),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Name, req.Address, req.Phone)
	if err != nil {
		if isUniqueViolation(err) {
			return branch.ErrBranchNameExists
		}
		return fmt.Errorf("failed to update branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}

// Delete implements branch.BranchRepository.
func (r *branchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var inUse bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE branch_id = $1 AND deleted_at IS NULL)`, id).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("failed to check branch usage: %w", err)
	}
	if inUse {
		return branch.ErrBranchInUse
	}

	tag, err := q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}
