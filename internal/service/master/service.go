package master

import (
	"context"

	"github.com/staffhive/payroll-backend-go/internal/domain/master/branch"
)

type MasterService interface {
	// Branch operations
	CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error)
	GetBranch(ctx context.Context, id string) (branch.BranchResponse, error)
	ListBranches(ctx context.Context) ([]branch.BranchResponse, error)
	UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) error
	DeleteBranch(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	branchRepo branch.BranchRepository
}

func NewMasterService(branchRepo branch.BranchRepository) MasterService {
	return &masterServiceImpl{branchRepo: branchRepo}
}

func (s *masterServiceImpl) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	created, err := s.branchRepo.Create(ctx, branch.Branch{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return branch.ToResponse(created), nil
}

func (s *masterServiceImpl) GetBranch(ctx context.Context, id string) (branch.BranchResponse, error) {
	b, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return branch.BranchResponse{}, err
	}
	return branch.ToResponse(b), nil
}

func (s *masterServiceImpl) ListBranches(ctx context.Context) ([]branch.BranchResponse, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, branch.ToResponse(b))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.branchRepo.Update(ctx, req)
}

func (s *masterServiceImpl) DeleteBranch(ctx context.Context, id string) error {
	return s.branchRepo.Delete(ctx, id)
}
