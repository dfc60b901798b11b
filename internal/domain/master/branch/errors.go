package branch

import "errors"

var (
	ErrBranchNotFound   = errors.New("branch not found")
	ErrBranchNameExists = errors.New("branch with this name already exists")
	ErrBranchInUse      = errors.New("branch has employees assigned and cannot be deleted")
)
