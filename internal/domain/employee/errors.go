package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeNoExists   = errors.New("employee number already exists")
	ErrEmployeeHasRecords = errors.New("employee has attendance records and cannot be deleted")
)
