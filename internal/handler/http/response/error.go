package response

import (
	"errors"
	"net/http"

	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/domain/auth"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	"github.com/staffhive/payroll-backend-go/internal/domain/master/branch"
	"github.com/staffhive/payroll-backend-go/internal/domain/report"
	"github.com/staffhive/payroll-backend-go/internal/domain/user"
	"github.com/staffhive/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNoExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrEmployeeHasRecords):
		Conflict(w, "Employee has attendance records and cannot be deleted")

	// Branch domain errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchNameExists):
		Conflict(w, "Branch with this name already exists")
	case errors.Is(err, branch.ErrBranchInUse):
		Conflict(w, "Branch has employees assigned")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Report domain errors
	case errors.Is(err, report.ErrNoReportData):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
