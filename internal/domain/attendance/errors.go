package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEmployeeNotFound   = errors.New("employee not found for attendance record")
	ErrInvalidStatus      = errors.New("attendance status must be present, absent or late")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
)
