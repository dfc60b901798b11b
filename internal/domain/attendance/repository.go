package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance rows. Range reads
// return rows ordered by date descending; the order only matters for
// display, aggregation is order independent.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves one attendance record
	GetByID(ctx context.Context, id string) (Attendance, error)

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByDateRange retrieves every employee's rows inside [start, end]
	ListByDateRange(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// ListByEmployeeAndDateRange retrieves one employee's rows inside [start, end]
	ListByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error
}
