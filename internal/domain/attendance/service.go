package attendance

import (
	"context"
)

type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, int64, error)
	Delete(ctx context.Context, id string) error

	// MonthlyStats aggregates every employee's rows for a "YYYY-MM" month.
	// An empty month selector defaults to the current month.
	MonthlyStats(ctx context.Context, month string) (MonthlyStatsReport, error)

	// EmployeeMonthlyStats aggregates one employee's rows for a month and
	// additionally derives overtime from check-in/check-out timestamps.
	EmployeeMonthlyStats(ctx context.Context, employeeID, month string) (MonthlyStats, error)
}
