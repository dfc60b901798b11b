package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// attendanceColumns coalesces the nullable numeric columns to zero so the
// aggregator never sees NULLs.
const attendanceColumns = `
	a.id, a.employee_id, a.date, a.status, a.check_in_time, a.check_out_time,
	COALESCE(a.present_days, 0), COALESCE(a.absent_days, 0), COALESCE(a.late_days, 0),
	COALESCE(a.ot_hours, 0), COALESCE(a.food, 0), COALESCE(a.uniform, 0),
	COALESCE(a.deduction, 0), a.notes, a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CheckInTime, &att.CheckOutTime,
		&att.PresentDays, &att.AbsentDays, &att.LateDays,
		&att.OTHours, &att.Food, &att.Uniform,
		&att.Deduction, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, status, check_in_time, check_out_time,
			present_days, absent_days, late_days, ot_hours, food, uniform,
			deduction, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at, updated_at
	`

	newAttendance.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.Status,
		newAttendance.CheckInTime,
		newAttendance.CheckOutTime,
		newAttendance.PresentDays,
		newAttendance.AbsentDays,
		newAttendance.LateDays,
		newAttendance.OTHours,
		newAttendance.Food,
		newAttendance.Uniform,
		newAttendance.Deduction,
		newAttendance.Notes,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND a.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances a" + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := `
		SELECT ` + attendanceColumns + `, e.full_name
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id` + where + fmt.Sprintf(`
		ORDER BY a.date DESC
		LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CheckInTime, &att.CheckOutTime,
			&att.PresentDays, &att.AbsentDays, &att.LateDays,
			&att.OTHours, &att.Food, &att.Uniform,
			&att.Deduction, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read attendances: %w", err)
	}

	return result, total, nil
}

// ListByDateRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date DESC
	`

	return a.queryAttendances(ctx, q, query, start, end)
}

// ListByEmployeeAndDateRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date DESC
	`

	return a.queryAttendances(ctx, q, query, employeeID, start, end)
}

func (a *attendanceRepository) queryAttendances(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CheckInTime, &att.CheckOutTime,
			&att.PresentDays, &att.AbsentDays, &att.LateDays,
			&att.OTHours, &att.Food, &att.Uniform,
			&att.Deduction, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendances: %w", err)
	}

	return result, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
