package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	"github.com/staffhive/payroll-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	logger         *slog.Logger
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
	}
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	rec := attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Status:      attendance.Status(req.Status),
		PresentDays: req.PresentDays,
		AbsentDays:  req.AbsentDays,
		LateDays:    req.LateDays,
		OTHours:     req.OTHours,
		Food:        req.Food,
		Uniform:     req.Uniform,
		Deduction:   req.Deduction,
		Notes:       req.Notes,
	}

	if req.CheckInTime != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckInTime)
		if err != nil {
			return attendance.AttendanceResponse{}, validator.ValidationErrors{{
				Field:   "check_in_time",
				Message: "must be an RFC3339 timestamp",
			}}
		}
		rec.CheckInTime = &t
	}
	if req.CheckOutTime != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckOutTime)
		if err != nil {
			return attendance.AttendanceResponse{}, validator.ValidationErrors{{
				Field:   "check_out_time",
				Message: "must be an RFC3339 timestamp",
			}}
		}
		rec.CheckOutTime = &t
	}

	created, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return responses, total, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// resolveMonth parses the "YYYY-MM" selector, defaulting to the current
// month when empty.
func resolveMonth(month string) (time.Time, string, error) {
	if validator.IsEmpty(month) {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local), now.Format("2006-01"), nil
	}
	parsed, ok := validator.IsValidMonth(month)
	if !ok {
		return time.Time{}, "", validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}
	return parsed, month, nil
}

// MonthlyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyStats(ctx context.Context, month string) (attendance.MonthlyStatsReport, error) {
	parsed, label, err := resolveMonth(month)
	if err != nil {
		return attendance.MonthlyStatsReport{}, err
	}

	start, end := MonthRange(parsed)
	records, err := s.attendanceRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return attendance.MonthlyStatsReport{}, fmt.Errorf("failed to fetch attendance rows: %w", err)
	}

	byEmployee := AggregateMonth(s.logger, records)

	stats := make([]attendance.MonthlyStats, 0, len(byEmployee))
	for _, st := range byEmployee {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].EmployeeID < stats[j].EmployeeID })

	return attendance.MonthlyStatsReport{
		Month:       label,
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Stats:       stats,
	}, nil
}

// EmployeeMonthlyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EmployeeMonthlyStats(ctx context.Context, employeeID, month string) (attendance.MonthlyStats, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.MonthlyStats{}, err
	}

	parsed, _, err := resolveMonth(month)
	if err != nil {
		return attendance.MonthlyStats{}, err
	}

	start, end := MonthRange(parsed)
	records, err := s.attendanceRepo.ListByEmployeeAndDateRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.MonthlyStats{}, fmt.Errorf("failed to fetch attendance rows: %w", err)
	}

	return AggregateEmployeeMonth(s.logger, employeeID, records), nil
}
