package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	"github.com/staffhive/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	records []attendance.Attendance

	gotStart      time.Time
	gotEnd        time.Time
	gotEmployeeID string
}

func (f *stubAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	a.ID = "att-1"
	return a, nil
}

func (f *stubAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *stubAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *stubAttendanceRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	f.gotStart, f.gotEnd = start, end
	return f.records, nil
}

func (f *stubAttendanceRepo) ListByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	f.gotEmployeeID = employeeID
	f.gotStart, f.gotEnd = start, end
	return f.records, nil
}

func (f *stubAttendanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type stubEmployeeRepo struct {
	known map[string]bool
}

func (f *stubEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if f.known[id] {
		return employee.Employee{ID: id}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *stubEmployeeRepo) GetByEmployeeNo(ctx context.Context, employeeNo string) (*employee.Employee, error) {
	return nil, nil
}

func (f *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *stubEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	return nil
}

func (f *stubEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestMonthlyStats_SortedAndRangeCorrect(t *testing.T) {
	attRepo := &stubAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "id-b", Status: attendance.StatusPresent},
		{EmployeeID: "id-a", Status: attendance.StatusPresent},
		{EmployeeID: "id-a", Status: attendance.StatusLate},
	}}
	svc := NewAttendanceService(attRepo, &stubEmployeeRepo{}, testLogger())

	result, err := svc.MonthlyStats(context.Background(), "2024-02")
	require.NoError(t, err)

	assert.Equal(t, "2024-02", result.Month)
	assert.Equal(t, "2024-02-01", result.PeriodStart)
	assert.Equal(t, "2024-02-29", result.PeriodEnd)

	require.Len(t, result.Stats, 2)
	assert.Equal(t, "id-a", result.Stats[0].EmployeeID)
	assert.Equal(t, "id-b", result.Stats[1].EmployeeID)
	assert.Equal(t, 1.0, result.Stats[0].PresentDays)
	assert.Equal(t, 1.0, result.Stats[0].LateDays)
}

func TestMonthlyStats_EmptyMonthDefaultsToCurrent(t *testing.T) {
	attRepo := &stubAttendanceRepo{}
	svc := NewAttendanceService(attRepo, &stubEmployeeRepo{}, testLogger())

	result, err := svc.MonthlyStats(context.Background(), "")
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Format("2006-01"), result.Month)
	assert.Equal(t, 1, attRepo.gotStart.Day())
}

func TestMonthlyStats_InvalidMonth(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{}, &stubEmployeeRepo{}, testLogger())

	_, err := svc.MonthlyStats(context.Background(), "02-2024")

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestEmployeeMonthlyStats_UnknownEmployee(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{}, &stubEmployeeRepo{}, testLogger())

	_, err := svc.EmployeeMonthlyStats(context.Background(), "ghost", "2024-02")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeMonthlyStats_ScopesQueryToEmployee(t *testing.T) {
	attRepo := &stubAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "id-a", Status: attendance.StatusPresent},
	}}
	empRepo := &stubEmployeeRepo{known: map[string]bool{"id-a": true}}
	svc := NewAttendanceService(attRepo, empRepo, testLogger())

	stats, err := svc.EmployeeMonthlyStats(context.Background(), "id-a", "2024-02")
	require.NoError(t, err)

	assert.Equal(t, "id-a", attRepo.gotEmployeeID)
	assert.Equal(t, "id-a", stats.EmployeeID)
	assert.Equal(t, 1.0, stats.PresentDays)
}

func TestCreate_RejectsBadTimestamp(t *testing.T) {
	empRepo := &stubEmployeeRepo{known: map[string]bool{"id-a": true}}
	svc := NewAttendanceService(&stubAttendanceRepo{}, empRepo, testLogger())

	bad := "2024-03-05 08:00"
	_, err := svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID:  "id-a",
		Date:        "2024-03-05",
		Status:      "present",
		CheckInTime: &bad,
	})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
