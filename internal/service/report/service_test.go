package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	"github.com/staffhive/payroll-backend-go/internal/domain/report"
	"github.com/staffhive/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	err     error

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return f.records, int64(len(f.records)), f.err
}

func (f *fakeAttendanceRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	f.gotStart, f.gotEnd = start, end
	return f.records, f.err
}

func (f *fakeAttendanceRepo) ListByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	return f.records, f.err
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmployeeNo(ctx context.Context, employeeNo string) (*employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, f.err
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEmployee(id, no, name string, basic string) employee.Employee {
	return employee.Employee{
		ID:          id,
		EmployeeNo:  no,
		FullName:    name,
		BasicSalary: decimal.RequireFromString(basic),
	}
}

func TestGeneratePFReport(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "id-1", PresentDays: 25},
		{EmployeeID: "id-2", Status: attendance.StatusAbsent},
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("id-1", "EMP-001", "Asha Verma", "400"),
		testEmployee("id-2", "EMP-002", "Ravi Iyer", "500"),
	}}

	svc := NewReportService(attRepo, empRepo, testLogger())

	result, err := svc.GeneratePFReport(context.Background(), report.MonthlyReportRequest{Month: "2024-03"})
	require.NoError(t, err)

	assert.Equal(t, "2024-03", result.Month)
	// Only the employee with days present appears; the absent-only one is
	// filtered out.
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "EMP-001", result.Rows[0].EmployeeNo)
	assert.Equal(t, "10000", result.Rows[0].PFBasic.String())
	assert.Equal(t, "1200", result.Rows[0].EmployeeContribution.String())

	// The queried range must cover the whole calendar month.
	assert.Equal(t, "2024-03-01", attRepo.gotStart.Format("2006-01-02"))
	assert.Equal(t, "2024-03-31", attRepo.gotEnd.Format("2006-01-02"))
}

func TestGeneratePFReport_NoQualifyingData(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "id-1", Status: attendance.StatusAbsent},
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("id-1", "EMP-001", "Asha Verma", "400"),
	}}

	svc := NewReportService(attRepo, empRepo, testLogger())

	_, err := svc.GeneratePFReport(context.Background(), report.MonthlyReportRequest{Month: "2024-03"})
	assert.ErrorIs(t, err, report.ErrNoReportData)
}

func TestGeneratePFReport_InvalidMonth(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{}, testLogger())

	tests := []struct {
		name  string
		month string
	}{
		{name: "empty", month: ""},
		{name: "malformed", month: "March 2024"},
		{name: "out of range month", month: "2024-13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GeneratePFReport(context.Background(), report.MonthlyReportRequest{Month: tt.month})
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestGenerateESIReport_StorageFailurePropagates(t *testing.T) {
	readErr := errors.New("connection reset")
	attRepo := &fakeAttendanceRepo{err: readErr}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("id-1", "EMP-001", "Asha Verma", "400"),
	}}

	svc := NewReportService(attRepo, empRepo, testLogger())

	_, err := svc.GenerateESIReport(context.Background(), report.MonthlyReportRequest{Month: "2024-03"})
	assert.ErrorIs(t, err, readErr)
}

func TestExportPFReportCSV(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "id-1", PresentDays: 25.5},
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("id-1", "EMP-001", "Asha Verma", "400"),
	}}

	svc := NewReportService(attRepo, empRepo, testLogger())

	doc, err := svc.ExportPFReportCSV(context.Background(), report.MonthlyReportRequest{Month: "2024-03"})
	require.NoError(t, err)

	assert.Equal(t, "pf_report_2024-03.csv", doc.Filename)
	assert.Equal(t, "text/csv", doc.ContentType)

	lines := strings.Split(strings.TrimRight(string(doc.Content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Employee No","Name","PF Number","Days Present","PF Basic","Employee Contribution","Employer EPF","Employer EPS","Total Employer Contribution"`, lines[0])
	// Fractional day counts keep their precision without trailing zeros.
	assert.Contains(t, lines[1], `"25.5"`)
	assert.True(t, strings.HasPrefix(lines[1], `"EMP-001","Asha Verma"`))
}

func TestExportESIReportCSV(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "id-1", PresentDays: 25},
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("id-1", "EMP-001", "Asha Verma", "840"),
	}}

	svc := NewReportService(attRepo, empRepo, testLogger())

	doc, err := svc.ExportESIReportCSV(context.Background(), report.MonthlyReportRequest{Month: "2024-03"})
	require.NoError(t, err)

	assert.Equal(t, "esi_report_2024-03.csv", doc.Filename)
	assert.Contains(t, string(doc.Content), `"21000","158","683","841"`)
}

func TestExportPayslipsPDF(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "id-1", PresentDays: 25},
	}}
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee("id-1", "EMP-001", "Asha Verma", "15000"),
	}}

	svc := NewReportService(attRepo, empRepo, testLogger())

	doc, err := svc.ExportPayslipsPDF(context.Background(), report.MonthlyReportRequest{Month: "2024-03"})
	require.NoError(t, err)

	assert.Equal(t, "payslip_report_2024-03.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, strings.HasPrefix(string(doc.Content), "%PDF"))
}
