package report

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/staffhive/payroll-backend-go/internal/domain/employee"
	domainpayroll "github.com/staffhive/payroll-backend-go/internal/domain/payroll"
	"github.com/staffhive/payroll-backend-go/internal/domain/report"
	"github.com/staffhive/payroll-backend-go/internal/pkg/export"
	"github.com/staffhive/payroll-backend-go/internal/pkg/validator"
	aggregator "github.com/staffhive/payroll-backend-go/internal/service/attendance"
	"github.com/staffhive/payroll-backend-go/internal/service/payroll"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	logger         *slog.Logger
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
	}
}

// monthPair couples an employee with their aggregated month.
type monthPair struct {
	emp   employee.Employee
	stats attendance.MonthlyStats
}

// qualifyingPairs fetches and aggregates one month, keeping only employees
// with at least one day present or overtime hour. A storage read failure
// aborts the whole run; no partial result is returned.
func (s *ReportServiceImpl) qualifyingPairs(ctx context.Context, req report.MonthlyReportRequest) ([]monthPair, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	month, _ := validator.IsValidMonth(req.Month)
	start, end := aggregator.MonthRange(month)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	statsByEmployee := aggregator.AggregateMonth(s.logger, records)

	var pairs []monthPair
	for _, emp := range employees {
		stats, ok := statsByEmployee[emp.ID]
		if !ok || !payroll.HasQualifyingAttendance(*stats) {
			continue
		}
		pairs = append(pairs, monthPair{emp: emp, stats: *stats})
	}

	if len(pairs) == 0 {
		return nil, report.ErrNoReportData
	}

	s.logger.Info("report input aggregated",
		slog.String("month", req.Month),
		slog.Int("employees", len(pairs)),
		slog.Int("rows", len(records)),
	)

	return pairs, nil
}

// GeneratePFReport implements report.ReportService.
func (s *ReportServiceImpl) GeneratePFReport(ctx context.Context, req report.MonthlyReportRequest) (report.PFReport, error) {
	pairs, err := s.qualifyingPairs(ctx, req)
	if err != nil {
		return report.PFReport{}, err
	}

	rows := make([]domainpayroll.PFLineItem, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, payroll.ComputePF(p.emp, p.stats))
	}

	return report.PFReport{
		Month:       req.Month,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

// GenerateESIReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateESIReport(ctx context.Context, req report.MonthlyReportRequest) (report.ESIReport, error) {
	pairs, err := s.qualifyingPairs(ctx, req)
	if err != nil {
		return report.ESIReport{}, err
	}

	rows := make([]domainpayroll.ESILineItem, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, payroll.ComputeESI(p.emp, p.stats))
	}

	return report.ESIReport{
		Month:       req.Month,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

// GeneratePayslipReport implements report.ReportService.
func (s *ReportServiceImpl) GeneratePayslipReport(ctx context.Context, req report.MonthlyReportRequest) (report.PayslipReport, error) {
	pairs, err := s.qualifyingPairs(ctx, req)
	if err != nil {
		return report.PayslipReport{}, err
	}

	slips := make([]domainpayroll.Payslip, 0, len(pairs))
	for _, p := range pairs {
		slips = append(slips, payroll.ComputePayslip(p.emp, p.stats))
	}

	return report.PayslipReport{
		Month:       req.Month,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Slips:       slips,
	}, nil
}

var pfHeader = []string{
	"Employee No", "Name", "PF Number", "Days Present", "PF Basic",
	"Employee Contribution", "Employer EPF", "Employer EPS", "Total Employer Contribution",
}

// ExportPFReportCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportPFReportCSV(ctx context.Context, req report.MonthlyReportRequest) (export.Document, error) {
	result, err := s.GeneratePFReport(ctx, req)
	if err != nil {
		return export.Document{}, err
	}

	rows := make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, []string{
			row.EmployeeNo,
			row.Name,
			row.PFNumber,
			formatDays(row.DaysPresent),
			row.PFBasic.String(),
			row.EmployeeContribution.String(),
			row.EmployerEPF.String(),
			row.EmployerEPS.String(),
			row.EmployerTotal.String(),
		})
	}

	return export.CSV(fmt.Sprintf("pf_report_%s.csv", req.Month), pfHeader, rows), nil
}

var esiHeader = []string{
	"Employee No", "Name", "ESI Number", "Days Present", "Gross Earnings",
	"Employee ESI", "Employer ESI", "Total ESI",
}

// ExportESIReportCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportESIReportCSV(ctx context.Context, req report.MonthlyReportRequest) (export.Document, error) {
	result, err := s.GenerateESIReport(ctx, req)
	if err != nil {
		return export.Document{}, err
	}

	rows := make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, []string{
			row.EmployeeNo,
			row.Name,
			row.ESINumber,
			formatDays(row.DaysPresent),
			row.GrossEarnings.String(),
			row.EmployeeESI.String(),
			row.EmployerESI.String(),
			row.TotalESI.String(),
		})
	}

	return export.CSV(fmt.Sprintf("esi_report_%s.csv", req.Month), esiHeader, rows), nil
}

// ExportPayslipsPDF implements report.ReportService.
func (s *ReportServiceImpl) ExportPayslipsPDF(ctx context.Context, req report.MonthlyReportRequest) (export.Document, error) {
	result, err := s.GeneratePayslipReport(ctx, req)
	if err != nil {
		return export.Document{}, err
	}

	slips := make([]export.PayslipData, 0, len(result.Slips))
	for _, slip := range result.Slips {
		slips = append(slips, export.PayslipData{
			EmployeeNo:      slip.EmployeeNo,
			Name:            slip.Name,
			Position:        slip.Position,
			PFNumber:        slip.PFNumber,
			ESINumber:       slip.ESINumber,
			BasicDA:         slip.BasicDA,
			HRA:             slip.HRA,
			Conveyance:      slip.Conveyance,
			OtherAllowances: slip.OtherAllowances,
			OvertimeAmount:  slip.OvertimeAmount,
			GrossEarnings:   slip.GrossEarnings,
			PF:              slip.PF,
			ESI:             slip.ESI,
			Advance:         slip.Advance,
			Food:            slip.Food,
			OtherDeductions: slip.OtherDeductions,
			TotalDeductions: slip.TotalDeductions,
			NetPay:          slip.NetPay,
		})
	}

	doc, err := export.PayslipPDF(req.Month, slips)
	if err != nil {
		return export.Document{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	return doc, nil
}

// formatDays renders day counts without trailing zeros, matching how they
// were entered.
func formatDays(days float64) string {
	return strconv.FormatFloat(days, 'f', -1, 64)
}
