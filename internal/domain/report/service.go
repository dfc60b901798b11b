package report

import (
	"context"

	"github.com/staffhive/payroll-backend-go/internal/pkg/export"
)

type ReportService interface {
	GeneratePFReport(ctx context.Context, req MonthlyReportRequest) (PFReport, error)
	GenerateESIReport(ctx context.Context, req MonthlyReportRequest) (ESIReport, error)
	GeneratePayslipReport(ctx context.Context, req MonthlyReportRequest) (PayslipReport, error)

	ExportPFReportCSV(ctx context.Context, req MonthlyReportRequest) (export.Document, error)
	ExportESIReportCSV(ctx context.Context, req MonthlyReportRequest) (export.Document, error)
	ExportPayslipsPDF(ctx context.Context, req MonthlyReportRequest) (export.Document, error)
}
