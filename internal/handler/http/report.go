package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/staffhive/payroll-backend-go/internal/domain/report"
	"github.com/staffhive/payroll-backend-go/internal/handler/http/response"
	"github.com/staffhive/payroll-backend-go/internal/pkg/export"
)

type ReportHandler interface {
	PFReport(w http.ResponseWriter, r *http.Request)
	ESIReport(w http.ResponseWriter, r *http.Request)
	PayslipReport(w http.ResponseWriter, r *http.Request)
	DownloadPFReportCSV(w http.ResponseWriter, r *http.Request)
	DownloadESIReportCSV(w http.ResponseWriter, r *http.Request)
	DownloadPayslipsPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func (h *reportHandlerImpl) PFReport(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{Month: r.URL.Query().Get("month")}

	result, err := h.reportService.GeneratePFReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) ESIReport(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{Month: r.URL.Query().Get("month")}

	result, err := h.reportService.GenerateESIReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) PayslipReport(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{Month: r.URL.Query().Get("month")}

	result, err := h.reportService.GeneratePayslipReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) DownloadPFReportCSV(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{Month: r.URL.Query().Get("month")}

	doc, err := h.reportService.ExportPFReportCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeDocument(w, doc)
}

func (h *reportHandlerImpl) DownloadESIReportCSV(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{Month: r.URL.Query().Get("month")}

	doc, err := h.reportService.ExportESIReportCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeDocument(w, doc)
}

func (h *reportHandlerImpl) DownloadPayslipsPDF(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{Month: r.URL.Query().Get("month")}

	doc, err := h.reportService.ExportPayslipsPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeDocument(w, doc)
}

func writeDocument(w http.ResponseWriter, doc export.Document) {
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}
