package report

import "errors"

var (
	// ErrNoReportData means the month was valid but no employee had
	// qualifying attendance; distinct from a storage failure so callers can
	// tell the user apart from retrying.
	ErrNoReportData = errors.New("no attendance data found for the selected month")

	ErrReportGenerationFailed = errors.New("failed to generate report")
)
