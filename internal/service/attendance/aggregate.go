package attendance

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
)

// Legacy rows store their daily figures as a JSON blob in the notes column.
// Field names match what the old data-entry tooling wrote.
type noteFields struct {
	PresentDays float64 `json:"present_days"`
	AbsentDays  float64 `json:"absent_days"`
	LateDays    float64 `json:"late_days"`
	OTHours     float64 `json:"ot_hours"`
	Food        float64 `json:"food"`
	Uniform     float64 `json:"uniform"`
}

type sourceKind int

const (
	sourceStructured sourceKind = iota
	sourceNotes
	sourceStatus
)

// recordSource is the resolved origin of one row's figures. Exactly one
// source is authoritative per row: structured columns win, the notes JSON is
// the fallback, and the status enum is the last resort.
type recordSource struct {
	kind   sourceKind
	notes  noteFields
	status attendance.Status
}

func resolveSource(rec attendance.Attendance) recordSource {
	if rec.PresentDays != 0 || rec.AbsentDays != 0 || rec.LateDays != 0 || rec.OTHours != 0 {
		return recordSource{kind: sourceStructured}
	}

	if rec.Notes != nil {
		if fields, ok := parseNotes(*rec.Notes); ok {
			return recordSource{kind: sourceNotes, notes: fields}
		}
	}

	return recordSource{kind: sourceStatus, status: rec.Status}
}

// parseNotes accepts only a non-null JSON object; scalars, arrays, null and
// parse failures fall through to the status count. Missing or non-numeric
// fields degrade to 0 rather than rejecting the row.
func parseNotes(notes string) (noteFields, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(notes), &raw); err != nil || raw == nil {
		return noteFields{}, false
	}
	var fields noteFields
	_ = json.Unmarshal([]byte(notes), &fields)
	return fields, true
}

// apply adds one row's figures to the running totals.
func apply(stats *attendance.MonthlyStats, rec attendance.Attendance, src recordSource) {
	switch src.kind {
	case sourceStructured:
		// A bulk entry may carry several days' worth of pre-aggregated
		// values; all structured fields accumulate as-is.
		stats.PresentDays += rec.PresentDays
		stats.AbsentDays += rec.AbsentDays
		stats.LateDays += rec.LateDays
		stats.OTHours += rec.OTHours
		stats.Food += rec.Food
		stats.Uniform += rec.Uniform
		stats.Deduction += rec.Deduction
	case sourceNotes:
		stats.PresentDays += src.notes.PresentDays
		stats.AbsentDays += src.notes.AbsentDays
		stats.LateDays += src.notes.LateDays
		stats.OTHours += src.notes.OTHours
		stats.Food += src.notes.Food
		stats.Uniform += src.notes.Uniform
	case sourceStatus:
		switch src.status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		case attendance.StatusLate:
			stats.LateDays++
		}
	}
	stats.TotalDays++
}

// overtimeFromTimestamps returns the hours beyond a standard 8-hour day
// between check-in and check-out. Same-day shifts only; a negative or
// sub-8h span contributes nothing.
func overtimeFromTimestamps(rec attendance.Attendance) float64 {
	if rec.CheckInTime == nil || rec.CheckOutTime == nil {
		return 0
	}
	worked := rec.CheckOutTime.Sub(*rec.CheckInTime).Hours()
	if worked > 8 {
		return worked - 8
	}
	return 0
}

// AggregateMonth reduces a month's rows into per-employee stats. Overtime
// comes only from the structured fields or the notes fallback, never from
// check-in/check-out timestamps.
func AggregateMonth(logger *slog.Logger, records []attendance.Attendance) map[string]*attendance.MonthlyStats {
	result := make(map[string]*attendance.MonthlyStats)

	for _, rec := range records {
		stats, ok := result[rec.EmployeeID]
		if !ok {
			stats = &attendance.MonthlyStats{EmployeeID: rec.EmployeeID}
			result[rec.EmployeeID] = stats
		}

		src := resolveSource(rec)
		apply(stats, rec, src)

		logger.Debug("aggregated attendance row",
			slog.String("employee_id", rec.EmployeeID),
			slog.String("date", rec.Date.Format("2006-01-02")),
			slog.Int("source", int(src.kind)),
		)
	}

	return result
}

// AggregateEmployeeMonth reduces one employee's rows into a single stats
// record. Unlike AggregateMonth it also derives overtime from check-in and
// check-out timestamps, on every row, regardless of which source supplied
// the day counts.
func AggregateEmployeeMonth(logger *slog.Logger, employeeID string, records []attendance.Attendance) attendance.MonthlyStats {
	stats := attendance.MonthlyStats{EmployeeID: employeeID}

	for _, rec := range records {
		src := resolveSource(rec)
		apply(&stats, rec, src)
		stats.OTHours += overtimeFromTimestamps(rec)

		logger.Debug("aggregated attendance row",
			slog.String("employee_id", rec.EmployeeID),
			slog.String("date", rec.Date.Format("2006-01-02")),
			slog.Int("source", int(src.kind)),
		)
	}

	return stats
}

// MonthRange returns the inclusive [first, last] day of a "YYYY-MM" month.
// Both ends are local calendar dates; computing the end as first-of-next-month
// minus one day avoids the off-by-one-day shifts UTC arithmetic causes in
// non-UTC timezones.
func MonthRange(month time.Time) (start, end time.Time) {
	start = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	end = start.AddDate(0, 1, -1)
	return start, end
}
