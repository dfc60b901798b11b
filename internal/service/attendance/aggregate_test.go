package attendance

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/staffhive/payroll-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestAggregateMonth_StructuredFieldsWin(t *testing.T) {
	// Structured columns beat the notes blob and the status enum even when
	// all three are populated.
	rec := attendance.Attendance{
		EmployeeID:  "emp-1",
		Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
		Status:      attendance.StatusAbsent,
		PresentDays: 5,
		OTHours:     2.5,
		Food:        300,
		Uniform:     150,
		Deduction:   200,
		Notes:       strPtr(`{"present_days": 99, "absent_days": 99}`),
	}

	result := AggregateMonth(testLogger(), []attendance.Attendance{rec})

	require.Contains(t, result, "emp-1")
	stats := result["emp-1"]
	assert.Equal(t, 5.0, stats.PresentDays)
	assert.Equal(t, 0.0, stats.AbsentDays)
	assert.Equal(t, 2.5, stats.OTHours)
	assert.Equal(t, 300.0, stats.Food)
	assert.Equal(t, 150.0, stats.Uniform)
	assert.Equal(t, 200.0, stats.Deduction)
	assert.Equal(t, 1, stats.TotalDays)
}

func TestAggregateMonth_NotesFallback(t *testing.T) {
	rec := attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local),
		Status:     attendance.StatusAbsent,
		Deduction:  500, // only structured rows contribute deductions
		Notes:      strPtr(`{"present_days": 2, "ot_hours": 1.5, "food": 100}`),
	}

	result := AggregateMonth(testLogger(), []attendance.Attendance{rec})

	stats := result["emp-1"]
	assert.Equal(t, 2.0, stats.PresentDays)
	assert.Equal(t, 0.0, stats.AbsentDays)
	assert.Equal(t, 1.5, stats.OTHours)
	assert.Equal(t, 100.0, stats.Food)
	assert.Equal(t, 0.0, stats.Deduction)
	assert.Equal(t, 1, stats.TotalDays)
}

func TestAggregateMonth_NotesNonNumericFieldDegradesToZero(t *testing.T) {
	rec := attendance.Attendance{
		EmployeeID: "emp-1",
		Status:     attendance.StatusPresent,
		Notes:      strPtr(`{"present_days": "three", "ot_hours": 2}`),
	}

	result := AggregateMonth(testLogger(), []attendance.Attendance{rec})

	// Still a notes row: the object parsed, the bad field is just zero. The
	// status enum must not be consulted.
	stats := result["emp-1"]
	assert.Equal(t, 0.0, stats.PresentDays)
	assert.Equal(t, 2.0, stats.OTHours)
}

func TestAggregateMonth_MalformedNotesFallBackToStatus(t *testing.T) {
	tests := []struct {
		name  string
		notes string
	}{
		{name: "not json", notes: "left early"},
		{name: "scalar", notes: "5"},
		{name: "array", notes: `[{"present_days": 1}]`},
		{name: "null", notes: "null"},
		{name: "empty string", notes: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := attendance.Attendance{
				EmployeeID: "emp-1",
				Status:     attendance.StatusLate,
				Notes:      strPtr(tt.notes),
			}

			result := AggregateMonth(testLogger(), []attendance.Attendance{rec})

			stats := result["emp-1"]
			assert.Equal(t, 1.0, stats.LateDays)
			assert.Equal(t, 0.0, stats.PresentDays)
			assert.Equal(t, 1, stats.TotalDays)
		})
	}
}

func TestAggregateMonth_StatusCounting(t *testing.T) {
	records := []attendance.Attendance{
		{EmployeeID: "emp-1", Status: attendance.StatusPresent},
		{EmployeeID: "emp-1", Status: attendance.StatusPresent},
		{EmployeeID: "emp-1", Status: attendance.StatusAbsent},
		{EmployeeID: "emp-1", Status: attendance.StatusLate},
	}

	result := AggregateMonth(testLogger(), records)

	stats := result["emp-1"]
	assert.Equal(t, 2.0, stats.PresentDays)
	assert.Equal(t, 1.0, stats.AbsentDays)
	assert.Equal(t, 1.0, stats.LateDays)
	assert.Equal(t, 4, stats.TotalDays)
}

func TestAggregateMonth_GroupsByEmployee(t *testing.T) {
	records := []attendance.Attendance{
		{EmployeeID: "emp-1", Status: attendance.StatusPresent},
		{EmployeeID: "emp-2", Status: attendance.StatusPresent},
		{EmployeeID: "emp-2", PresentDays: 10},
	}

	result := AggregateMonth(testLogger(), records)

	require.Len(t, result, 2)
	assert.Equal(t, 1.0, result["emp-1"].PresentDays)
	assert.Equal(t, 11.0, result["emp-2"].PresentDays)
}

func TestAggregateMonth_IgnoresTimestampOvertime(t *testing.T) {
	checkIn := time.Date(2024, 3, 5, 8, 0, 0, 0, time.Local)
	checkOut := checkIn.Add(11 * time.Hour)
	rec := attendance.Attendance{
		EmployeeID:   "emp-1",
		Status:       attendance.StatusPresent,
		CheckInTime:  timePtr(checkIn),
		CheckOutTime: timePtr(checkOut),
	}

	result := AggregateMonth(testLogger(), []attendance.Attendance{rec})

	assert.Equal(t, 0.0, result["emp-1"].OTHours)
}

func TestAggregateEmployeeMonth_AddsTimestampOvertime(t *testing.T) {
	checkIn := time.Date(2024, 3, 5, 8, 0, 0, 0, time.Local)
	records := []attendance.Attendance{
		{
			// Structured row: timestamp overtime still accrues on top.
			EmployeeID:   "emp-1",
			PresentDays:  1,
			OTHours:      2,
			CheckInTime:  timePtr(checkIn),
			CheckOutTime: timePtr(checkIn.Add(11 * time.Hour)),
		},
		{
			// 8h exactly: nothing beyond the standard day.
			EmployeeID:   "emp-1",
			Status:       attendance.StatusPresent,
			CheckInTime:  timePtr(checkIn),
			CheckOutTime: timePtr(checkIn.Add(8 * time.Hour)),
		},
		{
			// Missing checkout contributes nothing.
			EmployeeID:  "emp-1",
			Status:      attendance.StatusPresent,
			CheckInTime: timePtr(checkIn),
		},
	}

	stats := AggregateEmployeeMonth(testLogger(), "emp-1", records)

	assert.Equal(t, "emp-1", stats.EmployeeID)
	assert.Equal(t, 3.0, stats.PresentDays)
	assert.Equal(t, 5.0, stats.OTHours) // 2 structured + 3 from timestamps
	assert.Equal(t, 3, stats.TotalDays)
}

func TestAggregateEmployeeMonth_NegativeSpanIgnored(t *testing.T) {
	checkIn := time.Date(2024, 3, 5, 17, 0, 0, 0, time.Local)
	rec := attendance.Attendance{
		EmployeeID:   "emp-1",
		Status:       attendance.StatusPresent,
		CheckInTime:  timePtr(checkIn),
		CheckOutTime: timePtr(checkIn.Add(-2 * time.Hour)),
	}

	stats := AggregateEmployeeMonth(testLogger(), "emp-1", []attendance.Attendance{rec})

	assert.Equal(t, 0.0, stats.OTHours)
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		month     time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "leap february",
			month:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "non leap february",
			month:     time.Date(2023, 2, 1, 0, 0, 0, 0, time.Local),
			wantStart: "2023-02-01",
			wantEnd:   "2023-02-28",
		},
		{
			name:      "thirty one days",
			month:     time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local),
			wantStart: "2024-12-01",
			wantEnd:   "2024-12-31",
		},
		{
			name:      "year boundary from mid month input",
			month:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local),
			wantStart: "2024-01-01",
			wantEnd:   "2024-01-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(tt.month)
			assert.Equal(t, tt.wantStart, start.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, end.Format("2006-01-02"))
		})
	}
}
