package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

// Attendance is one row per employee per day. Older rows carry their daily
// figures in Notes as a JSON blob instead of the structured numeric columns;
// newer bulk entries may pack several days into a single row's structured
// fields. NULL numeric columns are coerced to zero at the scan boundary.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Status       Status
	CheckInTime  *time.Time
	CheckOutTime *time.Time

	PresentDays float64
	AbsentDays  float64
	LateDays    float64
	OTHours     float64
	Food        float64
	Uniform     float64
	Deduction   float64

	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for display
	EmployeeName *string
}

// MonthlyStats accumulates one employee's attendance over a single calendar
// month. It is created empty, mutated during one aggregation pass and
// treated as immutable afterwards.
type MonthlyStats struct {
	EmployeeID  string  `json:"employee_id"`
	PresentDays float64 `json:"present_days"`
	AbsentDays  float64 `json:"absent_days"`
	LateDays    float64 `json:"late_days"`
	OTHours     float64 `json:"ot_hours"`
	Food        float64 `json:"food"`
	Uniform     float64 `json:"uniform"`
	Deduction   float64 `json:"deduction"`
	TotalDays   int     `json:"total_days"`
}
