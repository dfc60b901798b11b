package attendance

import (
	"time"

	"github.com/staffhive/payroll-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`

	PresentDays float64 `json:"present_days,omitempty"`
	AbsentDays  float64 `json:"absent_days,omitempty"`
	LateDays    float64 `json:"late_days,omitempty"`
	OTHours     float64 `json:"ot_hours,omitempty"`
	Food        float64 `json:"food,omitempty"`
	Uniform     float64 `json:"uniform,omitempty"`
	Deduction   float64 `json:"deduction,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidAttendanceStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present, absent or late",
		})
	}

	for _, check := range []struct {
		field string
		value float64
	}{
		{"present_days", r.PresentDays},
		{"absent_days", r.AbsentDays},
		{"late_days", r.LateDays},
		{"ot_hours", r.OTHours},
	} {
		if check.value < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   check.field,
				Message: "must be non-negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *Status
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	PresentDays  float64 `json:"present_days"`
	AbsentDays   float64 `json:"absent_days"`
	LateDays     float64 `json:"late_days"`
	OTHours      float64 `json:"ot_hours"`
	Food         float64 `json:"food"`
	Uniform      float64 `json:"uniform"`
	Deduction    float64 `json:"deduction"`
	Notes        *string `json:"notes,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		Status:       string(a.Status),
		PresentDays:  a.PresentDays,
		AbsentDays:   a.AbsentDays,
		LateDays:     a.LateDays,
		OTHours:      a.OTHours,
		Food:         a.Food,
		Uniform:      a.Uniform,
		Deduction:    a.Deduction,
		Notes:        a.Notes,
	}
	if a.CheckInTime != nil {
		s := a.CheckInTime.Format(time.RFC3339)
		resp.CheckInTime = &s
	}
	if a.CheckOutTime != nil {
		s := a.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &s
	}
	return resp
}

// MonthlyStatsReport is the aggregation result for one month.
type MonthlyStatsReport struct {
	Month       string         `json:"month"`
	PeriodStart string         `json:"period_start"`
	PeriodEnd   string         `json:"period_end"`
	GeneratedAt string         `json:"generated_at"`
	Stats       []MonthlyStats `json:"stats"`
}
