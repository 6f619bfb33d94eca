package attendance

import (
	"time"

	"github.com/workzen/hrms-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Location   *string `json:"location,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateAttendanceRequest is the administrative correction path: explicit
// timestamps instead of the clock.
type CreateAttendanceRequest struct {
	EmployeeID   string     `json:"employee_id"`
	Date         string     `json:"date"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Status       *string    `json:"status,omitempty"`
	IsLate       *bool      `json:"is_late,omitempty"`
	LateMinutes  *int       `json:"late_minutes,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Remarks      *string    `json:"remarks,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is not a valid attendance status"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest carries patch semantics: only non-nil fields are
// applied, then hours are recomputed.
type UpdateAttendanceRequest struct {
	ID           string     `json:"-"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Remarks      *string    `json:"remarks,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is not a valid attendance status"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  *string    `json:"employee_name,omitempty"`
	EmployeeCode  *string    `json:"employee_code,omitempty"`
	Date          string     `json:"date"`
	CheckInTime   *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime  *time.Time `json:"check_out_time,omitempty"`
	Status        Status     `json:"status"`
	WorkHours     *float64   `json:"work_hours,omitempty"`
	OvertimeHours *float64   `json:"overtime_hours,omitempty"`
	IsLate        bool       `json:"is_late"`
	LateMinutes   *int       `json:"late_minutes,omitempty"`
	Location      *string    `json:"location,omitempty"`
	Remarks       *string    `json:"remarks,omitempty"`
}

func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		EmployeeName:  att.EmployeeName,
		EmployeeCode:  att.EmployeeCode,
		Date:          att.Date.Format("2006-01-02"),
		CheckInTime:   att.CheckInTime,
		CheckOutTime:  att.CheckOutTime,
		Status:        att.Status,
		WorkHours:     att.WorkHours,
		OvertimeHours: att.OvertimeHours,
		IsLate:        att.IsLate,
		LateMinutes:   att.LateMinutes,
		Location:      att.Location,
		Remarks:       att.Remarks,
	}
}

// MonthSummary aggregates one employee's attendance over a date range.
type MonthSummary struct {
	EmployeeID    string  `json:"employee_id"`
	DaysPresent   int     `json:"days_present"`
	DaysOnLeave   int     `json:"days_on_leave"`
	AvgWorkHours  float64 `json:"avg_work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}
