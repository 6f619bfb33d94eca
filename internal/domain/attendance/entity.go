package attendance

import "time"

type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
	Status        Status
	WorkHours     *float64
	OvertimeHours *float64
	IsLate        bool
	LateMinutes   *int
	Location      *string
	Remarks       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

type Status string

const (
	StatusPresent      Status = "present"
	StatusAbsent       Status = "absent"
	StatusHalfDay      Status = "half_day"
	StatusLate         Status = "late"
	StatusOnLeave      Status = "on_leave"
	StatusWorkFromHome Status = "work_from_home"
	StatusOnDuty       Status = "on_duty"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLate, StatusOnLeave, StatusWorkFromHome, StatusOnDuty:
		return true
	}
	return false
}
