package attendance

import "time"

const (
	// Reference workday start, 09:00 local.
	WorkDayStartHour   = 9
	WorkDayStartMinute = 0

	// Check-ins within the grace window are not flagged late.
	GraceMinutes = 15

	// Hours beyond this count as overtime.
	StandardWorkHours = 8.0
)

// Lateness derives the late flag and late minutes for a check-in.
// Minutes are counted from the 09:00 reference, not from the end of the
// grace window: a 09:20 check-in is 20 minutes late, not 5.
func Lateness(checkIn time.Time) (late bool, lateMinutes int) {
	reference := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(),
		WorkDayStartHour, WorkDayStartMinute, 0, 0, checkIn.Location())
	deadline := reference.Add(GraceMinutes * time.Minute)

	if !checkIn.After(deadline) {
		return false, 0
	}
	return true, int(checkIn.Sub(reference).Minutes())
}

// WorkHours derives worked and overtime hours from a check-in/check-out
// pair. Durations are truncated to whole minutes before converting to
// fractional hours, so recalculation with the same pair is idempotent.
func WorkHours(checkIn, checkOut time.Time) (work, overtime float64) {
	minutes := int(checkOut.Sub(checkIn).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	work = float64(minutes) / 60.0
	if work > StandardWorkHours {
		overtime = work - StandardWorkHours
	}
	return work, overtime
}

// Recalculate applies the work-hours derivation to a record in place.
// Overtime is reset to zero when the recomputed hours no longer exceed the
// standard day, never left stale.
func Recalculate(att *Attendance) {
	if att.CheckInTime == nil || att.CheckOutTime == nil {
		return
	}
	work, overtime := WorkHours(*att.CheckInTime, *att.CheckOutTime)
	att.WorkHours = &work
	att.OvertimeHours = &overtime
}
