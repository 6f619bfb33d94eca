package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func checkInAt(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestLateness_WithinGraceWindow(t *testing.T) {
	late, minutes := Lateness(checkInAt(8, 45))
	assert.False(t, late)
	assert.Equal(t, 0, minutes)

	late, minutes = Lateness(checkInAt(9, 0))
	assert.False(t, late)
	assert.Equal(t, 0, minutes)

	// Boundary: exactly at the end of the grace window is still on time.
	late, minutes = Lateness(checkInAt(9, 15))
	assert.False(t, late)
	assert.Equal(t, 0, minutes)
}

func TestLateness_CountedFromReferenceNotGraceEnd(t *testing.T) {
	late, minutes := Lateness(checkInAt(9, 16))
	assert.True(t, late)
	assert.Equal(t, 16, minutes)

	late, minutes = Lateness(checkInAt(9, 20))
	assert.True(t, late)
	assert.Equal(t, 20, minutes)

	late, minutes = Lateness(checkInAt(11, 0))
	assert.True(t, late)
	assert.Equal(t, 120, minutes)
}

func TestWorkHours_StandardDay(t *testing.T) {
	work, overtime := WorkHours(checkInAt(9, 0), checkInAt(17, 0))
	assert.Equal(t, 8.0, work)
	assert.Equal(t, 0.0, overtime)
}

func TestWorkHours_Overtime(t *testing.T) {
	work, overtime := WorkHours(checkInAt(9, 0), checkInAt(17, 30))
	assert.Equal(t, 8.5, work)
	assert.Equal(t, 0.5, overtime)
}

func TestWorkHours_TruncatesToWholeMinutes(t *testing.T) {
	checkIn := checkInAt(9, 0)
	checkOut := checkIn.Add(8*time.Hour + 30*time.Minute + 45*time.Second)

	work, overtime := WorkHours(checkIn, checkOut)
	assert.Equal(t, 8.5, work)
	assert.Equal(t, 0.5, overtime)
}

func TestWorkHours_CheckOutBeforeCheckInClampsToZero(t *testing.T) {
	work, overtime := WorkHours(checkInAt(17, 0), checkInAt(9, 0))
	assert.Equal(t, 0.0, work)
	assert.Equal(t, 0.0, overtime)
}

func TestRecalculate_NoopWithoutBothTimestamps(t *testing.T) {
	checkIn := checkInAt(9, 0)
	att := Attendance{CheckInTime: &checkIn}

	Recalculate(&att)
	assert.Nil(t, att.WorkHours)
	assert.Nil(t, att.OvertimeHours)
}

func TestRecalculate_ResetsStaleOvertime(t *testing.T) {
	checkIn := checkInAt(9, 0)
	checkOut := checkInAt(16, 0)
	staleWork := 10.0
	staleOvertime := 2.0
	att := Attendance{
		CheckInTime:   &checkIn,
		CheckOutTime:  &checkOut,
		WorkHours:     &staleWork,
		OvertimeHours: &staleOvertime,
	}

	Recalculate(&att)
	assert.Equal(t, 7.0, *att.WorkHours)
	assert.Equal(t, 0.0, *att.OvertimeHours)
}

func TestRecalculate_Idempotent(t *testing.T) {
	checkIn := checkInAt(9, 0)
	checkOut := checkIn.Add(9*time.Hour + 15*time.Minute)
	att := Attendance{CheckInTime: &checkIn, CheckOutTime: &checkOut}

	Recalculate(&att)
	first := *att.WorkHours
	firstOT := *att.OvertimeHours

	Recalculate(&att)
	assert.Equal(t, first, *att.WorkHours)
	assert.Equal(t, firstOT, *att.OvertimeHours)
	assert.Equal(t, 9.25, first)
	assert.Equal(t, 1.25, firstOT)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPresent.Valid())
	assert.True(t, StatusWorkFromHome.Valid())
	assert.False(t, Status("vacation").Valid())
	assert.False(t, Status("").Valid())
}
