package leave

import "time"

// Overlaps reports whether [s1,e1] and [s2,e2] intersect, inclusive on
// both ends.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

// TotalDays derives the day count of an application. Half-day requests
// count as a single day regardless of the range.
func TotalDays(start, end time.Time, halfDay bool) int {
	if halfDay {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Blocking reports whether an existing application in the given status
// blocks a new overlapping request.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusApproved
}
