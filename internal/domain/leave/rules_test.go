package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical ranges", day(1), day(5), day(1), day(5), true},
		{"partial overlap", day(1), day(5), day(4), day(8), true},
		{"contained range", day(1), day(10), day(3), day(5), true},
		{"touching endpoints", day(1), day(5), day(5), day(8), true},
		{"adjacent days", day(1), day(5), day(6), day(8), false},
		{"disjoint", day(1), day(3), day(10), day(12), false},
		{"disjoint reversed", day(10), day(12), day(1), day(3), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// Symmetric in the two ranges.
			assert.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestTotalDays(t *testing.T) {
	assert.Equal(t, 1, TotalDays(day(1), day(1), false))
	assert.Equal(t, 5, TotalDays(day(1), day(5), false))
	assert.Equal(t, 30, TotalDays(day(1), day(30), false))
}

func TestTotalDays_HalfDayAlwaysOne(t *testing.T) {
	assert.Equal(t, 1, TotalDays(day(1), day(1), true))
	// Half-day wins over the range length.
	assert.Equal(t, 1, TotalDays(day(1), day(5), true))
}

func TestStatusBlocking(t *testing.T) {
	assert.True(t, StatusPending.Blocking())
	assert.True(t, StatusApproved.Blocking())
	assert.False(t, StatusRejected.Blocking())
	assert.False(t, StatusCancelled.Blocking())
}

func TestTypeValid(t *testing.T) {
	for _, lt := range AllTypes() {
		assert.True(t, lt.Valid(), "type %s should be valid", lt)
	}
	assert.False(t, Type("vacation").Valid())
	assert.False(t, Type("").Valid())
}

func TestDefaultAnnualDays(t *testing.T) {
	assert.Equal(t, 12, TypeCasual.DefaultAnnualDays())
	assert.Equal(t, 12, TypeSick.DefaultAnnualDays())
	assert.Equal(t, 21, TypeEarned.DefaultAnnualDays())
	assert.Equal(t, 90, TypeMaternity.DefaultAnnualDays())
	assert.Equal(t, 0, TypeUnpaid.DefaultAnnualDays())
}
