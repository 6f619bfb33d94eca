package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingOf(v float64) *float64 {
	return &v
}

func TestOverall_MeanOfPresentComponents(t *testing.T) {
	r := Ratings{
		Technical:     ratingOf(4),
		Communication: ratingOf(3),
		Teamwork:      ratingOf(5),
	}

	overall := r.Overall()
	require.NotNil(t, overall)
	assert.InDelta(t, 4.0, *overall, 1e-9)
}

func TestOverall_AllComponents(t *testing.T) {
	r := Ratings{
		Technical:     ratingOf(5),
		Communication: ratingOf(4),
		Teamwork:      ratingOf(4),
		Leadership:    ratingOf(3),
		Punctuality:   ratingOf(4),
	}

	overall := r.Overall()
	require.NotNil(t, overall)
	assert.InDelta(t, 4.0, *overall, 1e-9)
}

func TestOverall_NilWhenEmpty(t *testing.T) {
	assert.Nil(t, Ratings{}.Overall())
}

func TestMerge_PatchSemantics(t *testing.T) {
	base := Ratings{
		Technical:     ratingOf(3),
		Communication: ratingOf(3),
	}
	patch := Ratings{
		Technical:  ratingOf(5),
		Leadership: ratingOf(4),
	}

	merged := base.Merge(patch)
	assert.Equal(t, 5.0, *merged.Technical)
	assert.Equal(t, 3.0, *merged.Communication)
	assert.Equal(t, 4.0, *merged.Leadership)
	assert.Nil(t, merged.Teamwork)
	assert.Nil(t, merged.Punctuality)

	// Merge returns a copy; the receiver is untouched.
	assert.Equal(t, 3.0, *base.Technical)
}

func TestRatingsValid(t *testing.T) {
	assert.True(t, Ratings{}.Valid())
	assert.True(t, Ratings{Technical: ratingOf(1), Punctuality: ratingOf(5)}.Valid())
	assert.False(t, Ratings{Technical: ratingOf(0.5)}.Valid())
	assert.False(t, Ratings{Teamwork: ratingOf(5.1)}.Valid())
}

func TestStatusNext_StrictlyForward(t *testing.T) {
	assert.Equal(t, StatusSubmitted, StatusDraft.Next())
	assert.Equal(t, StatusCompleted, StatusSubmitted.Next())
	assert.Equal(t, StatusAcknowledged, StatusCompleted.Next())
	assert.Equal(t, Status(""), StatusAcknowledged.Next())
	assert.Equal(t, Status(""), Status("bogus").Next())
}
