package review

// Ratings groups the five component ratings, each optional, each on a
// 1-5 scale.
type Ratings struct {
	Technical     *float64
	Communication *float64
	Teamwork      *float64
	Leadership    *float64
	Punctuality   *float64
}

// Overall computes the arithmetic mean of whichever components are
// present, ignoring absent ones. Nil when none are set.
func (r Ratings) Overall() *float64 {
	sum := 0.0
	count := 0
	for _, v := range r.components() {
		if v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := sum / float64(count)
	return &mean
}

// Merge applies patch semantics: non-nil fields of p replace the
// corresponding fields of r, absent fields are unchanged.
func (r Ratings) Merge(p Ratings) Ratings {
	if p.Technical != nil {
		r.Technical = p.Technical
	}
	if p.Communication != nil {
		r.Communication = p.Communication
	}
	if p.Teamwork != nil {
		r.Teamwork = p.Teamwork
	}
	if p.Leadership != nil {
		r.Leadership = p.Leadership
	}
	if p.Punctuality != nil {
		r.Punctuality = p.Punctuality
	}
	return r
}

func (r Ratings) components() []*float64 {
	return []*float64{r.Technical, r.Communication, r.Teamwork, r.Leadership, r.Punctuality}
}

// Valid checks that every present rating sits on the 1-5 scale.
func (r Ratings) Valid() bool {
	for _, v := range r.components() {
		if v != nil && (*v < 1 || *v > 5) {
			return false
		}
	}
	return true
}
