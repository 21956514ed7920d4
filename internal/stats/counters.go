package stats

// TranslationStats holds word counts per translation state. Field order
// follows the sorted JSON keys of the report.
type TranslationStats struct {
	Approved   int `json:"Approved"`
	NeedReview int `json:"NeedReview"`
	Rejected   int `json:"Rejected"`
	Translated int `json:"Translated"`
	Total      int `json:"total"`
}

func (t *TranslationStats) field(s State) *int {
	switch s {
	case StateTranslated:
		return &t.Translated
	case StateNeedReview:
		return &t.NeedReview
	case StateApproved:
		return &t.Approved
	case StateRejected:
		return &t.Rejected
	}
	return nil
}

// Add counts words against state and reports whether the state belongs to
// this counter set.
func (t *TranslationStats) Add(s State, words int) bool {
	f := t.field(s)
	if f == nil {
		return false
	}
	*f += words
	t.Total += words
	return true
}

// Merge adds every field of other into t.
func (t *TranslationStats) Merge(other TranslationStats) {
	t.Translated += other.Translated
	t.NeedReview += other.NeedReview
	t.Approved += other.Approved
	t.Rejected += other.Rejected
	t.Recalculate()
}

// Recalculate recomputes Total from the state fields.
func (t *TranslationStats) Recalculate() {
	t.Total = t.Translated + t.NeedReview + t.Approved + t.Rejected
}

// Values returns the counters in report column order.
func (t TranslationStats) Values() []int {
	return []int{t.Total, t.Translated, t.NeedReview, t.Approved, t.Rejected}
}

// ReviewStats holds word counts per review outcome.
type ReviewStats struct {
	Approved int `json:"Approved"`
	Rejected int `json:"Rejected"`
	Total    int `json:"total"`
}

func (r *ReviewStats) field(s State) *int {
	switch s {
	case StateApproved:
		return &r.Approved
	case StateRejected:
		return &r.Rejected
	}
	return nil
}

// Add counts words against state and reports whether the state belongs to
// this counter set.
func (r *ReviewStats) Add(s State, words int) bool {
	f := r.field(s)
	if f == nil {
		return false
	}
	*f += words
	r.Total += words
	return true
}

// Merge adds every field of other into r.
func (r *ReviewStats) Merge(other ReviewStats) {
	r.Approved += other.Approved
	r.Rejected += other.Rejected
	r.Recalculate()
}

// Recalculate recomputes Total from the outcome fields.
func (r *ReviewStats) Recalculate() {
	r.Total = r.Approved + r.Rejected
}

// Values returns the counters in report column order.
func (r ReviewStats) Values() []int {
	return []int{r.Total, r.Approved, r.Rejected}
}

// VersionStats is the pair of counters kept per (project, version).
type VersionStats struct {
	Review      ReviewStats      `json:"review-stats"`
	Translation TranslationStats `json:"translation-stats"`
}

// Add counts words in every counter set the state belongs to.
func (v *VersionStats) Add(s State, words int) {
	v.Translation.Add(s, words)
	v.Review.Add(s, words)
}

// Merge adds other into v field by field.
func (v *VersionStats) Merge(other VersionStats) {
	v.Translation.Merge(other.Translation)
	v.Review.Merge(other.Review)
}
