package stats

// State is a Weblate saved-state label.
type State int

const (
	StateUnknown State = iota
	StateTranslated
	StateNeedReview
	StateApproved
	StateRejected
)

var stateLabels = map[string]State{
	"Translated": StateTranslated,
	"NeedReview": StateNeedReview,
	"Approved":   StateApproved,
	"Rejected":   StateRejected,
}

// ParseState maps a savedState label to a State. Labels are case sensitive;
// anything else, including "total", is StateUnknown.
func ParseState(label string) State {
	return stateLabels[label]
}

// String returns the label Weblate uses for the state.
func (s State) String() string {
	switch s {
	case StateTranslated:
		return "Translated"
	case StateNeedReview:
		return "NeedReview"
	case StateApproved:
		return "Approved"
	case StateRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// IsTranslation reports whether the state is counted in TranslationStats.
func (s State) IsTranslation() bool {
	switch s {
	case StateTranslated, StateNeedReview, StateApproved, StateRejected:
		return true
	}
	return false
}

// IsReview reports whether the state is counted in ReviewStats.
func (s State) IsReview() bool {
	return s == StateApproved || s == StateRejected
}
