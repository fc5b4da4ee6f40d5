package entities

// Selection is the in-progress set of choices made in the estimator wizard.
//
// Empty string fields mean "not chosen yet". Features keeps insertion order so
// summaries list add-ons the way the visitor picked them.
type Selection struct {
	ServiceID  string         `json:"service_id,omitempty"`
	Complexity ComplexityTier `json:"complexity,omitempty"`
	Features   []string       `json:"features"`
	Timeline   TimelineOption `json:"timeline,omitempty"`
	Currency   Currency       `json:"currency"`
}

// NewSelection returns an empty selection priced in the given currency.
func NewSelection(currency Currency) Selection {
	return Selection{Features: []string{}, Currency: currency}
}

// Complete reports whether every field needed for a final estimate is set.
func (s Selection) Complete() bool {
	return s.ServiceID != "" && s.Complexity != "" && s.Timeline != ""
}

func (s Selection) HasFeature(id string) bool {
	for _, f := range s.Features {
		if f == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no backing array with s.
func (s Selection) Clone() Selection {
	out := s
	out.Features = append([]string{}, s.Features...)
	return out
}
