package template

// Type is the resolved record type for a memo.
type Type string

const (
	TypeTask    Type = "task"
	TypeNote    Type = "note"
	TypeUnknown Type = "unknown"
)

// Policy controls whether template scoring runs and how a confident
// suggestion is applied.
type Policy string

const (
	// PolicyOff disables template scoring entirely.
	PolicyOff Policy = "off"
	// PolicySuggestOnly surfaces a dismissible suggestion.
	PolicySuggestOnly Policy = "suggestOnly"
	// PolicyAutoSwitch applies a confident suggestion to the memo's
	// destination directly.
	PolicyAutoSwitch Policy = "autoSwitch"
)

// ParsePolicy maps a configuration value to a Policy. Malformed values
// fall back to the documented default, suggestOnly.
func ParsePolicy(value string) Policy {
	switch Policy(value) {
	case PolicyOff, PolicySuggestOnly, PolicyAutoSwitch:
		return Policy(value)
	default:
		return PolicySuggestOnly
	}
}

// confidenceGate is the threshold above which a suggestion may be
// auto-accepted.
const confidenceGate = 0.6

// Suggestion is the outcome of one template evaluation. The zero value of
// Empty() is the canonical "nothing to suggest" result.
type Suggestion struct {
	Type        Type
	Confidence  float64
	Destination string
}

// Empty returns the canonical empty suggestion.
func Empty() Suggestion {
	return Suggestion{Type: TypeUnknown, Confidence: 0}
}

// IsEmpty reports whether the suggestion carries no classification.
func (s Suggestion) IsEmpty() bool {
	return s.Type == TypeUnknown || s.Type == ""
}

// IsConfident reports whether the suggestion clears the auto-accept gate.
func (s Suggestion) IsConfident() bool {
	return s.Confidence >= confidenceGate
}
