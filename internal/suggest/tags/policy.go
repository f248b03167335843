package tags

// Policy controls whether tag scoring runs and how results are applied.
type Policy string

const (
	// PolicyOff disables tag scoring entirely.
	PolicyOff Policy = "off"
	// PolicySuggestOnly surfaces candidates for explicit adoption.
	PolicySuggestOnly Policy = "suggestOnly"
	// PolicyAutoAdopt writes candidates straight into the memo's tag set.
	PolicyAutoAdopt Policy = "autoAdopt"
)

// ParsePolicy maps a configuration value to a Policy. Malformed values
// fall back to the documented default, suggestOnly.
func ParsePolicy(value string) Policy {
	switch Policy(value) {
	case PolicyOff, PolicySuggestOnly, PolicyAutoAdopt:
		return Policy(value)
	default:
		return PolicySuggestOnly
	}
}
