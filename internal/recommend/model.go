package recommend

import "strings"

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// ParseGender normalizes user input such as "female" or "M".
// Stored values are not passed through it: only the exact Male and
// Female spellings match a rule. Unknown input is kept as-is.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "man":
		return Male
	case "female", "f", "woman":
		return Female
	default:
		return Gender(s)
	}
}

func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// Profile is the part of the user profile the engine needs.
type Profile struct {
	Age    int
	Gender Gender
}

// Recommendation is derived per query, never persisted.
type Recommendation struct {
	Date              string `json:"date"`
	ConsumedCalories  int    `json:"consumed_calories"`
	TargetCalories    int    `json:"target_calories"`
	RemainingCalories int    `json:"remaining_calories"`
	RuleMatched       bool   `json:"rule_matched"`
}

// Rule is one row of the target table. A zero bound means unbounded.
type Rule struct {
	AgeAbove int    `json:"age_above,omitempty"`
	AgeBelow int    `json:"age_below,omitempty"`
	Gender   Gender `json:"gender"`
	Target   int    `json:"target"`
}
