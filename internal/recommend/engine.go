package recommend

import "calorielog/internal/intake"

// rules mirrors TargetFor row by row, in evaluation order.
var rules = []Rule{
	{AgeBelow: 9, Gender: Female, Target: 1200},
	{AgeBelow: 9, Gender: Male, Target: 1400},
	{AgeAbove: 9, AgeBelow: 14, Gender: Female, Target: 1600},
	{AgeAbove: 9, AgeBelow: 14, Gender: Male, Target: 1800},
	{AgeAbove: 13, AgeBelow: 19, Gender: Female, Target: 1800},
	{AgeAbove: 13, AgeBelow: 19, Gender: Male, Target: 2200},
	{AgeAbove: 18, AgeBelow: 31, Gender: Female, Target: 2000},
	{AgeAbove: 18, AgeBelow: 31, Gender: Male, Target: 2400},
	{AgeAbove: 30, AgeBelow: 51, Gender: Female, Target: 1800},
	{AgeAbove: 30, AgeBelow: 50, Gender: Male, Target: 2200},
	{AgeAbove: 51, Gender: Female, Target: 1600},
	{AgeAbove: 51, Gender: Male, Target: 2000},
}

// Rules returns a copy of the target table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// TargetFor returns the daily calorie target for an age/gender bucket.
// Bounds are exclusive and the first matching case wins, so ages 9, 50
// (male), 51 and the like hit no case. Those, and unknown genders,
// fall to the default and report ok=false with a zero target.
func TargetFor(age int, gender Gender) (target int, ok bool) {
	switch {
	case age < 9 && gender == Female:
		return 1200, true
	case age < 9 && gender == Male:
		return 1400, true
	case age > 9 && age < 14 && gender == Female:
		return 1600, true
	case age > 9 && age < 14 && gender == Male:
		return 1800, true
	case age > 13 && age < 19 && gender == Female:
		return 1800, true
	case age > 13 && age < 19 && gender == Male:
		return 2200, true
	case age > 18 && age < 31 && gender == Female:
		return 2000, true
	case age > 18 && age < 31 && gender == Male:
		return 2400, true
	case age > 30 && age < 51 && gender == Female:
		return 1800, true
	case age > 30 && age < 50 && gender == Male:
		return 2200, true
	case age > 51 && gender == Female:
		return 1600, true
	case age > 51 && gender == Male:
		return 2000, true
	default:
		return 0, false
	}
}

// ComputeTarget returns target - consumed. Negative means over target.
// With no matching rule the target is zero and the result is -consumed.
func ComputeTarget(age int, gender Gender, consumed int) int {
	target, _ := TargetFor(age, gender)
	return target - consumed
}

// Evaluate builds the full Recommendation for an already summed day.
func Evaluate(p Profile, date string, consumed int) Recommendation {
	target, ok := TargetFor(p.Age, p.Gender)
	return Recommendation{
		Date:              date,
		ConsumedCalories:  consumed,
		TargetCalories:    target,
		RemainingCalories: target - consumed,
		RuleMatched:       ok,
	}
}

// DailyReport sums entries for date and evaluates them against the profile.
// A nil profile behaves like one that matches no rule.
func DailyReport(entries []intake.FoodEntry, p *Profile, date string) Recommendation {
	consumed := intake.SumCaloriesForDate(entries, date)
	if p == nil {
		return Evaluate(Profile{}, date, consumed)
	}
	return Evaluate(*p, date, consumed)
}
