package simulation

import "github.com/alexanderramin/futureself/internal/domain"

// ImpactRule is one entry of the ordered biggest-impact rule list.
// Priority is informational only; selection is strictly first-match.
type ImpactRule struct {
	Impact    domain.Impact
	Priority  float64
	Condition string
	Matches   func(h domain.HabitSnapshot) bool
}

// impactRules is evaluated top to bottom. The order is not a severity ranking
// and must not be changed: sleep always pre-empts every later rule.
var impactRules = []ImpactRule{
	{
		Impact:    domain.ImpactIncreaseSleep,
		Priority:  9,
		Condition: "sleepHours < 7",
		Matches:   func(h domain.HabitSnapshot) bool { return h.SleepHours < 7 },
	},
	{
		Impact:    domain.ImpactMoreExercise,
		Priority:  8,
		Condition: "exerciseDays < 3",
		Matches:   func(h domain.HabitSnapshot) bool { return h.ExerciseDays < 3 },
	},
	{
		Impact:    domain.ImpactReduceStress,
		Priority:  8.5,
		Condition: "stressLevel > 7",
		Matches:   func(h domain.HabitSnapshot) bool { return h.StressLevel > 7 },
	},
	{
		Impact:    domain.ImpactReduceScreen,
		Priority:  7,
		Condition: "screenTime > 4",
		Matches:   func(h domain.HabitSnapshot) bool { return h.ScreenTime > 4 },
	},
	{
		Impact:    domain.ImpactIncreaseStudy,
		Priority:  6,
		Condition: "studyHours < 5",
		Matches:   func(h domain.HabitSnapshot) bool { return h.StudyHours < 5 },
	},
	{
		Impact:    domain.ImpactBalanceStudy,
		Priority:  9.5,
		Condition: "studyHours > 25 and sleepHours < 6",
		Matches:   func(h domain.HabitSnapshot) bool { return h.StudyHours > 25 && h.SleepHours < 6 },
	},
}

// RankImpact returns the label of the first matching rule, or
// domain.ImpactMaintainHabits when no rule matches.
func RankImpact(h domain.HabitSnapshot) domain.Impact {
	for _, rule := range impactRules {
		if rule.Matches(h) {
			return rule.Impact
		}
	}
	return domain.ImpactMaintainHabits
}

// ImpactRules returns a copy of the ordered rule list.
func ImpactRules() []ImpactRule {
	out := make([]ImpactRule, len(impactRules))
	copy(out, impactRules)
	return out
}
