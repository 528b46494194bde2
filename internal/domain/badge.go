package domain

// Badge is an achievement derived from a profile's stats.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

const (
	ScholarSessions = 5
	AthleteWorkouts = 5
	ProLevel        = 5
)

// Badges evaluates every achievement against s, in display order.
func Badges(s UserStats) []Badge {
	total := s.TotalStudySessions + s.TotalWorkouts + s.TotalMeditations
	return []Badge{
		{ID: "novice", Name: "New Beginnings", Description: "Completed first activity",
			Unlocked: total > 0},
		{ID: "jack", Name: "Jack of All Trades", Description: "Tried study, workout and meditation",
			Unlocked: s.TotalStudySessions > 0 && s.TotalWorkouts > 0 && s.TotalMeditations > 0},
		{ID: "scholar", Name: "Scholar", Description: "5 study sessions",
			Unlocked: s.TotalStudySessions >= ScholarSessions},
		{ID: "athlete", Name: "Athlete", Description: "5 workouts",
			Unlocked: s.TotalWorkouts >= AthleteWorkouts},
		// Fresh profiles start stressed, so zero stress needs meditation to count.
		{ID: "monk", Name: "Zen Master", Description: "Reduced stress to 0",
			Unlocked: s.CurrentStress == 0 && s.TotalMeditations > 0},
		{ID: "pro", Name: "Pro User", Description: "Reach level 5",
			Unlocked: s.Level >= ProLevel},
	}
}

// UnlockedBadges returns only the badges s has earned.
func UnlockedBadges(s UserStats) []Badge {
	var out []Badge
	for _, b := range Badges(s) {
		if b.Unlocked {
			out = append(out, b)
		}
	}
	return out
}
