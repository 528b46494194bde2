package coach

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/futureself/internal/domain"
)

// DeterministicMessage builds a future-self message directly from the
// metrics without using the LLM. Every sentence addresses the reader as "you".
func DeterministicMessage(habits domain.HabitSnapshot, metrics domain.OutcomeMetrics) *FutureMessage {
	final := metrics.FinalYear()

	var b strings.Builder
	if final.Year > 0 {
		fmt.Fprintf(&b, "Hey, it's you from %d. ", final.Year)
	} else {
		b.WriteString("Hey, it's future you. ")
	}
	b.WriteString(trajectorySentence(metrics.AcademicScore, final.Academic))
	b.WriteString(" ")
	b.WriteString(burnoutSentence(final.Burnout))
	b.WriteString(" ")
	b.WriteString(impactSentence(metrics.BiggestImpact, habits))

	return &FutureMessage{
		Year:   final.Year,
		Text:   b.String(),
		Focus:  string(metrics.BiggestImpact),
		Source: SourceFallback,
	}
}

func trajectorySentence(present, final int) string {
	switch delta := final - present; {
	case delta >= 5:
		return fmt.Sprintf("Your grades climbed from %d to %d, and it started with the routine you have right now.", present, final)
	case delta <= -5:
		return fmt.Sprintf("Your academic score slid from %d to %d. It did not happen in one bad week; it crept in.", present, final)
	default:
		return fmt.Sprintf("Academically you held steady around %d.", final)
	}
}

func burnoutSentence(burnout int) string {
	switch {
	case burnout >= 70:
		return fmt.Sprintf("Burnout risk reached %d%%, and you felt every point of it.", burnout)
	case burnout >= 40:
		return fmt.Sprintf("Burnout risk sat at %d%%; manageable, but it never really left.", burnout)
	default:
		return fmt.Sprintf("Burnout stayed low at %d%%, which gave you room to enjoy things.", burnout)
	}
}

func impactSentence(impact domain.Impact, h domain.HabitSnapshot) string {
	switch impact {
	case domain.ImpactIncreaseSleep:
		return fmt.Sprintf("If you change one thing, sleep more than %g hours a night.", h.SleepHours)
	case domain.ImpactMoreExercise:
		return fmt.Sprintf("If you change one thing, move more than %g days a week.", h.ExerciseDays)
	case domain.ImpactReduceStress:
		return "If you change one thing, bring your stress down before it becomes normal."
	case domain.ImpactReduceScreen:
		return fmt.Sprintf("If you change one thing, put the phone down; %g hours a day is too much.", h.ScreenTime)
	case domain.ImpactIncreaseStudy:
		return "If you change one thing, give studying a few more focused hours each week."
	case domain.ImpactBalanceStudy:
		return "If you change one thing, trade a little study time for rest; the hours are not paying off without it."
	default:
		return "Keep doing what you are doing. It works."
	}
}
