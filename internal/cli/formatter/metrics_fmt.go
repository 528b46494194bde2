package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/simulation"
)

const scoreBarWidth = 20

// FormatHabits renders a habit snapshot on one line.
func FormatHabits(h domain.HabitSnapshot) string {
	parts := make([]string, 0, len(domain.HabitRanges))
	for i, v := range h.Values() {
		r := domain.HabitRanges[i]
		parts = append(parts, fmt.Sprintf("%s %s", Dim(r.Field), FormatHabit(v, r.Unit)))
	}
	return strings.Join(parts, "  ")
}

// FormatScores renders the three present-day scores as bars.
func FormatScores(m domain.OutcomeMetrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-10s %s\n", "Academic", RenderScore(m.AcademicScore, scoreBarWidth, false))
	fmt.Fprintf(&b, "  %-10s %s  %s\n", "Burnout", RenderScore(m.BurnoutRisk, scoreBarWidth, true), BurnoutIndicator(m.BurnoutRisk))
	fmt.Fprintf(&b, "  %-10s %s\n", "Health", RenderScore(m.HealthScore, scoreBarWidth, false))
	return b.String()
}

// FormatProjection renders the year-by-year trajectory table.
func FormatProjection(points []domain.ProjectionPoint) string {
	if len(points) == 0 {
		return Dim("No projection.") + "\n"
	}
	headers := []string{"YEAR", "ACADEMIC", "BURNOUT", "HEALTH"}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			strconv.Itoa(p.Year),
			ScoreStyle(p.Academic).Render(strconv.Itoa(p.Academic)),
			RiskStyle(p.Burnout).Render(strconv.Itoa(p.Burnout)),
			ScoreStyle(p.Health).Render(strconv.Itoa(p.Health)),
		})
	}
	return RenderTableAligned(headers, rows, []bool{false, true, true, true})
}

// FormatMetrics renders the full evaluation: inputs, scores, the recommended
// change and the projection, followed by any out-of-range warnings.
func FormatMetrics(h domain.HabitSnapshot, m domain.OutcomeMetrics) string {
	var b strings.Builder

	b.WriteString(Header("Habits"))
	b.WriteString("\n  " + FormatHabits(h) + "\n\n")

	b.WriteString(Header("Today"))
	b.WriteString("\n")
	b.WriteString(FormatScores(m))
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s %s\n\n", Bold("Biggest impact:"), ImpactIndicator(m.BiggestImpact))

	b.WriteString(Header("Projection"))
	b.WriteString("\n")
	b.WriteString(FormatProjection(m.Projection))

	if warnings := h.Warnings(); len(warnings) > 0 {
		b.WriteString("\n")
		for _, w := range warnings {
			b.WriteString(StyleYellow.Render("  ! "+w) + "\n")
		}
	}
	return b.String()
}

// FormatImpactRules renders the ordered rule list against h. The selected rule
// is the first match; later matches are shown as shadowed.
func FormatImpactRules(rules []simulation.ImpactRule, h domain.HabitSnapshot) string {
	selected := false
	headers := []string{"#", "CHANGE", "WHEN", "PRIORITY", "STATE"}
	rows := make([][]string, 0, len(rules)+1)
	for i, r := range rules {
		state := Dim("-")
		if r.Matches(h) {
			if !selected {
				state = StyleGreen.Render("● selected")
				selected = true
			} else {
				state = Dim("matches (shadowed)")
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			string(r.Impact),
			r.Condition,
			strconv.FormatFloat(r.Priority, 'f', -1, 64),
			state,
		})
	}
	fallback := Dim("-")
	if !selected {
		fallback = StyleGreen.Render("● selected")
	}
	rows = append(rows, []string{"", string(domain.ImpactMaintainHabits), "otherwise", "", fallback})
	return RenderTable(headers, rows)
}

// FormatComparison renders several evaluated scenarios side by side, one row each.
func FormatComparison(names []string, metrics []domain.OutcomeMetrics) string {
	headers := []string{"SCENARIO", "ACADEMIC", "BURNOUT", "HEALTH", "FINAL YEAR", "BIGGEST IMPACT"}
	rows := make([][]string, 0, len(metrics))
	for i, m := range metrics {
		name := fmt.Sprintf("#%d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		final := m.FinalYear()
		rows = append(rows, []string{
			name,
			ScoreStyle(m.AcademicScore).Render(strconv.Itoa(m.AcademicScore)),
			RiskStyle(m.BurnoutRisk).Render(strconv.Itoa(m.BurnoutRisk)),
			ScoreStyle(m.HealthScore).Render(strconv.Itoa(m.HealthScore)),
			fmt.Sprintf("%d/%d/%d", final.Academic, final.Burnout, final.Health),
			string(m.BiggestImpact),
		})
	}
	return RenderTableAligned(headers, rows, []bool{false, true, true, true, true, false})
}

// FormatHistory renders stored evaluations newest first.
func FormatHistory(records []*domain.EvaluationRecord, now time.Time) string {
	headers := []string{"ID", "WHEN", "HABITS", "A/B/H", "IMPACT"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		h := r.Habits
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanTimestampFrom(r.EvaluatedAt, now),
			fmt.Sprintf("%s %s %s %s %s",
				FormatHabit(h.SleepHours, "h"), FormatHabit(h.StudyHours, "h"),
				FormatHabit(h.ScreenTime, "h"), FormatHabit(h.ExerciseDays, "d"),
				FormatHabit(h.StressLevel, "")),
			fmt.Sprintf("%d/%d/%d", r.Metrics.AcademicScore, r.Metrics.BurnoutRisk, r.Metrics.HealthScore),
			string(r.Metrics.BiggestImpact),
		})
	}
	return RenderTable(headers, rows)
}
