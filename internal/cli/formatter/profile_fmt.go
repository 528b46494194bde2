package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/futureself/internal/domain"
)

const statBarWidth = 12

// FormatProfile renders a profile card: identity, level, attributes and the
// last saved habits.
func FormatProfile(p *domain.UserProfile) string {
	var b strings.Builder
	s := p.Stats

	fmt.Fprintf(&b, "%s %s\n", Bold(p.DisplayName()), Dim("@"+p.Username))
	var details []string
	if p.Age > 0 {
		details = append(details, fmt.Sprintf("age %d", p.Age))
	}
	if p.StudyRole != "" {
		role := string(p.StudyRole)
		if p.StudyDetail != "" {
			role += " · " + p.StudyDetail
		}
		details = append(details, role)
	}
	if len(details) > 0 {
		b.WriteString(Dim(strings.Join(details, "  ")) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderXP(s.Level, s.XP, s.NextLevelXP(), statBarWidth) + "\n\n")

	stats := []struct {
		label string
		value int
	}{
		{"Intelligence", s.Intelligence},
		{"Vitality", s.Vitality},
		{"Strength", s.Strength},
		{"Discipline", s.Discipline},
		{"Peace", s.Peace},
	}
	for _, st := range stats {
		fmt.Fprintf(&b, "%-13s %s\n", st.label, RenderScore(st.value, statBarWidth, false))
	}
	fmt.Fprintf(&b, "%-13s %d\n\n", "Stress", s.CurrentStress)

	if earned := domain.UnlockedBadges(s); len(earned) > 0 {
		names := make([]string, len(earned))
		for i, badge := range earned {
			names[i] = badge.Name
		}
		b.WriteString(Dim("badges  ") + StyleYellow.Render(strings.Join(names, ", ")) + "\n")
	}
	b.WriteString(Dim("habits  ") + FormatHabits(p.Habits))

	return RenderBox("Profile", b.String())
}

// FormatProfileList renders all profiles as a table.
func FormatProfileList(profiles []*domain.UserProfile) string {
	headers := []string{"USERNAME", "NAME", "LEVEL", "XP", "ROLE", "ID"}
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.Username,
			p.DisplayName(),
			strconv.Itoa(p.Stats.Level),
			fmt.Sprintf("%d/%d", p.Stats.XP, p.Stats.NextLevelXP()),
			string(p.StudyRole),
			TruncID(p.ID),
		})
	}
	return RenderTableAligned(headers, rows, []bool{false, false, true, true, false, false})
}

// FormatActivityList renders activity logs newest first.
func FormatActivityList(logs []*domain.ActivityLog, now time.Time) string {
	headers := []string{"WHEN", "TYPE", "XP", "DESCRIPTION"}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			HumanTimestampFrom(l.CompletedAt, now),
			ActivityBadge(l.Type),
			"+" + strconv.Itoa(l.XPEarned),
			l.Description,
		})
	}
	return RenderTableAligned(headers, rows, []bool{false, false, true, false})
}

// ActivityBadge colors an activity type.
func ActivityBadge(t domain.ActivityType) string {
	switch t {
	case domain.ActivityStudy:
		return StyleBlue.Render(string(t))
	case domain.ActivityWorkout:
		return StyleRed.Render(string(t))
	case domain.ActivityMeditate:
		return StylePurple.Render(string(t))
	default:
		return Dim(string(t))
	}
}

// FormatActivityReward renders the result of completing one activity.
func FormatActivityReward(t domain.ActivityType, reward domain.ActivityReward, stats domain.UserStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", StyleGreen.Render("✔"), ActivityBadge(t), Bold(fmt.Sprintf("+%d XP", reward.XPEarned)))
	if reward.LeveledUp {
		fmt.Fprintf(&b, "%s\n", StyleHeader.Render(fmt.Sprintf("Level up! You are now level %d.", reward.NewLevel)))
	}
	b.WriteString(RenderXP(stats.Level, stats.XP, stats.NextLevelXP(), statBarWidth) + "\n")
	return b.String()
}

// FormatSummary renders a profile's lifetime counts and the last seven days.
func FormatSummary(p *domain.UserProfile, counts map[domain.ActivityType]int, weekXP, weekLogs int) string {
	var b strings.Builder
	b.WriteString(Header("Progress: " + p.DisplayName()))
	b.WriteString("\n")
	b.WriteString(RenderXP(p.Stats.Level, p.Stats.XP, p.Stats.NextLevelXP(), statBarWidth) + "\n\n")

	rows := [][]string{
		{ActivityBadge(domain.ActivityStudy), strconv.Itoa(counts[domain.ActivityStudy])},
		{ActivityBadge(domain.ActivityWorkout), strconv.Itoa(counts[domain.ActivityWorkout])},
		{ActivityBadge(domain.ActivityMeditate), strconv.Itoa(counts[domain.ActivityMeditate])},
	}
	b.WriteString(RenderTableAligned([]string{"ACTIVITY", "COUNT"}, rows, []bool{false, true}))
	fmt.Fprintf(&b, "\n%s %d activities, %d XP\n\n", Dim("Last 7 days:"), weekLogs, weekXP)
	b.WriteString(FormatBadges(p.Stats))
	return b.String()
}

// FormatBadges lists every badge with its unlock state.
func FormatBadges(s domain.UserStats) string {
	all := domain.Badges(s)
	unlocked := 0
	var b strings.Builder
	for _, badge := range all {
		mark := Dim("○")
		name := Dim(badge.Name)
		if badge.Unlocked {
			unlocked++
			mark = StyleGreen.Render("●")
			name = StyleYellow.Render(badge.Name)
		}
		fmt.Fprintf(&b, "  %s %s  %s\n", mark, name, Dim(badge.Description))
	}
	return fmt.Sprintf("%s %d/%d\n", Bold("Badges"), unlocked, len(all)) + b.String()
}
