package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(t *testing.T) *domain.UserProfile {
	t.Helper()
	p, err := domain.NewUserProfile("ana", "Ana", "Lopez", 20, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	p.ID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	require.NoError(t, p.SetStudyProfile(domain.StudyRoleCollege, "Physics", p.CreatedAt))
	return p
}

func TestFormatProfile(t *testing.T) {
	p := testProfile(t)
	p.Stats.ApplyActivity(domain.ActivityStudy)

	out := stripANSI(FormatProfile(p))
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "Ana Lopez")
	assert.Contains(t, out, "@ana")
	assert.Contains(t, out, "College · Physics")
	assert.Contains(t, out, "Lv 1")
	assert.Contains(t, out, "50/100 XP")
	assert.Contains(t, out, "Intelligence")
	assert.Contains(t, out, "Stress")
	assert.Contains(t, out, "badges  New Beginnings")
}

func TestFormatProfileList(t *testing.T) {
	p := testProfile(t)
	out := stripANSI(FormatProfileList([]*domain.UserProfile{p}))
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "ana")
	assert.Contains(t, out, "0/100")
	assert.Contains(t, out, "aaaaaaaa")
}

func TestFormatActivityList(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	logs := []*domain.ActivityLog{
		{ID: "1", Type: domain.ActivityWorkout, Description: "run", XPEarned: 60, CompletedAt: now.Add(-30 * time.Minute)},
	}
	out := stripANSI(FormatActivityList(logs, now))
	assert.Contains(t, out, "workout")
	assert.Contains(t, out, "+60")
	assert.Contains(t, out, "30m ago")
	assert.Contains(t, out, "run")
}

func TestFormatActivityReward_LevelUp(t *testing.T) {
	stats := domain.NewUserStats()
	stats.XP = 80
	reward := stats.ApplyActivity(domain.ActivityWorkout)
	require.True(t, reward.LeveledUp)

	out := stripANSI(FormatActivityReward(domain.ActivityWorkout, reward, stats))
	assert.Contains(t, out, "+60 XP")
	assert.Contains(t, out, "Level up! You are now level 2.")
	assert.Contains(t, out, "40/200 XP")
}

func TestFormatSummary(t *testing.T) {
	p := testProfile(t)
	counts := map[domain.ActivityType]int{domain.ActivityStudy: 3, domain.ActivityMeditate: 1}

	out := stripANSI(FormatSummary(p, counts, 190, 4))
	assert.Contains(t, out, "PROGRESS: ANA LOPEZ")
	assert.Contains(t, out, "study")
	assert.Contains(t, out, "4 activities, 190 XP")
	assert.Contains(t, out, "Badges 0/6")
}

func TestFormatBadges(t *testing.T) {
	stats := domain.NewUserStats()
	for i := 0; i < 5; i++ {
		stats.ApplyActivity(domain.ActivityStudy)
	}

	out := stripANSI(FormatBadges(stats))
	assert.Contains(t, out, "Badges 2/6")
	assert.Contains(t, out, "● Scholar")
	assert.Contains(t, out, "● New Beginnings")
	assert.Contains(t, out, "○ Athlete")
	assert.Contains(t, out, "○ Pro User")
}
