package domain

import (
	"fmt"
	"strings"
	"time"
)

type ActivityType string

const (
	ActivityStudy    ActivityType = "study"
	ActivityWorkout  ActivityType = "workout"
	ActivityMeditate ActivityType = "meditate"
)

// ValidActivityTypes is the canonical set of accepted activity type strings.
var ValidActivityTypes = map[string]bool{
	"study": true, "workout": true, "meditate": true,
}

// ParseActivityType normalizes s and checks it against ValidActivityTypes.
func ParseActivityType(s string) (ActivityType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if !ValidActivityTypes[v] {
		return "", fmt.Errorf("unknown activity type %q (expected study, workout or meditate)", s)
	}
	return ActivityType(v), nil
}

// XPReward returns the experience points earned for one completed activity.
func (t ActivityType) XPReward() int {
	switch t {
	case ActivityStudy:
		return 50
	case ActivityWorkout:
		return 60
	case ActivityMeditate:
		return 40
	default:
		return 0
	}
}

type ActivityLog struct {
	ID          string
	ProfileID   string
	Type        ActivityType
	Description string
	XPEarned    int
	CompletedAt time.Time
}

// ActivityReward describes the effect of ApplyActivity on a profile's stats.
type ActivityReward struct {
	XPEarned  int
	LeveledUp bool
	NewLevel  int
}
