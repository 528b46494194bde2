package formatter

import (
	"fmt"
	"math"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clampPct(pct)
	bar := renderBar(pct, width)
	return fmt.Sprintf("[%s] %3.0f%%", ScoreStyle(int(pct*100)).Render(bar), pct*100)
}

// RenderScore renders a 0-100 score bar with the raw score, e.g. [███░░] 62.
// With inverted set, high values are colored as bad (burnout risk).
func RenderScore(score int, width int, inverted bool) string {
	style := ScoreStyle(score)
	if inverted {
		style = RiskStyle(score)
	}
	bar := renderBar(clampPct(float64(score)/100), width)
	return fmt.Sprintf("[%s] %3d", style.Render(bar), score)
}

// RenderXP renders the level progress bar, e.g. Lv 3 [██░░░░] 120/300 XP.
func RenderXP(level, xp, next, width int) string {
	pct := 0.0
	if next > 0 {
		pct = clampPct(float64(xp) / float64(next))
	}
	bar := renderBar(pct, width)
	return fmt.Sprintf("Lv %d [%s] %d/%d XP", level, StylePurple.Render(bar), xp, next)
}

func renderBar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clampPct(pct float64) float64 {
	if pct < 0 || math.IsNaN(pct) {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
