package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreStyle colors a 0-100 score where higher is better.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 66:
		return StyleGreen
	case score >= 33:
		return StyleYellow
	default:
		return StyleRed
	}
}

// RiskStyle colors a 0-100 risk where lower is better.
func RiskStyle(risk int) lipgloss.Style {
	return ScoreStyle(100 - risk)
}

// BurnoutBand names the burnout risk band used by the text output.
func BurnoutBand(risk int) string {
	switch {
	case risk >= 70:
		return "HIGH"
	case risk >= 40:
		return "ELEVATED"
	default:
		return "LOW"
	}
}

// BurnoutIndicator returns a colored band indicator such as "● HIGH".
func BurnoutIndicator(risk int) string {
	return RiskStyle(risk).Render("● " + BurnoutBand(risk))
}

// ImpactIndicator highlights the recommended habit change. Maintaining habits
// is shown in green since nothing needs fixing.
func ImpactIndicator(impact domain.Impact) string {
	if impact == domain.ImpactMaintainHabits {
		return StyleGreen.Render("✔ " + string(impact))
	}
	return StyleYellow.Render("▲ " + string(impact))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
