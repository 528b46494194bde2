package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/futureself/internal/cli/formatter"
	"github.com/alexanderramin/futureself/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// futureselfHuhTheme returns a custom huh theme using the Gruvbox palette.
func futureselfHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateHabitValue accepts any finite number. Out-of-range values are
// allowed and reported as warnings after evaluation.
func validateHabitValue(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("enter a finite number")
	}
	return nil
}

// habitFormFields holds the string-backed form values in HabitRanges order.
type habitFormFields [5]string

func newHabitFormFields(h domain.HabitSnapshot) habitFormFields {
	var f habitFormFields
	for i, v := range h.Values() {
		f[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return f
}

func (f habitFormFields) snapshot() (domain.HabitSnapshot, error) {
	var vals [5]float64
	for i, s := range f {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return domain.HabitSnapshot{}, fmt.Errorf("%s: invalid number %q", domain.HabitRanges[i].Field, s)
		}
		vals[i] = v
	}
	h := domain.HabitSnapshot{
		SleepHours:   vals[0],
		StudyHours:   vals[1],
		ScreenTime:   vals[2],
		ExerciseDays: vals[3],
		StressLevel:  vals[4],
	}
	return h, h.Validate()
}

var habitFormTitles = [5]string{
	"Sleep (hours per night)",
	"Study (hours per week)",
	"Screen time (hours per day)",
	"Exercise (days per week)",
	"Stress (1-10)",
}

func habitForm(fields *habitFormFields) *huh.Form {
	inputs := make([]huh.Field, 0, len(fields))
	for i := range fields {
		r := domain.HabitRanges[i]
		inputs = append(inputs, huh.NewInput().
			Title(habitFormTitles[i]).
			Description(fmt.Sprintf("usual range %g-%g", r.Min, r.Max)).
			Value(&fields[i]).
			Validate(validateHabitValue))
	}
	return huh.NewForm(huh.NewGroup(inputs...)).
		WithTheme(futureselfHuhTheme()).
		WithShowHelp(false)
}

// runHabitForm lets the user adjust h in a terminal form. The form draws on
// stderr so stdout stays clean for --json.
func runHabitForm(ctx context.Context, cmd *cobra.Command, h domain.HabitSnapshot) (domain.HabitSnapshot, error) {
	fields := newHabitFormFields(h)
	form := habitForm(&fields).WithProgramOptions(tea.WithOutput(cmd.ErrOrStderr()))
	if err := form.RunWithContext(ctx); err != nil {
		return domain.HabitSnapshot{}, fmt.Errorf("habit form: %w", err)
	}
	return fields.snapshot()
}
