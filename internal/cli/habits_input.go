package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/habitfile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// habitFlags binds the per-habit override flags shared by simulate, impact,
// coach and profile set-habits.
type habitFlags struct {
	values domain.HabitSnapshot
	file   string
}

func (f *habitFlags) register(fs *pflag.FlagSet) {
	d := domain.DefaultHabits()
	fs.Float64Var(&f.values.SleepHours, "sleep", d.SleepHours, "Sleep hours per night (4-10)")
	fs.Float64Var(&f.values.StudyHours, "study", d.StudyHours, "Study hours per week (0-30)")
	fs.Float64Var(&f.values.ScreenTime, "screen", d.ScreenTime, "Screen time hours per day (0-10)")
	fs.Float64Var(&f.values.ExerciseDays, "exercise", d.ExerciseDays, "Exercise days per week (0-7)")
	fs.Float64Var(&f.values.StressLevel, "stress", d.StressLevel, "Stress level (1-10)")
	fs.StringVarP(&f.file, "file", "f", "", "Read habits from a YAML file")
}

// resolve layers habits: base, then the YAML file, then explicitly set flags.
func (f *habitFlags) resolve(fs *pflag.FlagSet, base domain.HabitSnapshot) (domain.HabitSnapshot, error) {
	h := base
	if f.file != "" {
		s, err := habitfile.Load(f.file)
		if err != nil {
			return domain.HabitSnapshot{}, err
		}
		h = s.HabitSnapshot
	}

	overrides := []struct {
		name string
		dst  *float64
		src  float64
	}{
		{"sleep", &h.SleepHours, f.values.SleepHours},
		{"study", &h.StudyHours, f.values.StudyHours},
		{"screen", &h.ScreenTime, f.values.ScreenTime},
		{"exercise", &h.ExerciseDays, f.values.ExerciseDays},
		{"stress", &h.StressLevel, f.values.StressLevel},
	}
	for _, o := range overrides {
		if fs.Changed(o.name) {
			*o.dst = o.src
		}
	}

	if err := h.Validate(); err != nil {
		return domain.HabitSnapshot{}, err
	}
	return h, nil
}

// habitSource resolves the habits a command should evaluate: the profile's
// saved habits (or defaults) as the base, optionally refined in a form.
type habitSource struct {
	flags       habitFlags
	profile     string
	interactive bool
}

func (s *habitSource) register(cmd *cobra.Command) {
	s.flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&s.profile, "profile", "p", "", "Start from a profile's saved habits (username or ID)")
	cmd.Flags().BoolVarP(&s.interactive, "interactive", "i", false, "Adjust habits in an interactive form")
}

func (s *habitSource) resolve(ctx context.Context, cmd *cobra.Command, app *App) (domain.HabitSnapshot, *domain.UserProfile, error) {
	base := domain.DefaultHabits()
	var profile *domain.UserProfile
	if s.profile != "" {
		p, err := app.Profiles.Resolve(ctx, s.profile)
		if err != nil {
			return domain.HabitSnapshot{}, nil, err
		}
		profile = p
		base = p.Habits
	}

	h, err := s.flags.resolve(cmd.Flags(), base)
	if err != nil {
		return domain.HabitSnapshot{}, nil, err
	}

	if s.interactive {
		if !app.interactive() {
			return domain.HabitSnapshot{}, nil, fmt.Errorf("--interactive requires a terminal")
		}
		if h, err = runHabitForm(ctx, cmd, h); err != nil {
			return domain.HabitSnapshot{}, nil, err
		}
	}
	return h, profile, nil
}
