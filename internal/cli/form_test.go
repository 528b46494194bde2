package cli

import (
	"testing"

	"github.com/alexanderramin/futureself/internal/domain"
	"github.com/alexanderramin/futureself/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHabitValue(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"7", false},
		{" 7.5 ", false},
		{"-1", false},
		{"12", false},
		{"", true},
		{"seven", true},
		{"NaN", true},
		{"Inf", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateHabitValue(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHabitFormFields_RoundTrip(t *testing.T) {
	h := domain.HabitSnapshot{SleepHours: 7.5, StudyHours: 12, ScreenTime: 3.25, ExerciseDays: 4, StressLevel: 6}
	fields := newHabitFormFields(h)
	assert.Equal(t, habitFormFields{"7.5", "12", "3.25", "4", "6"}, fields)

	got, err := fields.snapshot()
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestHabitFormFields_EditedValues(t *testing.T) {
	fields := newHabitFormFields(domain.DefaultHabits())
	fields[0] = " 5 "
	fields[4] = "9"

	got, err := fields.snapshot()
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.SleepHours)
	assert.Equal(t, 9.0, got.StressLevel)
}

func TestHabitFormFields_InvalidNumber(t *testing.T) {
	fields := newHabitFormFields(domain.DefaultHabits())
	fields[2] = "lots"

	_, err := fields.snapshot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screenTime")
}

func TestHabitForm_RendersEveryField(t *testing.T) {
	fields := newHabitFormFields(domain.DefaultHabits())
	d := teatest.New(t, habitForm(&fields), teatest.WithSize(100, 40))
	d.DrainInit()

	view := d.View()
	for _, title := range habitFormTitles {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "usual range 4-10")
}
