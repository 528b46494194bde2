// Package habitfile reads habit snapshots from YAML files.
//
//	name: exam week
//	sleepHours: 6
//	studyHours: 25
//	screenTime: 3
//	exerciseDays: 1
//	stressLevel: 8
//
// Omitted fields take the default habit values. Unknown keys are rejected so
// that a typo does not silently fall back to a default.
package habitfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/futureself/internal/domain"
)

// Scenario is one named habit snapshot.
type Scenario struct {
	Name                 string `yaml:"name,omitempty"`
	domain.HabitSnapshot `yaml:",inline"`
}

// Parse decodes a scenario from r.
func Parse(r io.Reader) (Scenario, error) {
	s := Scenario{HabitSnapshot: domain.DefaultHabits()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Scenario{}, fmt.Errorf("decode habits: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Load reads a scenario from path. An unnamed scenario is named after the file.
func Load(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("open habit file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Write encodes s as YAML to path.
func Write(path string, s Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode habits: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write habit file: %w", err)
	}
	return nil
}
