package workout

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/pkg"

	"go.uber.org/multierr"
)

const (
	MinSets, MaxSets, DefaultSets = 1, 10, 3
	MinReps, MaxReps, DefaultReps = 1, 20, 12
	MinRest, MaxRest, DefaultRest = 30, 180, 60
)

type ExerciseSelection struct {
	Exercise    string `json:"exercise"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
}

type Plan struct {
	ID        int                               `json:"id"`
	Name      string                            `json:"name"`
	Weekdays  []Weekday                         `json:"weekdays"`
	Exercises map[MuscleGroup]ExerciseSelection `json:"exercises"`
	CreatedAt pkg.Date                          `json:"createdAt"`
}

// Groups returns the plan's muscle groups in catalog order.
func (p *Plan) Groups() []MuscleGroup {
	groups := make([]MuscleGroup, 0, len(p.Exercises))
	for _, g := range MuscleGroups {
		if _, ok := p.Exercises[g]; ok {
			groups = append(groups, g)
		}
	}
	return groups
}

type PlanInput struct {
	Name      string                            `json:"name"`
	Weekdays  []Weekday                         `json:"weekdays"`
	Exercises map[MuscleGroup]ExerciseSelection `json:"exercises"`
}

// withDefaults fills zero sets/reps/rest with the form defaults.
func (in PlanInput) withDefaults() PlanInput {
	exercises := make(map[MuscleGroup]ExerciseSelection, len(in.Exercises))
	for g, sel := range in.Exercises {
		if sel.Sets == 0 {
			sel.Sets = DefaultSets
		}
		if sel.Reps == 0 {
			sel.Reps = DefaultReps
		}
		if sel.RestSeconds == 0 {
			sel.RestSeconds = DefaultRest
		}
		exercises[g] = sel
	}
	in.Exercises = exercises
	in.Name = strings.TrimSpace(in.Name)
	return in
}

func (in PlanInput) Validate() error {
	var err error
	if strings.TrimSpace(in.Name) == "" {
		err = multierr.Append(err, apperr.Invalid("name", "is required"))
	}
	if len(in.Weekdays) == 0 {
		err = multierr.Append(err, apperr.Invalid("weekdays", "select at least one day"))
	}
	seen := map[Weekday]bool{}
	for _, d := range in.Weekdays {
		if !d.IsValid() {
			err = multierr.Append(err, apperr.Invalid("weekdays", "unknown day [%s]", d))
		} else if seen[d] {
			err = multierr.Append(err, apperr.Invalid("weekdays", "day [%s] repeated", d))
		}
		seen[d] = true
	}
	if len(in.Exercises) == 0 {
		err = multierr.Append(err, apperr.Invalid("exercises", "select at least one muscle group"))
	}
	for _, g := range sortedGroups(in.Exercises) {
		err = multierr.Append(err, validateSelection(g, in.Exercises[g]))
	}
	return err
}

func validateSelection(g MuscleGroup, sel ExerciseSelection) error {
	field := "exercises." + string(g)
	if !g.IsValid() {
		return apperr.Invalid(field, "unknown muscle group")
	}
	var err error
	if !g.HasExercise(sel.Exercise) {
		err = multierr.Append(err, apperr.Invalid(field+".exercise", "[%s] is not an exercise of %s", sel.Exercise, g))
	}
	if sel.Sets < MinSets || sel.Sets > MaxSets {
		err = multierr.Append(err, apperr.Invalid(field+".sets", "must be between %d and %d", MinSets, MaxSets))
	}
	if sel.Reps < MinReps || sel.Reps > MaxReps {
		err = multierr.Append(err, apperr.Invalid(field+".reps", "must be between %d and %d", MinReps, MaxReps))
	}
	if sel.RestSeconds < MinRest || sel.RestSeconds > MaxRest {
		err = multierr.Append(err, apperr.Invalid(field+".restSeconds", "must be between %d and %d", MinRest, MaxRest))
	}
	return err
}

func sortedGroups(m map[MuscleGroup]ExerciseSelection) []MuscleGroup {
	groups := make([]MuscleGroup, 0, len(m))
	for g := range m {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups
}

// weekdays are stored as a comma separated list
func encodeWeekdays(days []Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(raw string) ([]Weekday, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty weekdays")
	}
	parts := strings.Split(raw, ",")
	days := make([]Weekday, 0, len(parts))
	for _, p := range parts {
		d := Weekday(strings.TrimSpace(p))
		if !d.IsValid() {
			return nil, fmt.Errorf("unknown weekday [%s]", p)
		}
		days = append(days, d)
	}
	return days, nil
}

func encodeExercises(exercises map[MuscleGroup]ExerciseSelection) ([]byte, error) {
	return json.Marshal(exercises)
}

// decodeExercises parses the stored exercises column, rejecting unknown fields and invalid selections.
func decodeExercises(raw []byte) (map[MuscleGroup]ExerciseSelection, error) {
	var exercises map[MuscleGroup]ExerciseSelection
	if err := pkg.DecodeJSONBytes(raw, &exercises); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("decode exercises: no muscle groups")
	}
	for g, sel := range exercises {
		if err := validateSelection(g, sel); err != nil {
			return nil, fmt.Errorf("decode exercises: %w", err)
		}
	}
	return exercises, nil
}

func encodeGroups(groups []MuscleGroup) ([]byte, error) {
	if groups == nil {
		groups = []MuscleGroup{}
	}
	return json.Marshal(groups)
}

func decodeGroups(raw []byte) ([]MuscleGroup, error) {
	var groups []MuscleGroup
	if err := pkg.DecodeJSONBytes(raw, &groups); err != nil {
		return nil, fmt.Errorf("decode completed groups: %w", err)
	}
	for _, g := range groups {
		if !g.IsValid() {
			return nil, fmt.Errorf("decode completed groups: unknown group [%s]", g)
		}
	}
	return groups, nil
}
