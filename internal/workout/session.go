package workout

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitbuddy/pkg"
)

// Session is a finished workout, stored in the history.
type Session struct {
	ID              int           `json:"id"`
	PlanName        string        `json:"plan"`
	Date            pkg.Date      `json:"date"`
	Start           pkg.Timestamp `json:"start"`
	End             pkg.Timestamp `json:"end"`
	DurationSeconds float64       `json:"durationSeconds"`
	CompletedGroups []MuscleGroup `json:"completedGroups"`
}

func (s *Session) Duration() time.Duration {
	return time.Duration(s.DurationSeconds * float64(time.Second))
}

type TrackerState string

const (
	StateNoActivePlan TrackerState = "no_active_plan"
	StatePlanStarted  TrackerState = "plan_started"
	StateInProgress   TrackerState = "in_progress"
	StateFinalized    TrackerState = "finalized"
)

// ActiveWorkout is the transient state of a started and not yet finished workout.
type ActiveWorkout struct {
	PlanName  string        `json:"plan"`
	Groups    []MuscleGroup `json:"groups"`
	Completed []MuscleGroup `json:"completed"`
	StartedAt time.Time     `json:"startedAt"`
}

func (a *ActiveWorkout) validate() error {
	if a.PlanName == "" {
		return errors.New("missing plan name")
	}
	if a.StartedAt.IsZero() {
		return errors.New("missing start time")
	}
	if len(a.Groups) == 0 {
		return errors.New("no muscle groups")
	}
	for _, g := range a.Groups {
		if !g.IsValid() {
			return fmt.Errorf("unknown group [%s]", g)
		}
	}
	for _, c := range a.Completed {
		if !a.HasGroup(c) {
			return fmt.Errorf("completed group [%s] is not in the plan", c)
		}
	}
	return nil
}

func (a *ActiveWorkout) State() TrackerState {
	switch {
	case a == nil:
		return StateNoActivePlan
	case len(a.Completed) == 0:
		return StatePlanStarted
	case len(a.Pending()) > 0:
		return StateInProgress
	default:
		return StateFinalized
	}
}

func (a *ActiveWorkout) HasGroup(g MuscleGroup) bool {
	for _, pg := range a.Groups {
		if pg == g {
			return true
		}
	}
	return false
}

func (a *ActiveWorkout) IsCompleted(g MuscleGroup) bool {
	for _, c := range a.Completed {
		if c == g {
			return true
		}
	}
	return false
}

// Complete marks the group done, idempotently.
func (a *ActiveWorkout) Complete(g MuscleGroup) {
	if !a.IsCompleted(g) {
		a.Completed = append(a.Completed, g)
	}
}

// Pending returns the plan groups not completed yet.
func (a *ActiveWorkout) Pending() []MuscleGroup {
	var pending []MuscleGroup
	for _, g := range a.Groups {
		if !a.IsCompleted(g) {
			pending = append(pending, g)
		}
	}
	return pending
}

type ActiveView struct {
	State          TrackerState   `json:"state"`
	Workout        *ActiveWorkout `json:"workout,omitempty"`
	Pending        []MuscleGroup  `json:"pending,omitempty"`
	ElapsedSeconds float64        `json:"elapsedSeconds,omitempty"`
}
