package session

import (
	"github.com/2beens/fitbuddy/internal/bodymetrics"
	"github.com/2beens/fitbuddy/internal/nutrition"
	"github.com/2beens/fitbuddy/internal/profile"
	"github.com/2beens/fitbuddy/internal/progress"
	"github.com/2beens/fitbuddy/internal/wellness"
	"github.com/2beens/fitbuddy/internal/workout"
)

// State is the user's data as loaded at the start of a request.
// Profile is nil until the user completes it.
type State struct {
	AccountID int                     `json:"accountId"`
	Profile   *profile.Profile        `json:"profile"`
	Plans     []*workout.Plan         `json:"plans"`
	History   []*workout.Session      `json:"history"`
	FoodLog   []*nutrition.Entry      `json:"foodLog"`
	Progress  []*progress.Record      `json:"progress"`
	Water     []*wellness.WaterRecord `json:"water"`
	Sleep     []*wellness.SleepRecord `json:"sleep"`
	// Targets are derived from the current profile, nil without one
	Targets *bodymetrics.Targets `json:"targets,omitempty"`
}

// withEmptyLists keeps JSON lists as [] rather than null.
func (s *State) withEmptyLists() *State {
	s.Plans = nonNil(s.Plans)
	s.History = nonNil(s.History)
	s.FoodLog = nonNil(s.FoodLog)
	s.Progress = nonNil(s.Progress)
	s.Water = nonNil(s.Water)
	s.Sleep = nonNil(s.Sleep)
	return s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (s *State) HasProfile() bool {
	return s.Profile != nil
}
