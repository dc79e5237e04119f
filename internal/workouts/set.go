package workouts

import (
	"errors"
	"time"

	"github.com/mpavlovic/fitlog/internal/daykey"
)

type SetType string

const (
	// SetTypeReps is a repetition-based set, Value holds the rep count.
	SetTypeReps SetType = "reps"
	// SetTypeTimed is a duration-based set, Value holds seconds.
	SetTypeTimed SetType = "timed"
)

var (
	ErrInvalidSetType  = errors.New("invalid set type")
	ErrInvalidSetValue = errors.New("set value must be positive")
)

// Set is one logged workout set, pinned to the calendar day it was
// logged for rather than to its creation instant.
type Set struct {
	ID         string        `json:"id"`
	ExerciseID string        `json:"exerciseId"`
	Type       SetType       `json:"type"`
	Value      int           `json:"value"`
	DayKey     daykey.DayKey `json:"day"`
	CreatedAt  time.Time     `json:"createdAt"`
}

func (s Set) Validate() error {
	if s.Type != SetTypeReps && s.Type != SetTypeTimed {
		return ErrInvalidSetType
	}
	if s.Value < 1 {
		return ErrInvalidSetValue
	}
	return nil
}
