package trainings

import (
	"fmt"
	"time"

	"github.com/mpavlovic/fitlog/internal/daykey"
)

type TrainingStart struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

type TrainingFinish struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	DurationSeconds int       `json:"durationSeconds"`
	Calories        int       `json:"calories"`
}

type TimerFinish struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Seconds   int       `json:"seconds"`
	Label     string    `json:"label"`
}

// Event is the stored form of a training lifecycle signal: a session
// started or finished, or an exercise timer that ran out. The day key
// is derived from the timestamp so trainings land in the same daily
// buckets as logged sets.
type Event struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Day       daykey.DayKey     `json:"day"`
	Data      map[string]string `json:"data"`
}

func NewTrainingStartEvent(ts TrainingStart) Event {
	return Event{
		ID:        ts.ID,
		Type:      EventTypeTrainingStarted,
		Timestamp: ts.Timestamp,
		Data:      map[string]string{},
	}
}

func NewTrainingFinishEvent(tf TrainingFinish) Event {
	return Event{
		ID:        tf.ID,
		Type:      EventTypeTrainingFinished,
		Timestamp: tf.Timestamp,
		Data: map[string]string{
			"durationSeconds": fmt.Sprintf("%d", tf.DurationSeconds),
			"calories":        fmt.Sprintf("%d", tf.Calories),
		},
	}
}

func NewTimerFinishEvent(tf TimerFinish) Event {
	return Event{
		ID:        tf.ID,
		Type:      EventTypeTimerFinished,
		Timestamp: tf.Timestamp,
		Data: map[string]string{
			"seconds": fmt.Sprintf("%d", tf.Seconds),
			"label":   tf.Label,
		},
	}
}

type EventType string

const (
	EventTypeTrainingStarted  EventType = "training_started"
	EventTypeTrainingFinished EventType = "training_finished"
	EventTypeTimerFinished    EventType = "timer_finished"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeTrainingStarted,
		EventTypeTrainingFinished,
		EventTypeTimerFinished:
		return true
	default:
		return false
	}
}
