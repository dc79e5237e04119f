package assistant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mpavlovic/fitlog/internal/daykey"
	"github.com/mpavlovic/fitlog/internal/exercises"
	"github.com/mpavlovic/fitlog/internal/telemetry/metrics"
	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"
	"github.com/mpavlovic/fitlog/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type OutcomeType string

const (
	OutcomeCommitted       OutcomeType = "committed"
	OutcomeSuggesting      OutcomeType = "suggesting"
	OutcomeClarifying      OutcomeType = "clarifying"
	OutcomeAllModelsFailed OutcomeType = "all_models_failed"
)

// Outcome is the result of one assistant turn.
type Outcome struct {
	Type        OutcomeType   `json:"type"`
	Reply       string        `json:"reply"`
	LoggedSet   *workouts.Set `json:"loggedSet,omitempty"`
	CountToday  int           `json:"countToday,omitempty"`
	Suggestions []Suggestion  `json:"suggestions,omitempty"`
}

var affirmationRegex = regexp.MustCompile(`(?i)^(yes|yeah|yep|si|sure|correct|exactly|ok|okay)$`)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=assistant_test

type exerciseCatalog interface {
	ListNames(ctx context.Context) ([]string, error)
	GetByName(ctx context.Context, name string) (*exercises.Exercise, error)
}

type setsCommitter interface {
	Add(ctx context.Context, set workouts.Set) (*workouts.Set, error)
	CountForDay(ctx context.Context, key daykey.DayKey) (int, error)
}

type intentResolver interface {
	ResolveIntent(ctx context.Context, message string, day daykey.DayKey, knownNames []string) (*Intent, int, error)
}

type suggestionStore interface {
	Set(ctx context.Context, suggestions []Suggestion) error
	Take(ctx context.Context) ([]Suggestion, error)
	Clear(ctx context.Context) error
}

// Service runs the assistant turn pipeline: affirmation shortcut, local
// heuristics with the exact-name fast path, model fallback chain, then
// fuzzy matching with suggestions. It never logs an exercise name that
// is not in the user's catalog.
type Service struct {
	catalog     exerciseCatalog
	sets        setsCommitter
	resolver    intentResolver
	suggestions suggestionStore
	dayResolver *daykey.Resolver
	metrics     *metrics.Manager
}

func NewService(
	catalog exerciseCatalog,
	sets setsCommitter,
	resolver intentResolver,
	suggestions suggestionStore,
	dayResolver *daykey.Resolver,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		catalog:     catalog,
		sets:        sets,
		resolver:    resolver,
		suggestions: suggestions,
		dayResolver: dayResolver,
		metrics:     metricsManager,
	}
}

func (s *Service) HandleMessage(ctx context.Context, message, selectedDay string) (_ *Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.service.handle_message")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	bucket, err := s.dayResolver.ResolveDayBucket(selectedDay)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("day", string(bucket.Key)))

	message = strings.TrimSpace(message)

	if affirmationRegex.MatchString(message) {
		outcome, err := s.handleAffirmation(ctx, bucket)
		if err != nil {
			return nil, err
		}
		s.countTurn(outcome.Type)
		return outcome, nil
	}

	// a fresh message invalidates whatever the previous turn offered
	if err := s.suggestions.Clear(ctx); err != nil {
		log.Errorf("failed to clear pending suggestions: %s", err)
	}

	knownNames, err := s.catalog.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercise names: %w", err)
	}

	if intent, ok := ParseHeuristic(message); ok {
		if name, found := FindExactName(intent.ExerciseName, knownNames); found {
			outcome, err := s.commit(ctx, bucket, name, intent.SetType, intent.Value)
			if err != nil {
				return nil, err
			}
			s.countTurn(outcome.Type)
			return outcome, nil
		}
	}

	intent, attempts, err := s.resolver.ResolveIntent(ctx, message, bucket.Key, knownNames)
	if attempts > 1 {
		s.metrics.CounterModelFallbacks.Add(float64(attempts - 1))
	}
	if err != nil {
		if errors.Is(err, ErrAllModelsFailed) {
			s.countTurn(OutcomeAllModelsFailed)
			return &Outcome{
				Type:  OutcomeAllModelsFailed,
				Reply: "Sorry, the assistant is unavailable right now. Please try again.",
			}, nil
		}
		return nil, fmt.Errorf("resolve intent: %w", err)
	}

	if intent.Action != ActionLogSet {
		s.countTurn(OutcomeClarifying)
		return &Outcome{
			Type:  OutcomeClarifying,
			Reply: intent.Reply,
		}, nil
	}

	// Unlike the heuristic fast path, a model-resolved name commits only on a
	// word-for-word normalized match; anything looser goes through suggestions.
	if name, found := FindNormalizedName(intent.ExerciseName, knownNames); found {
		outcome, err := s.commit(ctx, bucket, name, intent.SetType, intent.Value)
		if err != nil {
			return nil, err
		}
		s.countTurn(outcome.Type)
		return outcome, nil
	}

	candidates := TopCandidates(intent.ExerciseName, knownNames)
	if len(candidates) == 0 {
		s.countTurn(OutcomeClarifying)
		return &Outcome{
			Type:  OutcomeClarifying,
			Reply: fmt.Sprintf("I don't know the exercise %q.", intent.ExerciseName),
		}, nil
	}

	suggestions := BuildSuggestions(candidates, intent.SetType, intent.Value)
	if err := s.suggestions.Set(ctx, suggestions); err != nil {
		log.Errorf("failed to store suggestions: %s", err)
	}

	s.countTurn(OutcomeSuggesting)
	return &Outcome{
		Type:        OutcomeSuggesting,
		Reply:       fmt.Sprintf("Did you mean %q?", suggestions[0].ExerciseName),
		Suggestions: suggestions,
	}, nil
}

func (s *Service) handleAffirmation(ctx context.Context, bucket daykey.Bucket) (*Outcome, error) {
	suggestions, err := s.suggestions.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("take suggestions: %w", err)
	}
	if len(suggestions) == 0 {
		return &Outcome{
			Type:  OutcomeClarifying,
			Reply: "There is nothing to confirm right now.",
		}, nil
	}

	first := suggestions[0]
	return s.commit(ctx, bucket, first.ExerciseName, first.SetType, first.Value)
}

func (s *Service) commit(
	ctx context.Context,
	bucket daykey.Bucket,
	exerciseName string,
	setType workouts.SetType,
	value int,
) (*Outcome, error) {
	exercise, err := s.catalog.GetByName(ctx, exerciseName)
	if err != nil {
		return nil, fmt.Errorf("get exercise by name: %w", err)
	}

	addedSet, err := s.sets.Add(ctx, workouts.Set{
		ExerciseID: exercise.ID,
		Type:       setType,
		Value:      clampValue(value),
		DayKey:     bucket.Key,
	})
	if err != nil {
		return nil, fmt.Errorf("add set: %w", err)
	}

	s.metrics.CounterSetsLogged.WithLabelValues("assistant").Inc()

	countToday, err := s.sets.CountForDay(ctx, bucket.Key)
	if err != nil {
		log.Errorf("failed to count sets for day %s: %s", bucket.Key, err)
	}

	var reply string
	if setType == workouts.SetTypeTimed {
		reply = fmt.Sprintf("Logged %d seconds of %s. That's set number %d today.", addedSet.Value, exercise.Name, countToday)
	} else {
		reply = fmt.Sprintf("Logged %d reps of %s. That's set number %d today.", addedSet.Value, exercise.Name, countToday)
	}

	return &Outcome{
		Type:       OutcomeCommitted,
		Reply:      reply,
		LoggedSet:  addedSet,
		CountToday: countToday,
	}, nil
}

func (s *Service) countTurn(outcome OutcomeType) {
	s.metrics.CounterAssistantTurns.WithLabelValues(string(outcome)).Inc()
}
