package trainings

import (
	"context"
	"fmt"
	"time"

	"github.com/mpavlovic/fitlog/internal/daykey"
	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=trainings_test

type eventsRepo interface {
	Add(ctx context.Context, event Event) (*Event, error)
	List(ctx context.Context, params ListParams) ([]*Event, error)
	Count(ctx context.Context, params EventParams) (int, error)
}

// Service stamps incoming training events with their calendar day and
// hands them to the repo.
type Service struct {
	repo     eventsRepo
	resolver *daykey.Resolver
}

func NewService(repo eventsRepo, resolver *daykey.Resolver) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
	}
}

func (s *Service) AddTrainingStart(ctx context.Context, ts TrainingStart) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.add.training_start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.repo.Add(ctx, s.stamp(NewTrainingStartEvent(ts)))
	if err != nil {
		return nil, fmt.Errorf("add training start event: %w", err)
	}
	return event, nil
}

func (s *Service) AddTrainingFinish(ctx context.Context, tf TrainingFinish) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.add.training_finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.repo.Add(ctx, s.stamp(NewTrainingFinishEvent(tf)))
	if err != nil {
		return nil, fmt.Errorf("add training finish event: %w", err)
	}
	return event, nil
}

func (s *Service) AddTimerFinish(ctx context.Context, tf TimerFinish) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.add.timer_finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.repo.Add(ctx, s.stamp(NewTimerFinishEvent(tf)))
	if err != nil {
		return nil, fmt.Errorf("add timer finish event: %w", err)
	}
	return event, nil
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []*Event, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}

	total, err = s.repo.Count(ctx, params.EventParams)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	return events, total, nil
}

// stamp fills in the generated fields: id, timestamp and the calendar
// day derived from the timestamp.
func (s *Service) stamp(event Event) Event {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Day = s.resolver.FromInstant(event.Timestamp)
	return event
}
