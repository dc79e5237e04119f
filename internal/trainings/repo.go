package trainings

import (
	"context"
	"fmt"

	"github.com/mpavlovic/fitlog/internal/daykey"
	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type EventParams struct {
	Type *EventType
	Day  *daykey.DayKey
}

type ListParams struct {
	EventParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO training_event (id, type, data, day_key, timestamp)
		VALUES ($1, $2, $3, $4, $5);
	`,
		event.ID,
		event.Type,
		event.Data,
		event.Day,
		event.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("event.id", event.ID))

	return &event, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []*Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.Type != nil {
		span.SetAttributes(attribute.String("type", string(*params.Type)))
	}
	if params.Day != nil {
		span.SetAttributes(attribute.String("day", string(*params.Day)))
	}

	events := make([]*Event, 0)
	rows, err := r.db.Query(ctx, `
		SELECT id, type, data, day_key, timestamp
		FROM training_event
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::text IS NULL OR day_key = $2)
		ORDER BY timestamp DESC
		LIMIT $3 OFFSET $4;
	`,
		params.Type,
		params.Day,
		params.Size, params.Size*(params.Page-1),
	)
	if err != nil {
		return nil, fmt.Errorf("training events [query]: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		event := &Event{}
		if err := rows.Scan(&event.ID, &event.Type, &event.Data, &event.Day, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("training events [rows scan]: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("training events [rows error]: %w", err)
	}

	return events, nil
}

func (r *Repo) Count(ctx context.Context, params EventParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM training_event
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::text IS NULL OR day_key = $2);
	`,
		params.Type,
		params.Day,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("training events count [query row]: %w", err)
	}

	return count, nil
}
