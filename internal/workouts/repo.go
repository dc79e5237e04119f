package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mpavlovic/fitlog/internal/daykey"
	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSetNotFound = errors.New("set not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if set.ID == "" {
		set.ID = uuid.NewString()
	}
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_set
				(id, exercise_id, set_type, set_value, day_key, created_at)
				VALUES ($1, $2, $3, $4, $5, $6);`,
		set.ID, set.ExerciseID, set.Type, set.Value, set.DayKey, set.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("set.id", set.ID))

	return &set, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var set Set
	err = r.db.QueryRow(
		ctx,
		`SELECT id, exercise_id, set_type, set_value, day_key, created_at
			FROM workout_set WHERE id = $1;`,
		id,
	).Scan(&set.ID, &set.ExerciseID, &set.Type, &set.Value, &set.DayKey, &set.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("workout set [query row]: %w", err)
	}

	return &set, nil
}

func (r *Repo) Update(ctx context.Context, set *Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", set.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_set
			SET exercise_id = $2, set_type = $3, set_value = $4, day_key = $5
			WHERE id = $1;`,
		set.ID, set.ExerciseID, set.Type, set.Value, set.DayKey,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_set WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}

	return nil
}

func (r *Repo) ListForDay(ctx context.Context, key daykey.DayKey) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list_for_day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", string(key)))

	return r.listSets(
		ctx,
		`SELECT id, exercise_id, set_type, set_value, day_key, created_at
			FROM workout_set WHERE day_key = $1
			ORDER BY created_at;`,
		key,
	)
}

// ListForRange returns the sets for all days in [from, to], inclusive.
func (r *Repo) ListForRange(ctx context.Context, from, to daykey.DayKey) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list_for_range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("from", string(from)),
		attribute.String("to", string(to)),
	)

	// day keys sort lexicographically in calendar order
	return r.listSets(
		ctx,
		`SELECT id, exercise_id, set_type, set_value, day_key, created_at
			FROM workout_set WHERE day_key >= $1 AND day_key <= $2
			ORDER BY day_key, created_at;`,
		from, to,
	)
}

func (r *Repo) CountForDay(ctx context.Context, key daykey.DayKey) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count_for_day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_set WHERE day_key = $1;`,
		key,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("workout sets count [query row]: %w", err)
	}

	return count, nil
}

func (r *Repo) listSets(ctx context.Context, query string, args ...any) ([]Set, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("workout sets [query]: %w", err)
	}
	defer rows.Close()

	var sets []Set
	for rows.Next() {
		var set Set
		if err := rows.Scan(
			&set.ID,
			&set.ExerciseID,
			&set.Type,
			&set.Value,
			&set.DayKey,
			&set.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("workout sets [rows scan]: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout sets [rows error]: %w", err)
	}

	return sets, nil
}
