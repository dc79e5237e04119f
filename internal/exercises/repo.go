package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// NormalizeName is the canonical form used for uniqueness checks and for
// matching chat messages against the exercise catalog: lowercased, trimmed,
// inner whitespace runs collapsed to a single space.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}
	exercise.Name = strings.TrimSpace(exercise.Name)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(
		ctx,
		`INSERT INTO exercise
				(id, name, name_normalized, created_at)
				VALUES ($1, $2, $3, $4);`,
		exercise.ID, exercise.Name, NormalizeName(exercise.Name), exercise.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = r.setCategories(ctx, tx, exercise.ID, exercise.CategoryIDs); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.String("exercise.id", exercise.ID))

	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var exercise Exercise
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, created_at FROM exercise WHERE id = $1;`,
		id,
	).Scan(&exercise.ID, &exercise.Name, &exercise.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("exercise [query row]: %w", err)
	}

	exercise.CategoryIDs, err = r.getCategoryIDs(ctx, exercise.ID)
	if err != nil {
		return nil, fmt.Errorf("exercise categories: %w", err)
	}

	return &exercise, nil
}

// GetByName looks an exercise up by its normalized name.
func (r *Repo) GetByName(ctx context.Context, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get_by_name")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exercise Exercise
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, created_at FROM exercise WHERE name_normalized = $1;`,
		NormalizeName(name),
	).Scan(&exercise.ID, &exercise.Name, &exercise.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("exercise by name [query row]: %w", err)
	}

	exercise.CategoryIDs, err = r.getCategoryIDs(ctx, exercise.ID)
	if err != nil {
		return nil, fmt.Errorf("exercise categories: %w", err)
	}

	return &exercise, nil
}

func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.id, e.name, e.created_at,
				COALESCE(
					array_agg(ec.category_id) FILTER (WHERE ec.category_id IS NOT NULL),
					'{}'
				)
			FROM exercise e
			LEFT JOIN exercise_category ec ON ec.exercise_id = e.id
			GROUP BY e.id
			ORDER BY e.name;
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.Name,
			&exercise.CreatedAt,
			&exercise.CategoryIDs,
		); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return exercises, nil
}

// ListNames returns the current exercise name catalog, alphabetically.
// The assistant takes this snapshot once per turn.
func (r *Repo) ListNames(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list_names")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT name FROM exercise ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("exercise names [query]: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("exercise names [rows scan]: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise names [rows error]: %w", err)
	}

	return names, nil
}

func (r *Repo) Update(ctx context.Context, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", exercise.ID))

	exercise.Name = strings.TrimSpace(exercise.Name)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(
		ctx,
		`UPDATE exercise SET name = $2, name_normalized = $3 WHERE id = $1;`,
		exercise.ID, exercise.Name, NormalizeName(exercise.Name),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	if err = r.setCategories(ctx, tx, exercise.ID, exercise.CategoryIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

// setCategories replaces the category links of an exercise.
func (r *Repo) setCategories(ctx context.Context, tx pgx.Tx, exerciseID string, categoryIDs []string) error {
	if _, err := tx.Exec(
		ctx,
		`DELETE FROM exercise_category WHERE exercise_id = $1;`,
		exerciseID,
	); err != nil {
		return fmt.Errorf("clear exercise categories: %w", err)
	}

	for _, categoryID := range categoryIDs {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO exercise_category (exercise_id, category_id) VALUES ($1, $2);`,
			exerciseID, categoryID,
		); err != nil {
			return fmt.Errorf("link category [%s]: %w", categoryID, err)
		}
	}

	return nil
}

func (r *Repo) getCategoryIDs(ctx context.Context, exerciseID string) ([]string, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT category_id FROM exercise_category WHERE exercise_id = $1;`,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise categories [query]: %w", err)
	}
	defer rows.Close()

	var categoryIDs []string
	for rows.Next() {
		var categoryID string
		if err := rows.Scan(&categoryID); err != nil {
			return nil, fmt.Errorf("exercise categories [rows scan]: %w", err)
		}
		categoryIDs = append(categoryIDs, categoryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise categories [rows error]: %w", err)
	}

	return categoryIDs, nil
}
