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
	"go.opentelemetry.io/otel/attribute"
)

func (r *Repo) AddCategory(ctx context.Context, category Category) (_ *Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.categories.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	category.Name = strings.TrimSpace(category.Name)

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO category (id, name, created_at) VALUES ($1, $2, $3);`,
		category.ID, category.Name, category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("category.id", category.ID))

	return &category, nil
}

func (r *Repo) GetCategory(ctx context.Context, id string) (_ *Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.categories.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var category Category
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, created_at FROM category WHERE id = $1;`,
		id,
	).Scan(&category.ID, &category.Name, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("category [query row]: %w", err)
	}

	return &category, nil
}

func (r *Repo) ListCategories(ctx context.Context) (_ []Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.categories.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, created_at FROM category ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("categories [query]: %w", err)
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("categories [rows scan]: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("categories [rows error]: %w", err)
	}

	return categories, nil
}

func (r *Repo) DeleteCategory(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.categories.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM category WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
