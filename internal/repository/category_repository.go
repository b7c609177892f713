package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/member-directory/internal/domain"
)

// CategoryRepository persists the singleton category configuration.
type CategoryRepository interface {
	Get(ctx context.Context) (*domain.CategoryConfig, error)
	Create(ctx context.Context, cfg *domain.CategoryConfig) error
	Update(ctx context.Context, cfg *domain.CategoryConfig) error
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository returns a Postgres-backed implementation.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Get(ctx context.Context) (*domain.CategoryConfig, error) {
	const query = `SELECT id, departments, languages, updated_at FROM categories LIMIT 1`

	var cfg domain.CategoryConfig
	if err := r.pool.QueryRow(ctx, query).Scan(
		&cfg.ID,
		&cfg.Departments,
		&cfg.Languages,
		&cfg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *categoryRepository) Create(ctx context.Context, cfg *domain.CategoryConfig) error {
	const query = `
        INSERT INTO categories (departments, languages)
        VALUES ($1, $2)
        RETURNING id, updated_at`

	return r.pool.QueryRow(ctx, query, cfg.Departments, cfg.Languages).
		Scan(&cfg.ID, &cfg.UpdatedAt)
}

func (r *categoryRepository) Update(ctx context.Context, cfg *domain.CategoryConfig) error {
	const query = `
        UPDATE categories SET departments=$1, languages=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query, cfg.Departments, cfg.Languages, cfg.ID).
		Scan(&cfg.UpdatedAt)
	if err == pgx.ErrNoRows {
		return pgx.ErrNoRows
	}
	return err
}
