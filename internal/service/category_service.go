package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/member-directory/internal/domain"
	"github.com/spec-kit/member-directory/internal/repository"
)

// CategoryService manages the singleton department/language configuration.
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService builds the service.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Get returns the configuration, materializing the defaults if no record
// exists yet.
func (s *CategoryService) Get(ctx context.Context) (*domain.CategoryConfig, error) {
	cfg, err := s.categories.Get(ctx)
	if err == nil {
		return cfg, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	cfg = domain.DefaultCategoryConfig()
	if err := s.categories.Create(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Update replaces whichever of the two lists is supplied. Nil lists keep the
// current values.
func (s *CategoryService) Update(ctx context.Context, departments, languages []string) (*domain.CategoryConfig, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if departments != nil {
		cfg.Departments = departments
	}
	if languages != nil {
		cfg.Languages = languages
	}

	if err := s.categories.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
