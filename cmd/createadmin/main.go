package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/member-directory/internal/auth"
	"github.com/spec-kit/member-directory/internal/config"
	"github.com/spec-kit/member-directory/internal/domain"
	"github.com/spec-kit/member-directory/internal/observability"
	"github.com/spec-kit/member-directory/internal/persistence"
	"github.com/spec-kit/member-directory/internal/repository"
)

// Bootstraps the administrator account from ADMIN_EMAIL / ADMIN_PASSWORD.
// The account is created approved, so it bypasses the approval gate.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	members := repository.NewMemberRepository(pg.PoolHandle())
	email := domain.NormalizeEmail(cfg.Admin.Email)

	if _, err := members.GetByEmail(ctx, email); err == nil {
		logger.Fatal("admin already exists", zap.String("email", email))
	} else if err != pgx.ErrNoRows {
		logger.Fatal("failed to check existing admin", zap.Error(err))
	}

	hash, err := auth.HashPassword(cfg.Admin.Password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	admin := &domain.Member{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		Department:   "Other",
		Languages:    []string{"English"},
		ProfilePhoto: domain.DefaultAvatar,
		IsApproved:   true,
		Role:         domain.RoleAdmin,
	}
	if err := members.Create(ctx, admin); err != nil {
		logger.Fatal("failed to create admin", zap.Error(err))
	}

	logger.Info("admin created", zap.String("id", admin.ID), zap.String("email", admin.Email))
}
