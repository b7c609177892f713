package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/member-directory/internal/auth"
	"github.com/spec-kit/member-directory/internal/config"
	"github.com/spec-kit/member-directory/internal/domain"
	"github.com/spec-kit/member-directory/internal/repository"
	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

// AuthService coordinates login and token issuance.
type AuthService struct {
	members  repository.MemberRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, members repository.MemberRepository) *AuthService {
	return &AuthService{
		members:  members,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Login authenticates a member. Unknown email and wrong password surface as
// the same outcome so accounts cannot be enumerated. Unapproved non-admin
// accounts are refused after the credential check.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Member, string, time.Time, error) {
	member, err := s.members.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.ComparePassword(member.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
	}

	if !member.IsApproved && member.Role != domain.RoleAdmin {
		return nil, "", time.Time{}, apperrors.NewForbidden("Your account is pending admin approval")
	}

	token, exp, err := s.tokenMgr.GenerateToken(member.ID, member.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return member, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
