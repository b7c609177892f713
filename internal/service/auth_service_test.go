package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/member-directory/internal/auth"
	"github.com/spec-kit/member-directory/internal/config"
	"github.com/spec-kit/member-directory/internal/domain"
	"github.com/spec-kit/member-directory/internal/service"
	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

func newAuthFixture(t *testing.T) (*service.AuthService, *fakeMemberRepo) {
	t.Helper()
	repo := newFakeMemberRepo()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
	}}
	return service.NewAuthService(cfg, repo), repo
}

func seedAccount(t *testing.T, repo *fakeMemberRepo, email, password string, approved bool, role domain.Role) *domain.Member {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	member := &domain.Member{
		Name:         "Seeded Account",
		Email:        email,
		PasswordHash: hash,
		Department:   "Other",
		Languages:    []string{"English"},
		ProfilePhoto: domain.DefaultAvatar,
		IsApproved:   approved,
		Role:         role,
	}
	require.NoError(t, repo.Create(context.Background(), member))
	return member
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "UNAUTHORIZED", de.Code)
	assert.Equal(t, "Invalid credentials", de.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedAccount(t, repo, "asha@example.com", "secret1", true, domain.RoleMember)

	_, _, _, err := svc.Login(context.Background(), "asha@example.com", "wrong-pass")
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "UNAUTHORIZED", de.Code)
	assert.Equal(t, "Invalid credentials", de.Message, "wrong password and unknown email are indistinguishable")
}

func TestLoginPendingAccount(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedAccount(t, repo, "asha@example.com", "secret1", false, domain.RoleMember)

	_, _, _, err := svc.Login(context.Background(), "asha@example.com", "secret1")
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "FORBIDDEN", de.Code)
	assert.Equal(t, "Your account is pending admin approval", de.Message)
}

func TestLoginApprovedMember(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seeded := seedAccount(t, repo, "asha@example.com", "secret1", true, domain.RoleMember)

	member, token, exp, err := svc.Login(context.Background(), "ASHA@Example.com", "secret1")
	require.NoError(t, err, "email lookup is case-insensitive")
	assert.Equal(t, seeded.ID, member.ID)
	assert.False(t, exp.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.MemberID)
	assert.Equal(t, domain.RoleMember, claims.Role)
}

func TestLoginAdminBypassesApprovalGate(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seeded := seedAccount(t, repo, "admin@example.com", "admin-pass", false, domain.RoleAdmin)

	member, token, _, err := svc.Login(context.Background(), "admin@example.com", "admin-pass")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, member.ID)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}
