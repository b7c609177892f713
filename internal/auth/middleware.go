package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/member-directory/internal/domain"
	"github.com/spec-kit/member-directory/internal/repository"
	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

const memberKey = "auth_member"

// AuthMiddleware validates bearer tokens and loads the acting member.
type AuthMiddleware struct {
	tokens  *TokenManager
	members repository.MemberRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, members repository.MemberRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, members: members}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	member, err := m.members.GetByID(c.Context(), claims.MemberID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("user no longer exists")
		}
		return apperrors.MapError(err)
	}

	c.Locals(memberKey, member)
	return c.Next()
}

// MemberFromContext retrieves the authenticated member.
func MemberFromContext(c *fiber.Ctx) (*domain.Member, bool) {
	val := c.Locals(memberKey)
	if val == nil {
		return nil, false
	}
	member, ok := val.(*domain.Member)
	return member, ok
}
