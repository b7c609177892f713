package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/member-directory/internal/domain"
	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

// RequireApproved gates member-only features. Admin accounts are exempt from
// the approval flag.
func RequireApproved() fiber.Handler {
	return func(c *fiber.Ctx) error {
		member, ok := MemberFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("not authenticated")
		}
		if !member.IsApproved && member.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("Your account is pending admin approval")
		}
		return c.Next()
	}
}

// RequireAdmin gates the administrative surface.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		member, ok := MemberFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("not authenticated")
		}
		if member.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("Admin access required")
		}
		return c.Next()
	}
}
