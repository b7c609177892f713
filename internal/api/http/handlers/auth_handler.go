package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/member-directory/internal/api/dto"
	"github.com/spec-kit/member-directory/internal/auth"
	"github.com/spec-kit/member-directory/internal/service"
	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

// AuthHandler exposes signup, login and the current-account endpoint.
type AuthHandler struct {
	auth       *service.AuthService
	membership *service.MembershipService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, membership *service.MembershipService) *AuthHandler {
	return &AuthHandler{auth: authService, membership: membership}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	member, err := h.membership.Register(c.Context(), service.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		Location:       req.Location,
		Department:     req.Department,
		Languages:      req.Languages,
		Bio:            req.Bio,
		PortfolioLinks: req.PortfolioLinks,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful! Your account is pending admin approval.",
		"data": fiber.Map{
			"id":         member.ID,
			"name":       member.Name,
			"email":      member.Email,
			"isApproved": member.IsApproved,
		},
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("Please provide email and password")
	}

	member, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"data": fiber.Map{
			"id":         member.ID,
			"name":       member.Name,
			"email":      member.Email,
			"role":       member.Role,
			"isApproved": member.IsApproved,
		},
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewMemberResponse(member),
	})
}
