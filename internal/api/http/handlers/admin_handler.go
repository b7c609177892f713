package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/member-directory/internal/api/dto"
	"github.com/spec-kit/member-directory/internal/service"
	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

// AdminHandler exposes the administrative surface: approval workflow, member
// management, categories and dashboard stats.
type AdminHandler struct {
	membership *service.MembershipService
	categories *service.CategoryService
	photos     *service.PhotoService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(membership *service.MembershipService, categories *service.CategoryService, photos *service.PhotoService) *AdminHandler {
	return &AdminHandler{membership: membership, categories: categories, photos: photos}
}

// Pending handles GET /api/admin/pending.
func (h *AdminHandler) Pending(c *fiber.Ctx) error {
	members, err := h.membership.ListPending(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(members),
		"data":    dto.NewMemberList(members),
	})
}

// Members handles GET /api/admin/members.
func (h *AdminHandler) Members(c *fiber.Ctx) error {
	members, err := h.membership.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(members),
		"data":    dto.NewMemberList(members),
	})
}

// Approve handles PUT /api/admin/approve/:id.
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	member, err := h.membership.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member approved successfully",
		"data":    dto.NewMemberResponse(member),
	})
}

// Reject handles DELETE /api/admin/reject/:id.
func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	if err := h.membership.Reject(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member rejected and removed",
	})
}

// UpdateMember handles PUT /api/admin/members/:id.
func (h *AdminHandler) UpdateMember(c *fiber.Ctx) error {
	var req dto.AdminUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	member, err := h.membership.AdminUpdate(c.Context(), c.Params("id"), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member updated successfully",
		"data":    dto.NewMemberResponse(member),
	})
}

// DeleteMember handles DELETE /api/admin/members/:id.
func (h *AdminHandler) DeleteMember(c *fiber.Ctx) error {
	if err := h.membership.AdminDelete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member deleted successfully",
	})
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.membership.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetCategories handles GET /api/admin/categories.
func (h *AdminHandler) GetCategories(c *fiber.Ctx) error {
	cfg, err := h.categories.Get(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewCategoriesResponse(cfg),
	})
}

// UpdateCategories handles PUT /api/admin/categories.
func (h *AdminHandler) UpdateCategories(c *fiber.Ctx) error {
	var req dto.CategoriesUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	cfg, err := h.categories.Update(c.Context(), req.Departments, req.Languages)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Categories updated successfully",
		"data":    dto.NewCategoriesResponse(cfg),
	})
}

// UploadMemberPhoto handles POST /api/admin/members/:id/photo.
func (h *AdminHandler) UploadMemberPhoto(c *fiber.Ctx) error {
	data, err := readUpload(c, h.photos.MaxUploadBytes())
	if err != nil {
		return err
	}

	url, err := h.photos.Upload(c.Context(), c.Params("id"), data)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member photo uploaded successfully",
		"data": fiber.Map{
			"profilePhoto": url,
		},
	})
}
