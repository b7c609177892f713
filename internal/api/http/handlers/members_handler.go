package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/member-directory/internal/api/dto"
	"github.com/spec-kit/member-directory/internal/auth"
	"github.com/spec-kit/member-directory/internal/service"
	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

// MembersHandler exposes the directory and self-service profile endpoints.
type MembersHandler struct {
	directory  *service.DirectoryService
	membership *service.MembershipService
	photos     *service.PhotoService
}

// NewMembersHandler constructs handler.
func NewMembersHandler(directory *service.DirectoryService, membership *service.MembershipService, photos *service.PhotoService) *MembersHandler {
	return &MembersHandler{directory: directory, membership: membership, photos: photos}
}

// List handles GET /api/members.
func (h *MembersHandler) List(c *fiber.Ctx) error {
	members, err := h.directory.ListApproved(c.Context(), service.DirectoryFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Language:   c.Query("language"),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(members),
		"data":    dto.NewMemberList(members),
	})
}

// GetByID handles GET /api/members/:id.
func (h *MembersHandler) GetByID(c *fiber.Ctx) error {
	member, err := h.directory.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewMemberResponse(member),
	})
}

// UpdateProfile handles PUT /api/members/profile.
func (h *MembersHandler) UpdateProfile(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	updated, err := h.membership.UpdateProfile(c.Context(), member.ID, req.ToDomain())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"data":    dto.NewMemberResponse(updated),
	})
}

// DeleteProfile handles DELETE /api/members/profile.
func (h *MembersHandler) DeleteProfile(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	if err := h.membership.DeleteProfile(c.Context(), member.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Account deleted successfully",
	})
}

// UploadPhoto handles POST /api/members/profile/photo.
func (h *MembersHandler) UploadPhoto(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	data, err := readUpload(c, h.photos.MaxUploadBytes())
	if err != nil {
		return err
	}

	url, err := h.photos.Upload(c.Context(), member.ID, data)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile photo uploaded successfully",
		"data": fiber.Map{
			"profilePhoto": url,
		},
	})
}

// DeletePhoto handles DELETE /api/members/profile/photo.
func (h *MembersHandler) DeletePhoto(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	if err := h.photos.Remove(c.Context(), member.ID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile photo deleted successfully",
	})
}

// readUpload extracts the multipart profilePhoto field, enforcing the size
// ceiling before reading the file into memory.
func readUpload(c *fiber.Ctx, maxBytes int64) ([]byte, error) {
	fileHeader, err := c.FormFile("profilePhoto")
	if err != nil {
		return nil, apperrors.NewUploadRejected("Please upload a file")
	}
	if fileHeader.Size > maxBytes {
		return nil, apperrors.NewUploadRejected(fmt.Sprintf("File size too large. Maximum %dMB allowed.", maxBytes>>20))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.NewUploadRejected("File upload failed")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.NewUploadRejected("File upload failed")
	}
	return data, nil
}
