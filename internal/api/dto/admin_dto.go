package dto

import (
	"time"

	"github.com/spec-kit/member-directory/internal/domain"
)

// AdminUpdateRequest allows an administrator to overwrite any field,
// including role and approval state.
type AdminUpdateRequest struct {
	ProfileUpdateRequest
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	IsApproved *bool   `json:"isApproved"`
}

// ToDomain converts the request to the domain update type.
func (r AdminUpdateRequest) ToDomain() domain.AdminUpdate {
	upd := domain.AdminUpdate{
		ProfileUpdate: r.ProfileUpdateRequest.ToDomain(),
		Email:         r.Email,
		IsApproved:    r.IsApproved,
	}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		upd.Role = &role
	}
	return upd
}

// CategoriesUpdateRequest replaces the configured lists; nil lists keep the
// current values.
type CategoriesUpdateRequest struct {
	Departments []string `json:"departments"`
	Languages   []string `json:"languages"`
}

// CategoriesResponse is the client view of the category configuration.
type CategoriesResponse struct {
	Departments []string  `json:"departments"`
	Languages   []string  `json:"languages"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCategoriesResponse maps the domain configuration.
func NewCategoriesResponse(cfg *domain.CategoryConfig) CategoriesResponse {
	return CategoriesResponse{
		Departments: cfg.Departments,
		Languages:   cfg.Languages,
		UpdatedAt:   cfg.UpdatedAt,
	}
}
