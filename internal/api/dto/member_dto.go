package dto

import (
	"time"

	"github.com/spec-kit/member-directory/internal/domain"
)

// MemberResponse is the public view of an account. The password hash is never
// part of it.
type MemberResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Location       string    `json:"location,omitempty"`
	Department     string    `json:"department"`
	Languages      []string  `json:"languages"`
	Bio            string    `json:"bio,omitempty"`
	PortfolioLinks []string  `json:"portfolioLinks,omitempty"`
	ProfilePhoto   string    `json:"profilePhoto"`
	IsApproved     bool      `json:"isApproved"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewMemberResponse maps a domain member to its public view.
func NewMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Location:       m.Location,
		Department:     m.Department,
		Languages:      m.Languages,
		Bio:            m.Bio,
		PortfolioLinks: m.PortfolioLinks,
		ProfilePhoto:   m.ProfilePhoto,
		IsApproved:     m.IsApproved,
		Role:           string(m.Role),
		CreatedAt:      m.CreatedAt,
	}
}

// NewMemberList maps a slice of members.
func NewMemberList(members []domain.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, NewMemberResponse(&members[i]))
	}
	return out
}

// ProfileUpdateRequest is a self-service partial update. Absent fields stay
// untouched; explicit empty values are applied.
type ProfileUpdateRequest struct {
	Name           *string   `json:"name"`
	Phone          *string   `json:"phone"`
	Location       *string   `json:"location"`
	Department     *string   `json:"department"`
	Languages      *[]string `json:"languages"`
	Bio            *string   `json:"bio"`
	PortfolioLinks *[]string `json:"portfolioLinks"`
}

// ToDomain converts the request to the domain update type.
func (r ProfileUpdateRequest) ToDomain() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Name:           r.Name,
		Phone:          r.Phone,
		Location:       r.Location,
		Department:     r.Department,
		Languages:      r.Languages,
		Bio:            r.Bio,
		PortfolioLinks: r.PortfolioLinks,
	}
}
