package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Role separates regular members from administrators.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// DefaultAvatar is the sentinel photo reference for members without an upload.
const DefaultAvatar = "default-avatar.png"

// MaxBioLength bounds the free-form bio field.
const MaxBioLength = 500

// Departments lists the accepted department values. Registration and updates
// validate against this set; the editable category configuration is advisory
// form metadata only.
var Departments = []string{
	"Director",
	"Actor",
	"Cinematographer",
	"Editor",
	"Writer",
	"Producer",
	"Sound Designer",
	"Production Designer",
	"Composer",
	"Other",
}

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Member is the central account entity: credentials, profile and
// role/approval state.
type Member struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Phone          string
	Location       string
	Department     string
	Languages      []string
	Bio            string
	PortfolioLinks []string
	ProfilePhoto   string
	PhotoKey       string
	IsApproved     bool
	Role           Role
	CreatedAt      time.Time
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NormalizeEmail lowercases and trims an email for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidDepartment reports whether dept belongs to the fixed set.
func ValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// Validate checks entity-level invariants and returns every violated rule.
// Password handling is validated separately on the write paths that set it.
func (m *Member) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(m.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	} else if !emailPattern.MatchString(m.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if strings.TrimSpace(m.Department) == "" {
		errs = append(errs, FieldError{Field: "department", Message: "Department/Role is required"})
	} else if !ValidDepartment(m.Department) {
		errs = append(errs, FieldError{Field: "department", Message: "Department must be one of the allowed values"})
	}
	if len(m.Bio) > MaxBioLength {
		errs = append(errs, FieldError{Field: "bio", Message: fmt.Sprintf("Bio must be at most %d characters", MaxBioLength)})
	}
	if m.Role != RoleMember && m.Role != RoleAdmin {
		errs = append(errs, FieldError{Field: "role", Message: "Role must be member or admin"})
	}
	return errs
}

// ProfileUpdate carries a self-service partial profile update. Nil fields are
// left untouched; explicit empty values are applied. Role and approval state
// are not reachable through this type.
type ProfileUpdate struct {
	Name           *string
	Phone          *string
	Location       *string
	Department     *string
	Languages      *[]string
	Bio            *string
	PortfolioLinks *[]string
}

// AdminUpdate extends ProfileUpdate with the admin-only fields.
type AdminUpdate struct {
	ProfileUpdate
	Email      *string
	Role       *Role
	IsApproved *bool
}

// Apply overlays the non-nil fields onto the member.
func (u ProfileUpdate) Apply(m *Member) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Phone != nil {
		m.Phone = *u.Phone
	}
	if u.Location != nil {
		m.Location = *u.Location
	}
	if u.Department != nil {
		m.Department = *u.Department
	}
	if u.Languages != nil {
		m.Languages = *u.Languages
	}
	if u.Bio != nil {
		m.Bio = *u.Bio
	}
	if u.PortfolioLinks != nil {
		m.PortfolioLinks = *u.PortfolioLinks
	}
}

// Apply overlays the non-nil fields, including role and approval state.
func (u AdminUpdate) Apply(m *Member) {
	u.ProfileUpdate.Apply(m)
	if u.Email != nil {
		m.Email = NormalizeEmail(*u.Email)
	}
	if u.Role != nil {
		m.Role = *u.Role
	}
	if u.IsApproved != nil {
		m.IsApproved = *u.IsApproved
	}
}
