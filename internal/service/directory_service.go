package service

import (
	"context"

	"github.com/spec-kit/member-directory/internal/domain"
	"github.com/spec-kit/member-directory/internal/repository"
)

// DirectoryFilter carries the caller-supplied directory filters.
type DirectoryFilter struct {
	Search     string
	Department string
	Language   string
}

// DirectoryService is the read-only peer browsing surface.
type DirectoryService struct {
	members repository.MemberRepository
}

// NewDirectoryService builds the service.
func NewDirectoryService(members repository.MemberRepository) *DirectoryService {
	return &DirectoryService{members: members}
}

// ListApproved returns approved member accounts matching the filters, newest
// first. The approved/member scope is forced here; callers cannot widen it.
func (s *DirectoryService) ListApproved(ctx context.Context, filter DirectoryFilter) ([]domain.Member, error) {
	role := domain.RoleMember
	approved := true
	repoFilter := repository.MemberFilter{
		Role:       &role,
		IsApproved: &approved,
	}
	if filter.Search != "" {
		repoFilter.Search = &filter.Search
	}
	if filter.Department != "" {
		repoFilter.Department = &filter.Department
	}
	if filter.Language != "" {
		repoFilter.Language = &filter.Language
	}
	return s.members.List(ctx, repoFilter)
}

// GetByID returns any account by id. Approved callers can see pending
// accounts through this path; that mirrors the directory's historic behavior.
func (s *DirectoryService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return member, nil
}
