package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/member-directory/internal/auth"
	"github.com/spec-kit/member-directory/internal/domain"
	"github.com/spec-kit/member-directory/internal/events"
	"github.com/spec-kit/member-directory/internal/repository"
	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

const minPasswordLength = 6

// RegisterInput carries a new registration.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	Location       string
	Department     string
	Languages      []string
	Bio            string
	PortfolioLinks []string
}

// MembershipService owns the account lifecycle: registration, the
// approve/reject transitions, administrative overrides and self-service
// profile operations.
type MembershipService struct {
	members    repository.MemberRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// MembershipDependencies encapsulates requirements for the service.
type MembershipDependencies struct {
	MemberRepo repository.MemberRepository
	Dispatcher events.Dispatcher
	BcryptCost int
}

// NewMembershipService builds the service.
func NewMembershipService(deps MembershipDependencies) *MembershipService {
	cost := deps.BcryptCost
	if cost <= 0 {
		cost = 10
	}
	return &MembershipService{
		members:    deps.MemberRepo,
		dispatcher: deps.Dispatcher,
		bcryptCost: cost,
	}
}

// Register creates a pending member account. Notification side effects are
// published after the write and never affect the outcome.
func (s *MembershipService) Register(ctx context.Context, in RegisterInput) (*domain.Member, error) {
	member := &domain.Member{
		Name:           strings.TrimSpace(in.Name),
		Email:          domain.NormalizeEmail(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Location:       strings.TrimSpace(in.Location),
		Department:     in.Department,
		Languages:      in.Languages,
		Bio:            in.Bio,
		PortfolioLinks: in.PortfolioLinks,
		ProfilePhoto:   domain.DefaultAvatar,
		IsApproved:     false,
		Role:           domain.RoleMember,
	}

	if errs := member.Validate(); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs[0].Message)
	}
	if len(in.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("Password must be at least 6 characters")
	}

	if _, err := s.members.GetByEmail(ctx, member.Email); err == nil {
		return nil, apperrors.NewDuplicateEmail()
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	member.PasswordHash = hash

	if err := s.members.Create(ctx, member); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewDuplicateEmail()
		}
		return nil, err
	}

	s.publish(ctx, events.EventMemberRegistered, member.ID, events.MemberRegisteredPayload{
		Name:       member.Name,
		Email:      member.Email,
		Department: member.Department,
		Languages:  member.Languages,
	})
	return member, nil
}

// Approve flips the approval flag. Calling it on an already-approved account
// is a no-op that still succeeds.
func (s *MembershipService) Approve(ctx context.Context, id string) (*domain.Member, error) {
	member, err := s.getMember(ctx, id)
	if err != nil {
		return nil, err
	}

	member.IsApproved = true
	if err := s.members.Update(ctx, member); err != nil {
		return nil, mapNoRows(err)
	}

	s.publish(ctx, events.EventMemberApproved, member.ID, events.MemberApprovedPayload{
		Name:  member.Name,
		Email: member.Email,
	})
	return member, nil
}

// Reject deletes the account. The rejection mail is dispatched before the
// delete so the recipient address is still resolvable.
func (s *MembershipService) Reject(ctx context.Context, id string) error {
	member, err := s.getMember(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, events.EventMemberRejected, member.ID, events.MemberRejectedPayload{
		Name:  member.Name,
		Email: member.Email,
	})

	return mapNoRows(s.members.Delete(ctx, member.ID))
}

// AdminUpdate overwrites any supplied field, including role and approval
// state, subject to entity validation.
func (s *MembershipService) AdminUpdate(ctx context.Context, id string, upd domain.AdminUpdate) (*domain.Member, error) {
	member, err := s.getMember(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(member)
	if errs := member.Validate(); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs[0].Message)
	}

	if err := s.members.Update(ctx, member); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewDuplicateEmail()
		}
		return nil, mapNoRows(err)
	}
	return member, nil
}

// AdminDelete removes the account without notification.
func (s *MembershipService) AdminDelete(ctx context.Context, id string) error {
	if _, err := s.getMember(ctx, id); err != nil {
		return err
	}
	return mapNoRows(s.members.Delete(ctx, id))
}

// UpdateProfile applies a self-service partial update. Role and approval
// state are not reachable through this path.
func (s *MembershipService) UpdateProfile(ctx context.Context, id string, upd domain.ProfileUpdate) (*domain.Member, error) {
	member, err := s.getMember(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(member)
	if errs := member.Validate(); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs[0].Message)
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, mapNoRows(err)
	}
	return member, nil
}

// DeleteProfile permanently removes the caller's own account.
func (s *MembershipService) DeleteProfile(ctx context.Context, id string) error {
	return mapNoRows(s.members.Delete(ctx, id))
}

// ListPending returns unapproved member accounts, newest first.
func (s *MembershipService) ListPending(ctx context.Context) ([]domain.Member, error) {
	role := domain.RoleMember
	approved := false
	return s.members.List(ctx, repository.MemberFilter{Role: &role, IsApproved: &approved})
}

// ListAll returns every member account regardless of approval state.
func (s *MembershipService) ListAll(ctx context.Context) ([]domain.Member, error) {
	role := domain.RoleMember
	return s.members.List(ctx, repository.MemberFilter{Role: &role})
}

// Stats summarizes membership counts for the admin dashboard.
func (s *MembershipService) Stats(ctx context.Context) (*repository.DirectoryStats, error) {
	return s.members.Stats(ctx)
}

func (s *MembershipService) getMember(ctx context.Context, id string) (*domain.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return member, nil
}

func (s *MembershipService) publish(ctx context.Context, eventType events.EventType, memberID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		MemberID:  memberID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func mapNoRows(err error) error {
	if err == pgx.ErrNoRows {
		return apperrors.NewNotFound("User")
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
