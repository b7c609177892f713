package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/member-directory/internal/domain"
	"github.com/spec-kit/member-directory/internal/media"
	"github.com/spec-kit/member-directory/internal/repository"
	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

// PhotoService delegates profile photo storage to the external media host.
type PhotoService struct {
	members   repository.MemberRepository
	processor *media.Processor
	storage   media.PhotoStorage
	logger    *zap.Logger
}

// NewPhotoService builds the service.
func NewPhotoService(members repository.MemberRepository, processor *media.Processor, storage media.PhotoStorage, logger *zap.Logger) *PhotoService {
	return &PhotoService{members: members, processor: processor, storage: storage, logger: logger}
}

// MaxUploadBytes exposes the configured ceiling for handler-level checks.
func (s *PhotoService) MaxUploadBytes() int64 {
	return s.processor.MaxBytes()
}

// Upload validates and stores a new profile photo, replacing any prior one.
// The remote object key is persisted alongside the URL so deletion never has
// to re-derive it.
func (s *PhotoService) Upload(ctx context.Context, memberID string, data []byte) (string, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return "", mapNoRows(err)
	}

	prepared, contentType, err := s.processor.Prepare(data)
	if err != nil {
		return "", err
	}

	key := media.NewPhotoKey()
	url, err := s.storage.Upload(ctx, key, contentType, prepared)
	if err != nil {
		return "", err
	}

	if member.PhotoKey != "" {
		if err := s.storage.Delete(ctx, member.PhotoKey); err != nil {
			s.logger.Warn("failed to delete replaced photo",
				zap.String("member_id", member.ID),
				zap.String("key", member.PhotoKey),
				zap.Error(err))
		}
	}

	if err := s.members.UpdatePhoto(ctx, member.ID, url, key); err != nil {
		return "", mapNoRows(err)
	}
	return url, nil
}

// Remove deletes the current photo and resets the field to the default
// sentinel. A failed remote deletion is logged but does not block the reset.
func (s *PhotoService) Remove(ctx context.Context, memberID string) error {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return mapNoRows(err)
	}

	if member.PhotoKey == "" && (member.ProfilePhoto == "" || member.ProfilePhoto == domain.DefaultAvatar) {
		return apperrors.NewDomainError("NOTHING_TO_DELETE", "No profile photo to delete", 400)
	}

	if member.PhotoKey != "" {
		if err := s.storage.Delete(ctx, member.PhotoKey); err != nil {
			s.logger.Warn("failed to delete remote photo",
				zap.String("member_id", member.ID),
				zap.String("key", member.PhotoKey),
				zap.Error(err))
		}
	}

	return mapNoRows(s.members.UpdatePhoto(ctx, member.ID, domain.DefaultAvatar, ""))
}
