package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/member-directory/internal/domain"
	"github.com/spec-kit/member-directory/internal/media"
	"github.com/spec-kit/member-directory/internal/service"
	apperrors "github.com/spec-kit/member-directory/pkg/util"
)

func testPhoto(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		img.Set(x, x, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newPhotoFixture(t *testing.T) (*service.PhotoService, *fakeMemberRepo, *fakeStorage) {
	t.Helper()
	repo := newFakeMemberRepo()
	storage := newFakeStorage()
	processor := media.NewProcessor(2<<20, 500)
	return service.NewPhotoService(repo, processor, storage, zap.NewNop()), repo, storage
}

func TestUploadStoresPhotoAndKey(t *testing.T) {
	svc, repo, storage := newPhotoFixture(t)
	member := seedAccount(t, repo, "asha@example.com", "secret1", true, domain.RoleMember)

	url, err := svc.Upload(context.Background(), member.ID, testPhoto(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://media.example.com/profiles/"))

	stored, err := repo.GetByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, url, stored.ProfilePhoto)
	assert.NotEmpty(t, stored.PhotoKey)
	assert.Contains(t, storage.uploads, stored.PhotoKey)
}

func TestUploadReplacesPreviousPhoto(t *testing.T) {
	svc, repo, storage := newPhotoFixture(t)
	member := seedAccount(t, repo, "asha@example.com", "secret1", true, domain.RoleMember)

	_, err := svc.Upload(context.Background(), member.ID, testPhoto(t))
	require.NoError(t, err)
	first, err := repo.GetByID(context.Background(), member.ID)
	require.NoError(t, err)

	_, err = svc.Upload(context.Background(), member.ID, testPhoto(t))
	require.NoError(t, err)

	assert.Contains(t, storage.deleted, first.PhotoKey, "replaced object is removed from the media host")
	second, err := repo.GetByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.PhotoKey, second.PhotoKey)
}

func TestUploadRejectsNonImageBeforeStorage(t *testing.T) {
	svc, repo, storage := newPhotoFixture(t)
	member := seedAccount(t, repo, "asha@example.com", "secret1", true, domain.RoleMember)

	_, err := svc.Upload(context.Background(), member.ID, []byte("plain text payload"))
	require.Error(t, err)
	assert.Equal(t, "UPLOAD_REJECTED", apperrors.ToDomainError(err).Code)
	assert.Empty(t, storage.uploads, "rejected uploads never reach the media host")

	stored, err := repo.GetByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAvatar, stored.ProfilePhoto)
}

func TestUploadUnknownMember(t *testing.T) {
	svc, _, storage := newPhotoFixture(t)

	_, err := svc.Upload(context.Background(), "no-such-id", testPhoto(t))
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
	assert.Empty(t, storage.uploads)
}

func TestRemoveWithoutPhoto(t *testing.T) {
	svc, repo, _ := newPhotoFixture(t)
	member := seedAccount(t, repo, "asha@example.com", "secret1", true, domain.RoleMember)

	err := svc.Remove(context.Background(), member.ID)
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "NOTHING_TO_DELETE", de.Code)
	assert.Equal(t, "No profile photo to delete", de.Message)
}

func TestRemoveResetsToDefault(t *testing.T) {
	svc, repo, storage := newPhotoFixture(t)
	member := seedAccount(t, repo, "asha@example.com", "secret1", true, domain.RoleMember)

	_, err := svc.Upload(context.Background(), member.ID, testPhoto(t))
	require.NoError(t, err)
	uploaded, err := repo.GetByID(context.Background(), member.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), member.ID))

	assert.Contains(t, storage.deleted, uploaded.PhotoKey)
	stored, err := repo.GetByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAvatar, stored.ProfilePhoto)
	assert.Empty(t, stored.PhotoKey)
}

func TestRemoveProceedsWhenRemoteDeleteFails(t *testing.T) {
	svc, repo, storage := newPhotoFixture(t)
	member := seedAccount(t, repo, "asha@example.com", "secret1", true, domain.RoleMember)

	_, err := svc.Upload(context.Background(), member.ID, testPhoto(t))
	require.NoError(t, err)

	storage.deleteErr = errors.New("bucket unreachable")
	require.NoError(t, svc.Remove(context.Background(), member.ID), "a failed remote delete does not block the reset")

	stored, err := repo.GetByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAvatar, stored.ProfilePhoto)
	assert.Empty(t, stored.PhotoKey)
}
