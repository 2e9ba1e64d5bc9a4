package media

import (
	"context"
	"io"
	"strings"
	"testing"

	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUploader struct {
	uploads      int
	gotObject    string
	gotType      string
	gotBody      string
	err          error
	publicPrefix string
}

func (s *stubUploader) Upload(_ context.Context, object, contentType string, data io.Reader) error {
	s.uploads++
	if s.err != nil {
		return s.err
	}
	s.gotObject = object
	s.gotType = contentType
	body, _ := io.ReadAll(data)
	s.gotBody = string(body)
	return nil
}

func (s *stubUploader) PublicURL(object string) string {
	return s.publicPrefix + object + "?alt=media"
}

type stubImageUpdater struct {
	gotHandle string
	gotURL    string
	calls     int
	err       error
}

func (s *stubImageUpdater) UpdateImageURL(_ context.Context, handle, imageURL string) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.gotHandle = handle
	s.gotURL = imageURL
	return nil
}

func newTestService(t *testing.T, storage *stubUploader, profiles *stubImageUpdater) *Service {
	t.Helper()
	if storage.publicPrefix == "" {
		storage.publicPrefix = "https://firebasestorage.googleapis.com/v0/b/bucket/o/"
	}
	svc, err := NewService(ServiceParams{
		Storage:     storage,
		ProfileRepo: profiles,
		MaxUploadMB: 10,
	})
	require.NoError(t, err)
	return svc
}

func TestUploadProfileImageStoresAndRepoints(t *testing.T) {
	storage := &stubUploader{}
	profiles := &stubImageUpdater{}
	svc := newTestService(t, storage, profiles)

	url, err := svc.UploadProfileImage(context.Background(), "rivka", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, 1, storage.uploads)
	assert.True(t, strings.HasSuffix(storage.gotObject, ".png"))
	assert.Equal(t, "image/png", storage.gotType)
	assert.Equal(t, "png-bytes", storage.gotBody)

	assert.Equal(t, 1, profiles.calls)
	assert.Equal(t, "rivka", profiles.gotHandle)
	assert.Equal(t, url, profiles.gotURL)
	assert.Contains(t, url, storage.gotObject)
	assert.True(t, strings.HasSuffix(url, "?alt=media"))
}

func TestUploadProfileImageJpegGetsJpgExtension(t *testing.T) {
	storage := &stubUploader{}
	svc := newTestService(t, storage, &stubImageUpdater{})

	_, err := svc.UploadProfileImage(context.Background(), "rivka", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(storage.gotObject, ".jpg"))
}

func TestUploadProfileImageRejectsWrongTypeBeforeStorage(t *testing.T) {
	storage := &stubUploader{}
	profiles := &stubImageUpdater{}
	svc := newTestService(t, storage, profiles)

	_, err := svc.UploadProfileImage(context.Background(), "rivka", "text/plain", strings.NewReader("not an image"))

	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnsupportedMedia, typed.Code())
	assert.Equal(t, 0, storage.uploads)
	assert.Equal(t, 0, profiles.calls)
}

func TestUploadProfileImageParsesContentTypeParameters(t *testing.T) {
	storage := &stubUploader{}
	svc := newTestService(t, storage, &stubImageUpdater{})

	_, err := svc.UploadProfileImage(context.Background(), "rivka", "image/png; charset=binary", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "image/png", storage.gotType)
}

func TestUploadProfileImageStorageFailureIsDependencyError(t *testing.T) {
	storage := &stubUploader{err: assert.AnError}
	profiles := &stubImageUpdater{}
	svc := newTestService(t, storage, profiles)

	_, err := svc.UploadProfileImage(context.Background(), "rivka", "image/png", strings.NewReader("png-bytes"))

	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
	assert.Equal(t, 0, profiles.calls)
}
