package media

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
)

// MaxUploadBytes caps a profile image read when the configured limit is zero.
const defaultMaxUploadBytes = 10 << 20

var extensionByMIME = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

type uploader interface {
	Upload(ctx context.Context, object, contentType string, data io.Reader) error
	PublicURL(object string) string
}

type imageUpdater interface {
	UpdateImageURL(ctx context.Context, handle, imageURL string) error
}

// Service stores profile images and points the profile at the new object.
type Service struct {
	storage  uploader
	profiles imageUpdater
	maxBytes int64
}

// ServiceParams bundles the dependencies required to build a media service.
type ServiceParams struct {
	Storage     uploader
	ProfileRepo imageUpdater
	MaxUploadMB int
}

// NewService constructs a media service with the provided dependencies.
func NewService(params ServiceParams) (*Service, error) {
	if params.Storage == nil {
		return nil, fmt.Errorf("storage client is required")
	}
	if params.ProfileRepo == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	maxBytes := int64(params.MaxUploadMB) << 20
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	return &Service{
		storage:  params.Storage,
		profiles: params.ProfileRepo,
		maxBytes: maxBytes,
	}, nil
}

// UploadProfileImage validates the content type, writes the object, and
// repoints the profile. Unsupported types are rejected before anything is
// written to storage.
func (s *Service) UploadProfileImage(ctx context.Context, handle, contentType string, data io.Reader) (string, error) {
	if strings.TrimSpace(handle) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "handle is required")
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeUnsupportedMedia, "unreadable content type")
	}
	ext, ok := extensionByMIME[mediaType]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeUnsupportedMedia, "wrong file type submitted")
	}

	object := uuid.NewString() + ext
	limited := io.LimitReader(data, s.maxBytes)
	if err := s.storage.Upload(ctx, object, mediaType, limited); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload image")
	}

	imageURL := s.storage.PublicURL(object)
	if err := s.profiles.UpdateImageURL(ctx, handle, imageURL); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update image url")
	}

	return imageURL, nil
}
