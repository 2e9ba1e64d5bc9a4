package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/quintech/quintech-backend/internal/notifications"
	"github.com/quintech/quintech-backend/pkg/db/models"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"gorm.io/gorm"
)

// OwnProfile is the authenticated profile view: the caller's credentials plus
// their most recent notifications.
type OwnProfile struct {
	Credentials   *ProfileDTO                     `json:"credentials"`
	Notifications []notifications.NotificationDTO `json:"notifications"`
}

// Service defines the behavior needed by the users controller.
type Service interface {
	Get(ctx context.Context, handle string) (*ProfileDTO, error)
	GetOwn(ctx context.Context, handle string) (*OwnProfile, error)
}

type profileRepository interface {
	FindByHandle(ctx context.Context, handle string) (*models.User, error)
}

type notificationLister interface {
	ListForRecipient(ctx context.Context, handle string) ([]models.Notification, error)
}

type service struct {
	profiles      profileRepository
	notifications notificationLister
}

// ServiceParams bundles the dependencies required to build a profiles service.
type ServiceParams struct {
	ProfileRepo      profileRepository
	NotificationRepo notificationLister
}

// NewService constructs a profile read service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ProfileRepo == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	if params.NotificationRepo == nil {
		return nil, fmt.Errorf("notification repository is required")
	}
	return &service{
		profiles:      params.ProfileRepo,
		notifications: params.NotificationRepo,
	}, nil
}

func (s *service) Get(ctx context.Context, handle string) (*ProfileDTO, error) {
	user, err := s.profiles.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup profile")
	}
	return FromModel(user), nil
}

func (s *service) GetOwn(ctx context.Context, handle string) (*OwnProfile, error) {
	user, err := s.profiles.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup profile")
	}

	recent, err := s.notifications.ListForRecipient(ctx, handle)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list notifications")
	}

	return &OwnProfile{
		Credentials:   FromModel(user),
		Notifications: notifications.FromModels(recent),
	}, nil
}
