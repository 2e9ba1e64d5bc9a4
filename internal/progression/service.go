package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quintech/quintech-backend/pkg/db/models"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"github.com/quintech/quintech-backend/pkg/metrics"
	"gorm.io/gorm"
)

// PointsPerTask is the award for a single completed task.
const PointsPerTask = 3

// levelForPoints maps a point total to its level band. The table stops at 60;
// beyond that the caller keeps whatever level the profile already has.
func levelForPoints(points int) (int, bool) {
	switch {
	case points <= 6:
		return 1, true
	case points <= 15:
		return 2, true
	case points <= 27:
		return 3, true
	case points <= 42:
		return 4, true
	case points <= 60:
		return 5, true
	}
	return 0, false
}

type profileRepository interface {
	FindByHandle(ctx context.Context, handle string) (*models.User, error)
	UpdateProgress(ctx context.Context, handle string, points, level int) error
}

// Service awards points for completed tasks and keeps the level in step with
// the point total.
type Service struct {
	profiles profileRepository
	metrics  *metrics.ProgressionMetrics
}

// NewService constructs a progression service with the provided dependencies.
func NewService(profiles profileRepository, progressionMetrics *metrics.ProgressionMetrics) (*Service, error) {
	if profiles == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	return &Service{
		profiles: profiles,
		metrics:  progressionMetrics,
	}, nil
}

// CompleteTask applies the task award to the profile. Points and level are
// written together in a single update; the level is derived from the new
// total. The read and the write are not atomic, so two concurrent awards can
// both read the same starting total and one increment can be lost.
func (s *Service) CompleteTask(ctx context.Context, handle string) error {
	started := time.Now()
	err := s.completeTask(ctx, handle)
	s.metrics.ObserveDuration(string(metricsEvent), time.Since(started))
	if err != nil {
		s.metrics.IncFailed(string(metricsEvent))
		return err
	}
	s.metrics.IncApplied(string(metricsEvent))
	return nil
}

func (s *Service) completeTask(ctx context.Context, handle string) error {
	user, err := s.profiles.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup profile")
	}

	newPoints := user.Points + PointsPerTask
	newLevel, ok := levelForPoints(newPoints)
	if !ok {
		newLevel = user.Level
	}

	if err := s.profiles.UpdateProgress(ctx, handle, newPoints, newLevel); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update progress")
	}
	return nil
}
