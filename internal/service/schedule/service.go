// Package schedule administers recurring inspection schedules. Schedules are
// never deleted; admins disable them instead.
package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/domain"
)

type scheduleRepo interface {
	Create(ctx context.Context, s *domain.InspectionSchedule) (*domain.InspectionSchedule, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InspectionSchedule, error)
	Update(ctx context.Context, s *domain.InspectionSchedule) (*domain.InspectionSchedule, error)
}

type buildingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides schedule administration.
type Service struct {
	schedules scheduleRepo
	buildings buildingRepo
	tx        txManager
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new schedule Service.
func NewService(
	log *slog.Logger,
	schedules scheduleRepo,
	buildings buildingRepo,
	tx txManager,
) *Service {
	return &Service{
		schedules: schedules,
		buildings: buildings,
		tx:        tx,
		now:       time.Now,
		log:       log.With("service", "schedule"),
	}
}
