// Package spacestatus derives the live traffic-light status of spaces from
// their inspection, deficiency and task history. Nothing here is cached: every
// read recomputes from storage.
package spacestatus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/facility-backend/internal/domain"
)

type buildingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error)
}

type spaceRepo interface {
	ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]domain.Space, error)
}

type inspectionRepo interface {
	ListLatestCompletedBySpaces(ctx context.Context, spaceIDs []uuid.UUID) ([]domain.Inspection, error)
}

type deficiencyRepo interface {
	ListOpenBySpaces(ctx context.Context, spaceIDs []uuid.UUID) ([]domain.Deficiency, error)
}

type taskRepo interface {
	ListOpenBySpaces(ctx context.Context, spaceIDs []uuid.UUID) ([]domain.Task, error)
}

// Service loads the records a building needs and derives space statuses.
type Service struct {
	buildings    buildingRepo
	spaces       spaceRepo
	inspections  inspectionRepo
	deficiencies deficiencyRepo
	tasks        taskRepo
	inTx         func(ctx context.Context) bool
	now          func() time.Time
	log          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTxCheck tells the Service how to recognise a context that carries a
// database transaction. Loads run one after another on such a context, since
// a transaction connection cannot serve concurrent queries.
func WithTxCheck(inTx func(ctx context.Context) bool) Option {
	return func(s *Service) { s.inTx = inTx }
}

// NewService creates a space status Service.
func NewService(
	log *slog.Logger,
	buildings buildingRepo,
	spaces spaceRepo,
	inspections inspectionRepo,
	deficiencies deficiencyRepo,
	tasks taskRepo,
	opts ...Option,
) *Service {
	s := &Service{
		buildings:    buildings,
		spaces:       spaces,
		inspections:  inspections,
		deficiencies: deficiencies,
		tasks:        tasks,
		inTx:         func(context.Context) bool { return false },
		now:          time.Now,
		log:          log.With("service", "spacestatus"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildingResult is the derived status of every live space in a building.
type BuildingResult struct {
	BuildingID uuid.UUID                `json:"building_id"`
	Summary    Summary                  `json:"summary"`
	Spaces     []domain.SpaceWithStatus `json:"spaces"`
}

// BuildingSpaceStatuses derives the status of every non-deleted space in the
// building. The per-space records load concurrently unless ctx carries a
// transaction, see WithTxCheck.
func (s *Service) BuildingSpaceStatuses(ctx context.Context, buildingID uuid.UUID) (*BuildingResult, error) {
	if buildingID == uuid.Nil {
		return nil, domain.NewValidationError("building_id", "required")
	}

	if _, err := s.buildings.GetByID(ctx, buildingID); err != nil {
		return nil, fmt.Errorf("get building: %w", err)
	}

	spaces, err := s.spaces.ListByBuilding(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}

	result := &BuildingResult{BuildingID: buildingID, Spaces: []domain.SpaceWithStatus{}}
	if len(spaces) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(spaces))
	for i, sp := range spaces {
		ids[i] = sp.ID
	}

	var (
		inspections  []domain.Inspection
		deficiencies []domain.Deficiency
		tasks        []domain.Task
	)

	err = s.load(ctx,
		func(ctx context.Context) error {
			var err error
			if inspections, err = s.inspections.ListLatestCompletedBySpaces(ctx, ids); err != nil {
				return fmt.Errorf("list inspections: %w", err)
			}
			return nil
		},
		func(ctx context.Context) error {
			var err error
			if deficiencies, err = s.deficiencies.ListOpenBySpaces(ctx, ids); err != nil {
				return fmt.Errorf("list deficiencies: %w", err)
			}
			return nil
		},
		func(ctx context.Context) error {
			var err error
			if tasks, err = s.tasks.ListOpenBySpaces(ctx, ids); err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	result.Spaces = ComputeSpaceStatuses(spaces, inspections, deficiencies, tasks, s.now())
	result.Summary = Summarize(result.Spaces)

	s.log.DebugContext(ctx, "space statuses derived",
		slog.String("building_id", buildingID.String()),
		slog.Int("spaces", result.Summary.Total),
		slog.Int("red", result.Summary.Red),
	)

	return result, nil
}

// load runs the loaders concurrently, or in order when ctx is bound to a
// transaction. The first error wins either way.
func (s *Service) load(ctx context.Context, loaders ...func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		for _, fn := range loaders {
			if err := fn(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range loaders {
		g.Go(func() error { return fn(gctx) })
	}
	return g.Wait()
}
