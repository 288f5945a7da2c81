// Package retention purges expired soft-deleted spaces and expires
// abandoned inspections.
package retention

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/facility-backend/internal/domain"
)

const tracerName = "github.com/heartmarshall/facility-backend/internal/service/retention"

type spaceRepo interface {
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type inspectionRepo interface {
	ExpireStartedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service runs the retention sweep.
type Service struct {
	spaces      spaceRepo
	inspections inspectionRepo
	policy      domain.RetentionPolicy
	tracer      trace.Tracer
	log         *slog.Logger
}

// NewService creates a new retention Service.
func NewService(log *slog.Logger, spaces spaceRepo, inspections inspectionRepo, policy domain.RetentionPolicy) *Service {
	return &Service{
		spaces:      spaces,
		inspections: inspections,
		policy:      policy,
		tracer:      otel.Tracer(tracerName),
		log:         log.With("service", "retention"),
	}
}

// Summary reports how many rows one sweep touched.
type Summary struct {
	DeletedSpaces      int64 `json:"deleted_spaces"`
	ExpiredInspections int64 `json:"expired_inspections"`
}

// Run hard-deletes spaces soft-deleted before now-SpaceRetention and marks
// inspections still in progress since before now-InspectionStaleAfter as
// expired. The two sweeps are independent: a failure in one does not stop
// the other, and the returned Summary holds whatever did succeed.
func (s *Service) Run(ctx context.Context, now time.Time) (Summary, error) {
	ctx, span := s.tracer.Start(ctx, "retention.Run")
	defer span.End()

	var sum Summary
	var errs []error

	deleted, err := s.spaces.PurgeDeletedBefore(ctx, now.Add(-s.policy.SpaceRetention))
	if err != nil {
		errs = append(errs, fmt.Errorf("purge spaces: %w", err))
	} else {
		sum.DeletedSpaces = deleted
	}

	expired, err := s.inspections.ExpireStartedBefore(ctx, now.Add(-s.policy.InspectionStaleAfter))
	if err != nil {
		errs = append(errs, fmt.Errorf("expire inspections: %w", err))
	} else {
		sum.ExpiredInspections = expired
	}

	span.SetAttributes(
		attribute.Int64("retention.deleted_spaces", sum.DeletedSpaces),
		attribute.Int64("retention.expired_inspections", sum.ExpiredInspections),
	)

	if err := errors.Join(errs...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return sum, err
	}

	s.log.InfoContext(ctx, "retention sweep finished",
		slog.Int64("deleted_spaces", sum.DeletedSpaces),
		slog.Int64("expired_inspections", sum.ExpiredInspections),
	)

	return sum, nil
}
