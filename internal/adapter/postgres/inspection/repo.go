// Package inspection implements the Inspection repository using PostgreSQL.
package inspection

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/adapter/postgres"
	"github.com/heartmarshall/facility-backend/internal/domain"
)

const table = "inspections"

var columns = []string{"id", "space_id", "inspector_id", "status", "started_at", "completed_at"}

// Repo provides inspection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new inspection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	SpaceID     uuid.UUID  `db:"space_id"`
	InspectorID *uuid.UUID `db:"inspector_id"`
	Status      string     `db:"status"`
	StartedAt   time.Time  `db:"started_at"`
	CompletedAt *time.Time `db:"completed_at"`
}

// ListLatestCompletedBySpaces returns at most one inspection per space: the
// completed one with the greatest completed_at. Spaces never inspected are
// absent from the result.
func (r *Repo) ListLatestCompletedBySpaces(ctx context.Context, spaceIDs []uuid.UUID) ([]domain.Inspection, error) {
	if len(spaceIDs) == 0 {
		return []domain.Inspection{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		Options("DISTINCT ON (space_id)").
		From(table).
		Where(squirrel.Eq{"space_id": spaceIDs, "status": string(domain.InspectionStatusCompleted)}).
		Where(squirrel.NotEq{"completed_at": nil}).
		OrderBy("space_id", "completed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest inspections query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list latest inspections: %w", err)
	}

	result := make([]domain.Inspection, len(rows))
	for i, row := range rows {
		result[i] = domain.Inspection{
			ID:          row.ID,
			SpaceID:     row.SpaceID,
			InspectorID: row.InspectorID,
			Status:      domain.InspectionStatus(row.Status),
			StartedAt:   row.StartedAt,
			CompletedAt: row.CompletedAt,
		}
	}
	return result, nil
}

// ExpireStartedBefore marks in-progress inspections started before cutoff as
// expired. Returns the number of rows changed; a second call is a no-op.
func (r *Repo) ExpireStartedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(domain.InspectionStatusExpired)).
		Where(squirrel.Eq{"status": string(domain.InspectionStatusInProgress)}).
		Where(squirrel.Lt{"started_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build expire inspections query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("expire stale inspections: %w", err)
	}
	return tag.RowsAffected(), nil
}
