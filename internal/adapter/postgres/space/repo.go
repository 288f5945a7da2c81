// Package space implements the Space repository using PostgreSQL.
// Spaces are soft-deleted first and hard-deleted by the retention job.
package space

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

const table = "spaces"

var columns = []string{"id", "building_id", "floor_id", "name", "deleted_at"}

// Repo provides space persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new space repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	BuildingID uuid.UUID  `db:"building_id"`
	FloorID    *uuid.UUID `db:"floor_id"`
	Name       string     `db:"name"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

func (r row) toDomain() domain.Space {
	return domain.Space{
		ID:         r.ID,
		BuildingID: r.BuildingID,
		FloorID:    r.FloorID,
		Name:       r.Name,
		DeletedAt:  r.DeletedAt,
	}
}

// ListByBuilding returns the live spaces of a building ordered by name.
// Returns an empty slice (not nil) when the building has no spaces.
func (r *Repo) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]domain.Space, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"building_id": buildingID, "deleted_at": nil}).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list spaces query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list spaces by building %s: %w", buildingID, err)
	}

	spaces := make([]domain.Space, len(rows))
	for i, row := range rows {
		spaces[i] = row.toDomain()
	}
	return spaces, nil
}

// CountByBuilding returns the number of live spaces in a building.
func (r *Repo) CountByBuilding(ctx context.Context, buildingID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"building_id": buildingID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count spaces query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count spaces by building %s: %w", buildingID, err)
	}
	return count, nil
}

// PurgeDeletedBefore hard-deletes spaces soft-deleted before cutoff.
// Returns the number of rows removed.
func (r *Repo) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"deleted_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge spaces query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge deleted spaces: %w", err)
	}
	return tag.RowsAffected(), nil
}
