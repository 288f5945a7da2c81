// Package building implements the Building repository using PostgreSQL.
package building

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

const table = "buildings"

var columns = []string{"id", "name", "archived_at"}

// Repo provides building persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new building repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	Name       string     `db:"name"`
	ArchivedAt *time.Time `db:"archived_at"`
}

// GetByID returns a building by primary key, archived or not.
// Returns domain.ErrNotFound if the building does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get building query: %w", err)
	}

	var b row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &b, query, args...); err != nil {
		return nil, postgres.MapError(err, "building", id)
	}

	return &domain.Building{ID: b.ID, Name: b.Name, ArchivedAt: b.ArchivedAt}, nil
}
