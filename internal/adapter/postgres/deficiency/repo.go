// Package deficiency implements the Deficiency repository using PostgreSQL.
package deficiency

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

const table = "deficiencies"

var columns = []string{"id", "space_id", "description", "status", "resolved_at", "created_at"}

// Repo provides deficiency persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deficiency repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	SpaceID     uuid.UUID  `db:"space_id"`
	Description string     `db:"description"`
	Status      string     `db:"status"`
	ResolvedAt  *time.Time `db:"resolved_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

// ListOpenBySpaces returns open and in-progress deficiencies for the given spaces.
func (r *Repo) ListOpenBySpaces(ctx context.Context, spaceIDs []uuid.UUID) ([]domain.Deficiency, error) {
	if len(spaceIDs) == 0 {
		return []domain.Deficiency{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"space_id": spaceIDs, "status": postgres.OpenStatuses()}).
		OrderBy("space_id", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build open deficiencies query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list open deficiencies: %w", err)
	}

	result := make([]domain.Deficiency, len(rows))
	for i, row := range rows {
		result[i] = domain.Deficiency{
			ID:          row.ID,
			SpaceID:     row.SpaceID,
			Description: row.Description,
			Status:      domain.WorkStatus(row.Status),
			ResolvedAt:  row.ResolvedAt,
			CreatedAt:   row.CreatedAt,
		}
	}
	return result, nil
}
