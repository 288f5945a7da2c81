// Package user implements the User repository using PostgreSQL.
package user

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

var columns = []string{"id", "email", "name", "phone", "role", "notification_prefs", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                uuid.UUID `db:"id"`
	Email             string    `db:"email"`
	Name              string    `db:"name"`
	Phone             *string   `db:"phone"`
	Role              string    `db:"role"`
	NotificationPrefs []byte    `db:"notification_prefs"`
	CreatedAt         time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key. A malformed preference blob falls
// back to the channel defaults.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	var u row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &domain.User{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		Phone:             u.Phone,
		Role:              domain.UserRole(u.Role),
		NotificationPrefs: domain.ParseNotificationPrefs(u.NotificationPrefs),
		CreatedAt:         u.CreatedAt,
	}, nil
}

// ---------------------------------------------------------------------------
// Building assignments
// ---------------------------------------------------------------------------

// ListBuildingManagerIDs returns the users assigned to a building whose role
// receives building-level alerts. Returns an empty slice when nobody qualifies.
func (r *Repo) ListBuildingManagerIDs(ctx context.Context, buildingID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("u.id").
		From("building_assignments ba").
		Join("users u ON u.id = ba.user_id").
		Where(squirrel.Eq{"ba.building_id": buildingID, "u.role": managerRoles()}).
		OrderBy("u.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build building managers query: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list managers of building %s: %w", buildingID, err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

func managerRoles() []string {
	var roles []string
	for _, r := range []domain.UserRole{domain.UserRoleAdmin, domain.UserRoleSupervisor, domain.UserRoleStaff} {
		if r.CanManageBuilding() {
			roles = append(roles, string(r))
		}
	}
	return roles
}
