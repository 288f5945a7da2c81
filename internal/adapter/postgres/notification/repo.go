// Package notification implements the Notification repository using PostgreSQL.
// The notifications table is append-only and doubles as the dedup ledger.
package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/adapter/postgres"
	"github.com/heartmarshall/facility-backend/internal/domain"
)

const table = "notifications"

var columns = []string{"id", "user_id", "type", "message", "link", "read", "created_at"}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Type      string    `db:"type"`
	Message   string    `db:"message"`
	Link      string    `db:"link"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

// ExistsSince reports whether the user already has a notification of the
// given type created at or after since whose link contains linkContains.
// An empty linkContains matches any link.
func (r *Repo) ExistsSince(ctx context.Context, userID uuid.UUID, typ domain.NotificationType, linkContains string, since time.Time) (bool, error) {
	q := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "type": string(typ)}).
		Where(squirrel.GtOrEq{"created_at": since})
	if linkContains != "" {
		q = q.Where("strpos(link, ?) > 0", linkContains)
	}

	query, args, err := q.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build notification exists query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check notification ledger: %w", err)
	}
	return exists, nil
}

// Create appends a notification. A zero CreatedAt is set to the current time.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	id := n.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(id, n.UserID, string(n.Type), n.Message, n.Link, n.Read, createdAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create notification query: %w", err)
	}

	var created row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}

	return &domain.Notification{
		ID:        created.ID,
		UserID:    created.UserID,
		Type:      domain.NotificationType(created.Type),
		Message:   created.Message,
		Link:      created.Link,
		Read:      created.Read,
		CreatedAt: created.CreatedAt,
	}, nil
}
