// Package task implements the Task repository using PostgreSQL.
// All list queries consider only open and in-progress tasks.
package task

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

const table = "tasks"

var columns = []string{
	"id", "space_id", "deficiency_id", "assigned_to", "created_by",
	"description", "priority", "status", "due_date", "created_at",
}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	SpaceID      uuid.UUID  `db:"space_id"`
	DeficiencyID *uuid.UUID `db:"deficiency_id"`
	AssignedTo   *uuid.UUID `db:"assigned_to"`
	CreatedBy    uuid.UUID  `db:"created_by"`
	Description  string     `db:"description"`
	Priority     string     `db:"priority"`
	Status       string     `db:"status"`
	DueDate      *time.Time `db:"due_date"`
	CreatedAt    time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.Task {
	return domain.Task{
		ID:           r.ID,
		SpaceID:      r.SpaceID,
		DeficiencyID: r.DeficiencyID,
		AssignedTo:   r.AssignedTo,
		CreatedBy:    r.CreatedBy,
		Description:  r.Description,
		Priority:     domain.TaskPriority(r.Priority),
		Status:       domain.WorkStatus(r.Status),
		DueDate:      r.DueDate,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *Repo) openTasks() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": postgres.OpenStatuses()})
}

// ListOpenBySpaces returns open tasks for the given spaces.
func (r *Repo) ListOpenBySpaces(ctx context.Context, spaceIDs []uuid.UUID) ([]domain.Task, error) {
	if len(spaceIDs) == 0 {
		return []domain.Task{}, nil
	}

	q := r.openTasks().
		Where(squirrel.Eq{"space_id": spaceIDs}).
		OrderBy("space_id", "created_at")

	return r.list(ctx, q, "list open tasks by spaces")
}

// ListOverdue returns open tasks whose due date is strictly before now,
// oldest due date first. Tasks with a task_overdue notification created at or
// after notifiedSince are skipped before the limit applies, so a capped run
// reaches tasks the previous runs did not. A zero notifiedSince or limit
// disables that filter or cap.
func (r *Repo) ListOverdue(ctx context.Context, now, notifiedSince time.Time, limit int) ([]domain.Task, error) {
	q := r.openTasks().
		Where(squirrel.Lt{"due_date": now})
	q = withoutNotificationSince(q, domain.NotificationTypeTaskOverdue, notifiedSince).
		OrderBy("due_date", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	return r.list(ctx, q, "list overdue tasks")
}

// ListAssignedDueBetween returns open assigned tasks with after < due_date <= until,
// skipping tasks with an sla_warning notification created at or after
// notifiedSince. A zero notifiedSince or limit disables that filter or cap.
func (r *Repo) ListAssignedDueBetween(ctx context.Context, after, until, notifiedSince time.Time, limit int) ([]domain.Task, error) {
	q := r.openTasks().
		Where(squirrel.NotEq{"assigned_to": nil}).
		Where(squirrel.Gt{"due_date": after}).
		Where(squirrel.LtOrEq{"due_date": until})
	q = withoutNotificationSince(q, domain.NotificationTypeSLAWarning, notifiedSince).
		OrderBy("due_date", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	return r.list(ctx, q, "list tasks due soon")
}

// withoutNotificationSince excludes tasks whose link already appears in a
// notification of type typ created at or after since. It matches the
// dispatcher's dedup lookup, which finds the task id inside the link.
func withoutNotificationSince(q squirrel.SelectBuilder, typ domain.NotificationType, since time.Time) squirrel.SelectBuilder {
	if since.IsZero() {
		return q
	}
	return q.Where(squirrel.Expr(
		"NOT EXISTS (SELECT 1 FROM notifications n WHERE n.type = ? AND n.created_at >= ? AND strpos(n.link, tasks.id::text) > 0)",
		string(typ), since,
	))
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder, op string) ([]domain.Task, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toDomain()
	}
	return tasks, nil
}
