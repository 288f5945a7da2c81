// Package schedule implements the InspectionSchedule repository using PostgreSQL.
package schedule

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

const table = "inspection_schedules"

var columns = []string{
	"id", "building_id", "checklist_template_id", "name", "frequency",
	"day_of_week", "day_of_month", "time_of_day", "assigned_to", "enabled",
	"last_triggered_at", "next_due_at", "created_by", "updated_by", "created_at", "updated_at",
}

// Repo provides schedule persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new schedule repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

type row struct {
	ID                  uuid.UUID  `db:"id"`
	BuildingID          uuid.UUID  `db:"building_id"`
	ChecklistTemplateID *uuid.UUID `db:"checklist_template_id"`
	Name                string     `db:"name"`
	Frequency           string     `db:"frequency"`
	DayOfWeek           *int       `db:"day_of_week"`
	DayOfMonth          *int       `db:"day_of_month"`
	TimeOfDay           string     `db:"time_of_day"`
	AssignedTo          *uuid.UUID `db:"assigned_to"`
	Enabled             bool       `db:"enabled"`
	LastTriggeredAt     *time.Time `db:"last_triggered_at"`
	NextDueAt           time.Time  `db:"next_due_at"`
	CreatedBy           uuid.UUID  `db:"created_by"`
	UpdatedBy           *uuid.UUID `db:"updated_by"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.InspectionSchedule {
	return &domain.InspectionSchedule{
		ID:                  r.ID,
		BuildingID:          r.BuildingID,
		ChecklistTemplateID: r.ChecklistTemplateID,
		Name:                r.Name,
		Frequency:           domain.Frequency(r.Frequency),
		DayOfWeek:           r.DayOfWeek,
		DayOfMonth:          r.DayOfMonth,
		TimeOfDay:           r.TimeOfDay,
		AssignedTo:          r.AssignedTo,
		Enabled:             r.Enabled,
		LastTriggeredAt:     r.LastTriggeredAt,
		NextDueAt:           r.NextDueAt,
		CreatedBy:           r.CreatedBy,
		UpdatedBy:           r.UpdatedBy,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Admin operations
// ---------------------------------------------------------------------------

// Create inserts a schedule and returns the stored row. A nil ID is replaced
// with a fresh UUID.
func (r *Repo) Create(ctx context.Context, s *domain.InspectionSchedule) (*domain.InspectionSchedule, error) {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := r.now().UTC()

	query, args, err := postgres.Builder().
		Insert(table).
		SetMap(map[string]any{
			"id":                    id,
			"building_id":           s.BuildingID,
			"checklist_template_id": s.ChecklistTemplateID,
			"name":                  s.Name,
			"frequency":             string(s.Frequency),
			"day_of_week":           s.DayOfWeek,
			"day_of_month":          s.DayOfMonth,
			"time_of_day":           s.TimeOfDay,
			"assigned_to":           s.AssignedTo,
			"enabled":               s.Enabled,
			"next_due_at":           s.NextDueAt,
			"created_by":            s.CreatedBy,
			"updated_by":            s.UpdatedBy,
			"created_at":            now,
			"updated_at":            now,
		}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create schedule query: %w", err)
	}

	var created row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "inspection_schedule", id)
	}
	return created.toDomain(), nil
}

// GetByID returns a schedule by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InspectionSchedule, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get schedule query: %w", err)
	}

	var s row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, query, args...); err != nil {
		return nil, postgres.MapError(err, "inspection_schedule", id)
	}
	return s.toDomain(), nil
}

// Update writes every editable field plus enabled, next_due_at and updated_by.
// Returns domain.ErrNotFound if the schedule does not exist.
func (r *Repo) Update(ctx context.Context, s *domain.InspectionSchedule) (*domain.InspectionSchedule, error) {
	query, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"checklist_template_id": s.ChecklistTemplateID,
			"name":                  s.Name,
			"frequency":             string(s.Frequency),
			"day_of_week":           s.DayOfWeek,
			"day_of_month":          s.DayOfMonth,
			"time_of_day":           s.TimeOfDay,
			"assigned_to":           s.AssignedTo,
			"enabled":               s.Enabled,
			"next_due_at":           s.NextDueAt,
			"updated_by":            s.UpdatedBy,
			"updated_at":            r.now().UTC(),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update schedule query: %w", err)
	}

	var updated row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, args...); err != nil {
		return nil, postgres.MapError(err, "inspection_schedule", s.ID)
	}
	return updated.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Trigger job operations
// ---------------------------------------------------------------------------

// ListDue returns enabled schedules with next_due_at <= now, earliest first.
// A limit of zero means no cap.
func (r *Repo) ListDue(ctx context.Context, now time.Time, limit int) ([]domain.InspectionSchedule, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"enabled": true}).
		Where(squirrel.LtOrEq{"next_due_at": now}).
		OrderBy("next_due_at", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due schedules query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list due schedules: %w", err)
	}

	result := make([]domain.InspectionSchedule, len(rows))
	for i, row := range rows {
		result[i] = *row.toDomain()
	}
	return result, nil
}

// Advance records a trigger: last_triggered_at and next_due_at move forward
// and updated_by is set from the actor (NULL for the system).
func (r *Repo) Advance(ctx context.Context, id uuid.UUID, nextDueAt, triggeredAt time.Time, actor domain.Actor) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("next_due_at", nextDueAt).
		Set("last_triggered_at", triggeredAt).
		Set("updated_by", actor.Ref()).
		Set("updated_at", r.now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build advance schedule query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "inspection_schedule", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inspection_schedule %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
