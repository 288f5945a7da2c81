//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/facility-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role and default notification prefs.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	phone := "+1555" + suffix[:4]
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Phone:     &phone,
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, phone, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.Phone, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedBuilding creates an active building.
func SeedBuilding(t *testing.T, pool *pgxpool.Pool) domain.Building {
	t.Helper()

	b := domain.Building{ID: uuid.New(), Name: "Building " + uniqueSuffix()}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO buildings (id, name) VALUES ($1, $2)`, b.ID, b.Name)
	if err != nil {
		t.Fatalf("testhelper: SeedBuilding: %v", err)
	}
	return b
}

// AssignUser links a user to a building.
func AssignUser(t *testing.T, pool *pgxpool.Pool, buildingID, userID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO building_assignments (building_id, user_id) VALUES ($1, $2)`, buildingID, userID)
	if err != nil {
		t.Fatalf("testhelper: AssignUser: %v", err)
	}
}

// SeedSpace creates a space in the building. A non-nil deletedAt soft-deletes it.
func SeedSpace(t *testing.T, pool *pgxpool.Pool, buildingID uuid.UUID, deletedAt *time.Time) domain.Space {
	t.Helper()

	s := domain.Space{ID: uuid.New(), BuildingID: buildingID, Name: "Room " + uniqueSuffix(), DeletedAt: deletedAt}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO spaces (id, building_id, name, deleted_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.BuildingID, s.Name, s.DeletedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSpace: %v", err)
	}
	return s
}

// SeedInspection creates an inspection row for the space.
func SeedInspection(t *testing.T, pool *pgxpool.Pool, spaceID uuid.UUID, status domain.InspectionStatus, startedAt time.Time, completedAt *time.Time) domain.Inspection {
	t.Helper()

	in := domain.Inspection{ID: uuid.New(), SpaceID: spaceID, Status: status, StartedAt: startedAt, CompletedAt: completedAt}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO inspections (id, space_id, status, started_at, completed_at) VALUES ($1, $2, $3, $4, $5)`,
		in.ID, in.SpaceID, string(in.Status), in.StartedAt, in.CompletedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedInspection: %v", err)
	}
	return in
}

// SeedTask creates an open task in the space.
func SeedTask(t *testing.T, pool *pgxpool.Pool, spaceID, createdBy uuid.UUID, assignedTo *uuid.UUID, priority domain.TaskPriority, due *time.Time) domain.Task {
	t.Helper()

	task := domain.Task{
		ID:          uuid.New(),
		SpaceID:     spaceID,
		CreatedBy:   createdBy,
		AssignedTo:  assignedTo,
		Description: "Task " + uniqueSuffix(),
		Priority:    priority,
		Status:      domain.WorkStatusOpen,
		DueDate:     due,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, space_id, created_by, assigned_to, description, priority, status, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		task.ID, task.SpaceID, task.CreatedBy, task.AssignedTo, task.Description,
		string(task.Priority), string(task.Status), task.DueDate)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}
	return task
}
