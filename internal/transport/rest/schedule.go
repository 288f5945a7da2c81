package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/domain"
	"github.com/heartmarshall/facility-backend/internal/service/schedule"
	"github.com/heartmarshall/facility-backend/pkg/ctxutil"
)

type scheduleService interface {
	Create(ctx context.Context, actor domain.Actor, input schedule.CreateInput) (*domain.InspectionSchedule, error)
	Update(ctx context.Context, actor domain.Actor, input schedule.UpdateInput) (*domain.InspectionSchedule, error)
	Enable(ctx context.Context, actor domain.Actor, scheduleID uuid.UUID) (*domain.InspectionSchedule, error)
	Disable(ctx context.Context, actor domain.Actor, scheduleID uuid.UUID) (*domain.InspectionSchedule, error)
}

// ScheduleHandler serves schedule administration. Every mutation is
// attributed to the user named by the acting-user header.
type ScheduleHandler struct {
	svc scheduleService
	log *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedule")}
}

type scheduleResponse struct {
	ID                  string     `json:"id"`
	BuildingID          string     `json:"building_id"`
	ChecklistTemplateID *string    `json:"checklist_template_id"`
	Name                string     `json:"name"`
	Frequency           string     `json:"frequency"`
	DayOfWeek           *int       `json:"day_of_week"`
	DayOfMonth          *int       `json:"day_of_month"`
	TimeOfDay           string     `json:"time_of_day"`
	AssignedTo          *string    `json:"assigned_to"`
	Enabled             bool       `json:"enabled"`
	LastTriggeredAt     *time.Time `json:"last_triggered_at"`
	NextDueAt           time.Time  `json:"next_due_at"`
	CreatedBy           string     `json:"created_by"`
	UpdatedBy           *string    `json:"updated_by"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Create handles POST /internal/schedules.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input schedule.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sched, err := h.svc.Create(r.Context(), actor, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toScheduleResponse(sched))
}

// Update handles PUT /internal/schedules/{scheduleID}. The body replaces
// every editable field.
func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	scheduleID, ok := pathUUID(w, r, "scheduleID")
	if !ok {
		return
	}

	var fields schedule.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sched, err := h.svc.Update(r.Context(), actor, schedule.UpdateInput{ScheduleID: scheduleID, Fields: fields})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toScheduleResponse(sched))
}

// Enable handles POST /internal/schedules/{scheduleID}/enable.
func (h *ScheduleHandler) Enable(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.Enable)
}

// Disable handles POST /internal/schedules/{scheduleID}/disable.
func (h *ScheduleHandler) Disable(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.Disable)
}

func (h *ScheduleHandler) toggle(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, actor domain.Actor, scheduleID uuid.UUID) (*domain.InspectionSchedule, error),
) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	scheduleID, ok := pathUUID(w, r, "scheduleID")
	if !ok {
		return
	}

	sched, err := fn(r.Context(), actor, scheduleID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toScheduleResponse(sched))
}

func requireActor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	userID, ok := ctxutil.ActingUserFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "acting user required")
		return domain.Actor{}, false
	}
	return domain.ActingAs(userID), true
}

func toScheduleResponse(s *domain.InspectionSchedule) scheduleResponse {
	return scheduleResponse{
		ID:                  s.ID.String(),
		BuildingID:          s.BuildingID.String(),
		ChecklistTemplateID: uuidString(s.ChecklistTemplateID),
		Name:                s.Name,
		Frequency:           s.Frequency.String(),
		DayOfWeek:           s.DayOfWeek,
		DayOfMonth:          s.DayOfMonth,
		TimeOfDay:           s.TimeOfDay,
		AssignedTo:          uuidString(s.AssignedTo),
		Enabled:             s.Enabled,
		LastTriggeredAt:     s.LastTriggeredAt,
		NextDueAt:           s.NextDueAt,
		CreatedBy:           s.CreatedBy.String(),
		UpdatedBy:           uuidString(s.UpdatedBy),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
