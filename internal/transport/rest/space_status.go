package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/service/spacestatus"
)

type spaceStatusService interface {
	BuildingSpaceStatuses(ctx context.Context, buildingID uuid.UUID) (*spacestatus.BuildingResult, error)
}

// SpaceStatusHandler serves the derived space statuses of a building.
type SpaceStatusHandler struct {
	svc spaceStatusService
	log *slog.Logger
}

// NewSpaceStatusHandler creates a SpaceStatusHandler.
func NewSpaceStatusHandler(svc spaceStatusService, logger *slog.Logger) *SpaceStatusHandler {
	return &SpaceStatusHandler{svc: svc, log: logger.With("handler", "space_status")}
}

// BuildingStatuses handles GET /internal/buildings/{buildingID}/space-status.
func (h *SpaceStatusHandler) BuildingStatuses(w http.ResponseWriter, r *http.Request) {
	buildingID, ok := pathUUID(w, r, "buildingID")
	if !ok {
		return
	}

	result, err := h.svc.BuildingSpaceStatuses(r.Context(), buildingID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// pathUUID parses a chi URL parameter, answering 400 when it is not a UUID.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
