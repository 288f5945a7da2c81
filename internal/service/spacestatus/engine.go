package spacestatus

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/domain"
)

// Status derives the traffic-light status of one space. Callers pass only
// open deficiencies/tasks and the most recently completed inspection.
//
// Rules, first match wins:
//  1. no completed inspection        -> grey
//  2. critical or past-due open task -> red
//  3. any open deficiency or task    -> amber
//  4. otherwise                      -> green
func Status(lastCompleted *domain.Inspection, openDeficiencies []domain.Deficiency, openTasks []domain.Task, now time.Time) domain.SpaceStatus {
	if lastCompleted == nil || lastCompleted.CompletedAt == nil {
		return domain.SpaceStatusGrey
	}

	for i := range openTasks {
		t := &openTasks[i]
		if t.Priority == domain.TaskPriorityCritical {
			return domain.SpaceStatusRed
		}
		if t.DueDate != nil && t.DueDate.Before(now) {
			return domain.SpaceStatusRed
		}
	}

	if len(openDeficiencies) > 0 || len(openTasks) > 0 {
		return domain.SpaceStatusAmber
	}

	return domain.SpaceStatusGreen
}

// ComputeSpaceStatuses derives a status for every space in a single pass.
// Inspections, deficiencies and tasks may belong to any space; they are
// grouped once, filtered (completed inspections, open work only), and the
// latest completion per space wins. Output order follows spaces.
func ComputeSpaceStatuses(
	spaces []domain.Space,
	inspections []domain.Inspection,
	deficiencies []domain.Deficiency,
	tasks []domain.Task,
	now time.Time,
) []domain.SpaceWithStatus {
	latest := make(map[uuid.UUID]*domain.Inspection, len(spaces))
	for i := range inspections {
		insp := &inspections[i]
		if !insp.CountsTowardStatus() {
			continue
		}
		cur, ok := latest[insp.SpaceID]
		if !ok || insp.CompletedAt.After(*cur.CompletedAt) {
			latest[insp.SpaceID] = insp
		}
	}

	defBySpace := make(map[uuid.UUID][]domain.Deficiency)
	for _, d := range deficiencies {
		if d.IsOpen() {
			defBySpace[d.SpaceID] = append(defBySpace[d.SpaceID], d)
		}
	}

	taskBySpace := make(map[uuid.UUID][]domain.Task)
	for _, t := range tasks {
		if t.IsOpen() {
			taskBySpace[t.SpaceID] = append(taskBySpace[t.SpaceID], t)
		}
	}

	result := make([]domain.SpaceWithStatus, 0, len(spaces))
	for _, sp := range spaces {
		insp := latest[sp.ID]
		defs := defBySpace[sp.ID]
		ts := taskBySpace[sp.ID]

		item := domain.SpaceWithStatus{
			SpaceID:             sp.ID,
			Name:                sp.Name,
			Status:              Status(insp, defs, ts, now),
			OpenDeficiencyCount: len(defs),
			OpenTaskCount:       len(ts),
		}
		if insp != nil {
			completed := *insp.CompletedAt
			item.LastInspectedAt = &completed
		}
		result = append(result, item)
	}

	return result
}

// Summary counts spaces per status.
type Summary struct {
	Total int `json:"total"`
	Green int `json:"green"`
	Amber int `json:"amber"`
	Red   int `json:"red"`
	Grey  int `json:"grey"`
}

// Summarize aggregates derived statuses for a building overview.
func Summarize(items []domain.SpaceWithStatus) Summary {
	s := Summary{Total: len(items)}
	for _, it := range items {
		switch it.Status {
		case domain.SpaceStatusGreen:
			s.Green++
		case domain.SpaceStatusAmber:
			s.Amber++
		case domain.SpaceStatusRed:
			s.Red++
		case domain.SpaceStatusGrey:
			s.Grey++
		}
	}
	return s
}
