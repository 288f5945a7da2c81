package app

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/domain"
	"github.com/heartmarshall/facility-backend/internal/service/escalation"
	"github.com/heartmarshall/facility-backend/internal/service/retention"
	schedulesvc "github.com/heartmarshall/facility-backend/internal/service/schedule"
	"github.com/heartmarshall/facility-backend/internal/service/spacestatus"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// fakeJobs records which jobs ran and fails the ones listed in failing.
type fakeJobs struct {
	mu      sync.Mutex
	ran     []string
	failing map[string]error
}

func (f *fakeJobs) record(job string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ran = append(f.ran, job)
	return f.failing[job]
}

func (f *fakeJobs) CheckOverdue(ctx context.Context, now time.Time) (escalation.OverdueSummary, error) {
	return escalation.OverdueSummary{Checked: 1}, f.record(JobOverdue)
}

func (f *fakeJobs) WarnSLA(ctx context.Context, now time.Time) (escalation.SLASummary, error) {
	return escalation.SLASummary{Checked: 1}, f.record(JobSLA)
}

func (f *fakeJobs) TriggerSchedules(ctx context.Context, now time.Time) (escalation.ScheduleSummary, error) {
	return escalation.ScheduleSummary{Checked: 1}, f.record(JobSchedules)
}

func (f *fakeJobs) Run(ctx context.Context, now time.Time) (retention.Summary, error) {
	return retention.Summary{DeletedSpaces: 1}, f.record(JobRetention)
}

type fakeReporter struct {
	mu   sync.Mutex
	errs []error
}

func (f *fakeReporter) CaptureException(ctx context.Context, err error, attrs ...slog.Attr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, err)
}

type fakePinger struct{}

func (fakePinger) Ping(context.Context) error { return nil }

type fakeSpaceStatus struct{}

func (fakeSpaceStatus) BuildingSpaceStatuses(ctx context.Context, buildingID uuid.UUID) (*spacestatus.BuildingResult, error) {
	return &spacestatus.BuildingResult{BuildingID: buildingID, Spaces: []domain.SpaceWithStatus{}}, nil
}

type fakeSchedules struct{}

func (fakeSchedules) schedule(actor domain.Actor) *domain.InspectionSchedule {
	return &domain.InspectionSchedule{ID: uuid.New(), Frequency: domain.FrequencyDaily, CreatedBy: actor.UserID, Enabled: true}
}

func (f fakeSchedules) Create(ctx context.Context, actor domain.Actor, input schedulesvc.CreateInput) (*domain.InspectionSchedule, error) {
	return f.schedule(actor), nil
}

func (f fakeSchedules) Update(ctx context.Context, actor domain.Actor, input schedulesvc.UpdateInput) (*domain.InspectionSchedule, error) {
	return f.schedule(actor), nil
}

func (f fakeSchedules) Enable(ctx context.Context, actor domain.Actor, scheduleID uuid.UUID) (*domain.InspectionSchedule, error) {
	return f.schedule(actor), nil
}

func (f fakeSchedules) Disable(ctx context.Context, actor domain.Actor, scheduleID uuid.UUID) (*domain.InspectionSchedule, error) {
	return f.schedule(actor), nil
}
