// Package scheduler provides the scheduling collaborator used by driver
// assignment: either a Temporal-backed planner running the workflow on a
// worker fleet, or an in-process planner for single-binary deployments.
package scheduler

import (
	"context"
	"fmt"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/lifecycle"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler/activities"
	schedworkflow "github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler/workflow"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler/store"
	"go.temporal.io/sdk/client"
)

// TemporalPlanner implements lifecycle.SchedulePlanner by executing the
// schedule workflow and waiting for its result.
type TemporalPlanner struct {
	client client.Client
}

func NewTemporalPlanner(c client.Client) *TemporalPlanner {
	return &TemporalPlanner{client: c}
}

func (p *TemporalPlanner) CreateSchedule(ctx context.Context, req lifecycle.ScheduleRequest) (lifecycle.ScheduleResult, error) {
	options := client.StartWorkflowOptions{
		ID:        "schedule-" + req.LoadID,
		TaskQueue: schedworkflow.TaskQueue,
	}
	run, err := p.client.ExecuteWorkflow(ctx, options, schedworkflow.CreateScheduleWorkflow, req)
	if err != nil {
		return lifecycle.ScheduleResult{}, fmt.Errorf("failed to start schedule workflow: %w", err)
	}
	var result lifecycle.ScheduleResult
	if err := run.Get(ctx, &result); err != nil {
		return lifecycle.ScheduleResult{}, fmt.Errorf("schedule workflow failed: %w", err)
	}
	return result, nil
}

// LocalPlanner runs the same conflict-check/persist steps in process, for
// deployments without a Temporal cluster.
type LocalPlanner struct {
	store store.ScheduleStore
}

func NewLocalPlanner(s store.ScheduleStore) *LocalPlanner {
	return &LocalPlanner{store: s}
}

func (p *LocalPlanner) CreateSchedule(ctx context.Context, req lifecycle.ScheduleRequest) (lifecycle.ScheduleResult, error) {
	existing, err := p.store.ListByDriver(ctx, req.DriverID)
	if err != nil {
		return lifecycle.ScheduleResult{}, fmt.Errorf("failed to list driver schedules: %w", err)
	}
	conflicts := activities.FindConflicts(req, existing)

	sched := store.NewSchedule(req.LoadID, req.DriverID, req.DriverName,
		req.Origin, req.Destination, req.PickupDate, req.DeliveryDate)
	if err := p.store.Create(ctx, sched); err != nil {
		return lifecycle.ScheduleResult{}, fmt.Errorf("failed to save schedule: %w", err)
	}

	return lifecycle.ScheduleResult{
		ScheduleID: sched.ID,
		Conflicts:  conflicts,
	}, nil
}
