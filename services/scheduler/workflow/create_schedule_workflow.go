package workflow

import (
	"time"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/lifecycle"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler/store"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// TaskQueue is the queue the scheduling worker polls.
const TaskQueue = "SCHEDULE_TASK_QUEUE"

// CreateScheduleWorkflow creates a driver calendar entry for a load
// assignment: check conflicts, persist, publish. Conflicts are returned to
// the caller as warnings, never as a workflow failure; the load assignment
// has already succeeded by the time this runs.
func CreateScheduleWorkflow(ctx workflow.Context, req lifecycle.ScheduleRequest) (lifecycle.ScheduleResult, error) {
	retrypolicy := &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    time.Minute,
		MaximumAttempts:    100,
	}

	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Second * 10,
		RetryPolicy:         retrypolicy,
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var conflicts []string
	err := workflow.ExecuteActivity(ctx, "ACTIVITY_CheckDriverConflicts", req).Get(ctx, &conflicts)
	if err != nil {
		return lifecycle.ScheduleResult{}, err
	}

	var sched store.Schedule
	err = workflow.ExecuteActivity(ctx, "ACTIVITY_SaveSchedule", req).Get(ctx, &sched)
	if err != nil {
		return lifecycle.ScheduleResult{}, err
	}

	err = workflow.ExecuteActivity(ctx, "ACTIVITY_PublishScheduleEvent", sched).Get(ctx, nil)
	if err != nil {
		return lifecycle.ScheduleResult{}, err
	}

	return lifecycle.ScheduleResult{
		ScheduleID: sched.ID,
		Conflicts:  conflicts,
	}, nil
}
