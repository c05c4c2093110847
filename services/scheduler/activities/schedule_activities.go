package activities

import (
	"context"
	"fmt"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/pkg/kafka"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/lifecycle"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler/store"
)

// ScheduleActivities hosts the individual workflow steps with their injected
// dependencies.
type ScheduleActivities struct {
	Store    store.ScheduleStore
	Producer kafka.Publisher
}

// ACTIVITY_CheckDriverConflicts returns human-readable conflict descriptions
// for schedules of the same driver overlapping the requested window.
// Conflicts never fail the activity; they travel back as data.
func (a *ScheduleActivities) ACTIVITY_CheckDriverConflicts(ctx context.Context, req lifecycle.ScheduleRequest) ([]string, error) {
	existing, err := a.Store.ListByDriver(ctx, req.DriverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver schedules: %w", err)
	}
	return FindConflicts(req, existing), nil
}

// ACTIVITY_SaveSchedule persists the calendar entry.
func (a *ScheduleActivities) ACTIVITY_SaveSchedule(ctx context.Context, req lifecycle.ScheduleRequest) (store.Schedule, error) {
	sched := store.NewSchedule(req.LoadID, req.DriverID, req.DriverName,
		req.Origin, req.Destination, req.PickupDate, req.DeliveryDate)
	if err := a.Store.Create(ctx, sched); err != nil {
		return store.Schedule{}, fmt.Errorf("failed to save schedule: %w", err)
	}
	return sched, nil
}

// ACTIVITY_PublishScheduleEvent announces the new schedule downstream.
func (a *ScheduleActivities) ACTIVITY_PublishScheduleEvent(ctx context.Context, sched store.Schedule) error {
	if a.Producer == nil {
		return nil
	}
	event := map[string]interface{}{
		"event":   "schedule.created",
		"payload": sched,
	}
	return a.Producer.Publish(ctx, sched.LoadID, event)
}

// FindConflicts compares the requested window against a driver's existing
// schedules. Dates are ISO day strings so lexicographic comparison is date
// comparison; an entry with no dates cannot conflict.
func FindConflicts(req lifecycle.ScheduleRequest, existing []store.Schedule) []string {
	if req.PickupDate == "" || req.DeliveryDate == "" {
		return nil
	}
	var conflicts []string
	for _, sched := range existing {
		if sched.PickupDate == "" || sched.DeliveryDate == "" {
			continue
		}
		if sched.PickupDate <= req.DeliveryDate && req.PickupDate <= sched.DeliveryDate {
			conflicts = append(conflicts, fmt.Sprintf(
				"driver %s already scheduled on load %s (%s to %s)",
				req.DriverID, sched.LoadID, sched.PickupDate, sched.DeliveryDate))
		}
	}
	return conflicts
}
