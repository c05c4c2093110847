package activities

import (
	"context"
	"testing"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/lifecycle"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/scheduler/store"
)

func schedule(loadID, pickup, delivery string) store.Schedule {
	return store.Schedule{
		ID:           "sched-" + loadID,
		LoadID:       loadID,
		DriverID:     "driver-1",
		PickupDate:   pickup,
		DeliveryDate: delivery,
	}
}

func TestFindConflicts(t *testing.T) {
	req := lifecycle.ScheduleRequest{
		LoadID:       "FF-ATL-MIA-V-00001",
		DriverID:     "driver-1",
		PickupDate:   "2026-09-10",
		DeliveryDate: "2026-09-12",
	}

	tests := []struct {
		name     string
		existing []store.Schedule
		want     int
	}{
		{"no schedules", nil, 0},
		{"window before", []store.Schedule{schedule("A", "2026-09-05", "2026-09-09")}, 0},
		{"window after", []store.Schedule{schedule("A", "2026-09-13", "2026-09-15")}, 0},
		{"overlap at start", []store.Schedule{schedule("A", "2026-09-08", "2026-09-10")}, 1},
		{"overlap at end", []store.Schedule{schedule("A", "2026-09-12", "2026-09-14")}, 1},
		{"contained", []store.Schedule{schedule("A", "2026-09-11", "2026-09-11")}, 1},
		{"containing", []store.Schedule{schedule("A", "2026-09-01", "2026-09-30")}, 1},
		{"undated entry skipped", []store.Schedule{schedule("A", "", "")}, 0},
		{"multiple overlaps", []store.Schedule{
			schedule("A", "2026-09-09", "2026-09-11"),
			schedule("B", "2026-09-12", "2026-09-13"),
			schedule("C", "2026-09-01", "2026-09-02"),
		}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflicts(req, tt.existing)
			if len(got) != tt.want {
				t.Errorf("FindConflicts = %v, want %d conflicts", got, tt.want)
			}
		})
	}
}

func TestFindConflictsUndatedRequest(t *testing.T) {
	req := lifecycle.ScheduleRequest{LoadID: "FF-ATL-MIA-V-00001", DriverID: "driver-1"}
	existing := []store.Schedule{schedule("A", "2026-09-01", "2026-09-30")}

	if got := FindConflicts(req, existing); got != nil {
		t.Errorf("undated request conflicted: %v", got)
	}
}

func TestCheckDriverConflictsActivity(t *testing.T) {
	st := store.NewMemoryScheduleStore()
	a := &ScheduleActivities{Store: st}
	ctx := context.Background()

	busy := store.NewSchedule("FF-DAL-CHI-R-00002", "driver-1", "J. Walker",
		"Dallas, TX", "Chicago, IL", "2026-09-10", "2026-09-12")
	if err := st.Create(ctx, busy); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	conflicts, err := a.ACTIVITY_CheckDriverConflicts(ctx, lifecycle.ScheduleRequest{
		LoadID:       "FF-ATL-MIA-V-00001",
		DriverID:     "driver-1",
		PickupDate:   "2026-09-11",
		DeliveryDate: "2026-09-14",
	})
	if err != nil {
		t.Fatalf("activity failed: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %v, want one", conflicts)
	}

	// A different driver's calendar never conflicts.
	conflicts, err = a.ACTIVITY_CheckDriverConflicts(ctx, lifecycle.ScheduleRequest{
		LoadID:       "FF-ATL-MIA-V-00003",
		DriverID:     "driver-2",
		PickupDate:   "2026-09-11",
		DeliveryDate: "2026-09-14",
	})
	if err != nil {
		t.Fatalf("activity failed: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("conflicts = %v, want none", conflicts)
	}
}

func TestSaveScheduleActivity(t *testing.T) {
	st := store.NewMemoryScheduleStore()
	a := &ScheduleActivities{Store: st}
	ctx := context.Background()

	sched, err := a.ACTIVITY_SaveSchedule(ctx, lifecycle.ScheduleRequest{
		LoadID:       "FF-ATL-MIA-V-00001",
		DriverID:     "driver-1",
		DriverName:   "J. Walker",
		Origin:       "Atlanta, GA",
		Destination:  "Miami, FL",
		PickupDate:   "2026-09-10",
		DeliveryDate: "2026-09-12",
	})
	if err != nil {
		t.Fatalf("activity failed: %v", err)
	}
	if sched.ID == "" || sched.Status != "Scheduled" {
		t.Errorf("schedule = %+v", sched)
	}

	saved, err := st.ListByDriver(ctx, "driver-1")
	if err != nil {
		t.Fatalf("ListByDriver failed: %v", err)
	}
	if len(saved) != 1 || saved[0].LoadID != "FF-ATL-MIA-V-00001" {
		t.Errorf("saved = %+v", saved)
	}
}
