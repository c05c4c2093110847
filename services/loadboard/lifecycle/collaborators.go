package lifecycle

import (
	"context"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

// ChangeSink is the sync engine's immediate-notify path. Every mutating
// operation pushes through it before returning, so actors see their own
// writes without waiting for a reconciliation tick.
type ChangeSink interface {
	Notify(load contracts.Load, kind contracts.ChangeKind)
}

// ScheduleRequest carries the assignment details handed to the scheduling
// collaborator when a driver is put on a load.
type ScheduleRequest struct {
	LoadID       string `json:"loadId"`
	DriverID     string `json:"driverId"`
	DriverName   string `json:"driverName,omitempty"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	PickupDate   string `json:"pickupDate,omitempty"`
	DeliveryDate string `json:"deliveryDate,omitempty"`
}

// ScheduleResult reports the created schedule entry. Conflicts are non-fatal:
// the assignment already succeeded by the time they are surfaced.
type ScheduleResult struct {
	ScheduleID string   `json:"scheduleId"`
	Conflicts  []string `json:"conflicts,omitempty"`
}

// SchedulePlanner is the external scheduling collaborator. A failing call is
// logged and never rolls back the load mutation.
type SchedulePlanner interface {
	CreateSchedule(ctx context.Context, req ScheduleRequest) (ScheduleResult, error)
}

// Notifier is the communication collaborator contract. All calls are
// fire-and-forget from the load mutation's perspective; failures are logged
// only.
type Notifier interface {
	LoadStatusChanged(ctx context.Context, loadID string, oldStatus, newStatus contracts.LoadStatus, data map[string]string) error
	DriverEvent(ctx context.Context, loadID, eventType string, data map[string]string) error
	CustomerInquiry(ctx context.Context, customerID, inquiryType string, data map[string]string) error
}

// Directory resolves actor ids to display names. The access/permission
// collaborator supplies the real implementation; a nil directory only checks
// ids for presence.
type Directory interface {
	DispatcherName(ctx context.Context, dispatcherID string) (string, error)
	DriverName(ctx context.Context, driverID string) (string, error)
}
