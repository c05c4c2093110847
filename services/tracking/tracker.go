package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/lifecycle"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

// driverEvent is the envelope published on the driver events topic by the
// driver mobile app gateway.
type driverEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type locationUpdate struct {
	LoadID   string  `json:"loadId"`
	Location string  `json:"location"`
	Progress float64 `json:"progress"`
	ETA      string  `json:"eta"`
}

type statusUpdate struct {
	LoadID string `json:"loadId"`
	Status string `json:"status"`
}

// LoadMutator is the slice of the lifecycle manager the tracker drives. All
// tracker writes go through the lifecycle so the state machine and fan-out
// are never bypassed.
type LoadMutator interface {
	UpdateLoad(ctx context.Context, loadID string, fields lifecycle.UpdateFields) (contracts.Load, error)
}

// Tracker translates driver telemetry events into load mutations.
type Tracker struct {
	loads LoadMutator
}

func NewTracker(loads LoadMutator) *Tracker {
	return &Tracker{loads: loads}
}

// Handle processes one kafka message from the driver events topic. Unknown
// event types and unknown loads are dropped, not retried: telemetry is a
// stream, the next position fix supersedes this one.
func (t *Tracker) Handle(ctx context.Context, key, value []byte) error {
	var event driverEvent
	if err := json.Unmarshal(value, &event); err != nil {
		log.Printf("tracking: failed to unmarshal driver event: %v", err)
		return nil
	}

	switch event.Event {
	case "driver.location_update":
		return t.handleLocation(ctx, event.Payload)
	case "driver.status_update":
		return t.handleStatus(ctx, event.Payload)
	default:
		log.Printf("tracking: ignoring event type %q", event.Event)
		return nil
	}
}

func (t *Tracker) handleLocation(ctx context.Context, payload json.RawMessage) error {
	var update locationUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		log.Printf("tracking: bad location payload: %v", err)
		return nil
	}
	if update.LoadID == "" {
		return nil
	}

	fields := lifecycle.UpdateFields{CurrentLocation: &update.Location}
	if update.Progress > 0 {
		fields.EstimatedProgress = &update.Progress
	}
	if update.ETA != "" {
		fields.RealTimeETA = &update.ETA
	}

	_, err := t.loads.UpdateLoad(ctx, update.LoadID, fields)
	if errors.Is(err, lifecycle.ErrNotFound) {
		log.Printf("tracking: location update for unknown load %s", update.LoadID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("tracking: location update for %s: %w", update.LoadID, err)
	}
	return nil
}

func (t *Tracker) handleStatus(ctx context.Context, payload json.RawMessage) error {
	var update statusUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		log.Printf("tracking: bad status payload: %v", err)
		return nil
	}
	if update.LoadID == "" || update.Status == "" {
		return nil
	}

	status := contracts.LoadStatus(update.Status)
	_, err := t.loads.UpdateLoad(ctx, update.LoadID, lifecycle.UpdateFields{Status: &status})
	if errors.Is(err, lifecycle.ErrNotFound) {
		log.Printf("tracking: status update for unknown load %s", update.LoadID)
		return nil
	}
	if errors.Is(err, lifecycle.ErrInvalidTransition) {
		// Out-of-order delivery from the driver app; the canonical record
		// already moved past this status. Drop, do not retry.
		log.Printf("tracking: dropping stale status %q for %s: %v", update.Status, update.LoadID, err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("tracking: status update for %s: %w", update.LoadID, err)
	}
	return nil
}
