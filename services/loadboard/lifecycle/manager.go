// lifecycle/manager.go
package lifecycle

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/pkg/kafka"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/store"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

// Manager validates and applies load lifecycle transitions. Every mutation
// goes through here (or the engine's explicit mutation calls): it stamps
// audit timestamps, enforces the status state machine, notifies the sync
// engine's immediate path, and publishes the kafka event for downstream
// services. A rejected mutation leaves the load untouched.
type Manager struct {
	store    store.LoadStore
	sink     ChangeSink
	producer kafka.Publisher

	planner   SchedulePlanner
	notifier  Notifier
	directory Directory

	now func() time.Time
}

func NewManager(st store.LoadStore, sink ChangeSink, producer kafka.Publisher) *Manager {
	return &Manager{
		store:    st,
		sink:     sink,
		producer: producer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetSchedulePlanner wires the scheduling collaborator used by driver
// assignment.
func (m *Manager) SetSchedulePlanner(p SchedulePlanner) { m.planner = p }

// SetNotifier wires the communication collaborator invoked on status changes.
func (m *Manager) SetNotifier(n Notifier) { m.notifier = n }

// SetDirectory wires actor id resolution.
func (m *Manager) SetDirectory(d Directory) { m.directory = d }

// CreateLoadInput is everything a broker supplies when posting a load.
type CreateLoadInput struct {
	Origin       string
	Destination  string
	Equipment    string
	Rate         float64
	Weight       string
	Distance     string
	PickupDate   string
	DeliveryDate string

	BrokerID   string
	BrokerName string
	ShipperID  string

	// Status selects the initial state: Draft (default) or Available.
	Status contracts.LoadStatus

	TrackingEnabled bool

	Accessorials *contracts.Accessorials
	PhotoConfig  *contracts.PhotoConfig
}

// CreateLoad validates the input, derives the load id and load board number,
// and inserts the record. Initial flow stage is always the broker board.
func (m *Manager) CreateLoad(ctx context.Context, input CreateLoadInput) (contracts.Load, error) {
	var missing []string
	if input.Origin == "" {
		missing = append(missing, "origin")
	}
	if input.Destination == "" {
		missing = append(missing, "destination")
	}
	if input.Equipment == "" {
		missing = append(missing, "equipment")
	}
	if input.Rate <= 0 {
		missing = append(missing, "rate")
	}
	if len(missing) > 0 {
		return contracts.Load{}, fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, ", "))
	}

	status := input.Status
	if status == "" {
		status = contracts.StatusDraft
	}
	if status != contracts.StatusDraft && status != contracts.StatusAvailable {
		return contracts.Load{}, fmt.Errorf("%w: initial status must be Draft or Available, got %q",
			ErrValidation, status)
	}

	now := m.now()
	load := contracts.Load{
		ID:              DeriveLoadID(input.Origin, input.Destination, input.Equipment),
		Status:          status,
		FlowStage:       contracts.StageBrokerBoard,
		BrokerID:        input.BrokerID,
		BrokerName:      input.BrokerName,
		ShipperID:       input.ShipperID,
		Origin:          input.Origin,
		Destination:     input.Destination,
		Equipment:       input.Equipment,
		Rate:            input.Rate,
		Weight:          input.Weight,
		Distance:        input.Distance,
		PickupDate:      input.PickupDate,
		DeliveryDate:    input.DeliveryDate,
		CreatedAt:       now,
		UpdatedAt:       now,
		TrackingEnabled: input.TrackingEnabled,
		Accessorials:    input.Accessorials,
		PhotoConfig:     input.PhotoConfig,
	}
	load.LoadBoardNumber = DeriveLoadBoardNumber(load.ID)

	if input.TrackingEnabled {
		// Telemetry starts at origin; live values arrive from the tracking
		// service once the driver is rolling.
		load.CurrentLocation = input.Origin
		load.EstimatedProgress = 0
		load.RealTimeETA = "calculating"
	}

	if err := m.store.Create(ctx, load); err != nil {
		return contracts.Load{}, fmt.Errorf("failed to store load: %w", err)
	}

	m.sink.Notify(load, contracts.ChangeCreated)
	m.publishEvent("load.created", load)
	return load, nil
}

// AssignToDispatcher hands a load to dispatch central. The first assignment
// stamps AssignedAt; reassignments keep the original stamp.
func (m *Manager) AssignToDispatcher(ctx context.Context, loadID, dispatcherID string) (contracts.Load, error) {
	if dispatcherID == "" {
		return contracts.Load{}, fmt.Errorf("%w: dispatcher id", ErrNotFound)
	}
	load, err := m.store.Get(ctx, loadID)
	if err != nil {
		return contracts.Load{}, err
	}

	dispatcherName := ""
	if m.directory != nil {
		dispatcherName, err = m.directory.DispatcherName(ctx, dispatcherID)
		if err != nil {
			return contracts.Load{}, fmt.Errorf("%w: dispatcher %s", ErrNotFound, dispatcherID)
		}
	}

	oldStatus := load.Status
	if oldStatus != contracts.StatusAssigned && !CanTransition(oldStatus, contracts.StatusAssigned) {
		return contracts.Load{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition,
			oldStatus, contracts.StatusAssigned)
	}

	load.DispatcherID = dispatcherID
	load.DispatcherName = dispatcherName
	load.Status = contracts.StatusAssigned
	load.FlowStage = contracts.StageDispatchCentral
	m.stampAssigned(&load)
	load.UpdatedAt = m.now()

	if err := m.store.Update(ctx, load); err != nil {
		return contracts.Load{}, err
	}

	m.sink.Notify(load, contracts.ChangeAssigned)
	m.publishEvent("load.assigned", load)
	if oldStatus != load.Status {
		m.notifyStatusChanged(load, oldStatus)
	}
	return load, nil
}

// AssignToDriver puts a driver on an Available load. Assignment succeeds even
// when the scheduling collaborator reports conflicts; those come back as
// warnings so dispatch keeps moving while someone resolves the calendar.
func (m *Manager) AssignToDriver(ctx context.Context, loadID, driverID, driverName string) (contracts.Load, []string, error) {
	if driverID == "" {
		return contracts.Load{}, nil, fmt.Errorf("%w: driver id", ErrNotFound)
	}
	load, err := m.store.Get(ctx, loadID)
	if err != nil {
		return contracts.Load{}, nil, err
	}

	if load.Status != contracts.StatusAvailable {
		return contracts.Load{}, nil, fmt.Errorf("%w: driver assignment requires Available, load is %s",
			ErrInvalidTransition, load.Status)
	}

	if driverName == "" && m.directory != nil {
		driverName, err = m.directory.DriverName(ctx, driverID)
		if err != nil {
			return contracts.Load{}, nil, fmt.Errorf("%w: driver %s", ErrNotFound, driverID)
		}
	}

	oldStatus := load.Status
	load.DriverID = driverID
	load.DriverName = driverName
	load.Status = contracts.StatusAssigned
	m.stampAssigned(&load)
	load.UpdatedAt = m.now()

	if err := m.store.Update(ctx, load); err != nil {
		return contracts.Load{}, nil, err
	}

	var warnings []string
	if m.planner != nil {
		result, err := m.planner.CreateSchedule(ctx, ScheduleRequest{
			LoadID:       load.ID,
			DriverID:     driverID,
			DriverName:   driverName,
			Origin:       load.Origin,
			Destination:  load.Destination,
			PickupDate:   load.PickupDate,
			DeliveryDate: load.DeliveryDate,
		})
		if err != nil {
			// Scheduling being down never blocks dispatch.
			log.Printf("lifecycle: schedule creation failed for %s: %v", load.ID, err)
		} else {
			warnings = result.Conflicts
		}
	}

	m.sink.Notify(load, contracts.ChangeAssigned)
	m.publishEvent("load.assigned", load)
	m.notifyStatusChanged(load, oldStatus)
	return load, warnings, nil
}

// UpdateFields is the closed set of fields the generic mutation entry point
// may touch. Load id and load board number are deliberately absent: both are
// immutable for the life of the record.
type UpdateFields struct {
	Status *contracts.LoadStatus

	DispatcherID   *string
	DispatcherName *string
	DriverID       *string
	DriverName     *string

	Rate         *float64
	Equipment    *string
	PickupDate   *string
	DeliveryDate *string

	CurrentLocation   *string
	EstimatedProgress *float64
	RealTimeETA       *string
}

// UpdateLoad applies a partial mutation. A dispatcher change raises an
// "assignment" class notification distinct from a plain update; a status
// change is validated against the state machine and forwarded to the
// communication collaborator with the old/new pair. Validation failures
// reject the whole mutation before anything is written.
func (m *Manager) UpdateLoad(ctx context.Context, loadID string, fields UpdateFields) (contracts.Load, error) {
	load, err := m.store.Get(ctx, loadID)
	if err != nil {
		return contracts.Load{}, err
	}

	oldStatus := load.Status
	statusChanged := false
	if fields.Status != nil && *fields.Status != load.Status {
		if !CanTransition(load.Status, *fields.Status) {
			return contracts.Load{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition,
				load.Status, *fields.Status)
		}
		load.Status = *fields.Status
		statusChanged = true
		if load.Status.Terminal() {
			load.FlowStage = contracts.StageCompleted
		}
	}

	dispatcherChanged := false
	if fields.DispatcherID != nil && *fields.DispatcherID != load.DispatcherID {
		load.DispatcherID = *fields.DispatcherID
		dispatcherChanged = true
		m.stampAssigned(&load)
	}
	if fields.DispatcherName != nil {
		load.DispatcherName = *fields.DispatcherName
	}
	if fields.DriverID != nil {
		load.DriverID = *fields.DriverID
	}
	if fields.DriverName != nil {
		load.DriverName = *fields.DriverName
	}
	if fields.Rate != nil {
		load.Rate = *fields.Rate
	}
	if fields.Equipment != nil {
		load.Equipment = *fields.Equipment
	}
	if fields.PickupDate != nil {
		load.PickupDate = *fields.PickupDate
	}
	if fields.DeliveryDate != nil {
		load.DeliveryDate = *fields.DeliveryDate
	}
	if fields.CurrentLocation != nil {
		load.CurrentLocation = *fields.CurrentLocation
	}
	if fields.EstimatedProgress != nil {
		load.EstimatedProgress = *fields.EstimatedProgress
	}
	if fields.RealTimeETA != nil {
		load.RealTimeETA = *fields.RealTimeETA
	}

	load.UpdatedAt = m.now()

	if err := m.store.Update(ctx, load); err != nil {
		return contracts.Load{}, err
	}

	switch {
	case dispatcherChanged:
		m.sink.Notify(load, contracts.ChangeAssigned)
		m.publishEvent("load.assigned", load)
	case statusChanged:
		m.sink.Notify(load, contracts.ChangeStatusChanged)
		m.publishEvent("load.status_changed", load)
	default:
		m.sink.Notify(load, contracts.ChangeUpdated)
		m.publishEvent("load.updated", load)
	}

	if statusChanged {
		m.notifyStatusChanged(load, oldStatus)
	}
	return load, nil
}

// stampAssigned sets AssignedAt exactly once, on the first assignment.
// Reassignments never move the stamp.
func (m *Manager) stampAssigned(load *contracts.Load) {
	if load.AssignedAt == nil {
		t := m.now()
		load.AssignedAt = &t
	}
}

// notifyStatusChanged forwards the old/new status pair to the communication
// collaborator, fire-and-forget.
func (m *Manager) notifyStatusChanged(load contracts.Load, oldStatus contracts.LoadStatus) {
	if m.notifier == nil {
		return
	}
	newStatus := load.Status
	data := map[string]string{
		"origin":      load.Origin,
		"destination": load.Destination,
		"boardNumber": load.LoadBoardNumber,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := m.notifier.LoadStatusChanged(ctx, load.ID, oldStatus, newStatus, data); err != nil {
			log.Printf("lifecycle: status change notification failed for %s: %v", load.ID, err)
		}
	}()
}

// publishEvent emits the kafka event for downstream services,
// fire-and-forget, keyed by load id for partition ordering.
func (m *Manager) publishEvent(eventType string, load contracts.Load) {
	if m.producer == nil {
		return
	}
	event := map[string]interface{}{
		"event":   eventType,
		"payload": load,
	}
	go func() {
		if err := m.producer.Publish(context.Background(), load.ID, event); err != nil {
			log.Printf("lifecycle: event publish failed for %s: %v", load.ID, err)
		}
	}()
}
