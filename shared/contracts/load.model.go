package contracts

import "time"

// LoadStatus is the operational lifecycle status of a load.
type LoadStatus string

const (
	StatusDraft          LoadStatus = "Draft"
	StatusAvailable      LoadStatus = "Available"
	StatusAssigned       LoadStatus = "Assigned"
	StatusBroadcasted    LoadStatus = "Broadcasted"
	StatusDriverSelected LoadStatus = "Driver Selected"
	StatusOrderSent      LoadStatus = "Order Sent"
	StatusInTransit      LoadStatus = "In Transit"
	StatusDelivered      LoadStatus = "Delivered"
	StatusCancelled      LoadStatus = "Cancelled"
)

// Terminal reports whether the status ends the lifecycle. Terminal loads are
// retained for audit, never deleted.
func (s LoadStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// FlowStage tracks which portal administratively owns a load. It is orthogonal
// to LoadStatus.
type FlowStage string

const (
	StageBrokerBoard     FlowStage = "broker_board"
	StageDispatchCentral FlowStage = "dispatch_central"
	StageMainDashboard   FlowStage = "main_dashboard"
	StageCompleted       FlowStage = "completed"
)

// Portal identifies one of the role-specific views over the shared load set.
type Portal string

const (
	PortalVendor   Portal = "vendor"
	PortalBroker   Portal = "broker"
	PortalDispatch Portal = "dispatch"
	PortalCarrier  Portal = "carrier"
	PortalDriver   Portal = "driver"
	PortalGeneral  Portal = "general"
)

// ChangeKind classifies a load mutation for fan-out and event publishing.
type ChangeKind string

const (
	ChangeCreated       ChangeKind = "created"
	ChangeUpdated       ChangeKind = "updated"
	ChangeAssigned      ChangeKind = "assigned"
	ChangeStatusChanged ChangeKind = "status_changed"
	ChangeRemoved       ChangeKind = "removed"
)

// Accessorials is charge configuration inherited through the broker->shipper
// chain. The sync core passes it through untouched.
type Accessorials struct {
	DetentionRatePerHour float64 `json:"detentionRatePerHour"`
	DetentionThresholdHr float64 `json:"detentionThresholdHours"`
	LumperHandling       bool    `json:"lumperHandling"`
	PassThrough          bool    `json:"passThrough"`
}

// PhotoConfig is proof-of-service photo policy for a load. Pass-through only.
type PhotoConfig struct {
	PickupRequired   bool `json:"pickupRequired"`
	DeliveryRequired bool `json:"deliveryRequired"`
	MinPhotos        int  `json:"minPhotos"`
}

// Load is the single source of truth for a freight load. All services share
// this struct; the repository row is canonical and every portal view is
// computed from it, never materialized as a copy.
type Load struct {
	ID              string     `json:"id"`
	LoadBoardNumber string     `json:"loadBoardNumber"`
	Status          LoadStatus `json:"status"`
	FlowStage       FlowStage  `json:"flowStage"`

	BrokerID     string `json:"brokerId,omitempty"`
	DispatcherID string `json:"dispatcherId,omitempty"`
	DriverID     string `json:"driverId,omitempty"`
	ShipperID    string `json:"shipperId,omitempty"`

	BrokerName     string `json:"brokerName,omitempty"`
	DispatcherName string `json:"dispatcherName,omitempty"`
	DriverName     string `json:"driverName,omitempty"`

	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Equipment    string  `json:"equipment"`
	Rate         float64 `json:"rate"`
	Weight       string  `json:"weight,omitempty"`
	Distance     string  `json:"distance,omitempty"`
	PickupDate   string  `json:"pickupDate,omitempty"`
	DeliveryDate string  `json:"deliveryDate,omitempty"`

	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	AssignedAt *time.Time `json:"assignedAt,omitempty"`

	TrackingEnabled   bool    `json:"trackingEnabled"`
	CurrentLocation   string  `json:"currentLocation,omitempty"`
	EstimatedProgress float64 `json:"estimatedProgress,omitempty"`
	RealTimeETA       string  `json:"realTimeETA,omitempty"`

	Accessorials *Accessorials `json:"accessorials,omitempty"`
	PhotoConfig  *PhotoConfig  `json:"photoConfig,omitempty"`
}

// LoadFilters are the optional secondary filters every portal view supports.
type LoadFilters struct {
	Status    LoadStatus
	Equipment string
	Search    string
	Limit     int
}
