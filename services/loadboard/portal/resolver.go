package portal

import (
	"time"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

// SnapshotReader is the single read the resolver performs against the sync
// engine's current snapshot.
type SnapshotReader interface {
	GetLoad(id string) (contracts.Load, bool)
}

// Resolver answers what each portal's projection currently shows for a load.
// It backs support/debugging views, so an unknown id is a valid answer, not
// an error.
type Resolver struct {
	snapshot SnapshotReader
}

func NewResolver(snapshot SnapshotReader) *Resolver {
	return &Resolver{snapshot: snapshot}
}

// BrokerView is what broker board operators see for a load.
type BrokerView struct {
	LoadID     string               `json:"loadId"`
	BrokerID   string               `json:"brokerId"`
	BrokerName string               `json:"brokerName,omitempty"`
	ShipperID  string               `json:"shipperId,omitempty"`
	Status     contracts.LoadStatus `json:"status"`
	Rate       float64              `json:"rate"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// DispatchView is what dispatch central operators see for a load.
type DispatchView struct {
	LoadID         string               `json:"loadId"`
	DispatcherID   string               `json:"dispatcherId,omitempty"`
	DispatcherName string               `json:"dispatcherName,omitempty"`
	DriverID       string               `json:"driverId,omitempty"`
	Status         contracts.LoadStatus `json:"status"`
	FlowStage      contracts.FlowStage  `json:"flowStage"`
	AssignedAt     *time.Time           `json:"assignedAt,omitempty"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// VendorView is what shippers/vendors see for a load. Internal statuses are
// translated to the vendor-facing shipment vocabulary.
type VendorView struct {
	LoadID            string    `json:"loadId"`
	ShipperID         string    `json:"shipperId"`
	ShipmentStatus    string    `json:"shipmentStatus"`
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	CurrentLocation   string    `json:"currentLocation,omitempty"`
	EstimatedProgress float64   `json:"estimatedProgress,omitempty"`
	RealTimeETA       string    `json:"realTimeETA,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CarrierView is what carrier board users see for a load.
type CarrierView struct {
	LoadID          string               `json:"loadId"`
	LoadBoardNumber string               `json:"loadBoardNumber"`
	Origin          string               `json:"origin"`
	Destination     string               `json:"destination"`
	Equipment       string               `json:"equipment"`
	Rate            float64              `json:"rate"`
	Status          contracts.LoadStatus `json:"status"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// Relationship is the set of per-portal projections of one load. A view is
// nil when that portal's predicate does not show the load.
type Relationship struct {
	LoadID   string        `json:"loadId"`
	Known    bool          `json:"known"`
	Broker   *BrokerView   `json:"broker,omitempty"`
	Dispatch *DispatchView `json:"dispatch,omitempty"`
	Vendor   *VendorView   `json:"vendor,omitempty"`
	Carrier  *CarrierView  `json:"carrier,omitempty"`
}

// vendorStatus maps internal load statuses to the vendor-facing shipment
// status vocabulary. Anything unmapped reads as pending.
var vendorStatus = map[contracts.LoadStatus]string{
	contracts.StatusAvailable: "pending",
	contracts.StatusAssigned:  "assigned",
	contracts.StatusInTransit: "in-transit",
	contracts.StatusDelivered: "delivered",
	contracts.StatusCancelled: "cancelled",
}

// VendorShipmentStatus translates one internal status.
func VendorShipmentStatus(s contracts.LoadStatus) string {
	if mapped, ok := vendorStatus[s]; ok {
		return mapped
	}
	return "pending"
}

// Resolve reads the canonical snapshot once and projects the four named
// views.
func (r *Resolver) Resolve(loadID string) Relationship {
	load, ok := r.snapshot.GetLoad(loadID)
	if !ok {
		return Relationship{LoadID: loadID}
	}

	rel := Relationship{LoadID: loadID, Known: true}

	if Visible(contracts.PortalBroker, load) {
		rel.Broker = &BrokerView{
			LoadID:     load.ID,
			BrokerID:   load.BrokerID,
			BrokerName: load.BrokerName,
			ShipperID:  load.ShipperID,
			Status:     load.Status,
			Rate:       load.Rate,
			UpdatedAt:  load.UpdatedAt,
		}
	}
	if Visible(contracts.PortalDispatch, load) {
		rel.Dispatch = &DispatchView{
			LoadID:         load.ID,
			DispatcherID:   load.DispatcherID,
			DispatcherName: load.DispatcherName,
			DriverID:       load.DriverID,
			Status:         load.Status,
			FlowStage:      load.FlowStage,
			AssignedAt:     load.AssignedAt,
			UpdatedAt:      load.UpdatedAt,
		}
	}
	if Visible(contracts.PortalVendor, load) {
		rel.Vendor = &VendorView{
			LoadID:            load.ID,
			ShipperID:         load.ShipperID,
			ShipmentStatus:    VendorShipmentStatus(load.Status),
			Origin:            load.Origin,
			Destination:       load.Destination,
			CurrentLocation:   load.CurrentLocation,
			EstimatedProgress: load.EstimatedProgress,
			RealTimeETA:       load.RealTimeETA,
			UpdatedAt:         load.UpdatedAt,
		}
	}
	if Visible(contracts.PortalCarrier, load) {
		rel.Carrier = &CarrierView{
			LoadID:          load.ID,
			LoadBoardNumber: load.LoadBoardNumber,
			Origin:          load.Origin,
			Destination:     load.Destination,
			Equipment:       load.Equipment,
			Rate:            load.Rate,
			Status:          load.Status,
			UpdatedAt:       load.UpdatedAt,
		}
	}
	return rel
}
