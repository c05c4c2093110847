package portal

import (
	"testing"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

func TestVisible(t *testing.T) {
	tests := []struct {
		name   string
		portal contracts.Portal
		load   contracts.Load
		want   bool
	}{
		{"vendor sees shipper load", contracts.PortalVendor,
			contracts.Load{ShipperID: "shipper-1", Status: contracts.StatusAvailable}, true},
		{"vendor hides load without shipper", contracts.PortalVendor,
			contracts.Load{Status: contracts.StatusAvailable}, false},
		{"vendor hides cancelled", contracts.PortalVendor,
			contracts.Load{ShipperID: "shipper-1", Status: contracts.StatusCancelled}, false},

		{"broker sees own load", contracts.PortalBroker,
			contracts.Load{BrokerID: "broker-1", Status: contracts.StatusDraft}, true},
		{"broker hides brokerless load", contracts.PortalBroker,
			contracts.Load{Status: contracts.StatusAvailable}, false},
		{"broker hides cancelled", contracts.PortalBroker,
			contracts.Load{BrokerID: "broker-1", Status: contracts.StatusCancelled}, false},

		{"dispatch sees assigned load", contracts.PortalDispatch,
			contracts.Load{DispatcherID: "dispatcher-1", Status: contracts.StatusAssigned}, true},
		{"dispatch sees unassigned available", contracts.PortalDispatch,
			contracts.Load{Status: contracts.StatusAvailable}, true},
		{"dispatch hides unassigned draft", contracts.PortalDispatch,
			contracts.Load{Status: contracts.StatusDraft}, false},
		{"dispatch hides cancelled even when assigned", contracts.PortalDispatch,
			contracts.Load{DispatcherID: "dispatcher-1", Status: contracts.StatusCancelled}, false},

		{"carrier sees available", contracts.PortalCarrier,
			contracts.Load{Status: contracts.StatusAvailable}, true},
		{"carrier sees broadcasted", contracts.PortalCarrier,
			contracts.Load{Status: contracts.StatusBroadcasted}, true},
		{"carrier hides in transit", contracts.PortalCarrier,
			contracts.Load{Status: contracts.StatusInTransit}, false},

		{"driver sees own load in transit", contracts.PortalDriver,
			contracts.Load{DriverID: "driver-1", Status: contracts.StatusInTransit}, true},
		{"driver sees available", contracts.PortalDriver,
			contracts.Load{Status: contracts.StatusAvailable}, true},
		{"driver hides unowned order sent", contracts.PortalDriver,
			contracts.Load{Status: contracts.StatusOrderSent}, false},

		{"general sees everything", contracts.PortalGeneral,
			contracts.Load{Status: contracts.StatusCancelled}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.portal, tt.load); got != tt.want {
				t.Errorf("Visible(%s, %+v) = %v, want %v", tt.portal, tt.load, got, tt.want)
			}
		})
	}
}

func TestApplySecondaryFilters(t *testing.T) {
	loads := []contracts.Load{
		{ID: "FF-ATL-MIA-V-00001", Status: contracts.StatusAvailable, Equipment: "Van",
			Origin: "Atlanta, GA", Destination: "Miami, FL", BrokerName: "Southeast Freight"},
		{ID: "FF-ATL-MIA-R-00002", Status: contracts.StatusAvailable, Equipment: "Reefer",
			Origin: "Atlanta, GA", Destination: "Miami, FL"},
		{ID: "FF-DAL-CHI-V-00003", Status: contracts.StatusBroadcasted, Equipment: "Van",
			Origin: "Dallas, TX", Destination: "Chicago, IL"},
	}

	t.Run("status", func(t *testing.T) {
		got := Apply(loads, contracts.PortalCarrier, contracts.LoadFilters{
			Status: contracts.StatusBroadcasted,
		})
		if len(got) != 1 || got[0].ID != "FF-DAL-CHI-V-00003" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("equipment", func(t *testing.T) {
		got := Apply(loads, contracts.PortalCarrier, contracts.LoadFilters{Equipment: "Van"})
		if len(got) != 2 {
			t.Errorf("got %d loads, want 2", len(got))
		}
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		got := Apply(loads, contracts.PortalCarrier, contracts.LoadFilters{Search: "miami"})
		if len(got) != 2 {
			t.Errorf("got %d loads, want 2", len(got))
		}
	})

	t.Run("search by broker name", func(t *testing.T) {
		got := Apply(loads, contracts.PortalCarrier, contracts.LoadFilters{Search: "southeast"})
		if len(got) != 1 || got[0].ID != "FF-ATL-MIA-V-00001" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("limit", func(t *testing.T) {
		got := Apply(loads, contracts.PortalCarrier, contracts.LoadFilters{Limit: 1})
		if len(got) != 1 {
			t.Errorf("got %d loads, want 1", len(got))
		}
	})

	t.Run("no match", func(t *testing.T) {
		got := Apply(loads, contracts.PortalCarrier, contracts.LoadFilters{Search: "seattle"})
		if len(got) != 0 {
			t.Errorf("got %+v, want empty", got)
		}
	})
}
