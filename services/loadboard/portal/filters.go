package portal

import (
	"strings"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

// Visible reports whether a load belongs in the given portal's view. These
// predicates are pure and evaluated fresh on every fan-out; visibility is
// computed, never materialized per subscriber.
func Visible(p contracts.Portal, l contracts.Load) bool {
	switch p {
	case contracts.PortalVendor:
		return l.ShipperID != "" && l.Status != contracts.StatusCancelled
	case contracts.PortalBroker:
		return l.BrokerID != "" && l.Status != contracts.StatusCancelled
	case contracts.PortalDispatch:
		return (l.DispatcherID != "" || l.Status == contracts.StatusAvailable) &&
			l.Status != contracts.StatusCancelled
	case contracts.PortalCarrier:
		return l.Status == contracts.StatusAvailable || l.Status == contracts.StatusBroadcasted
	case contracts.PortalDriver:
		return l.DriverID != "" ||
			l.Status == contracts.StatusAvailable || l.Status == contracts.StatusBroadcasted
	default:
		// general portal: no identity filter, only the secondary filters apply
		return true
	}
}

// Apply filters loads through the portal predicate and the optional secondary
// filters (exact status, exact equipment, free-text search, result cap).
func Apply(loads []contracts.Load, p contracts.Portal, f contracts.LoadFilters) []contracts.Load {
	result := make([]contracts.Load, 0, len(loads))
	for _, l := range loads {
		if !Visible(p, l) {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if f.Equipment != "" && l.Equipment != f.Equipment {
			continue
		}
		if f.Search != "" && !matchesSearch(l, f.Search) {
			continue
		}
		result = append(result, l)
		if f.Limit > 0 && len(result) >= f.Limit {
			break
		}
	}
	return result
}

// matchesSearch does a case-insensitive substring match over the fields
// operators actually search by on the phone: load id, route endpoints, and
// the broker/dispatcher names.
func matchesSearch(l contracts.Load, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{
		l.ID,
		l.Origin,
		l.Destination,
		l.BrokerName,
		l.DispatcherName,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
