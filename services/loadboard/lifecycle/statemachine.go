package lifecycle

import "github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"

// legalTransitions centralizes every legal status edge in one table, so
// adding or removing a status is a single change here instead of scattered
// field assignments. Cancelled is reachable from every non-terminal state.
//
//	Draft -> Available -> Assigned -> {Broadcasted | Driver Selected}
//	      -> Order Sent -> In Transit -> Delivered
var legalTransitions = map[contracts.LoadStatus][]contracts.LoadStatus{
	contracts.StatusDraft: {
		contracts.StatusAvailable,
		contracts.StatusCancelled,
	},
	contracts.StatusAvailable: {
		contracts.StatusAssigned,
		contracts.StatusCancelled,
	},
	contracts.StatusAssigned: {
		contracts.StatusBroadcasted,
		contracts.StatusDriverSelected,
		contracts.StatusCancelled,
	},
	contracts.StatusBroadcasted: {
		contracts.StatusOrderSent,
		contracts.StatusCancelled,
	},
	contracts.StatusDriverSelected: {
		contracts.StatusOrderSent,
		contracts.StatusCancelled,
	},
	contracts.StatusOrderSent: {
		contracts.StatusInTransit,
		contracts.StatusCancelled,
	},
	contracts.StatusInTransit: {
		contracts.StatusDelivered,
		contracts.StatusCancelled,
	},
	contracts.StatusDelivered: {},
	contracts.StatusCancelled: {},
}

// CanTransition reports whether from -> to is a legal status edge.
func CanTransition(from, to contracts.LoadStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
