package lifecycle

import (
	"testing"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from contracts.LoadStatus
		to   contracts.LoadStatus
		want bool
	}{
		{"draft to available", contracts.StatusDraft, contracts.StatusAvailable, true},
		{"available to assigned", contracts.StatusAvailable, contracts.StatusAssigned, true},
		{"assigned to broadcasted", contracts.StatusAssigned, contracts.StatusBroadcasted, true},
		{"assigned to driver selected", contracts.StatusAssigned, contracts.StatusDriverSelected, true},
		{"broadcasted to order sent", contracts.StatusBroadcasted, contracts.StatusOrderSent, true},
		{"driver selected to order sent", contracts.StatusDriverSelected, contracts.StatusOrderSent, true},
		{"order sent to in transit", contracts.StatusOrderSent, contracts.StatusInTransit, true},
		{"in transit to delivered", contracts.StatusInTransit, contracts.StatusDelivered, true},

		{"draft skips to assigned", contracts.StatusDraft, contracts.StatusAssigned, false},
		{"available skips to in transit", contracts.StatusAvailable, contracts.StatusInTransit, false},
		{"assigned back to available", contracts.StatusAssigned, contracts.StatusAvailable, false},
		{"delivered back to in transit", contracts.StatusDelivered, contracts.StatusInTransit, false},
		{"unknown status goes nowhere", contracts.LoadStatus("Bogus"), contracts.StatusAvailable, false},
		{"self transition", contracts.StatusAvailable, contracts.StatusAvailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCancelReachableFromEveryNonTerminalState(t *testing.T) {
	nonTerminal := []contracts.LoadStatus{
		contracts.StatusDraft,
		contracts.StatusAvailable,
		contracts.StatusAssigned,
		contracts.StatusBroadcasted,
		contracts.StatusDriverSelected,
		contracts.StatusOrderSent,
		contracts.StatusInTransit,
	}
	for _, from := range nonTerminal {
		if !CanTransition(from, contracts.StatusCancelled) {
			t.Errorf("expected %s -> Cancelled to be legal", from)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	all := []contracts.LoadStatus{
		contracts.StatusDraft,
		contracts.StatusAvailable,
		contracts.StatusAssigned,
		contracts.StatusBroadcasted,
		contracts.StatusDriverSelected,
		contracts.StatusOrderSent,
		contracts.StatusInTransit,
		contracts.StatusDelivered,
		contracts.StatusCancelled,
	}
	for _, terminal := range []contracts.LoadStatus{contracts.StatusDelivered, contracts.StatusCancelled} {
		if !terminal.Terminal() {
			t.Errorf("expected %s to report Terminal()", terminal)
		}
		for _, to := range all {
			if CanTransition(terminal, to) {
				t.Errorf("expected %s -> %s to be illegal", terminal, to)
			}
		}
	}
}
