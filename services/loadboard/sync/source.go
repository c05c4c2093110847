package sync

import (
	"context"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/store"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

// Source is one upstream aggregation query pulled during reconciliation.
// Sources may overlap; the engine merges them by load id.
type Source interface {
	Name() string
	Pull(ctx context.Context) ([]contracts.Load, error)
}

type funcSource struct {
	name string
	pull func(ctx context.Context) ([]contracts.Load, error)
}

func (s funcSource) Name() string { return s.name }

func (s funcSource) Pull(ctx context.Context) ([]contracts.Load, error) {
	return s.pull(ctx)
}

// NewSource wraps a pull function as a named Source.
func NewSource(name string, pull func(ctx context.Context) ([]contracts.Load, error)) Source {
	return funcSource{name: name, pull: pull}
}

// StoreSources builds the default upstream set over the canonical repository:
// the main view scan plus the broker and dispatcher scans. The three overlap
// on purpose; dedup happens in the merge.
func StoreSources(s store.LoadStore) []Source {
	return []Source{
		NewSource("main_view", s.List),
		NewSource("broker_loads", s.ListBrokerLoads),
		NewSource("dispatcher_loads", s.ListDispatcherLoads),
	}
}
