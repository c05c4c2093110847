// store/store.go
package store

import (
	"context"
	"errors"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

// ErrNotFound is returned when a load id does not exist in the store.
var ErrNotFound = errors.New("load not found")

// LoadStore defines the interface for the canonical load repository. The
// repository is the single source of truth; every portal view is computed
// from its rows. All writers must go through the lifecycle manager or the
// sync engine's explicit mutation calls so change notification is never
// bypassed.
type LoadStore interface {
	// Get returns the load with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (contracts.Load, error)

	// Create inserts a new load record.
	Create(ctx context.Context, load contracts.Load) error

	// Update replaces the stored record for load.ID, or returns ErrNotFound.
	Update(ctx context.Context, load contracts.Load) error

	// List returns every load. Terminal loads are retained for audit and
	// included here.
	List(ctx context.Context) ([]contracts.Load, error)

	// ListBrokerLoads returns loads with a broker reference, the upstream
	// set behind the broker board.
	ListBrokerLoads(ctx context.Context) ([]contracts.Load, error)

	// ListDispatcherLoads returns loads with a dispatcher reference, the
	// upstream set behind dispatch central.
	ListDispatcherLoads(ctx context.Context) ([]contracts.Load, error)
}
