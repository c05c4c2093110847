package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/portal"
	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

const (
	// DefaultReconcileInterval is the periodic re-pull-merge-diff cycle
	// against the upstream sources.
	DefaultReconcileInterval = 5 * time.Second
	// DefaultChangeDetectInterval is the faster pass that shortens perceived
	// staleness. It drives the same reconciliation routine, only more often.
	DefaultChangeDetectInterval = 2 * time.Second
)

// Engine owns the materialized "current" snapshot of all loads, exposes
// portal-filtered views over it, and fans changes out to subscribers.
// Mutations arrive two ways: the immediate Notify path called by the
// lifecycle manager, and the periodic reconciliation pass that corrects
// drift against the upstream sources.
type Engine struct {
	sources []Source
	reg     *registry

	reconcileInterval    time.Duration
	changeDetectInterval time.Duration

	mu         sync.RWMutex
	snapshot   map[string]contracts.Load
	serialized []byte

	// fanMu serializes fan-outs so subscribers always observe frames in
	// mutation order.
	fanMu sync.Mutex
}

// NewEngine builds an engine over the given upstream sources with the default
// intervals.
func NewEngine(sources []Source) *Engine {
	return &Engine{
		sources:              sources,
		reg:                  newRegistry(),
		reconcileInterval:    DefaultReconcileInterval,
		changeDetectInterval: DefaultChangeDetectInterval,
		snapshot:             make(map[string]contracts.Load),
	}
}

// SetIntervals overrides the reconciliation timers. Used by tests and by
// deployments that tune staleness bounds.
func (e *Engine) SetIntervals(reconcile, changeDetect time.Duration) {
	e.reconcileInterval = reconcile
	e.changeDetectInterval = changeDetect
}

// Run drives the two reconciliation timers until ctx is cancelled. Each tick
// runs one pass to completion; passes never overlap because both tickers are
// serviced by this single goroutine.
func (e *Engine) Run(ctx context.Context) {
	reconcile := time.NewTicker(e.reconcileInterval)
	defer reconcile.Stop()
	changeDetect := time.NewTicker(e.changeDetectInterval)
	defer changeDetect.Stop()

	// Prime the snapshot so early subscribers see upstream data without
	// waiting for the first tick.
	e.reconcile(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-reconcile.C:
			e.reconcile(ctx)
		case <-changeDetect.C:
			e.reconcile(ctx)
		}
	}
}

// Subscribe registers a callback for a portal and immediately invokes it once
// with the current filtered snapshot, so there is never an empty first frame.
// The returned handle is the only way to cancel delivery.
func (e *Engine) Subscribe(p contracts.Portal, cb Callback) string {
	sub := e.reg.add(p, cb)

	e.fanMu.Lock()
	defer e.fanMu.Unlock()
	deliver(sub, e.filteredView(p))
	return sub.handle
}

// Unsubscribe removes a registration. Unsubscribing an unknown or already
// removed handle is a no-op.
func (e *Engine) Unsubscribe(handle string) {
	e.reg.remove(handle)
}

// GetLoadsForPortal is a synchronous read of the current snapshot through the
// portal predicate and the secondary filters. It never triggers
// reconciliation.
func (e *Engine) GetLoadsForPortal(p contracts.Portal, f contracts.LoadFilters) []contracts.Load {
	e.mu.RLock()
	loads := e.sortedLoadsLocked()
	e.mu.RUnlock()
	return portal.Apply(loads, p, f)
}

// GetLoad returns the snapshot's record for a load id. Implements
// portal.SnapshotReader for the cross-portal resolver.
func (e *Engine) GetLoad(id string) (contracts.Load, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	load, ok := e.snapshot[id]
	return load, ok
}

// Notify is the immediate fan-out path invoked by the lifecycle manager on
// every mutation. It updates the snapshot in place and pushes the full
// filtered view to every subscriber, bypassing the periodic timers so actors
// see their own writes.
func (e *Engine) Notify(load contracts.Load, kind contracts.ChangeKind) {
	e.mu.Lock()
	if kind == contracts.ChangeRemoved {
		delete(e.snapshot, load.ID)
	} else {
		e.snapshot[load.ID] = load
	}
	e.serialized = e.serializeLocked()
	e.mu.Unlock()

	e.fanOut()
}

// AddLoad inserts a load directly into the snapshot. Used when bulk or
// administrative operations bypass the lifecycle manager.
func (e *Engine) AddLoad(load contracts.Load) {
	e.Notify(load, contracts.ChangeCreated)
}

// RemoveLoad drops a load from the snapshot and fans out.
func (e *Engine) RemoveLoad(loadID string) {
	e.Notify(contracts.Load{ID: loadID}, contracts.ChangeRemoved)
}

// UpdateLoadStatus mutates the snapshot record's status (plus any extra
// field mutations) and fans out. Returns false when the load id is not in
// the snapshot.
func (e *Engine) UpdateLoadStatus(loadID string, status contracts.LoadStatus, mutate ...func(*contracts.Load)) bool {
	e.mu.Lock()
	load, ok := e.snapshot[loadID]
	if !ok {
		e.mu.Unlock()
		return false
	}
	load.Status = status
	for _, m := range mutate {
		m(&load)
	}
	load.UpdatedAt = time.Now().UTC()
	e.snapshot[loadID] = load
	e.serialized = e.serializeLocked()
	e.mu.Unlock()

	e.fanOut()
	return true
}

// ForceSynchronization triggers an out-of-band reconciliation pass plus
// fan-out, for manual refresh actions.
func (e *Engine) ForceSynchronization(ctx context.Context) {
	e.reconcile(ctx)
	e.fanOut()
}

// GetRealTimeStats returns per-status counts over the portal's current
// filtered view.
func (e *Engine) GetRealTimeStats(p contracts.Portal) map[contracts.LoadStatus]int {
	stats := make(map[contracts.LoadStatus]int)
	for _, load := range e.GetLoadsForPortal(p, contracts.LoadFilters{}) {
		stats[load.Status]++
	}
	return stats
}

// reconcile pulls every source, merges by id with last-write-wins across
// source order, and replaces the snapshot only when the serialized result
// differs from the previous one. A failing source is logged and skipped; the
// pass continues with the remaining sources.
func (e *Engine) reconcile(ctx context.Context) {
	merged := make(map[string]contracts.Load)
	for _, src := range e.sources {
		loads, err := src.Pull(ctx)
		if err != nil {
			log.Printf("sync: source %s pull failed: %v", src.Name(), err)
			continue
		}
		for _, load := range loads {
			merged[load.ID] = load
		}
	}

	serialized := serialize(merged)

	e.mu.Lock()
	changed := !bytes.Equal(serialized, e.serialized)
	if changed {
		e.snapshot = merged
		e.serialized = serialized
	}
	e.mu.Unlock()

	if changed {
		e.fanOut()
	}
}

// fanOut pushes the current filtered view to every subscriber. Fan-outs are
// serialized so no subscriber can observe frames out of mutation order.
func (e *Engine) fanOut() {
	e.fanMu.Lock()
	defer e.fanMu.Unlock()

	// Filtered views are computed fresh per portal on every fan-out, never
	// cached per subscriber.
	views := make(map[contracts.Portal][]contracts.Load)
	for _, sub := range e.reg.all() {
		view, ok := views[sub.portal]
		if !ok {
			view = e.filteredView(sub.portal)
			views[sub.portal] = view
		}
		deliver(sub, view)
	}
}

func (e *Engine) filteredView(p contracts.Portal) []contracts.Load {
	e.mu.RLock()
	loads := e.sortedLoadsLocked()
	e.mu.RUnlock()
	return portal.Apply(loads, p, contracts.LoadFilters{})
}

func (e *Engine) sortedLoadsLocked() []contracts.Load {
	loads := make([]contracts.Load, 0, len(e.snapshot))
	for _, load := range e.snapshot {
		loads = append(loads, load)
	}
	sort.Slice(loads, func(i, j int) bool { return loads[i].ID < loads[j].ID })
	return loads
}

func (e *Engine) serializeLocked() []byte {
	return serialize(e.snapshot)
}

// serialize renders a stable byte form of the snapshot for change detection.
func serialize(snapshot map[string]contracts.Load) []byte {
	loads := make([]contracts.Load, 0, len(snapshot))
	for _, load := range snapshot {
		loads = append(loads, load)
	}
	sort.Slice(loads, func(i, j int) bool { return loads[i].ID < loads[j].ID })
	b, err := json.Marshal(loads)
	if err != nil {
		// Load contains only marshal-safe field types.
		log.Printf("sync: snapshot serialization failed: %v", err)
		return nil
	}
	return b
}
