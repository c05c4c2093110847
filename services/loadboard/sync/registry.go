package sync

import (
	"log"
	"sync"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
	"github.com/google/uuid"
)

// Callback receives the full filtered view for the subscriber's portal on
// every fan-out. Frames are complete snapshots, not incremental diffs.
type Callback func(loads []contracts.Load)

// subscription pairs an opaque handle with a portal and its callback.
type subscription struct {
	handle   string
	portal   contracts.Portal
	callback Callback
}

// registry maps generated handles to subscriptions. Every registered callback
// receives every fan-out event until explicitly unsubscribed.
type registry struct {
	mu   sync.Mutex
	subs map[string]*subscription
}

func newRegistry() *registry {
	return &registry{subs: make(map[string]*subscription)}
}

func (r *registry) add(portal contracts.Portal, cb Callback) *subscription {
	sub := &subscription{
		handle:   uuid.NewString(),
		portal:   portal,
		callback: cb,
	}
	r.mu.Lock()
	r.subs[sub.handle] = sub
	r.mu.Unlock()
	return sub
}

// remove is idempotent: removing an unknown handle is a no-op.
func (r *registry) remove(handle string) {
	r.mu.Lock()
	delete(r.subs, handle)
	r.mu.Unlock()
}

func (r *registry) all() []*subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs := make([]*subscription, 0, len(r.subs))
	for _, sub := range r.subs {
		subs = append(subs, sub)
	}
	return subs
}

// deliver invokes one callback with panic isolation. A subscriber that blows
// up is logged and must not prevent delivery to the others.
func deliver(sub *subscription, loads []contracts.Load) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("subscriber %s (%s portal) panicked during fan-out: %v",
				sub.handle, sub.portal, rec)
		}
	}()
	sub.callback(loads)
}
