package store

import (
	"context"
	"sync"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

// MemoryStore is the in-process LoadStore used by single-node deployments and
// tests.
type MemoryStore struct {
	loads map[string]contracts.Load
	mu    sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		loads: make(map[string]contracts.Load),
	}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (contracts.Load, error) {
	select {
	case <-ctx.Done():
		return contracts.Load{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	load, ok := s.loads[id]
	if !ok {
		return contracts.Load{}, ErrNotFound
	}
	return load, nil
}

func (s *MemoryStore) Create(ctx context.Context, load contracts.Load) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads[load.ID] = load
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, load contracts.Load) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.loads[load.ID]; !ok {
		return ErrNotFound
	}
	s.loads[load.ID] = load
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]contracts.Load, error) {
	return s.scan(ctx, func(contracts.Load) bool { return true })
}

func (s *MemoryStore) ListBrokerLoads(ctx context.Context) ([]contracts.Load, error) {
	return s.scan(ctx, func(l contracts.Load) bool { return l.BrokerID != "" })
}

func (s *MemoryStore) ListDispatcherLoads(ctx context.Context) ([]contracts.Load, error) {
	return s.scan(ctx, func(l contracts.Load) bool { return l.DispatcherID != "" })
}

func (s *MemoryStore) scan(ctx context.Context, keep func(contracts.Load) bool) ([]contracts.Load, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []contracts.Load
	for _, load := range s.loads {
		if keep(load) {
			result = append(result, load)
		}
	}
	return result, nil
}
