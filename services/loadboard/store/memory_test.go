package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/shared/contracts"
)

func TestMemoryStoreCRUD(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	load := contracts.Load{
		ID:       "FF-ATL-MIA-V-00001",
		Status:   contracts.StatusAvailable,
		Origin:   "Atlanta, GA",
		BrokerID: "brk-1",
	}
	if err := s.Create(ctx, load); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := s.Get(ctx, load.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Origin != "Atlanta, GA" {
		t.Errorf("unexpected origin %q", got.Origin)
	}

	load.Status = contracts.StatusAssigned
	if err := s.Update(ctx, load); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ = s.Get(ctx, load.ID)
	if got.Status != contracts.StatusAssigned {
		t.Errorf("update not applied, status %q", got.Status)
	}

	if err := s.Update(ctx, contracts.Load{ID: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on unknown update, got %v", err)
	}
}

func TestMemoryStoreScans(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	seed := []contracts.Load{
		{ID: "a", BrokerID: "brk-1"},
		{ID: "b", DispatcherID: "disp-1"},
		{ID: "c", BrokerID: "brk-2", DispatcherID: "disp-1"},
		{ID: "d"},
	}
	for _, l := range seed {
		if err := s.Create(ctx, l); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	all, err := s.List(ctx)
	if err != nil || len(all) != 4 {
		t.Fatalf("expected 4 loads, got %d (err %v)", len(all), err)
	}
	brokered, _ := s.ListBrokerLoads(ctx)
	if len(brokered) != 2 {
		t.Errorf("expected 2 broker loads, got %d", len(brokered))
	}
	dispatched, _ := s.ListDispatcherLoads(ctx)
	if len(dispatched) != 2 {
		t.Errorf("expected 2 dispatcher loads, got %d", len(dispatched))
	}
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Create(ctx, contracts.Load{ID: "x"}); err == nil {
		t.Fatal("expected context error")
	}
	if _, err := s.List(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
