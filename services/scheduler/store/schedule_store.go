package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Schedule is one driver calendar entry created when a driver is put on a
// load.
type Schedule struct {
	ID           string    `json:"id"`
	LoadID       string    `json:"loadId"`
	DriverID     string    `json:"driverId"`
	DriverName   string    `json:"driverName,omitempty"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	PickupDate   string    `json:"pickupDate,omitempty"`
	DeliveryDate string    `json:"deliveryDate,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewSchedule stamps a fresh schedule entry.
func NewSchedule(loadID, driverID, driverName, origin, destination, pickupDate, deliveryDate string) Schedule {
	return Schedule{
		ID:           uuid.NewString(),
		LoadID:       loadID,
		DriverID:     driverID,
		DriverName:   driverName,
		Origin:       origin,
		Destination:  destination,
		PickupDate:   pickupDate,
		DeliveryDate: deliveryDate,
		Status:       "Scheduled",
		CreatedAt:    time.Now().UTC(),
	}
}

// ScheduleStore is the storage contract for driver schedules.
type ScheduleStore interface {
	Create(ctx context.Context, s Schedule) error
	ListByDriver(ctx context.Context, driverID string) ([]Schedule, error)
}

// MemoryScheduleStore keeps schedules in process.
type MemoryScheduleStore struct {
	mu        sync.RWMutex
	schedules map[string]Schedule
}

func NewMemoryScheduleStore() *MemoryScheduleStore {
	return &MemoryScheduleStore{schedules: make(map[string]Schedule)}
}

func (s *MemoryScheduleStore) Create(ctx context.Context, sched Schedule) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[sched.ID] = sched
	return nil
}

func (s *MemoryScheduleStore) ListByDriver(ctx context.Context, driverID string) ([]Schedule, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []Schedule
	for _, sched := range s.schedules {
		if sched.DriverID == driverID {
			result = append(result, sched)
		}
	}
	return result, nil
}
