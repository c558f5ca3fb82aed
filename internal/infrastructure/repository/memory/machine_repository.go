package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// MachineRepository implements domain.MachineRepository over an
// in-memory slice
type MachineRepository struct {
	mu       sync.RWMutex
	machines []*domain.Machine
}

// NewMachineRepository creates a machine repository seeded with the
// given fleet
func NewMachineRepository(seed []*domain.Machine) *MachineRepository {
	r := &MachineRepository{machines: make([]*domain.Machine, 0, len(seed))}
	for _, m := range seed {
		copied := *m
		r.machines = append(r.machines, &copied)
	}
	return r
}

// GetByID retrieves a machine by id
func (r *MachineRepository) GetByID(_ context.Context, id string) (*domain.Machine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.machines {
		if m.ID == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("machine %s not found", id)
}

// List returns the full fleet in seed order
func (r *MachineRepository) List(_ context.Context) ([]*domain.Machine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Machine, 0, len(r.machines))
	for _, m := range r.machines {
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

// ListByCountry returns the machines deployed in the given country
func (r *MachineRepository) ListByCountry(ctx context.Context, country domain.Country) ([]*domain.Machine, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ForCountry(country, all), nil
}

// UpdateStatus changes a machine's operational status
func (r *MachineRepository) UpdateStatus(_ context.Context, id string, status domain.MachineStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.machines {
		if m.ID == id {
			m.Status = status
			return nil
		}
	}
	return fmt.Errorf("machine %s not found", id)
}
