package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// AlertRepository implements domain.AlertRepository over an in-memory
// slice
type AlertRepository struct {
	mu     sync.RWMutex
	alerts []*domain.MaintenanceAlert
}

// NewAlertRepository creates an alert repository seeded with the given
// queue
func NewAlertRepository(seed []*domain.MaintenanceAlert) *AlertRepository {
	r := &AlertRepository{alerts: make([]*domain.MaintenanceAlert, 0, len(seed))}
	for _, a := range seed {
		copied := *a
		r.alerts = append(r.alerts, &copied)
	}
	return r
}

// List returns all alerts in seed order
func (r *AlertRepository) List(_ context.Context) ([]*domain.MaintenanceAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.MaintenanceAlert, 0, len(r.alerts))
	for _, a := range r.alerts {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

// ListByStatus returns alerts in the given lifecycle state
func (r *AlertRepository) ListByStatus(_ context.Context, status domain.AlertStatus) ([]*domain.MaintenanceAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.MaintenanceAlert
	for _, a := range r.alerts {
		if a.Status == status {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

// UpdateStatus moves an alert through its lifecycle
func (r *AlertRepository) UpdateStatus(_ context.Context, id string, status domain.AlertStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.alerts {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return fmt.Errorf("alert %s not found", id)
}

// AnalyticsRepository implements domain.AnalyticsRepository over the
// seeded aggregates
type AnalyticsRepository struct {
	daily    []domain.RevenuePoint
	payments map[domain.Country]domain.PaymentSplit
}

// NewAnalyticsRepository creates an analytics repository over the given
// aggregates
func NewAnalyticsRepository(daily []domain.RevenuePoint, payments map[domain.Country]domain.PaymentSplit) *AnalyticsRepository {
	return &AnalyticsRepository{daily: daily, payments: payments}
}

// DailyRevenue returns the trailing revenue series
func (r *AnalyticsRepository) DailyRevenue(_ context.Context) ([]domain.RevenuePoint, error) {
	out := make([]domain.RevenuePoint, len(r.daily))
	copy(out, r.daily)
	return out, nil
}

// PaymentMethods returns the payment split for a country
func (r *AnalyticsRepository) PaymentMethods(_ context.Context, country domain.Country) (domain.PaymentSplit, error) {
	split, ok := r.payments[country]
	if !ok {
		return nil, fmt.Errorf("no payment data for country %s", country)
	}
	out := make(domain.PaymentSplit, len(split))
	for k, v := range split {
		out[k] = v
	}
	return out, nil
}
