package application

import (
	"context"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// AlertView joins an alert with its machine's identity and site
type AlertView struct {
	domain.MaintenanceAlert
	MachineName string         `json:"machine_name"`
	City        string         `json:"city"`
	Country     domain.Country `json:"country"`
}

// MaintenanceSummary groups the country's alert queue
type MaintenanceSummary struct {
	Total      int                          `json:"total"`
	ByPriority map[domain.AlertPriority]int `json:"by_priority"`
	ByStatus   map[domain.AlertStatus]int   `json:"by_status"`
}

// MaintenanceService builds country-scoped maintenance views. Alerts
// carry no country of their own; they inherit their machine's.
type MaintenanceService struct {
	alerts   domain.AlertRepository
	machines domain.MachineRepository
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(alerts domain.AlertRepository, machines domain.MachineRepository) *MaintenanceService {
	return &MaintenanceService{alerts: alerts, machines: machines}
}

// Alerts returns the alert queue for machines in a country
func (s *MaintenanceService) Alerts(ctx context.Context, country domain.Country) ([]AlertView, error) {
	alerts, err := s.alerts.List(ctx)
	if err != nil {
		return nil, err
	}
	machines, err := s.machines.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Machine, len(machines))
	for _, m := range machines {
		byID[m.ID] = m
	}

	var out []AlertView
	for _, a := range alerts {
		m, ok := byID[a.MachineID]
		if !ok || m.Location.Country != country {
			continue
		}
		out = append(out, AlertView{
			MaintenanceAlert: *a,
			MachineName:      m.Name,
			City:             m.Location.City,
			Country:          m.Location.Country,
		})
	}
	return out, nil
}

// Summary aggregates the country's alert queue
func (s *MaintenanceService) Summary(ctx context.Context, country domain.Country) (*MaintenanceSummary, error) {
	alerts, err := s.Alerts(ctx, country)
	if err != nil {
		return nil, err
	}
	summary := &MaintenanceSummary{
		Total:      len(alerts),
		ByPriority: make(map[domain.AlertPriority]int),
		ByStatus:   make(map[domain.AlertStatus]int),
	}
	for _, a := range alerts {
		summary.ByPriority[a.Priority]++
		summary.ByStatus[a.Status]++
	}
	return summary, nil
}

// UpdateStatus moves an alert through its lifecycle
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id string, status domain.AlertStatus) error {
	return s.alerts.UpdateStatus(ctx, id, status)
}
