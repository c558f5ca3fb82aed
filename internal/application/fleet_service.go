package application

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/grn-engineering/smartvend/backend/internal/currency"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// DashboardSummary aggregates the selected country's fleet for the
// dashboard landing page
type DashboardSummary struct {
	Country           domain.Country               `json:"country"`
	MachineCount      int                          `json:"machine_count"`
	TotalRevenue      int                          `json:"total_revenue"`
	TotalRevenueText  string                       `json:"total_revenue_text"`
	TotalTransactions int                          `json:"total_transactions"`
	AverageUptime     float64                      `json:"average_uptime"`
	ByStatus          map[domain.MachineStatus]int `json:"by_status"`
	PendingAlerts     int                          `json:"pending_alerts"`
	LowStockMachines  int                          `json:"low_stock_machines"`
}

// FleetService builds country-scoped fleet views
type FleetService struct {
	machines domain.MachineRepository
	alerts   domain.AlertRepository
	format   *currency.Formatter
}

// NewFleetService creates a new fleet service
func NewFleetService(machines domain.MachineRepository, alerts domain.AlertRepository, format *currency.Formatter) *FleetService {
	return &FleetService{machines: machines, alerts: alerts, format: format}
}

// lowStockThreshold marks machines that need a restocking visit
const lowStockThreshold = 30

// Machines returns the fleet for a country
func (s *FleetService) Machines(ctx context.Context, country domain.Country) ([]*domain.Machine, error) {
	return s.machines.ListByCountry(ctx, country)
}

// Summary aggregates the country's fleet
func (s *FleetService) Summary(ctx context.Context, country domain.Country) (*DashboardSummary, error) {
	machines, err := s.machines.ListByCountry(ctx, country)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Country:      country,
		MachineCount: len(machines),
		ByStatus:     make(map[domain.MachineStatus]int),
	}

	var uptimeSum float64
	for _, m := range machines {
		summary.TotalRevenue += m.Revenue
		summary.TotalTransactions += m.Transactions
		summary.ByStatus[m.Status]++
		uptimeSum += m.Uptime
		if m.StockLevel < lowStockThreshold {
			summary.LowStockMachines++
		}
	}
	if len(machines) > 0 {
		summary.AverageUptime = uptimeSum / float64(len(machines))
	}
	summary.TotalRevenueText = s.format.Format(summary.TotalRevenue, country)

	pending, err := s.alerts.ListByStatus(ctx, domain.AlertStatusPending)
	if err != nil {
		return nil, err
	}
	machineCountry := make(map[string]domain.Country, len(machines))
	for _, m := range machines {
		machineCountry[m.ID] = m.Location.Country
	}
	for _, a := range pending {
		if machineCountry[a.MachineID] == country {
			summary.PendingAlerts++
		}
	}

	return summary, nil
}

// LiveSnapshot is a point-in-time reading of the display-only
// connection counter
type LiveSnapshot struct {
	Timestamp         time.Time `json:"timestamp"`
	ActiveConnections int       `json:"active_connections"`
}

// LiveCounter periodically refreshes a display-only "active
// connections" figure: the count of active machines in the selected
// country plus simulated jitter. It is presentation glue, not telemetry.
type LiveCounter struct {
	fleet    *FleetService
	country  func() domain.Country
	interval time.Duration

	mu       sync.RWMutex
	snapshot LiveSnapshot
}

// NewLiveCounter creates a live counter refreshing every interval; the
// country func is consulted on each tick so the counter follows the
// selected country.
func NewLiveCounter(fleet *FleetService, country func() domain.Country, interval time.Duration) *LiveCounter {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &LiveCounter{fleet: fleet, country: country, interval: interval}
}

// Start refreshes the counter until ctx is cancelled
func (c *LiveCounter) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.refresh(ctx)
		}
	}
}

func (c *LiveCounter) refresh(ctx context.Context) {
	machines, err := c.fleet.Machines(ctx, c.country())
	if err != nil {
		return
	}
	active := 0
	for _, m := range machines {
		if m.Status == domain.MachineStatusActive {
			active++
		}
	}

	c.mu.Lock()
	c.snapshot = LiveSnapshot{
		Timestamp:         time.Now().UTC(),
		ActiveConnections: active + rand.Intn(5),
	}
	c.mu.Unlock()
}

// Snapshot returns the latest reading
func (c *LiveCounter) Snapshot() LiveSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}
