package application

import (
	"context"
	"sort"

	"github.com/grn-engineering/smartvend/backend/internal/currency"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// RevenueDay is one day of the selected country's revenue series
type RevenueDay struct {
	Date        string `json:"date"`
	Revenue     int    `json:"revenue"`
	RevenueText string `json:"revenue_text"`
}

// MachineRevenue ranks a machine for the top-performers table
type MachineRevenue struct {
	MachineID   string  `json:"machine_id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Revenue     int     `json:"revenue"`
	RevenueText string  `json:"revenue_text"`
	Uptime      float64 `json:"uptime"`
}

// TransactionView is one vend in the recent-activity feed
type TransactionView struct {
	domain.Transaction
	MachineName string `json:"machine_name"`
	City        string `json:"city"`
}

// AnalyticsService builds country-scoped analytics views
type AnalyticsService struct {
	analytics    domain.AnalyticsRepository
	machines     domain.MachineRepository
	transactions domain.TransactionRepository
	format       *currency.Formatter
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(analytics domain.AnalyticsRepository, machines domain.MachineRepository, transactions domain.TransactionRepository, format *currency.Formatter) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, machines: machines, transactions: transactions, format: format}
}

// RevenueSeries returns the daily revenue series for a country
func (s *AnalyticsService) RevenueSeries(ctx context.Context, country domain.Country) ([]RevenueDay, error) {
	points, err := s.analytics.DailyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RevenueDay, 0, len(points))
	for _, p := range points {
		amount := p.Revenue[country]
		out = append(out, RevenueDay{
			Date:        p.Date,
			Revenue:     amount,
			RevenueText: s.format.Format(amount, country),
		})
	}
	return out, nil
}

// PaymentMethods returns the payment split for a country
func (s *AnalyticsService) PaymentMethods(ctx context.Context, country domain.Country) (domain.PaymentSplit, error) {
	return s.analytics.PaymentMethods(ctx, country)
}

// RecentTransactions returns the latest vends at the country's
// machines, joined with machine identity. Transactions inherit their
// machine's country the same way alerts do.
func (s *AnalyticsService) RecentTransactions(ctx context.Context, country domain.Country, limit int) ([]TransactionView, error) {
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	machines, err := s.machines.ListByCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Machine, len(machines))
	for _, m := range machines {
		byID[m.ID] = m
	}

	var out []TransactionView
	for _, t := range txs {
		m, ok := byID[t.MachineID]
		if !ok {
			continue
		}
		out = append(out, TransactionView{
			Transaction: *t,
			MachineName: m.Name,
			City:        m.Location.City,
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// TopMachines returns the country's best machines by revenue
func (s *AnalyticsService) TopMachines(ctx context.Context, country domain.Country, limit int) ([]MachineRevenue, error) {
	machines, err := s.machines.ListByCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	sort.Slice(machines, func(i, j int) bool {
		return machines[i].Revenue > machines[j].Revenue
	})
	if limit > 0 && limit < len(machines) {
		machines = machines[:limit]
	}

	out := make([]MachineRevenue, 0, len(machines))
	for _, m := range machines {
		out = append(out, MachineRevenue{
			MachineID:   m.ID,
			Name:        m.Name,
			City:        m.Location.City,
			Revenue:     m.Revenue,
			RevenueText: s.format.Format(m.Revenue, country),
			Uptime:      m.Uptime,
		})
	}
	return out, nil
}
