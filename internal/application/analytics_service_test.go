package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grn-engineering/smartvend/backend/internal/application"
	"github.com/grn-engineering/smartvend/backend/internal/currency"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/infrastructure/repository/memory"
)

func newAnalyticsService() *application.AnalyticsService {
	analytics := memory.NewAnalyticsRepository(memory.SeedDailyRevenue(), memory.SeedPaymentMethods())
	machines := memory.NewMachineRepository(memory.SeedMachines())
	transactions := memory.NewTransactionRepository(memory.SeedTransactions())
	return application.NewAnalyticsService(analytics, machines, transactions, currency.NewFormatter(currency.DefaultINRToJPY))
}

func TestRevenueSeries(t *testing.T) {
	svc := newAnalyticsService()

	series, err := svc.RevenueSeries(context.Background(), domain.CountryIndia)
	require.NoError(t, err)
	require.Len(t, series, 7)
	assert.Equal(t, "2025-07-09", series[0].Date)
	assert.Equal(t, 285600, series[0].Revenue)
	assert.Equal(t, "₹285,600", series[0].RevenueText)
}

func TestPaymentMethods_PerCountry(t *testing.T) {
	svc := newAnalyticsService()
	ctx := context.Background()

	india, err := svc.PaymentMethods(ctx, domain.CountryIndia)
	require.NoError(t, err)
	assert.Equal(t, 45, india["UPI"])

	japan, err := svc.PaymentMethods(ctx, domain.CountryJapan)
	require.NoError(t, err)
	assert.Equal(t, 40, japan["IC Card"])
	assert.NotContains(t, japan, "UPI")
}

func TestTopMachines_SortedAndScoped(t *testing.T) {
	svc := newAnalyticsService()

	top, err := svc.TopMachines(context.Background(), domain.CountryJapan, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)

	// Shinjuku East leads the Japanese fleet
	assert.Equal(t, "VM102", top[0].MachineID)
	assert.GreaterOrEqual(t, top[0].Revenue, top[1].Revenue)
	assert.GreaterOrEqual(t, top[1].Revenue, top[2].Revenue)
}

func TestRecentTransactions_ScopedByMachineCountry(t *testing.T) {
	svc := newAnalyticsService()
	ctx := context.Background()

	india, err := svc.RecentTransactions(ctx, domain.CountryIndia, 0)
	require.NoError(t, err)
	require.Len(t, india, 3)
	for _, tx := range india {
		assert.Equal(t, "INR", tx.Currency)
		assert.NotEmpty(t, tx.MachineName)
	}

	japan, err := svc.RecentTransactions(ctx, domain.CountryJapan, 1)
	require.NoError(t, err)
	require.Len(t, japan, 1)
	assert.Equal(t, "JPY", japan[0].Currency)
}

func TestMaintenanceAlerts_InheritMachineCountry(t *testing.T) {
	alerts := memory.NewAlertRepository(memory.SeedAlerts())
	machines := memory.NewMachineRepository(memory.SeedMachines())
	svc := application.NewMaintenanceService(alerts, machines)
	ctx := context.Background()

	japan, err := svc.Alerts(ctx, domain.CountryJapan)
	require.NoError(t, err)
	require.Len(t, japan, 1)
	assert.Equal(t, "M002", japan[0].ID)
	assert.Equal(t, "Tokyo Station", japan[0].MachineName)

	india, err := svc.Alerts(ctx, domain.CountryIndia)
	require.NoError(t, err)
	assert.Len(t, india, 2)

	summary, err := svc.Summary(ctx, domain.CountryIndia)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.ByStatus[domain.AlertStatusPending])
}

func TestInventory_CatalogueAndRestock(t *testing.T) {
	machines := memory.NewMachineRepository(memory.SeedMachines())
	products := memory.NewProductRepository(memory.SeedProducts())
	svc := application.NewInventoryService(machines, products, currency.NewFormatter(currency.DefaultINRToJPY))
	ctx := context.Background()

	catalogue, err := svc.Catalogue(ctx, domain.CountryJapan)
	require.NoError(t, err)
	require.NotEmpty(t, catalogue)
	// Green Tea lists at ¥120 in Japan, not a converted rupee price
	assert.Equal(t, 120, catalogue[0].Price)
	assert.Equal(t, "¥120", catalogue[0].PriceText)

	restock, err := svc.RestockList(ctx, domain.CountryJapan)
	require.NoError(t, err)
	// VM103 (22), VM108 (0), VM203 (18)
	assert.Len(t, restock, 3)
	for _, m := range restock {
		assert.True(t, m.NeedsRestock)
	}
}
