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

func newFleetService() *application.FleetService {
	machines := memory.NewMachineRepository(memory.SeedMachines())
	alerts := memory.NewAlertRepository(memory.SeedAlerts())
	return application.NewFleetService(machines, alerts, currency.NewFormatter(currency.DefaultINRToJPY))
}

func TestSummary_India(t *testing.T) {
	svc := newFleetService()

	summary, err := svc.Summary(context.Background(), domain.CountryIndia)
	require.NoError(t, err)

	assert.Equal(t, 8, summary.MachineCount)
	assert.Equal(t, 4, summary.ByStatus[domain.MachineStatusActive])
	assert.Equal(t, 2, summary.ByStatus[domain.MachineStatusMaintenance])
	assert.Equal(t, 1, summary.ByStatus[domain.MachineStatusOffline])
	assert.Equal(t, 1, summary.ByStatus[domain.MachineStatusRestocking])

	// VM004 (15) and VM006 (0) are below the restock threshold
	assert.Equal(t, 2, summary.LowStockMachines)

	// pending alerts against Indian machines: M001 (VM002), M003 (VM008)
	assert.Equal(t, 2, summary.PendingAlerts)

	// rupee formatting for the Indian scope
	assert.Equal(t, "₹", summary.TotalRevenueText[:len("₹")])
}

func TestSummary_CountryPartition(t *testing.T) {
	svc := newFleetService()
	ctx := context.Background()

	india, err := svc.Machines(ctx, domain.CountryIndia)
	require.NoError(t, err)
	japan, err := svc.Machines(ctx, domain.CountryJapan)
	require.NoError(t, err)

	assert.Equal(t, len(memory.SeedMachines()), len(india)+len(japan))
	for _, m := range japan {
		assert.Equal(t, domain.CountryJapan, m.Location.Country)
	}
}

func TestSummary_EmptyScope(t *testing.T) {
	machines := memory.NewMachineRepository(nil)
	alerts := memory.NewAlertRepository(nil)
	svc := application.NewFleetService(machines, alerts, currency.NewFormatter(0))

	summary, err := svc.Summary(context.Background(), domain.CountryJapan)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.MachineCount)
	assert.Equal(t, 0.0, summary.AverageUptime)
}
