package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lord-inventory/internal/application/dto"
	"github.com/jhoicas/lord-inventory/internal/application/ledger"
	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/infrastructure/snapshot"
)

// seeded tres productos: XC001 danger, XC002 warning, XC003 ok.
func seeded(t *testing.T) *ledger.Store {
	t.Helper()
	ctx := context.Background()
	s := newStore(t, snapshot.NewMemoryRepository(0))

	a := addProduct(t, s, "Xícara Comum Preta", 10, 20, 5, 8)
	b := addProduct(t, s, "Xícara Grande", 10, 20, 2, 4)
	c := addProduct(t, s, "Pires Branco", 1, 2, 1, 3)

	for _, step := range []struct {
		id, date string
		qty      float64
	}{
		{a, "05/01/2026", 15},
		{b, "20/02/2026", 12},
		{c, "15/12/2025", 5},
	} {
		_, err := s.AddEntry(ctx, step.id, dto.CreateEntryRequest{Quantity: d(step.qty), Date: step.date})
		require.NoError(t, err)
	}
	_, err := s.AddWithdrawal(ctx, a, dto.CreateWithdrawalRequest{Quantity: d(6), Date: "10/01/2026"})
	require.NoError(t, err)
	_, err = s.AddWithdrawal(ctx, b, dto.CreateWithdrawalRequest{Quantity: d(1), Date: "25/02/2026"})
	require.NoError(t, err)
	return s
}

func TestStore_GlobalMetrics(t *testing.T) {
	g := seeded(t).GlobalMetrics()

	assertDec(t, 9+11+5, g.TotalStock)
	assertDec(t, 75+24+5, g.TotalCost)
	assertDec(t, 48+4, g.TotalRevenue)
	assertDec(t, 52-104, g.TotalProfit)
	assert.Equal(t, 3, g.ProductCount)
	assert.Equal(t, 1, g.DangerCount)
	assert.Equal(t, 1, g.WarningCount)
	assert.Equal(t, 1, g.OKCount)
}

func TestStore_StockTable_FiltroYBusqueda(t *testing.T) {
	s := seeded(t)

	all, err := s.StockTable(dto.StockFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, "all", all.Filter)
	assert.Equal(t, 3, all.Total)

	danger, err := s.StockTable(dto.StockFilterRequest{Status: "danger"})
	require.NoError(t, err)
	require.Equal(t, 1, danger.Total)
	assert.Equal(t, "XC001", danger.Items[0].ID)
	assert.Equal(t, "ALERTA", danger.Items[0].Metrics.StatusLabel)

	search, err := s.StockTable(dto.StockFilterRequest{Query: "xícara"})
	require.NoError(t, err)
	assert.Equal(t, 2, search.Total)

	byID, err := s.StockTable(dto.StockFilterRequest{Query: "xc003"})
	require.NoError(t, err)
	require.Equal(t, 1, byID.Total)
	assert.Equal(t, "Pires Branco", byID.Items[0].Name)

	_, err = s.StockTable(dto.StockFilterRequest{Status: "roto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_Historial_OrdenYFiltroMensual(t *testing.T) {
	s := seeded(t)

	entries, err := s.EntryHistory(dto.HistoryRequest{})
	require.NoError(t, err)
	require.Equal(t, 3, entries.Total)
	assert.Equal(t, "20/02/2026", entries.Items[0].Date)
	assert.Equal(t, "05/01/2026", entries.Items[1].Date)
	assert.Equal(t, "15/12/2025", entries.Items[2].Date)
	assert.Equal(t, "Pires Branco", entries.Items[2].ProductName)

	jan, err := s.EntryHistory(dto.HistoryRequest{Month: "2026-01"})
	require.NoError(t, err)
	require.Equal(t, 1, jan.Total)
	assert.Equal(t, "XC001", jan.Items[0].ProductID)

	out, err := s.WithdrawalHistory(dto.HistoryRequest{Month: "2026-02"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "XC002", out.Items[0].ProductID)
	assertDec(t, 4, out.Items[0].Total)

	_, err = s.WithdrawalHistory(dto.HistoryRequest{Month: "02/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_PurchasePlanYSimulacion(t *testing.T) {
	s := seeded(t)

	plan := s.PurchasePlan()
	require.Len(t, plan.Suggestions, 2)
	assert.Equal(t, "XC001", plan.Suggestions[0].ProductID)
	assert.Equal(t, "high", plan.Suggestions[0].Priority)
	assert.Equal(t, "XC002", plan.Suggestions[1].ProductID)
	assert.Equal(t, "medium", plan.Suggestions[1].Priority)
	assert.Equal(t, "Planejar compra", plan.Suggestions[1].Action)
	assertDec(t, 55+18, plan.EstimatedTotalCost)

	sim, err := s.Simulate(dto.SimulationRequest{})
	require.NoError(t, err)
	assertDec(t, 1000, sim.Budget)
	assert.Len(t, sim.Accepted, 2)
	assertDec(t, 73, sim.Spent)
	assertDec(t, 927, sim.Remaining)

	tight, err := s.Simulate(dto.SimulationRequest{Budget: dp(50)})
	require.NoError(t, err)
	assert.Empty(t, tight.Accepted, "55 no cabe y no se salta al siguiente")
	assertDec(t, 50, tight.Remaining)

	_, err = s.Simulate(dto.SimulationRequest{Budget: dp(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_Series(t *testing.T) {
	series := seeded(t).Series(2026)

	assert.Equal(t, 2026, series.Year)
	require.Len(t, series.Monthly, 12)
	assertDec(t, 9, series.Monthly[0].Net, "enero: +15 -6")
	assertDec(t, 5+9, series.Monthly[0].Cumulative, "apertura 5 de 2025")
	assertDec(t, 11, series.Monthly[1].Net)
	assertDec(t, 25, series.Monthly[11].Cumulative)
	assert.Len(t, series.Stock, 3)

	assert.Equal(t, fixedNow.Year(), seeded(t).Series(0).Year)
}

func TestStore_StorageUsage(t *testing.T) {
	s := newStore(t, snapshot.NewMemoryRepository(1<<20))
	addProduct(t, s, "A", 1, 2, 1, 2)

	u, err := s.StorageUsage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "memory", u.Driver)
	assert.Positive(t, u.UsedBytes)
	assert.Equal(t, int64(1<<20), u.QuotaBytes)
	assert.Greater(t, u.Percent, 0.0)
}
