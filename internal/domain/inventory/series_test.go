package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/inventory"
)

func TestMonthlySeries_SaldoAcumulado(t *testing.T) {
	p := &entity.Product{ID: "XC001"}
	p.Entries = []entity.Entry{
		entity.NewEntry("e0", entity.NewDate(2025, 12, 20), entity.EntryKindInventory, d(5), d(1)),
		entity.NewEntry("e1", entity.NewDate(2026, 1, 17), entity.EntryKindPurchase, d(20), d(1)),
		entity.NewEntry("e2", entity.NewDate(2026, 3, 2), entity.EntryKindPurchase, d(10), d(1)),
		entity.NewEntry("e3", entity.Date{}, entity.EntryKindPurchase, d(100), d(1)),
	}
	p.Withdrawals = []entity.Withdrawal{
		entity.NewWithdrawal("s1", entity.NewDate(2026, 1, 20), d(8), d(2)),
		entity.NewWithdrawal("s2", entity.NewDate(2027, 1, 1), d(1), d(2)),
	}
	series := inventory.MonthlySeries(&entity.Ledger{Products: []*entity.Product{p}}, 2026)

	require.Len(t, series, 12)
	assert.Equal(t, time.January, series[0].Month)
	assert.Equal(t, "Jan", series[0].Label)
	assert.Equal(t, "12", series[0].Net.String())
	assert.Equal(t, "17", series[0].Cumulative.String(), "apertura 5 + neto 12")
	assert.Equal(t, "17", series[1].Cumulative.String())
	assert.Equal(t, "27", series[2].Cumulative.String())
	assert.Equal(t, "27", series[11].Cumulative.String())
	assert.Equal(t, "Dez", series[11].Label)
}
