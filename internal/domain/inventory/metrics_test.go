package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/inventory"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// product construye un producto con entradas y salidas de las cantidades dadas.
func product(id string, min, des, cost, price float64, entries, withdrawals []float64) *entity.Product {
	p := &entity.Product{ID: id, Name: "Produto " + id, Min: d(min), Des: d(des), Cost: d(cost), Price: d(price)}
	for i, q := range entries {
		p.Entries = append(p.Entries, entity.NewEntry(id+"-e"+string(rune('a'+i)), entity.NewDate(2026, 1, 17), entity.EntryKindPurchase, d(q), d(cost)))
	}
	for i, q := range withdrawals {
		p.Withdrawals = append(p.Withdrawals, entity.NewWithdrawal(id+"-s"+string(rune('a'+i)), entity.NewDate(2026, 1, 18), d(q), d(price)))
	}
	return p
}

func TestCurrentStock_EntradasMenosSalidas(t *testing.T) {
	p := product("XC001", 10, 20, 5, 8, []float64{15, 5.5}, []float64{6, 0.5})
	assert.True(t, d(14).Equal(inventory.CurrentStock(p)), "15+5.5-6-0.5 = 14")

	empty := &entity.Product{ID: "XC002"}
	assert.True(t, inventory.CurrentStock(empty).IsZero())
}

func TestClassify_Umbrales(t *testing.T) {
	cases := []struct {
		name  string
		stock float64
		want  entity.StockStatus
	}{
		{"bajo el mínimo", 9, entity.StatusDanger},
		{"igual al mínimo es warning", 10, entity.StatusWarning},
		{"entre mínimo y deseado", 15, entity.StatusWarning},
		{"igual al deseado", 20, entity.StatusOK},
		{"sobre el deseado", 30, entity.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.Classify(d(tc.stock), d(10), d(20)))
		})
	}
}

func TestComputeProductMetrics_Financieros(t *testing.T) {
	p := product("XC001", 10, 20, 5, 8, []float64{15}, []float64{6})
	m := inventory.ComputeProductMetrics(p)

	assert.True(t, d(9).Equal(m.CurrentStock))
	assert.True(t, d(75).Equal(m.TotalCost), "15 * 5")
	assert.True(t, d(48).Equal(m.TotalRevenue), "6 * 8")
	assert.True(t, d(-27).Equal(m.Profit))
	assert.True(t, d(72).Equal(m.StockValue), "9 * 8")
	assert.True(t, d(5).Equal(m.AvgEntryCost))
	assert.Equal(t, entity.StatusDanger, m.Status)
}

func TestComputeProductMetrics_TotalCongeladoEnEntrada(t *testing.T) {
	p := product("XC001", 0, 0, 5, 8, []float64{10}, nil)
	p.Cost = d(99)
	m := inventory.ComputeProductMetrics(p)
	assert.True(t, d(50).Equal(m.TotalCost), "el total de la entrada no se recalcula con el costo nuevo")
}

func TestComputeProductMetrics_CostoPromedioPonderado(t *testing.T) {
	p := &entity.Product{ID: "XC001"}
	p.Entries = []entity.Entry{
		entity.NewEntry("e1", entity.Date{}, entity.EntryKindPurchase, d(10), d(10)),
		entity.NewEntry("e2", entity.Date{}, entity.EntryKindPurchase, d(30), d(20)),
	}
	m := inventory.ComputeProductMetrics(p)
	assert.Equal(t, "17.5", m.AvgEntryCost.String())
}

func TestComputeGlobalMetrics_SumaPorProducto(t *testing.T) {
	l := &entity.Ledger{Products: []*entity.Product{
		product("XC001", 10, 20, 5, 8, []float64{15}, []float64{6}),
		product("XC002", 1, 2, 3, 10, []float64{10}, []float64{2}),
		product("XC003", 5, 10, 1, 1, []float64{12}, nil),
	}}
	g := inventory.ComputeGlobalMetrics(l)

	var profit decimal.Decimal
	for _, p := range l.Products {
		m := inventory.ComputeProductMetrics(p)
		profit = profit.Add(m.TotalRevenue.Sub(m.TotalCost))
	}
	assert.True(t, profit.Equal(g.TotalProfit))
	assert.True(t, d(9+8+12).Equal(g.TotalStock))
	assert.True(t, d(75+30+12).Equal(g.TotalCost))
	assert.True(t, d(48+20).Equal(g.TotalRevenue))
	assert.Equal(t, 3, g.ProductCount)
	assert.Equal(t, 1, g.DangerCount)
	assert.Equal(t, 0, g.WarningCount)
	assert.Equal(t, 2, g.OKCount)
}

func TestComputeGlobalMetrics_LedgerVacio(t *testing.T) {
	g := inventory.ComputeGlobalMetrics(entity.NewLedger(entity.NewDate(2026, 1, 1).Time()))
	assert.True(t, g.TotalStock.IsZero())
	assert.True(t, g.TotalProfit.IsZero())
	assert.Equal(t, 0, g.ProductCount)
}
