// Package inventory contiene los servicios de dominio puros del ledger:
// métricas de stock y financieras, asesor de compras y series mensuales.
// Nada aquí se cachea; todo se recalcula a partir del estado vivo del ledger.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lord-inventory/internal/domain/entity"
)

// ProductMetrics métricas derivadas de un producto.
type ProductMetrics struct {
	CurrentStock       decimal.Decimal
	TotalEntryQty      decimal.Decimal
	TotalWithdrawalQty decimal.Decimal
	TotalCost          decimal.Decimal // Σ entradas.total
	TotalRevenue       decimal.Decimal // Σ salidas.total
	Profit             decimal.Decimal // TotalRevenue - TotalCost
	AvgEntryCost       decimal.Decimal // costo promedio ponderado de las entradas
	StockValue         decimal.Decimal // CurrentStock * Price
	Status             entity.StockStatus
}

// GlobalMetrics suma elemento a elemento de ProductMetrics sobre todos los productos.
type GlobalMetrics struct {
	TotalStock   decimal.Decimal
	TotalCost    decimal.Decimal
	TotalRevenue decimal.Decimal
	TotalProfit  decimal.Decimal
	StockValue   decimal.Decimal
	ProductCount int
	OKCount      int
	WarningCount int
	DangerCount  int
}

// CurrentStock Σ entradas.quantity - Σ salidas.quantity.
func CurrentStock(p *entity.Product) decimal.Decimal {
	in, out := movementTotals(p)
	return in.Sub(out)
}

func movementTotals(p *entity.Product) (in, out decimal.Decimal) {
	for _, e := range p.Entries {
		in = in.Add(e.Quantity)
	}
	for _, w := range p.Withdrawals {
		out = out.Add(w.Quantity)
	}
	return in, out
}

// Classify aplica los umbrales: danger si stock < min, si no warning si stock < des, si no ok.
// Las comparaciones son estrictas: stock == min con min < des es warning.
func Classify(stock, min, des decimal.Decimal) entity.StockStatus {
	if stock.LessThan(min) {
		return entity.StatusDanger
	}
	if stock.LessThan(des) {
		return entity.StatusWarning
	}
	return entity.StatusOK
}

// runningAverageCost incorpora una entrada al promedio ponderado acumulado.
func runningAverageCost(qtySoFar, avgSoFar, qty, unitCost decimal.Decimal) decimal.Decimal {
	total := qtySoFar.Add(qty)
	if !total.IsPositive() {
		return decimal.Zero
	}
	return qtySoFar.Mul(avgSoFar).Add(qty.Mul(unitCost)).Div(total)
}

// ComputeProductMetrics calcula las métricas de un producto.
func ComputeProductMetrics(p *entity.Product) ProductMetrics {
	in, out := movementTotals(p)
	stock := in.Sub(out)

	var totalCost, totalRevenue, avgCost, cumQty decimal.Decimal
	for _, e := range p.Entries {
		totalCost = totalCost.Add(e.Total)
		avgCost = runningAverageCost(cumQty, avgCost, e.Quantity, e.UnitCost)
		cumQty = cumQty.Add(e.Quantity)
	}
	for _, w := range p.Withdrawals {
		totalRevenue = totalRevenue.Add(w.Total)
	}

	return ProductMetrics{
		CurrentStock:       stock,
		TotalEntryQty:      in,
		TotalWithdrawalQty: out,
		TotalCost:          totalCost,
		TotalRevenue:       totalRevenue,
		Profit:             totalRevenue.Sub(totalCost),
		AvgEntryCost:       avgCost,
		StockValue:         stock.Mul(p.Price),
		Status:             Classify(stock, p.Min, p.Des),
	}
}

// ComputeGlobalMetrics agrega las métricas de todos los productos del ledger.
func ComputeGlobalMetrics(l *entity.Ledger) GlobalMetrics {
	g := GlobalMetrics{ProductCount: len(l.Products)}
	for _, p := range l.Products {
		m := ComputeProductMetrics(p)
		g.TotalStock = g.TotalStock.Add(m.CurrentStock)
		g.TotalCost = g.TotalCost.Add(m.TotalCost)
		g.TotalRevenue = g.TotalRevenue.Add(m.TotalRevenue)
		g.TotalProfit = g.TotalProfit.Add(m.Profit)
		g.StockValue = g.StockValue.Add(m.StockValue)
		switch m.Status {
		case entity.StatusDanger:
			g.DangerCount++
		case entity.StatusWarning:
			g.WarningCount++
		default:
			g.OKCount++
		}
	}
	return g
}
