package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lord-inventory/internal/domain/entity"
)

var monthLabels = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthlyBalance movimiento neto de un mes y saldo acumulado al cierre.
type MonthlyBalance struct {
	Month      time.Month
	Label      string
	Net        decimal.Decimal
	Cumulative decimal.Decimal
}

// MonthlySeries saldo mes a mes del año indicado, sumando todos los productos.
// El acumulado parte del saldo de apertura (movimientos anteriores al año).
// Los movimientos sin fecha no entran en la serie.
func MonthlySeries(l *entity.Ledger, year int) []MonthlyBalance {
	var opening decimal.Decimal
	var net [12]decimal.Decimal

	add := func(d entity.Date, qty decimal.Decimal) {
		switch {
		case d.IsZero() || d.Year() > year:
		case d.Year() < year:
			opening = opening.Add(qty)
		default:
			net[d.Month()-1] = net[d.Month()-1].Add(qty)
		}
	}
	for _, p := range l.Products {
		for _, e := range p.Entries {
			add(e.Date, e.Quantity)
		}
		for _, w := range p.Withdrawals {
			add(w.Date, w.Quantity.Neg())
		}
	}

	series := make([]MonthlyBalance, 12)
	cumulative := opening
	for i := range series {
		cumulative = cumulative.Add(net[i])
		series[i] = MonthlyBalance{
			Month:      time.Month(i + 1),
			Label:      monthLabels[i],
			Net:        net[i],
			Cumulative: cumulative,
		}
	}
	return series
}
