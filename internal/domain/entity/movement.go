package entity

import "github.com/shopspring/decimal"

// EntryKind clasificación libre de una entrada. Las constantes son las usadas por la interfaz.
type EntryKind string

const (
	EntryKindPurchase   EntryKind = "Compra"
	EntryKindReturn     EntryKind = "Devolução"
	EntryKindAdjustment EntryKind = "Ajuste"
	EntryKindInventory  EntryKind = "Inventário"
)

// Entry movimiento de entrada (suma al stock).
// Total = Quantity * UnitCost se congela al crear; no cambia si luego cambia el costo del producto.
type Entry struct {
	ID       string
	Date     Date
	Kind     EntryKind
	Quantity decimal.Decimal // > 0
	UnitCost decimal.Decimal // >= 0
	Total    decimal.Decimal
}

// Withdrawal movimiento de salida (resta del stock).
type Withdrawal struct {
	ID        string
	Date      Date
	Quantity  decimal.Decimal // > 0
	UnitPrice decimal.Decimal // >= 0
	Total     decimal.Decimal
}

// NewEntry construye la entrada calculando el total.
func NewEntry(id string, date Date, kind EntryKind, qty, unitCost decimal.Decimal) Entry {
	return Entry{
		ID:       id,
		Date:     date,
		Kind:     kind,
		Quantity: qty,
		UnitCost: unitCost,
		Total:    qty.Mul(unitCost),
	}
}

// NewWithdrawal construye la salida calculando el total.
func NewWithdrawal(id string, date Date, qty, unitPrice decimal.Decimal) Withdrawal {
	return Withdrawal{
		ID:        id,
		Date:      date,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Total:     qty.Mul(unitPrice),
	}
}
