package entity

import "github.com/shopspring/decimal"

// Product producto del inventario con su historial de movimientos.
// Min dispara "danger", Des dispara "warning"; Cost y Price son los valores por defecto de los movimientos.
type Product struct {
	ID          string
	Name        string
	Min         decimal.Decimal
	Des         decimal.Decimal
	Cost        decimal.Decimal
	Price       decimal.Decimal
	Entries     []Entry
	Withdrawals []Withdrawal
}

// Clone copia profunda (los slices de movimientos no se comparten).
func (p *Product) Clone() *Product {
	c := *p
	c.Entries = append([]Entry(nil), p.Entries...)
	c.Withdrawals = append([]Withdrawal(nil), p.Withdrawals...)
	return &c
}

// EntryIndex posición de la entrada con el id dado, o -1.
func (p *Product) EntryIndex(id string) int {
	for i := range p.Entries {
		if p.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

// WithdrawalIndex posición de la salida con el id dado, o -1.
func (p *Product) WithdrawalIndex(id string) int {
	for i := range p.Withdrawals {
		if p.Withdrawals[i].ID == id {
			return i
		}
	}
	return -1
}
