package entity

import "time"

// LedgerVersion etiqueta de esquema de los snapshots que produce esta versión.
const LedgerVersion = "2.0"

// Ledger agregado raíz: productos en orden de inserción.
type Ledger struct {
	Version     string
	LastUpdated time.Time
	Products    []*Product
}

// NewLedger crea un ledger vacío con la versión actual.
func NewLedger(now time.Time) *Ledger {
	return &Ledger{
		Version:     LedgerVersion,
		LastUpdated: now,
		Products:    []*Product{},
	}
}

// IsCompatibleVersion indica si un snapshot con esa versión puede restaurarse.
func IsCompatibleVersion(v string) bool {
	return v == LedgerVersion
}

// Clone copia profunda; las mutaciones se aplican sobre la copia y solo se publican si persisten.
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{
		Version:     l.Version,
		LastUpdated: l.LastUpdated,
		Products:    make([]*Product, 0, len(l.Products)),
	}
	for _, p := range l.Products {
		c.Products = append(c.Products, p.Clone())
	}
	return c
}

// Find devuelve el producto y su posición, o (nil, -1).
func (l *Ledger) Find(id string) (*Product, int) {
	for i, p := range l.Products {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}
