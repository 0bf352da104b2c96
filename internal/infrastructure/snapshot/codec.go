// Package snapshot serializa el ledger completo y provee los slots de almacenamiento
// locales (archivo JSON y memoria).
//
// El formato en disco conserva las claves del tablero original (entradas, saidas, qty,
// cost_unit, price_unit, data, tipo) para que sus backups puedan restaurarse tal cual.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
)

// number decimal que se serializa como número JSON (no como string).
type number struct {
	decimal.Decimal
}

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

type wireLedger struct {
	Version     string        `json:"version"`
	LastUpdated string        `json:"lastUpdated"`
	Products    []wireProduct `json:"products"`
}

type wireProduct struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Min      number       `json:"min"`
	Des      number       `json:"des"`
	Cost     number       `json:"cost"`
	Price    number       `json:"price"`
	Entradas []wireEntry  `json:"entradas"`
	Saidas   []wireOutput `json:"saidas"`
}

type wireEntry struct {
	ID       string      `json:"id"`
	Data     entity.Date `json:"data"`
	Tipo     string      `json:"tipo"`
	Qty      number      `json:"qty"`
	CostUnit number      `json:"cost_unit"`
	Total    number      `json:"total"`
}

type wireOutput struct {
	ID        string      `json:"id"`
	Data      entity.Date `json:"data"`
	Qty       number      `json:"qty"`
	PriceUnit number      `json:"price_unit"`
	Total     number      `json:"total"`
}

// Encode serializa el ledger al formato de snapshot.
func Encode(l *entity.Ledger) ([]byte, error) {
	w := wireLedger{
		Version:     l.Version,
		LastUpdated: l.LastUpdated.UTC().Format(time.RFC3339Nano),
		Products:    make([]wireProduct, 0, len(l.Products)),
	}
	for _, p := range l.Products {
		wp := wireProduct{
			ID:       p.ID,
			Name:     p.Name,
			Min:      number{p.Min},
			Des:      number{p.Des},
			Cost:     number{p.Cost},
			Price:    number{p.Price},
			Entradas: make([]wireEntry, 0, len(p.Entries)),
			Saidas:   make([]wireOutput, 0, len(p.Withdrawals)),
		}
		for _, e := range p.Entries {
			wp.Entradas = append(wp.Entradas, wireEntry{
				ID:       e.ID,
				Data:     e.Date,
				Tipo:     string(e.Kind),
				Qty:      number{e.Quantity},
				CostUnit: number{e.UnitCost},
				Total:    number{e.Total},
			})
		}
		for _, s := range p.Withdrawals {
			wp.Saidas = append(wp.Saidas, wireOutput{
				ID:        s.ID,
				Data:      s.Date,
				Qty:       number{s.Quantity},
				PriceUnit: number{s.UnitPrice},
				Total:     number{s.Total},
			})
		}
		w.Products = append(w.Products, wp)
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return b, nil
}

// Decode reconstruye el ledger. Falla con ErrCorruptSnapshot si el JSON no es válido
// y con ErrIncompatibleSnapshot si la versión falta o no es soportada.
func Decode(data []byte) (*entity.Ledger, error) {
	var w wireLedger
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	if w.Version == "" {
		return nil, fmt.Errorf("%w: sin versión", domain.ErrIncompatibleSnapshot)
	}
	if !entity.IsCompatibleVersion(w.Version) {
		return nil, fmt.Errorf("%w: versión %q", domain.ErrIncompatibleSnapshot, w.Version)
	}

	l := &entity.Ledger{
		Version:  w.Version,
		Products: make([]*entity.Product, 0, len(w.Products)),
	}
	if t, err := time.Parse(time.RFC3339Nano, w.LastUpdated); err == nil {
		l.LastUpdated = t
	}
	for _, wp := range w.Products {
		p := &entity.Product{
			ID:          wp.ID,
			Name:        wp.Name,
			Min:         wp.Min.Decimal,
			Des:         wp.Des.Decimal,
			Cost:        wp.Cost.Decimal,
			Price:       wp.Price.Decimal,
			Entries:     make([]entity.Entry, 0, len(wp.Entradas)),
			Withdrawals: make([]entity.Withdrawal, 0, len(wp.Saidas)),
		}
		for _, e := range wp.Entradas {
			p.Entries = append(p.Entries, entity.Entry{
				ID:       e.ID,
				Date:     e.Data,
				Kind:     entity.EntryKind(e.Tipo),
				Quantity: e.Qty.Decimal,
				UnitCost: e.CostUnit.Decimal,
				Total:    e.Total.Decimal,
			})
		}
		for _, s := range wp.Saidas {
			p.Withdrawals = append(p.Withdrawals, entity.Withdrawal{
				ID:        s.ID,
				Date:      s.Data,
				Quantity:  s.Qty.Decimal,
				UnitPrice: s.PriceUnit.Decimal,
				Total:     s.Total.Decimal,
			})
		}
		l.Products = append(l.Products, p)
	}
	return l, nil
}

// CheckQuota devuelve ErrQuotaExceeded si el payload supera la cuota (quota <= 0 = sin límite).
func CheckQuota(payload []byte, quota int64) error {
	if quota > 0 && int64(len(payload)) > quota {
		return fmt.Errorf("%w: %d bytes > %d", domain.ErrQuotaExceeded, len(payload), quota)
	}
	return nil
}
