package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/lord-inventory/internal/application/dto"
	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/inventory"
)

// Prefijos de ids de movimientos: E (entrada) y S (saída).
const (
	entryIDPrefix      = "E"
	withdrawalIDPrefix = "S"
)

func (s *Store) movementDate(raw string) (entity.Date, error) {
	d, err := entity.ParseDate(raw)
	if err != nil {
		return entity.Date{}, domain.NewValidationError("date", err.Error())
	}
	if d.IsZero() {
		d = s.today()
	}
	return d, nil
}

// AddEntry registra una entrada. Sin unit_cost usa el costo actual del producto,
// sin fecha usa hoy y sin tipo usa Compra. El total queda fijo desde aquí.
func (s *Store) AddEntry(ctx context.Context, productID string, in dto.CreateEntryRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	date, err := s.movementDate(in.Date)
	if err != nil {
		return "", err
	}
	kind := entity.EntryKind(strings.TrimSpace(in.Kind))
	if kind == "" {
		kind = entity.EntryKindPurchase
	}

	id := entryIDPrefix + s.newID()
	err = s.mutate(ctx, "add_entry", func(l *entity.Ledger) error {
		p, _ := l.Find(productID)
		if p == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
		}
		cost := p.Cost
		if in.UnitCost != nil {
			cost = *in.UnitCost
		}
		p.Entries = append(p.Entries, entity.NewEntry(id, date, kind, in.Quantity, cost))
		return nil
	})
	if err != nil {
		return "", err
	}
	s.log.Info().Str("product_id", productID).Str("entry_id", id).Str("qty", in.Quantity.String()).Msg("entrada registrada")
	return id, nil
}

// AddWithdrawal registra una salida contra el stock calculado en este momento.
// Si la cantidad supera el stock devuelve *domain.InsufficientStockError y no cambia nada.
func (s *Store) AddWithdrawal(ctx context.Context, productID string, in dto.CreateWithdrawalRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	date, err := s.movementDate(in.Date)
	if err != nil {
		return "", err
	}

	id := withdrawalIDPrefix + s.newID()
	err = s.mutate(ctx, "add_withdrawal", func(l *entity.Ledger) error {
		p, _ := l.Find(productID)
		if p == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
		}
		stock := inventory.CurrentStock(p)
		if in.Quantity.GreaterThan(stock) {
			return &domain.InsufficientStockError{ProductID: productID, Available: stock, Requested: in.Quantity}
		}
		price := p.Price
		if in.UnitPrice != nil {
			price = *in.UnitPrice
		}
		p.Withdrawals = append(p.Withdrawals, entity.NewWithdrawal(id, date, in.Quantity, price))
		return nil
	})
	if err != nil {
		return "", err
	}
	s.log.Info().Str("product_id", productID).Str("withdrawal_id", id).Str("qty", in.Quantity.String()).Msg("salida registrada")
	return id, nil
}

// RemoveEntry elimina una entrada. Producto o entrada ausentes no son error.
// Si quitarla dejaría el stock negativo se rechaza con *domain.InsufficientStockError.
func (s *Store) RemoveEntry(ctx context.Context, productID, entryID string) error {
	return s.mutate(ctx, "remove_entry", func(l *entity.Ledger) error {
		p, _ := l.Find(productID)
		if p == nil {
			return errUnchanged
		}
		i := p.EntryIndex(entryID)
		if i < 0 {
			return errUnchanged
		}
		stock := inventory.CurrentStock(p)
		qty := p.Entries[i].Quantity
		if stock.LessThan(qty) {
			return &domain.InsufficientStockError{ProductID: productID, Available: stock, Requested: qty}
		}
		p.Entries = append(p.Entries[:i], p.Entries[i+1:]...)
		return nil
	})
}

// RemoveWithdrawal elimina una salida; solo puede aumentar el stock. Ausente no es error.
func (s *Store) RemoveWithdrawal(ctx context.Context, productID, withdrawalID string) error {
	return s.mutate(ctx, "remove_withdrawal", func(l *entity.Ledger) error {
		p, _ := l.Find(productID)
		if p == nil {
			return errUnchanged
		}
		i := p.WithdrawalIndex(withdrawalID)
		if i < 0 {
			return errUnchanged
		}
		p.Withdrawals = append(p.Withdrawals[:i], p.Withdrawals[i+1:]...)
		return nil
	})
}

func parseMonth(raw string) (year int, month time.Month, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, false, nil
	}
	t, perr := time.Parse("2006-01", raw)
	if perr != nil {
		return 0, 0, false, domain.NewValidationError("month", "se espera YYYY-MM")
	}
	return t.Year(), t.Month(), true, nil
}

func inMonth(d entity.Date, year int, month time.Month) bool {
	return !d.IsZero() && d.Year() == year && d.Month() == month
}

// newestFirst ordena por fecha descendente; sin fecha al final; empates conservan el orden.
func newestFirst(a, b entity.Date) bool {
	if a.IsZero() != b.IsZero() {
		return !a.IsZero()
	}
	return b.Before(a)
}

// EntryHistory todas las entradas de todos los productos, más recientes primero.
// month (YYYY-MM) opcional.
func (s *Store) EntryHistory(in dto.HistoryRequest) (*dto.EntryHistoryResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	year, month, filter, err := parseMonth(in.Month)
	if err != nil {
		return nil, err
	}
	out := &dto.EntryHistoryResponse{Items: []dto.EntryResponse{}}
	var dates []entity.Date
	s.read(func(l *entity.Ledger) {
		for _, p := range l.Products {
			for _, e := range p.Entries {
				if filter && !inMonth(e.Date, year, month) {
					continue
				}
				r := toEntryResponse(e)
				r.ProductID, r.ProductName = p.ID, p.Name
				out.Items = append(out.Items, r)
				dates = append(dates, e.Date)
			}
		}
	})
	idx := sortedIndex(dates)
	sorted := make([]dto.EntryResponse, len(idx))
	for i, j := range idx {
		sorted[i] = out.Items[j]
	}
	out.Items, out.Total = sorted, len(sorted)
	return out, nil
}

// WithdrawalHistory todas las salidas de todos los productos, más recientes primero.
func (s *Store) WithdrawalHistory(in dto.HistoryRequest) (*dto.WithdrawalHistoryResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	year, month, filter, err := parseMonth(in.Month)
	if err != nil {
		return nil, err
	}
	out := &dto.WithdrawalHistoryResponse{Items: []dto.WithdrawalResponse{}}
	var dates []entity.Date
	s.read(func(l *entity.Ledger) {
		for _, p := range l.Products {
			for _, w := range p.Withdrawals {
				if filter && !inMonth(w.Date, year, month) {
					continue
				}
				r := toWithdrawalResponse(w)
				r.ProductID, r.ProductName = p.ID, p.Name
				out.Items = append(out.Items, r)
				dates = append(dates, w.Date)
			}
		}
	})
	idx := sortedIndex(dates)
	sorted := make([]dto.WithdrawalResponse, len(idx))
	for i, j := range idx {
		sorted[i] = out.Items[j]
	}
	out.Items, out.Total = sorted, len(sorted)
	return out, nil
}

func sortedIndex(dates []entity.Date) []int {
	idx := make([]int, len(dates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return newestFirst(dates[idx[a]], dates[idx[b]]) })
	return idx
}
