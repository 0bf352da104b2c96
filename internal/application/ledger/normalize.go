package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
)

const productIDPrefix = "XC"

// nextProductID devuelve XC### con el mayor sufijo numérico existente + 1.
func nextProductID(l *entity.Ledger) string {
	highest := 0
	for _, p := range l.Products {
		if !strings.HasPrefix(p.ID, productIDPrefix) {
			continue
		}
		if n, err := strconv.Atoi(p.ID[len(productIDPrefix):]); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", productIDPrefix, highest+1)
}

func checkThresholds(minQty, desQty decimal.Decimal) error {
	if desQty.LessThan(minQty) {
		return domain.NewValidationError("des", "debe ser >= min")
	}
	return nil
}

func checkNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.NewValidationError(field, "debe ser >= 0")
	}
	return nil
}

// normalize valida un ledger que entra desde fuera (snapshot cargado o backup restaurado)
// y completa los ids que falten. No revalida el stock no negativo: los backups históricos
// pueden traer entradas borradas sin esa guarda.
func (s *Store) normalize(l *entity.Ledger) error {
	if !entity.IsCompatibleVersion(l.Version) {
		return fmt.Errorf("%w: %q", domain.ErrIncompatibleSnapshot, l.Version)
	}
	if l.Products == nil {
		l.Products = []*entity.Product{}
	}
	seen := make(map[string]bool, len(l.Products))
	for i, p := range l.Products {
		if p == nil {
			return domain.NewValidationError(fmt.Sprintf("products[%d]", i), "producto vacío")
		}
		if p.ID == "" {
			p.ID = nextProductID(l)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: producto %s repetido", domain.ErrDuplicate, p.ID)
		}
		seen[p.ID] = true
		if strings.TrimSpace(p.Name) == "" {
			return domain.NewValidationError(p.ID+".name", "es requerido")
		}
		fields := []struct {
			name string
			v    decimal.Decimal
		}{{"min", p.Min}, {"des", p.Des}, {"cost", p.Cost}, {"price", p.Price}}
		for _, f := range fields {
			if err := checkNonNegative(p.ID+"."+f.name, f.v); err != nil {
				return err
			}
		}
		for j := range p.Entries {
			e := &p.Entries[j]
			if e.ID == "" {
				e.ID = entryIDPrefix + s.newID()
			}
			if !e.Quantity.IsPositive() {
				return domain.NewValidationError(fmt.Sprintf("%s.entries[%d].quantity", p.ID, j), "debe ser > 0")
			}
			if err := checkNonNegative(fmt.Sprintf("%s.entries[%d].unit_cost", p.ID, j), e.UnitCost); err != nil {
				return err
			}
		}
		for j := range p.Withdrawals {
			w := &p.Withdrawals[j]
			if w.ID == "" {
				w.ID = withdrawalIDPrefix + s.newID()
			}
			if !w.Quantity.IsPositive() {
				return domain.NewValidationError(fmt.Sprintf("%s.withdrawals[%d].quantity", p.ID, j), "debe ser > 0")
			}
			if err := checkNonNegative(fmt.Sprintf("%s.withdrawals[%d].unit_price", p.ID, j), w.UnitPrice); err != nil {
				return err
			}
		}
	}
	return nil
}
