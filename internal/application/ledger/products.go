package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/lord-inventory/internal/application/dto"
	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
)

// AddProduct registra un producto sin movimientos y devuelve su id.
// Si in.ID viene vacío se asigna el siguiente XC###; un id existente es ErrDuplicate.
func (s *Store) AddProduct(ctx context.Context, in dto.CreateProductRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", domain.NewValidationError("name", "es requerido")
	}
	if err := checkThresholds(in.Min, in.Des); err != nil {
		return "", err
	}

	var id string
	err := s.mutate(ctx, "add_product", func(l *entity.Ledger) error {
		id = strings.TrimSpace(in.ID)
		if id == "" {
			id = nextProductID(l)
		} else if p, _ := l.Find(id); p != nil {
			return fmt.Errorf("%w: producto %s", domain.ErrDuplicate, id)
		}
		l.Products = append(l.Products, &entity.Product{
			ID:          id,
			Name:        name,
			Min:         in.Min,
			Des:         in.Des,
			Cost:        in.Cost,
			Price:       in.Price,
			Entries:     []entity.Entry{},
			Withdrawals: []entity.Withdrawal{},
		})
		return nil
	})
	if err != nil {
		return "", err
	}
	s.log.Info().Str("product_id", id).Str("name", name).Msg("producto creado")
	return id, nil
}

// UpdateProduct aplica los campos presentes de in. No toca entradas ni salidas.
// des >= min solo se revisa cuando el cambio incluye min o des.
// Los movimientos ya registrados conservan su total aunque cambien cost o price.
func (s *Store) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	return s.mutate(ctx, "update_product", func(l *entity.Ledger) error {
		p, _ := l.Find(id)
		if p == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.NewValidationError("name", "es requerido")
			}
			p.Name = name
		}
		if in.Min != nil {
			p.Min = *in.Min
		}
		if in.Des != nil {
			p.Des = *in.Des
		}
		if in.Cost != nil {
			p.Cost = *in.Cost
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Min == nil && in.Des == nil {
			return nil
		}
		return checkThresholds(p.Min, p.Des)
	})
}

// DeleteProduct elimina el producto y todos sus movimientos. Un id ausente no es error.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	deleted := false
	err := s.mutate(ctx, "delete_product", func(l *entity.Ledger) error {
		_, i := l.Find(id)
		if i < 0 {
			return errUnchanged
		}
		l.Products = append(l.Products[:i], l.Products[i+1:]...)
		deleted = true
		return nil
	})
	if err == nil && deleted {
		s.log.Info().Str("product_id", id).Msg("producto eliminado")
	}
	return err
}

// GetProduct producto con sus movimientos y métricas.
func (s *Store) GetProduct(id string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	s.read(func(l *entity.Ledger) {
		if p, _ := l.Find(id); p != nil {
			r := toProductResponse(p)
			out = &r
		}
	})
	if out == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return out, nil
}

// ListProducts productos en orden de inserción.
func (s *Store) ListProducts() []dto.ProductResponse {
	var out []dto.ProductResponse
	s.read(func(l *entity.Ledger) {
		out = make([]dto.ProductResponse, 0, len(l.Products))
		for _, p := range l.Products {
			out = append(out, toProductResponse(p))
		}
	})
	return out
}

// StockTable tabla de control filtrada por estado y por texto en nombre o id.
func (s *Store) StockTable(in dto.StockFilterRequest) (*dto.StockTableResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	filter := in.Status
	if filter == "" {
		filter = "all"
	}
	q := strings.ToLower(strings.TrimSpace(in.Query))

	out := &dto.StockTableResponse{Items: []dto.StockRowResponse{}, Filter: filter, Query: in.Query}
	s.read(func(l *entity.Ledger) {
		for _, p := range l.Products {
			row := toStockRow(p)
			if filter != "all" && row.Metrics.Status != filter {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.ID), q) {
				continue
			}
			out.Items = append(out.Items, row)
		}
	})
	out.Total = len(out.Items)
	return out, nil
}
