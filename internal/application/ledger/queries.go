package ledger

import (
	"context"

	"github.com/jhoicas/lord-inventory/internal/application/dto"
	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/inventory"
)

// GlobalMetrics KPIs agregados sobre todos los productos.
func (s *Store) GlobalMetrics() dto.GlobalMetricsResponse {
	var out dto.GlobalMetricsResponse
	s.read(func(l *entity.Ledger) {
		out = toGlobalMetricsResponse(inventory.ComputeGlobalMetrics(l))
		out.LastUpdated = l.LastUpdated
	})
	return out
}

// PurchasePlan sugerencias de compra ordenadas por prioridad.
func (s *Store) PurchasePlan() dto.PurchasePlanResponse {
	var plan inventory.PurchasePlan
	s.read(func(l *entity.Ledger) { plan = inventory.SuggestPurchases(l) })
	return dto.PurchasePlanResponse{
		Suggestions:        toSuggestionResponses(plan.Suggestions),
		AlertCount:         plan.AlertCount,
		ReorderCount:       plan.ReorderCount,
		EstimatedTotalCost: plan.EstimatedTotalCost,
	}
}

// Simulate reparte el presupuesto sobre las sugerencias vigentes en orden de prioridad.
// Sin presupuesto usa el configurado por defecto.
func (s *Store) Simulate(in dto.SimulationRequest) (*dto.SimulationResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	budget := s.defaultBudget
	if in.Budget != nil {
		budget = *in.Budget
	}
	if budget.IsNegative() {
		return nil, domain.NewValidationError("budget", "debe ser >= 0")
	}

	var sim inventory.Simulation
	s.read(func(l *entity.Ledger) {
		sim = inventory.Simulate(budget, inventory.SuggestPurchases(l).Suggestions)
	})
	return &dto.SimulationResponse{
		Budget:    sim.Budget,
		Accepted:  toSuggestionResponses(sim.Accepted),
		Spent:     sim.Spent,
		Remaining: sim.Remaining,
	}, nil
}

// Series serie mensual del año (0 = año actual) y barras de stock por producto.
func (s *Store) Series(year int) dto.SeriesResponse {
	if year <= 0 {
		year = s.now().Year()
	}
	out := dto.SeriesResponse{Year: year, Stock: []dto.StockLevelResponse{}}
	s.read(func(l *entity.Ledger) {
		for _, m := range inventory.MonthlySeries(l, year) {
			out.Monthly = append(out.Monthly, dto.MonthlyBalanceResponse{
				Month:      int(m.Month),
				Label:      m.Label,
				Net:        m.Net,
				Cumulative: m.Cumulative,
			})
		}
		for _, p := range l.Products {
			out.Stock = append(out.Stock, dto.StockLevelResponse{
				ProductID:    p.ID,
				ProductName:  p.Name,
				CurrentStock: inventory.CurrentStock(p),
				Min:          p.Min,
				Des:          p.Des,
			})
		}
	})
	return out
}

// StorageUsage ocupación del slot del repositorio.
func (s *Store) StorageUsage(ctx context.Context) (*dto.StorageUsageResponse, error) {
	u, err := s.repo.Usage(ctx)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "usage", Err: err}
	}
	out := &dto.StorageUsageResponse{
		Driver:     s.storageName,
		UsedBytes:  u.UsedBytes,
		QuotaBytes: u.QuotaBytes,
		Percent:    u.Percent(),
	}
	s.read(func(l *entity.Ledger) { out.LastUpdated = l.LastUpdated })
	return out, nil
}
