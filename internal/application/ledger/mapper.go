package ledger

import (
	"github.com/jhoicas/lord-inventory/internal/application/dto"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/inventory"
)

func toMetricsResponse(m inventory.ProductMetrics) dto.ProductMetricsResponse {
	return dto.ProductMetricsResponse{
		CurrentStock:       m.CurrentStock,
		TotalEntryQty:      m.TotalEntryQty,
		TotalWithdrawalQty: m.TotalWithdrawalQty,
		TotalCost:          m.TotalCost,
		TotalRevenue:       m.TotalRevenue,
		Profit:             m.Profit,
		AvgEntryCost:       m.AvgEntryCost,
		StockValue:         m.StockValue,
		Status:             string(m.Status),
		StatusLabel:        m.Status.Label(),
	}
}

func toEntryResponse(e entity.Entry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:       e.ID,
		Date:     e.Date.String(),
		Kind:     string(e.Kind),
		Quantity: e.Quantity,
		UnitCost: e.UnitCost,
		Total:    e.Total,
	}
}

func toWithdrawalResponse(w entity.Withdrawal) dto.WithdrawalResponse {
	return dto.WithdrawalResponse{
		ID:        w.ID,
		Date:      w.Date.String(),
		Quantity:  w.Quantity,
		UnitPrice: w.UnitPrice,
		Total:     w.Total,
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	r := dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Min:         p.Min,
		Des:         p.Des,
		Cost:        p.Cost,
		Price:       p.Price,
		Entries:     make([]dto.EntryResponse, 0, len(p.Entries)),
		Withdrawals: make([]dto.WithdrawalResponse, 0, len(p.Withdrawals)),
		Metrics:     toMetricsResponse(inventory.ComputeProductMetrics(p)),
	}
	for _, e := range p.Entries {
		r.Entries = append(r.Entries, toEntryResponse(e))
	}
	for _, w := range p.Withdrawals {
		r.Withdrawals = append(r.Withdrawals, toWithdrawalResponse(w))
	}
	return r
}

func toStockRow(p *entity.Product) dto.StockRowResponse {
	return dto.StockRowResponse{
		ID:      p.ID,
		Name:    p.Name,
		Min:     p.Min,
		Des:     p.Des,
		Cost:    p.Cost,
		Price:   p.Price,
		Metrics: toMetricsResponse(inventory.ComputeProductMetrics(p)),
	}
}

func toGlobalMetricsResponse(g inventory.GlobalMetrics) dto.GlobalMetricsResponse {
	return dto.GlobalMetricsResponse{
		TotalStock:   g.TotalStock,
		TotalCost:    g.TotalCost,
		TotalRevenue: g.TotalRevenue,
		TotalProfit:  g.TotalProfit,
		StockValue:   g.StockValue,
		ProductCount: g.ProductCount,
		OKCount:      g.OKCount,
		WarningCount: g.WarningCount,
		DangerCount:  g.DangerCount,
	}
}

func toSuggestionResponses(in []inventory.Suggestion) []dto.SuggestionResponse {
	out := make([]dto.SuggestionResponse, 0, len(in))
	for _, s := range in {
		out = append(out, dto.SuggestionResponse{
			ProductID:     s.ProductID,
			ProductName:   s.ProductName,
			CurrentStock:  s.CurrentStock,
			Min:           s.Min,
			Des:           s.Des,
			Missing:       s.Missing,
			UnitCost:      s.UnitCost,
			EstimatedCost: s.EstimatedCost,
			Priority:      string(s.Priority),
			Action:        s.Action,
		})
	}
	return out
}
