package dto

import "github.com/shopspring/decimal"

// SuggestionResponse sugerencia de compra de un producto.
type SuggestionResponse struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	Min           decimal.Decimal `json:"min"`
	Des           decimal.Decimal `json:"des"`
	Missing       decimal.Decimal `json:"missing"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Priority      string          `json:"priority"`
	Action        string          `json:"action"`
}

// PurchasePlanResponse sugerencias ordenadas por prioridad y agregados.
type PurchasePlanResponse struct {
	Suggestions        []SuggestionResponse `json:"suggestions"`
	AlertCount         int                  `json:"alert_count"`
	ReorderCount       int                  `json:"reorder_count"`
	EstimatedTotalCost decimal.Decimal      `json:"estimated_total_cost"`
}

// SimulationRequest presupuesto de la simulación (vacío = presupuesto por defecto).
type SimulationRequest struct {
	Budget *decimal.Decimal `query:"budget" validate:"omitempty,gte=0"`
}

// SimulationResponse ítems que caben en el presupuesto.
type SimulationResponse struct {
	Budget    decimal.Decimal      `json:"budget"`
	Accepted  []SuggestionResponse `json:"accepted"`
	Spent     decimal.Decimal      `json:"spent"`
	Remaining decimal.Decimal      `json:"remaining"`
}
