package dto

import "github.com/shopspring/decimal"

// CreateEntryRequest entrada de stock. UnitCost vacío = costo actual del producto; Date vacío = hoy.
type CreateEntryRequest struct {
	Kind     string           `json:"kind" validate:"max=60"`
	Quantity decimal.Decimal  `json:"quantity" validate:"gt=0"`
	UnitCost *decimal.Decimal `json:"unit_cost" validate:"omitempty,gte=0"`
	Date     string           `json:"date" validate:"max=10"`
}

// CreateWithdrawalRequest salida de stock. UnitPrice vacío = precio actual del producto.
type CreateWithdrawalRequest struct {
	Quantity  decimal.Decimal  `json:"quantity" validate:"gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty,gte=0"`
	Date      string           `json:"date" validate:"max=10"`
}

// CreatedResponse id del recurso creado.
type CreatedResponse struct {
	ID string `json:"id"`
}

// EntryResponse entrada registrada.
type EntryResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	Date        string          `json:"date"`
	Kind        string          `json:"kind"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Total       decimal.Decimal `json:"total"`
}

// WithdrawalResponse salida registrada.
type WithdrawalResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	Date        string          `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// HistoryRequest filtro por mes (YYYY-MM) del historial de movimientos.
type HistoryRequest struct {
	Month string `query:"month" validate:"omitempty,datetime=2006-01"`
}

// EntryHistoryResponse historial de entradas, más recientes primero.
type EntryHistoryResponse struct {
	Items []EntryResponse `json:"items"`
	Total int             `json:"total"`
}

// WithdrawalHistoryResponse historial de salidas, más recientes primero.
type WithdrawalHistoryResponse struct {
	Items []WithdrawalResponse `json:"items"`
	Total int                  `json:"total"`
}
