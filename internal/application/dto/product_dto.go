package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para registrar un producto. ID opcional (se genera XC001, XC002...).
type CreateProductRequest struct {
	ID    string          `json:"id" validate:"omitempty,max=40"`
	Name  string          `json:"name" validate:"required,max=200"`
	Min   decimal.Decimal `json:"min" validate:"gte=0"`
	Des   decimal.Decimal `json:"des" validate:"gte=0"`
	Cost  decimal.Decimal `json:"cost" validate:"gte=0"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
}

// UpdateProductRequest merge superficial: solo se aplican los campos presentes.
// No toca entradas ni salidas.
type UpdateProductRequest struct {
	Name  *string          `json:"name" validate:"omitempty,max=200"`
	Min   *decimal.Decimal `json:"min" validate:"omitempty,gte=0"`
	Des   *decimal.Decimal `json:"des" validate:"omitempty,gte=0"`
	Cost  *decimal.Decimal `json:"cost" validate:"omitempty,gte=0"`
	Price *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
}

// ProductMetricsResponse métricas derivadas de un producto.
type ProductMetricsResponse struct {
	CurrentStock       decimal.Decimal `json:"current_stock"`
	TotalEntryQty      decimal.Decimal `json:"total_entry_qty"`
	TotalWithdrawalQty decimal.Decimal `json:"total_withdrawal_qty"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	Profit             decimal.Decimal `json:"profit"`
	AvgEntryCost       decimal.Decimal `json:"avg_entry_cost"`
	StockValue         decimal.Decimal `json:"stock_value"`
	Status             string          `json:"status"`
	StatusLabel        string          `json:"status_label"`
}

// ProductResponse producto con sus movimientos y métricas.
type ProductResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Min         decimal.Decimal        `json:"min"`
	Des         decimal.Decimal        `json:"des"`
	Cost        decimal.Decimal        `json:"cost"`
	Price       decimal.Decimal        `json:"price"`
	Entries     []EntryResponse        `json:"entries"`
	Withdrawals []WithdrawalResponse   `json:"withdrawals"`
	Metrics     ProductMetricsResponse `json:"metrics"`
}

// StockRowResponse fila de la tabla de control de stock.
type StockRowResponse struct {
	ID      string                 `json:"id"`
	Name    string                 `json:"name"`
	Min     decimal.Decimal        `json:"min"`
	Des     decimal.Decimal        `json:"des"`
	Cost    decimal.Decimal        `json:"cost"`
	Price   decimal.Decimal        `json:"price"`
	Metrics ProductMetricsResponse `json:"metrics"`
}

// StockTableResponse tabla filtrada.
type StockTableResponse struct {
	Items  []StockRowResponse `json:"items"`
	Total  int                `json:"total"`
	Filter string             `json:"filter"`
	Query  string             `json:"q,omitempty"`
}

// StockFilterRequest filtros de la tabla de stock.
type StockFilterRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=all ok warning danger"`
	Query  string `query:"q" validate:"max=200"`
}
