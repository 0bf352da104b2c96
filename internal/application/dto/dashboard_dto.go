package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GlobalMetricsResponse KPIs del panel.
type GlobalMetricsResponse struct {
	TotalStock   decimal.Decimal `json:"total_stock"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	StockValue   decimal.Decimal `json:"stock_value"` // Σ stock * precio
	ProductCount int             `json:"product_count"`
	OKCount      int             `json:"ok_count"`
	WarningCount int             `json:"warning_count"`
	DangerCount  int             `json:"danger_count"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// MonthlyBalanceResponse punto de la serie mensual.
type MonthlyBalanceResponse struct {
	Month      int             `json:"month"`
	Label      string          `json:"label"`
	Net        decimal.Decimal `json:"net"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// SeriesResponse datos para los gráficos del panel.
type SeriesResponse struct {
	Year    int                      `json:"year"`
	Monthly []MonthlyBalanceResponse `json:"monthly"`
	Stock   []StockLevelResponse     `json:"stock"`
}

// StockLevelResponse barra por producto: stock actual frente a umbrales.
type StockLevelResponse struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	Min          decimal.Decimal `json:"min"`
	Des          decimal.Decimal `json:"des"`
}

// StorageUsageResponse ocupación del slot de almacenamiento.
type StorageUsageResponse struct {
	Driver      string    `json:"driver"`
	UsedBytes   int64     `json:"used_bytes"`
	QuotaBytes  int64     `json:"quota_bytes"`
	Percent     float64   `json:"percent"`
	LastUpdated time.Time `json:"last_updated"`
}
