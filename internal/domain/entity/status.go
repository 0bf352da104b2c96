package entity

// StockStatus clasificación derivada del stock actual frente a Min y Des.
type StockStatus string

const (
	StatusOK      StockStatus = "ok"
	StatusWarning StockStatus = "warning"
	StatusDanger  StockStatus = "danger"
)

// Label etiqueta usada en exportaciones.
func (s StockStatus) Label() string {
	switch s {
	case StatusDanger:
		return "ALERTA"
	case StatusWarning:
		return "ATENÇÃO"
	default:
		return "OK"
	}
}

// Priority nivel de urgencia de una sugerencia de compra.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low" // reservado; el asesor actual no lo emite
)

// Rank orden ascendente: high(0) < medium(1) < low(2).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Action acción recomendada para cada nivel.
func (p Priority) Action() string {
	switch p {
	case PriorityHigh:
		return "COMPRAR URGENTE"
	case PriorityMedium:
		return "Planejar compra"
	default:
		return "Repor gradualmente"
	}
}
