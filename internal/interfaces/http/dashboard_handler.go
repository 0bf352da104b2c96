package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lord-inventory/internal/application/dto"
	"github.com/jhoicas/lord-inventory/internal/application/ledger"
	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/pkg/logger"
)

// DashboardHandler KPIs, series y asesor de compras. Todo se recalcula en cada petición.
type DashboardHandler struct {
	store *ledger.Store
	log   *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(store *ledger.Store, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{store: store, log: log}
}

// Metrics godoc
// @Summary      Métricas globales
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.GlobalMetricsResponse
// @Router       /api/metrics [get]
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(h.store.GlobalMetrics())
}

// Series godoc
// @Summary      Serie mensual y niveles de stock
// @Tags         dashboard
// @Produce      json
// @Param        year  query  int  false  "Año (por defecto el actual)"
// @Success      200   {object}  dto.SeriesResponse
// @Router       /api/metrics/series [get]
func (h *DashboardHandler) Series(c *fiber.Ctx) error {
	return c.JSON(h.store.Series(c.QueryInt("year", 0)))
}

// Suggestions godoc
// @Summary      Sugerencias de compra
// @Tags         purchases
// @Produce      json
// @Success      200  {object}  dto.PurchasePlanResponse
// @Router       /api/purchases/suggestions [get]
func (h *DashboardHandler) Suggestions(c *fiber.Ctx) error {
	return c.JSON(h.store.PurchasePlan())
}

// Simulation godoc
// @Summary      Simulación de compra con presupuesto
// @Description  Acepta sugerencias en orden de prioridad hasta la primera que no cabe.
// @Tags         purchases
// @Produce      json
// @Param        budget  query  number  false  "Presupuesto (por defecto 1000)"
// @Success      200     {object}  dto.SimulationResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/purchases/simulation [get]
func (h *DashboardHandler) Simulation(c *fiber.Ctx) error {
	var in dto.SimulationRequest
	if raw := strings.TrimSpace(c.Query("budget")); raw != "" {
		b, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
		if err != nil {
			return writeError(c, h.log, domain.NewValidationError("budget", "número inválido"))
		}
		in.Budget = &b
	}
	out, err := h.store.Simulate(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
