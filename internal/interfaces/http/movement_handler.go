package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lord-inventory/internal/application/dto"
	"github.com/jhoicas/lord-inventory/internal/application/ledger"
	"github.com/jhoicas/lord-inventory/pkg/logger"
)

// MovementHandler entradas y salidas de stock.
type MovementHandler struct {
	store *ledger.Store
	log   *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(store *ledger.Store, log *logger.Logger) *MovementHandler {
	return &MovementHandler{store: store, log: log}
}

// AddEntry godoc
// @Summary      Registrar entrada
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.CreateEntryRequest  true  "Entrada"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/entries [post]
func (h *MovementHandler) AddEntry(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.store.AddEntry(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// AddWithdrawal godoc
// @Summary      Registrar salida
// @Description  Rechaza con 409 si la cantidad supera el stock actual.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.CreateWithdrawalRequest  true  "Salida"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Router       /api/products/{id}/withdrawals [post]
func (h *MovementHandler) AddWithdrawal(c *fiber.Ctx) error {
	var in dto.CreateWithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.store.AddWithdrawal(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// RemoveEntry godoc
// @Summary      Eliminar entrada
// @Tags         movements
// @Param        id       path  string  true  "ID del producto"
// @Param        entryId  path  string  true  "ID de la entrada"
// @Success      204
// @Failure      409  {object}  dto.InsufficientStockResponse
// @Router       /api/products/{id}/entries/{entryId} [delete]
func (h *MovementHandler) RemoveEntry(c *fiber.Ctx) error {
	if err := h.store.RemoveEntry(c.Context(), c.Params("id"), c.Params("entryId")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveWithdrawal godoc
// @Summary      Eliminar salida
// @Tags         movements
// @Param        id            path  string  true  "ID del producto"
// @Param        withdrawalId  path  string  true  "ID de la salida"
// @Success      204
// @Router       /api/products/{id}/withdrawals/{withdrawalId} [delete]
func (h *MovementHandler) RemoveWithdrawal(c *fiber.Ctx) error {
	if err := h.store.RemoveWithdrawal(c.Context(), c.Params("id"), c.Params("withdrawalId")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEntries godoc
// @Summary      Historial de entradas
// @Tags         movements
// @Produce      json
// @Param        month  query  string  false  "YYYY-MM"
// @Success      200    {object}  dto.EntryHistoryResponse
// @Router       /api/entries [get]
func (h *MovementHandler) ListEntries(c *fiber.Ctx) error {
	out, err := h.store.EntryHistory(dto.HistoryRequest{Month: c.Query("month")})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListWithdrawals godoc
// @Summary      Historial de salidas
// @Tags         movements
// @Produce      json
// @Param        month  query  string  false  "YYYY-MM"
// @Success      200    {object}  dto.WithdrawalHistoryResponse
// @Router       /api/withdrawals [get]
func (h *MovementHandler) ListWithdrawals(c *fiber.Ctx) error {
	out, err := h.store.WithdrawalHistory(dto.HistoryRequest{Month: c.Query("month")})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
