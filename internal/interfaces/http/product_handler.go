package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lord-inventory/internal/application/dto"
	"github.com/jhoicas/lord-inventory/internal/application/ledger"
	"github.com/jhoicas/lord-inventory/pkg/logger"
)

// ProductHandler CRUD de productos y tabla de control de stock.
type ProductHandler struct {
	store *ledger.Store
	log   *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(store *ledger.Store, log *logger.Logger) *ProductHandler {
	return &ProductHandler{store: store, log: log}
}

// List godoc
// @Summary      Tabla de control de stock
// @Tags         products
// @Produce      json
// @Param        status  query  string  false  "all | ok | warning | danger"
// @Param        q       query  string  false  "Texto a buscar en nombre o id"
// @Success      200     {object}  dto.StockTableResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.store.StockTable(dto.StockFilterRequest{Status: c.Query("status"), Query: c.Query("q")})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.store.AddProduct(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.store.GetProduct(id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Catalog godoc
// @Summary      Catálogo completo: productos con movimientos y métricas
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/catalog [get]
func (h *ProductHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.store.ListProducts())
}

// GetByID godoc
// @Summary      Obtener producto con movimientos y métricas
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.store.GetProduct(c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (merge parcial)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.store.UpdateProduct(c.Context(), id, in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.store.GetProduct(id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto y sus movimientos
// @Description  Idempotente: un id inexistente también responde 204.
// @Tags         products
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      507  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
