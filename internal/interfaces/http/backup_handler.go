package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lord-inventory/internal/application/export"
	"github.com/jhoicas/lord-inventory/internal/application/ledger"
	"github.com/jhoicas/lord-inventory/internal/infrastructure/snapshot"
	"github.com/jhoicas/lord-inventory/pkg/logger"
)

// BackupHandler descargas (CSV, PDF, backup), restore, reset y uso de almacenamiento.
type BackupHandler struct {
	store  *ledger.Store
	export *export.Service
	log    *logger.Logger
}

// NewBackupHandler construye el handler.
func NewBackupHandler(store *ledger.Store, exp *export.Service, log *logger.Logger) *BackupHandler {
	return &BackupHandler{store: store, export: exp, log: log}
}

func attachment(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// CSV godoc
// @Summary      Exportar planilla de stock (CSV ; con coma decimal)
// @Tags         export
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/export/csv [get]
func (h *BackupHandler) CSV(c *fiber.Ctx) error {
	data, name, err := h.export.CSV(h.store.Snapshot())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return attachment(c, "text/csv; charset=utf-8", name, data)
}

// PDF godoc
// @Summary      Exportar reporte de stock en PDF
// @Tags         export
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/export/pdf [get]
func (h *BackupHandler) PDF(c *fiber.Ctx) error {
	data, name, err := h.export.PDF(c.Context(), h.store.Snapshot())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return attachment(c, "application/pdf", name, data)
}

// Backup godoc
// @Summary      Descargar backup completo del ledger
// @Tags         backup
// @Produce      json
// @Success      200  {file}  file
// @Router       /api/backup [get]
func (h *BackupHandler) Backup(c *fiber.Ctx) error {
	data, err := snapshot.Encode(h.store.Snapshot())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return attachment(c, fiber.MIMEApplicationJSONCharsetUTF8, h.export.BackupFilename(), data)
}

// Restore godoc
// @Summary      Restaurar un backup
// @Description  Reemplaza el ledger completo. Requiere el campo version compatible.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.GlobalMetricsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      507  {object}  dto.ErrorResponse
// @Router       /api/restore [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	imported, err := snapshot.Decode(c.Body())
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.store.Restore(c.Context(), imported); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(h.store.GlobalMetrics())
}

// Reset godoc
// @Summary      Borrar todos los datos
// @Tags         backup
// @Success      204
// @Failure      507  {object}  dto.ErrorResponse
// @Router       /api/reset [post]
func (h *BackupHandler) Reset(c *fiber.Ctx) error {
	if err := h.store.ResetAll(c.Context()); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Storage godoc
// @Summary      Uso del almacenamiento
// @Tags         backup
// @Produce      json
// @Success      200  {object}  dto.StorageUsageResponse
// @Router       /api/storage [get]
func (h *BackupHandler) Storage(c *fiber.Ctx) error {
	out, err := h.store.StorageUsage(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
