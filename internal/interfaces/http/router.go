// Package http expone el ledger como API REST con Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lord-inventory/internal/application/export"
	"github.com/jhoicas/lord-inventory/internal/application/ledger"
	"github.com/jhoicas/lord-inventory/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store   *ledger.Store
	Export  *export.Service
	Log     *logger.Logger
	AppName string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Store, log)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	api.Get("/catalog", productHandler.Catalog)

	// Movements
	movementHandler := NewMovementHandler(deps.Store, log)
	products.Post("/:id/entries", movementHandler.AddEntry)
	products.Delete("/:id/entries/:entryId", movementHandler.RemoveEntry)
	products.Post("/:id/withdrawals", movementHandler.AddWithdrawal)
	products.Delete("/:id/withdrawals/:withdrawalId", movementHandler.RemoveWithdrawal)
	api.Get("/entries", movementHandler.ListEntries)
	api.Get("/withdrawals", movementHandler.ListWithdrawals)

	// Dashboard y asesor de compras
	dashboardHandler := NewDashboardHandler(deps.Store, log)
	api.Get("/metrics", dashboardHandler.Metrics)
	api.Get("/metrics/series", dashboardHandler.Series)
	api.Get("/purchases/suggestions", dashboardHandler.Suggestions)
	api.Get("/purchases/simulation", dashboardHandler.Simulation)

	// Exportación, backup y almacenamiento
	backupHandler := NewBackupHandler(deps.Store, deps.Export, log)
	api.Get("/export/csv", backupHandler.CSV)
	api.Get("/export/pdf", backupHandler.PDF)
	api.Get("/backup", backupHandler.Backup)
	api.Post("/restore", backupHandler.Restore)
	api.Post("/reset", backupHandler.Reset)
	api.Get("/storage", backupHandler.Storage)
}
