package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/lord-inventory/docs"
	"github.com/jhoicas/lord-inventory/internal/application/export"
	"github.com/jhoicas/lord-inventory/internal/application/ledger"
	infrapdf "github.com/jhoicas/lord-inventory/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/lord-inventory/internal/interfaces/http"
	"github.com/jhoicas/lord-inventory/internal/storage"
	"github.com/jhoicas/lord-inventory/pkg/config"
	"github.com/jhoicas/lord-inventory/pkg/logger"
	"github.com/jhoicas/lord-inventory/pkg/money"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeRepo, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer closeRepo()

	store, err := ledger.NewStore(ctx, repo, log,
		ledger.WithDefaultBudget(decimal.NewFromFloat(cfg.Advisor.DefaultBudget)),
		ledger.WithStorageName(cfg.Storage.Driver),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar ledger")
	}

	// PDF: reporte de stock con los formatos del locale configurado
	reports := infrapdf.NewMarotoReportGenerator(money.NewFormatter(cfg.App.Locale))
	exportSvc := export.NewService(reports, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Storage.QuotaBytes) + 1024*1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "LORD Inventory API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:   store,
		Export:  exportSvc,
		Log:     log,
		AppName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
