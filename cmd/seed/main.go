// seed carga el catálogo inicial de xícaras en el almacenamiento configurado.
//
// Uso: go run ./cmd/seed [--reset]
// Sin --reset no hace nada si el ledger ya tiene productos.
package main

import (
	"context"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lord-inventory/internal/application/dto"
	"github.com/jhoicas/lord-inventory/internal/application/ledger"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/storage"
	"github.com/jhoicas/lord-inventory/pkg/config"
	"github.com/jhoicas/lord-inventory/pkg/logger"
)

type seedProduct struct {
	name           string
	min, des       string
	cost, price    string
	inventoryQty   int64
	withdrawalQty  int64
	withdrawalDate string
}

const inventoryDate = "17/01/2026"

var catalog = []seedProduct{
	{name: "Xícara Comum Branca", min: "50", des: "75", cost: "13.33", price: "35", inventoryQty: 20},
	{name: "Xícara Mágica", min: "50", des: "75", cost: "16.49", price: "45", inventoryQty: 50},
	{name: "Xícara Prontas", min: "50", des: "75", cost: "13.33", price: "35", inventoryQty: 10},
	{name: "Xícara Colorida", min: "50", des: "75", cost: "13.33", price: "35", inventoryQty: 25},
	{name: "Xícara Comum Preta", min: "50", des: "75", cost: "13.33", price: "35", inventoryQty: 15, withdrawalQty: 15, withdrawalDate: "15/01/2026"},
	{name: "Xícara Grande", min: "15", des: "22.5", cost: "14.50", price: "38", inventoryQty: 15, withdrawalQty: 15, withdrawalDate: "05/01/2026"},
}

func main() {
	reset := len(os.Args) > 1 && os.Args[1] == "--reset"

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	repo, closeRepo, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer closeRepo()

	store, err := ledger.NewStore(ctx, repo, log, ledger.WithStorageName(cfg.Storage.Driver))
	if err != nil {
		log.Fatal().Err(err).Msg("cargar ledger")
	}

	if n := store.GlobalMetrics().ProductCount; n > 0 {
		if !reset {
			log.Info().Int("products", n).Msg("el ledger ya tiene datos; use --reset para reemplazarlos")
			return
		}
		if err := store.ResetAll(ctx); err != nil {
			log.Fatal().Err(err).Msg("borrar datos")
		}
	}

	for _, sp := range catalog {
		if err := seed(ctx, store, sp); err != nil {
			log.Fatal().Err(err).Str("product", sp.name).Msg("cargar producto")
		}
	}

	g := store.GlobalMetrics()
	log.Info().
		Int("products", g.ProductCount).
		Str("total_stock", g.TotalStock.String()).
		Str("total_cost", g.TotalCost.StringFixed(2)).
		Int("danger", g.DangerCount).
		Msg("catálogo inicial cargado")
}

func seed(ctx context.Context, store *ledger.Store, sp seedProduct) error {
	id, err := store.AddProduct(ctx, dto.CreateProductRequest{
		Name:  sp.name,
		Min:   decimal.RequireFromString(sp.min),
		Des:   decimal.RequireFromString(sp.des),
		Cost:  decimal.RequireFromString(sp.cost),
		Price: decimal.RequireFromString(sp.price),
	})
	if err != nil {
		return err
	}

	// la salida es anterior al inventario, por eso la entrada va primero
	if _, err := store.AddEntry(ctx, id, dto.CreateEntryRequest{
		Kind:     string(entity.EntryKindInventory),
		Quantity: decimal.NewFromInt(sp.inventoryQty),
		Date:     inventoryDate,
	}); err != nil {
		return err
	}

	if sp.withdrawalQty == 0 {
		return nil
	}
	_, err = store.AddWithdrawal(ctx, id, dto.CreateWithdrawalRequest{
		Quantity: decimal.NewFromInt(sp.withdrawalQty),
		Date:     sp.withdrawalDate,
	})
	return err
}
