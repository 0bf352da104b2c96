// Package storage elige el slot de persistencia del ledger según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/lord-inventory/internal/domain/repository"
	"github.com/jhoicas/lord-inventory/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/lord-inventory/internal/infrastructure/redis"
	"github.com/jhoicas/lord-inventory/internal/infrastructure/snapshot"
	"github.com/jhoicas/lord-inventory/pkg/config"
	"github.com/jhoicas/lord-inventory/pkg/logger"
)

// Open construye el repositorio del driver configurado. closeFn libera conexiones (no-op en file/memory).
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repo repository.SnapshotRepository, closeFn func(), err error) {
	st := cfg.Storage
	noop := func() {}

	switch st.Driver {
	case config.StorageMemory:
		return snapshot.NewMemoryRepository(st.QuotaBytes), noop, nil

	case config.StorageFile:
		r := snapshot.NewFileRepository(st.Dir, st.Key, st.QuotaBytes)
		log.Info().Str("path", r.Path()).Msg("snapshot en archivo")
		return r, noop, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		r := postgres.NewSnapshotRepository(pool, st.Key, st.QuotaBytes)
		if err := r.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		if stock, value, err := r.StockSummary(ctx); err == nil {
			log.Info().Str("total_stock", stock.String()).Str("stock_value", value.String()).Msg("último snapshot en PostgreSQL")
		}
		return r, pool.Close, nil

	case config.StorageRedis:
		client, err := infraredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a Redis: %w", err)
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("cerrar cliente redis")
			}
		}
		return infraredis.NewSnapshotRepository(client, st.Key, st.QuotaBytes), closeClient, nil

	default:
		return nil, noop, fmt.Errorf("driver de almacenamiento desconocido %q", st.Driver)
	}
}
