package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/inventory"
	"github.com/jhoicas/lord-inventory/internal/domain/repository"
	"github.com/jhoicas/lord-inventory/internal/infrastructure/snapshot"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// schemaSQL tabla de snapshots: una fila por clave de almacenamiento.
// total_stock y stock_value se guardan como NUMERIC para consultas de reporte sin decodificar el JSON.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS ledger_snapshots (
	storage_key  TEXT PRIMARY KEY,
	version      TEXT        NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL,
	payload      JSONB       NOT NULL,
	size_bytes   INTEGER     NOT NULL,
	total_stock  NUMERIC     NOT NULL DEFAULT 0,
	stock_value  NUMERIC     NOT NULL DEFAULT 0
)`

// SnapshotRepo implementación de SnapshotRepository sobre PostgreSQL.
type SnapshotRepo struct {
	q     Querier
	key   string
	quota int64
}

// NewSnapshotRepository construye el slot. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier, key string, quota int64) *SnapshotRepo {
	return &SnapshotRepo{q: q, key: key, quota: quota}
}

// EnsureSchema crea la tabla si no existe.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla ledger_snapshots: %w", err)
	}
	return nil
}

// Load lee el payload de la clave configurada.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Ledger, error) {
	var payload []byte
	err := r.q.QueryRow(ctx, `SELECT payload FROM ledger_snapshots WHERE storage_key = $1`, r.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return snapshot.Decode(payload)
}

// Save hace upsert del snapshot completo.
func (r *SnapshotRepo) Save(ctx context.Context, ledger *entity.Ledger) error {
	payload, err := snapshot.Encode(ledger)
	if err != nil {
		return err
	}
	if err := snapshot.CheckQuota(payload, r.quota); err != nil {
		return err
	}
	g := inventory.ComputeGlobalMetrics(ledger)
	query := `
		INSERT INTO ledger_snapshots (storage_key, version, last_updated, payload, size_bytes, total_stock, stock_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (storage_key) DO UPDATE SET
			version = EXCLUDED.version,
			last_updated = EXCLUDED.last_updated,
			payload = EXCLUDED.payload,
			size_bytes = EXCLUDED.size_bytes,
			total_stock = EXCLUDED.total_stock,
			stock_value = EXCLUDED.stock_value`
	_, err = r.q.Exec(ctx, query,
		r.key, ledger.Version, ledger.LastUpdated, payload, len(payload), g.TotalStock, g.StockValue,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Usage tamaño guardado del snapshot.
func (r *SnapshotRepo) Usage(ctx context.Context) (repository.StorageUsage, error) {
	usage := repository.StorageUsage{QuotaBytes: r.quota}
	var size int64
	err := r.q.QueryRow(ctx, `SELECT size_bytes FROM ledger_snapshots WHERE storage_key = $1`, r.key).Scan(&size)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usage, nil
		}
		return usage, fmt.Errorf("get snapshot size: %w", err)
	}
	usage.UsedBytes = size
	return usage, nil
}

// StockSummary devuelve los totales NUMERIC guardados con el último snapshot.
func (r *SnapshotRepo) StockSummary(ctx context.Context) (totalStock, stockValue decimal.Decimal, err error) {
	err = r.q.QueryRow(ctx,
		`SELECT total_stock, stock_value FROM ledger_snapshots WHERE storage_key = $1`, r.key,
	).Scan(&totalStock, &stockValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, decimal.Zero, fmt.Errorf("get stock summary: %w", err)
	}
	return totalStock, stockValue, nil
}
