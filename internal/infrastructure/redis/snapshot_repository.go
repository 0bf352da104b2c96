// Package redis implementa el slot de snapshots sobre una clave de Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/repository"
	"github.com/jhoicas/lord-inventory/internal/infrastructure/snapshot"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo guarda el snapshot codificado bajo una única clave, sin TTL.
type SnapshotRepo struct {
	client *goredis.Client
	key    string
	quota  int64
}

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

// NewSnapshotRepository construye el slot sobre un cliente existente.
func NewSnapshotRepository(client *goredis.Client, key string, quota int64) *SnapshotRepo {
	return &SnapshotRepo{client: client, key: key, quota: quota}
}

// Load lee y decodifica la clave.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Ledger, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get snapshot: %w", err)
	}
	return snapshot.Decode(payload)
}

// Save reemplaza la clave con el snapshot completo.
func (r *SnapshotRepo) Save(ctx context.Context, ledger *entity.Ledger) error {
	payload, err := snapshot.Encode(ledger)
	if err != nil {
		return err
	}
	if err := snapshot.CheckQuota(payload, r.quota); err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis: set snapshot: %w", err)
	}
	return nil
}

// Usage longitud del valor guardado.
func (r *SnapshotRepo) Usage(ctx context.Context) (repository.StorageUsage, error) {
	n, err := r.client.StrLen(ctx, r.key).Result()
	if err != nil {
		return repository.StorageUsage{QuotaBytes: r.quota}, fmt.Errorf("redis: strlen: %w", err)
	}
	return repository.StorageUsage{UsedBytes: n, QuotaBytes: r.quota}, nil
}
