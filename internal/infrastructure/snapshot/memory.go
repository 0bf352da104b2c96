package snapshot

import (
	"context"
	"sync"

	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*MemoryRepository)(nil)

// MemoryRepository slot en memoria. Guarda el snapshot ya codificado para que la cuota
// y los errores de decodificación se comporten igual que en los slots durables.
type MemoryRepository struct {
	mu      sync.Mutex
	payload []byte
	quota   int64
}

// NewMemoryRepository construye un slot vacío. quota <= 0 desactiva el límite.
func NewMemoryRepository(quota int64) *MemoryRepository {
	return &MemoryRepository{quota: quota}
}

// Load decodifica el último snapshot guardado.
func (r *MemoryRepository) Load(_ context.Context) (*entity.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.payload == nil {
		return nil, domain.ErrNotFound
	}
	return Decode(r.payload)
}

// Save reemplaza el snapshot.
func (r *MemoryRepository) Save(_ context.Context, ledger *entity.Ledger) error {
	payload, err := Encode(ledger)
	if err != nil {
		return err
	}
	if err := CheckQuota(payload, r.quota); err != nil {
		return err
	}
	r.mu.Lock()
	r.payload = payload
	r.mu.Unlock()
	return nil
}

// Usage bytes del snapshot actual.
func (r *MemoryRepository) Usage(_ context.Context) (repository.StorageUsage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return repository.StorageUsage{UsedBytes: int64(len(r.payload)), QuotaBytes: r.quota}, nil
}

// Raw devuelve una copia del payload guardado (nil si está vacío).
func (r *MemoryRepository) Raw() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.payload == nil {
		return nil
	}
	return append([]byte(nil), r.payload...)
}

// SetRaw reemplaza el payload sin validarlo; útil para sembrar snapshots externos.
func (r *MemoryRepository) SetRaw(payload []byte) {
	r.mu.Lock()
	r.payload = append([]byte(nil), payload...)
	r.mu.Unlock()
}
