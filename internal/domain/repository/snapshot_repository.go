package repository

import (
	"context"

	"github.com/jhoicas/lord-inventory/internal/domain/entity"
)

// SnapshotRepository puerto de persistencia del ledger completo (un único registro por clave).
//
// Load devuelve domain.ErrNotFound si no hay snapshot, domain.ErrCorruptSnapshot si no se puede
// decodificar y domain.ErrIncompatibleSnapshot si la versión no es soportada.
// Save es síncrono: cuando retorna nil el snapshot es durable.
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.Ledger, error)
	Save(ctx context.Context, ledger *entity.Ledger) error
	Usage(ctx context.Context) (StorageUsage, error)
}

// StorageUsage ocupación del slot de almacenamiento.
type StorageUsage struct {
	UsedBytes  int64
	QuotaBytes int64 // 0 = sin límite
}

// Percent porcentaje usado de la cuota (0 si no hay cuota), acotado a 100.
func (u StorageUsage) Percent() float64 {
	if u.QuotaBytes <= 0 {
		return 0
	}
	p := float64(u.UsedBytes) / float64(u.QuotaBytes) * 100
	if p > 100 {
		return 100
	}
	return p
}
