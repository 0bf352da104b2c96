package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*FileRepository)(nil)

// FileRepository guarda el snapshot en <dir>/<key>.json.
// La escritura es atómica (archivo temporal + rename) para no dejar snapshots a medias.
type FileRepository struct {
	dir   string
	key   string
	quota int64
}

// NewFileRepository construye el slot de archivo. quota <= 0 desactiva el límite.
func NewFileRepository(dir, key string, quota int64) *FileRepository {
	return &FileRepository{dir: dir, key: key, quota: quota}
}

// Path ruta del archivo del snapshot.
func (r *FileRepository) Path() string {
	return filepath.Join(r.dir, r.key+".json")
}

// Load lee y decodifica el snapshot.
func (r *FileRepository) Load(_ context.Context) (*entity.Ledger, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	return Decode(data)
}

// Save codifica y reemplaza el snapshot.
func (r *FileRepository) Save(_ context.Context, ledger *entity.Ledger) error {
	payload, err := Encode(ledger)
	if err != nil {
		return err
	}
	if err := CheckQuota(payload, r.quota); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, r.key+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.Path()); err != nil {
		return fmt.Errorf("reemplazar snapshot: %w", err)
	}
	return nil
}

// Usage tamaño actual del archivo frente a la cuota.
func (r *FileRepository) Usage(_ context.Context) (repository.StorageUsage, error) {
	usage := repository.StorageUsage{QuotaBytes: r.quota}
	info, err := os.Stat(r.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return usage, nil
		}
		return usage, fmt.Errorf("stat snapshot: %w", err)
	}
	usage.UsedBytes = info.Size()
	return usage, nil
}
