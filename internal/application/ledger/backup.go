package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
)

// Snapshot copia profunda del ledger publicado (backup completo, CSV, PDF).
func (s *Store) Snapshot() *entity.Ledger {
	var c *entity.Ledger
	s.read(func(l *entity.Ledger) { c = l.Clone() })
	return c
}

// Restore reemplaza el ledger completo por uno importado y lo persiste.
// Requiere una versión compatible; el snapshot se valida antes de tocar nada.
func (s *Store) Restore(ctx context.Context, imported *entity.Ledger) error {
	if imported == nil {
		return fmt.Errorf("%w: backup vacío", domain.ErrInvalidInput)
	}
	candidate := imported.Clone()
	if err := s.normalize(candidate); err != nil {
		return err
	}
	err := s.mutate(ctx, "restore", func(l *entity.Ledger) error {
		l.Version = candidate.Version
		l.Products = candidate.Products
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info().Int("products", len(candidate.Products)).Msg("backup restaurado")
	return nil
}

// ResetAll reemplaza el ledger por uno vacío con la versión actual.
func (s *Store) ResetAll(ctx context.Context) error {
	err := s.mutate(ctx, "reset", func(l *entity.Ledger) error {
		*l = *entity.NewLedger(s.now())
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Warn().Msg("ledger reiniciado")
	return nil
}
