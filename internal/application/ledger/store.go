// Package ledger orquesta el ledger de inventario: aplica las mutaciones sobre una copia,
// la persiste de forma síncrona y solo entonces la publica. Las consultas recalculan
// métricas y sugerencias sobre el estado vivo en cada llamada.
package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/repository"
	"github.com/jhoicas/lord-inventory/pkg/logger"
)

// DefaultSimulationBudget presupuesto usado cuando la simulación no recibe uno.
var DefaultSimulationBudget = decimal.NewFromInt(1000)

// Store dueño del ledger en memoria. Un único escritor a la vez; lecturas concurrentes.
type Store struct {
	mu     sync.RWMutex
	ledger *entity.Ledger

	repo          repository.SnapshotRepository
	log           *logger.Logger
	now           func() time.Time
	newID         func() string
	defaultBudget decimal.Decimal
	storageName   string
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza time.Now (fechas por defecto y lastUpdated).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator reemplaza el generador de ids de movimientos.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithDefaultBudget presupuesto de simulación por defecto.
func WithDefaultBudget(b decimal.Decimal) Option {
	return func(s *Store) { s.defaultBudget = b }
}

// WithStorageName nombre del driver informado en el uso de almacenamiento.
func WithStorageName(name string) Option {
	return func(s *Store) { s.storageName = name }
}

// NewStore carga el último snapshot del repositorio. Un snapshot ausente, corrupto o de
// versión incompatible inicia un ledger vacío; cualquier otro fallo de lectura se devuelve.
func NewStore(ctx context.Context, repo repository.SnapshotRepository, log *logger.Logger, opts ...Option) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		repo:          repo,
		log:           log.Component("ledger"),
		now:           time.Now,
		newID:         uuid.NewString,
		defaultBudget: DefaultSimulationBudget,
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := repo.Load(ctx)
	switch {
	case err == nil:
		if verr := s.normalize(loaded); verr != nil {
			s.log.Warn().Err(verr).Msg("snapshot inválido; se inicia un ledger vacío")
			s.ledger = entity.NewLedger(s.now())
			break
		}
		s.ledger = loaded
		s.log.Info().Int("products", len(loaded.Products)).Time("last_updated", loaded.LastUpdated).Msg("ledger cargado")
	case errors.Is(err, domain.ErrNotFound):
		s.log.Info().Msg("sin snapshot previo; ledger vacío")
		s.ledger = entity.NewLedger(s.now())
	case errors.Is(err, domain.ErrCorruptSnapshot), errors.Is(err, domain.ErrIncompatibleSnapshot):
		s.log.Warn().Err(err).Msg("snapshot descartado; se inicia un ledger vacío")
		s.ledger = entity.NewLedger(s.now())
	default:
		return nil, &domain.PersistenceError{Op: "load", Err: err}
	}
	return s, nil
}

// errUnchanged lo devuelve una mutación que no tiene nada que hacer (ids ausentes).
var errUnchanged = errors.New("sin cambios")

// mutate aplica fn sobre una copia del ledger, la persiste y la publica.
// Si fn o el guardado fallan, el ledger publicado no cambia.
func (s *Store) mutate(ctx context.Context, op string, fn func(l *entity.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.ledger.Clone()
	if err := fn(next); err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}
	next.LastUpdated = s.now()
	if err := s.repo.Save(ctx, next); err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("no se pudo persistir el ledger; cambio descartado")
		var pe *domain.PersistenceError
		if errors.As(err, &pe) {
			return err
		}
		return &domain.PersistenceError{Op: op, Err: err}
	}
	s.ledger = next
	s.log.Debug().Str("op", op).Int("products", len(next.Products)).Msg("ledger persistido")
	return nil
}

// read ejecuta fn con el ledger publicado bajo lock de lectura. fn no debe retenerlo.
func (s *Store) read(fn func(l *entity.Ledger)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.ledger)
}

func (s *Store) today() entity.Date {
	return entity.DateOf(s.now())
}
