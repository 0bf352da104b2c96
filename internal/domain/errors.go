package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrPersistence          = errors.New("error de persistencia")
	ErrIncompatibleSnapshot = errors.New("snapshot con versión incompatible")
	ErrCorruptSnapshot      = errors.New("snapshot corrupto")
	ErrQuotaExceeded        = errors.New("cuota de almacenamiento excedida")
)

// ValidationError describe un campo inválido. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError atajo para construir un ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientStockError se devuelve cuando un movimiento dejaría el stock en negativo.
// Lleva el disponible y lo solicitado para que la capa de presentación lo informe.
type InsufficientStockError struct {
	ProductID string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente en %s. Disponible: %s, Solicitado: %s",
		e.ProductID, e.Available.String(), e.Requested.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// PersistenceError envuelve un fallo del adaptador de persistencia.
// Coincide con ErrPersistence y además expone la causa (ej. ErrQuotaExceeded).
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistencia (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrPersistence) además de la cadena de la causa.
func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
