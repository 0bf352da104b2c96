package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lord-inventory/internal/domain"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// InsufficientStockResponse cuerpo 409 cuando una salida (o el borrado de una entrada) dejaría stock negativo.
type InsufficientStockResponse struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	ProductID string          `json:"product_id"`
	Available decimal.Decimal `json:"available"`
	Requested decimal.Decimal `json:"requested"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Los decimales se validan como float64 con las reglas numéricas estándar (gte, gt...).
		validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Validate aplica las etiquetas validate del DTO y traduce el primer fallo a domain.ValidationError.
func Validate(in any) error {
	err := validatorInstance().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.NewValidationError(fe.Field(), describe(fe))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "gte":
		return "debe ser >= " + fe.Param()
	case "gt":
		return "debe ser > " + fe.Param()
	case "max":
		return "excede el máximo de " + fe.Param()
	case "min":
		return "debe tener al menos " + fe.Param()
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	default:
		return "inválido (" + fe.Tag() + ")"
	}
}
