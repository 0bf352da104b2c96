// Package money formatea montos y cantidades según el locale configurado (por defecto pt-BR).
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formatea decimales con los separadores del locale.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter construye el formateador. Un locale inválido cae en pt-BR.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.BRL
	}
	return &Formatter{printer: message.NewPrinter(tag), unit: unit}
}

// Currency ej. "R$ 1.234,50" en pt-BR.
func (f *Formatter) Currency(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return f.printer.Sprint(currency.Symbol(f.unit)) + " " + f.printer.Sprintf("%.2f", v)
}

// Number cantidades: hasta 2 decimales, sin ceros sobrantes.
func (f *Formatter) Number(d decimal.Decimal) string {
	r := d.Round(2)
	v, _ := r.Float64()
	if r.IsInteger() {
		return f.printer.Sprintf("%.0f", v)
	}
	if r.Mul(decimal.NewFromInt(10)).IsInteger() {
		return f.printer.Sprintf("%.1f", v)
	}
	return f.printer.Sprintf("%.2f", v)
}

// Plain decimal redondeado a places decimales, con coma como separador decimal y sin
// separador de miles. Es el formato numérico de la exportación CSV.
func Plain(d decimal.Decimal, places int32) string {
	return strings.ReplaceAll(d.StringFixed(places), ".", ",")
}

// PlainNumber igual que Plain pero sin fijar decimales; para cantidades y umbrales.
func PlainNumber(d decimal.Decimal) string {
	return strings.ReplaceAll(d.String(), ".", ",")
}
