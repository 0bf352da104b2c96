package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout formato de presentación y de persistencia (dd/mm/yyyy).
const DateLayout = "02/01/2006"

const isoDateLayout = "2006-01-02"

// Date fecha de calendario sin hora. El valor cero representa "sin fecha".
type Date struct {
	t time.Time
}

// NewDate construye una fecha normalizada a medianoche UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf toma el día de calendario de t en su propia zona horaria.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate acepta dd/mm/yyyy (formato de la aplicación) y yyyy-mm-dd (inputs HTML).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	for _, layout := range []string{DateLayout, isoDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("fecha inválida %q: se espera dd/mm/yyyy", s)
}

func (d Date) IsZero() bool        { return d.t.IsZero() }
func (d Date) Time() time.Time     { return d.t }
func (d Date) Year() int           { return d.t.Year() }
func (d Date) Month() time.Month   { return d.t.Month() }
func (d Date) Before(o Date) bool  { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool   { return d.t.Equal(o.t) }

// String devuelve dd/mm/yyyy, o "" si la fecha es cero.
func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON serializa como string dd/mm/yyyy.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON acepta los mismos formatos que ParseDate.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
