package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/lord-inventory/pkg/money"
)

func TestPlain_ComaDecimal(t *testing.T) {
	assert.Equal(t, "217,50", money.Plain(decimal.RequireFromString("217.5"), 2))
	assert.Equal(t, "-27,00", money.Plain(decimal.NewFromInt(-27), 2))
	assert.Equal(t, "1234,57", money.Plain(decimal.RequireFromString("1234.567"), 2))
	assert.Equal(t, "13,3", money.Plain(decimal.RequireFromString("13.33"), 1))
	assert.Equal(t, "14", money.Plain(decimal.RequireFromString("14.2"), 0))
	assert.Equal(t, "22,5", money.PlainNumber(decimal.RequireFromString("22.5")))
	assert.Equal(t, "15", money.PlainNumber(decimal.NewFromInt(15)))
}

func TestFormatter_PtBR(t *testing.T) {
	f := money.NewFormatter("pt-BR")
	assert.Equal(t, "1.234,5", f.Number(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "22,5", f.Number(decimal.RequireFromString("22.5")))
	assert.Equal(t, "15", f.Number(decimal.NewFromInt(15)))
	assert.Contains(t, f.Currency(decimal.RequireFromString("1234.5")), "1.234,50")
}

func TestFormatter_LocaleInvalido(t *testing.T) {
	f := money.NewFormatter("%%%")
	assert.Contains(t, f.Currency(decimal.NewFromInt(10)), "10,00")
}
