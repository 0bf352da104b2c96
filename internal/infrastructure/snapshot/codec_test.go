package snapshot_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/infrastructure/snapshot"
)

// Backup producido por el tablero original en el navegador.
const browserBackup = `{
  "version": "2.0",
  "lastUpdated": "2026-01-18T14:03:11.512Z",
  "products": [
    {
      "id": "XC001", "name": "Xícara Grande", "min": 15, "des": 22.5, "cost": 14.5, "price": 38,
      "entradas": [{"id": "Elk2abc", "data": "17/01/2026", "tipo": "Inventário", "qty": 15, "cost_unit": 14.5, "total": 217.5}],
      "saidas": [{"id": "Slk2def", "data": "05/01/2026", "qty": 15, "price_unit": 38, "total": 570}]
    }
  ]
}`

func TestDecode_BackupDelNavegador(t *testing.T) {
	l, err := snapshot.Decode([]byte(browserBackup))
	require.NoError(t, err)

	assert.Equal(t, "2.0", l.Version)
	assert.Equal(t, 2026, l.LastUpdated.Year())
	require.Len(t, l.Products, 1)
	p := l.Products[0]
	assert.Equal(t, "Xícara Grande", p.Name)
	assert.Equal(t, "22.5", p.Des.String())
	require.Len(t, p.Entries, 1)
	assert.Equal(t, entity.EntryKindInventory, p.Entries[0].Kind)
	assert.Equal(t, "17/01/2026", p.Entries[0].Date.String())
	assert.Equal(t, "217.5", p.Entries[0].Total.String())
	require.Len(t, p.Withdrawals, 1)
	assert.Equal(t, "570", p.Withdrawals[0].Total.String())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC)
	l := entity.NewLedger(now)
	p := &entity.Product{
		ID: "XC001", Name: "Xícara Mágica",
		Min: decimal.NewFromInt(50), Des: decimal.NewFromInt(75),
		Cost: decimal.RequireFromString("16.49"), Price: decimal.NewFromInt(45),
	}
	p.Entries = append(p.Entries, entity.NewEntry("E1", entity.NewDate(2026, 1, 17), entity.EntryKindInventory, decimal.NewFromInt(50), p.Cost))
	p.Withdrawals = append(p.Withdrawals, entity.NewWithdrawal("S1", entity.NewDate(2026, 1, 18), decimal.NewFromInt(3), p.Price))
	l.Products = append(l.Products, p)

	data, err := snapshot.Encode(l)
	require.NoError(t, err)

	back, err := snapshot.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, l.Version, back.Version)
	assert.True(t, l.LastUpdated.Equal(back.LastUpdated))
	require.Len(t, back.Products, 1)
	assert.Equal(t, p.ID, back.Products[0].ID)
	assert.True(t, p.Cost.Equal(back.Products[0].Cost))
	assert.True(t, p.Entries[0].Total.Equal(back.Products[0].Entries[0].Total))
	assert.True(t, p.Entries[0].Date.Equal(back.Products[0].Entries[0].Date))
	assert.True(t, p.Withdrawals[0].Total.Equal(back.Products[0].Withdrawals[0].Total))
}

func TestEncode_NumerosSinComillas(t *testing.T) {
	l := entity.NewLedger(time.Now())
	l.Products = append(l.Products, &entity.Product{ID: "XC001", Name: "A", Min: decimal.NewFromInt(10)})
	data, err := snapshot.Encode(l)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	products := raw["products"].([]any)
	first := products[0].(map[string]any)
	assert.Equal(t, float64(10), first["min"])
	assert.Equal(t, []any{}, first["entradas"])
}

func TestDecode_Errores(t *testing.T) {
	_, err := snapshot.Decode([]byte(`{no es json`))
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)

	_, err = snapshot.Decode([]byte(`{"products": []}`))
	assert.ErrorIs(t, err, domain.ErrIncompatibleSnapshot)

	_, err = snapshot.Decode([]byte(`{"version": "1.0", "products": []}`))
	assert.ErrorIs(t, err, domain.ErrIncompatibleSnapshot)
}

func TestCheckQuota(t *testing.T) {
	assert.NoError(t, snapshot.CheckQuota(make([]byte, 10), 10))
	assert.NoError(t, snapshot.CheckQuota(make([]byte, 100), 0))
	assert.ErrorIs(t, snapshot.CheckQuota(make([]byte, 11), 10), domain.ErrQuotaExceeded)
}
