package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lord-inventory/internal/application/dto"
	"github.com/jhoicas/lord-inventory/internal/application/ledger"
	"github.com/jhoicas/lord-inventory/internal/domain"
	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/repository"
	"github.com/jhoicas/lord-inventory/internal/infrastructure/snapshot"
	"github.com/jhoicas/lord-inventory/pkg/logger"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func dp(v float64) *decimal.Decimal {
	x := d(v)
	return &x
}

func assertDec(t *testing.T, want float64, got decimal.Decimal, msg ...any) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "esperado %v, obtenido %s %v", want, got.String(), msg)
}

// failingRepo slot en memoria que puede forzarse a fallar al guardar.
type failingRepo struct {
	*snapshot.MemoryRepository
	fail bool
}

func (r *failingRepo) Save(ctx context.Context, l *entity.Ledger) error {
	if r.fail {
		return errors.New("disco lleno")
	}
	return r.MemoryRepository.Save(ctx, l)
}

func newStore(t *testing.T, repo repository.SnapshotRepository) *ledger.Store {
	t.Helper()
	n := 0
	s, err := ledger.NewStore(context.Background(), repo, logger.Nop(),
		ledger.WithClock(func() time.Time { return fixedNow }),
		ledger.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("M%03d", n)
		}),
		ledger.WithStorageName("memory"),
	)
	require.NoError(t, err)
	return s
}

func addProduct(t *testing.T, s *ledger.Store, name string, min, des, cost, price float64) string {
	t.Helper()
	id, err := s.AddProduct(context.Background(), dto.CreateProductRequest{
		Name: name, Min: d(min), Des: d(des), Cost: d(cost), Price: d(price),
	})
	require.NoError(t, err)
	return id
}

func stockOf(t *testing.T, s *ledger.Store, id string) decimal.Decimal {
	t.Helper()
	p, err := s.GetProduct(id)
	require.NoError(t, err)
	return p.Metrics.CurrentStock
}

func TestStore_EjemploCompletoDeStockYSugerencia(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, snapshot.NewMemoryRepository(0))
	id := addProduct(t, s, "Xícara Teste", 10, 20, 5, 8)

	_, err := s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(15)})
	require.NoError(t, err)
	p, _ := s.GetProduct(id)
	assertDec(t, 15, p.Metrics.CurrentStock)
	assert.Equal(t, "warning", p.Metrics.Status)

	_, err = s.AddWithdrawal(ctx, id, dto.CreateWithdrawalRequest{Quantity: d(6)})
	require.NoError(t, err)
	p, _ = s.GetProduct(id)
	assertDec(t, 9, p.Metrics.CurrentStock)
	assert.Equal(t, "danger", p.Metrics.Status)

	_, err = s.AddWithdrawal(ctx, id, dto.CreateWithdrawalRequest{Quantity: d(20)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	var ise *domain.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assertDec(t, 9, ise.Available)
	assertDec(t, 20, ise.Requested)
	assertDec(t, 9, stockOf(t, s, id), "la salida rechazada no cambia el stock")

	plan := s.PurchasePlan()
	require.Len(t, plan.Suggestions, 1)
	sg := plan.Suggestions[0]
	assertDec(t, 11, sg.Missing)
	assertDec(t, 55, sg.EstimatedCost)
	assert.Equal(t, "high", sg.Priority)
	assert.Equal(t, "COMPRAR URGENTE", sg.Action)
	assert.Equal(t, 1, plan.AlertCount)
	assert.Equal(t, 0, plan.ReorderCount)
}

func TestStore_AddProduct_GeneraIDsYDetectaDuplicados(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, snapshot.NewMemoryRepository(0))

	assert.Equal(t, "XC001", addProduct(t, s, "A", 1, 2, 1, 2))
	assert.Equal(t, "XC002", addProduct(t, s, "B", 1, 2, 1, 2))

	id, err := s.AddProduct(ctx, dto.CreateProductRequest{ID: "XC010", Name: "C", Min: d(1), Des: d(2)})
	require.NoError(t, err)
	assert.Equal(t, "XC010", id)
	assert.Equal(t, "XC011", addProduct(t, s, "D", 1, 2, 1, 2))

	_, err = s.AddProduct(ctx, dto.CreateProductRequest{ID: "XC001", Name: "E"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, s.ListProducts(), 4)
}

func TestStore_AddProduct_Validacion(t *testing.T) {
	s := newStore(t, snapshot.NewMemoryRepository(0))
	cases := []struct {
		name  string
		in    dto.CreateProductRequest
		field string
	}{
		{"nombre vacío", dto.CreateProductRequest{Name: "", Min: d(1), Des: d(2)}, "name"},
		{"nombre en blanco", dto.CreateProductRequest{Name: "   ", Min: d(1), Des: d(2)}, "name"},
		{"costo negativo", dto.CreateProductRequest{Name: "X", Cost: d(-1)}, "cost"},
		{"deseado menor que mínimo", dto.CreateProductRequest{Name: "X", Min: d(10), Des: d(5)}, "des"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.AddProduct(context.Background(), tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
	assert.Empty(t, s.ListProducts())
}

func TestStore_UpdateProduct_MergeParcialYTotalesCongelados(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, snapshot.NewMemoryRepository(0))
	id := addProduct(t, s, "Xícara", 10, 20, 5, 8)
	_, err := s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(4)})
	require.NoError(t, err)

	err = s.UpdateProduct(ctx, id, dto.UpdateProductRequest{Cost: dp(7)})
	require.NoError(t, err)

	p, _ := s.GetProduct(id)
	assert.Equal(t, "Xícara", p.Name)
	assertDec(t, 7, p.Cost)
	assertDec(t, 8, p.Price)
	require.Len(t, p.Entries, 1)
	assertDec(t, 20, p.Entries[0].Total, "4 * 5 se conserva")

	err = s.UpdateProduct(ctx, "XC999", dto.UpdateProductRequest{Cost: dp(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.UpdateProduct(ctx, id, dto.UpdateProductRequest{Des: dp(3)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "des < min tras el merge")
	p, _ = s.GetProduct(id)
	assertDec(t, 20, p.Des)
}

func TestStore_UpdateProduct_RestauradoConDeseadoMenorAceptaOtrosCampos(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, snapshot.NewMemoryRepository(0))
	imported := entity.NewLedger(fixedNow)
	imported.Products = append(imported.Products, &entity.Product{
		ID: "XC001", Name: "Xícara Mágica", Min: d(50), Des: d(20), Cost: d(16.49), Price: d(45),
	})
	require.NoError(t, s.Restore(ctx, imported))

	require.NoError(t, s.UpdateProduct(ctx, "XC001", dto.UpdateProductRequest{Price: dp(40)}))
	name := "Xícara Mágica Azul"
	require.NoError(t, s.UpdateProduct(ctx, "XC001", dto.UpdateProductRequest{Name: &name}))

	p, err := s.GetProduct("XC001")
	require.NoError(t, err)
	assertDec(t, 40, p.Price)
	assert.Equal(t, name, p.Name)
	assertDec(t, 20, p.Des)

	err = s.UpdateProduct(ctx, "XC001", dto.UpdateProductRequest{Des: dp(30)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tocar des vuelve a exigir des >= min")
	require.NoError(t, s.UpdateProduct(ctx, "XC001", dto.UpdateProductRequest{Min: dp(10), Des: dp(30)}))
}

func TestStore_DeleteProduct_Idempotente(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, snapshot.NewMemoryRepository(0))
	id := addProduct(t, s, "A", 1, 2, 1, 2)

	require.NoError(t, s.DeleteProduct(ctx, id))
	require.NoError(t, s.DeleteProduct(ctx, id))
	_, err := s.GetProduct(id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_AddEntry_ValoresPorDefecto(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, snapshot.NewMemoryRepository(0))
	id := addProduct(t, s, "A", 1, 2, 13.33, 35)

	entryID, err := s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(3)})
	require.NoError(t, err)
	assert.Equal(t, "EM001", entryID)

	p, _ := s.GetProduct(id)
	e := p.Entries[0]
	assert.Equal(t, "Compra", e.Kind)
	assert.Equal(t, "10/03/2026", e.Date)
	assertDec(t, 13.33, e.UnitCost)
	assertDec(t, 39.99, e.Total)

	_, err = s.AddEntry(ctx, id, dto.CreateEntryRequest{Kind: "Inventário", Quantity: d(2), UnitCost: dp(10), Date: "2026-01-17"})
	require.NoError(t, err)
	p, _ = s.GetProduct(id)
	assert.Equal(t, "17/01/2026", p.Entries[1].Date)
	assertDec(t, 20, p.Entries[1].Total)

	_, err = s.AddEntry(ctx, "XC999", dto.CreateEntryRequest{Quantity: d(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(1), Date: "31/02/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_AddWithdrawal_ProductoDesconocido(t *testing.T) {
	s := newStore(t, snapshot.NewMemoryRepository(0))
	_, err := s.AddWithdrawal(context.Background(), "XC404", dto.CreateWithdrawalRequest{Quantity: d(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RemoveMovimientos(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, snapshot.NewMemoryRepository(0))
	id := addProduct(t, s, "A", 1, 2, 1, 2)
	e1, err := s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(10)})
	require.NoError(t, err)
	e2, err := s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(5)})
	require.NoError(t, err)
	w1, err := s.AddWithdrawal(ctx, id, dto.CreateWithdrawalRequest{Quantity: d(8)})
	require.NoError(t, err)

	err = s.RemoveEntry(ctx, id, e1)
	var ise *domain.InsufficientStockError
	require.ErrorAs(t, err, &ise, "quitar 10 con stock 7 dejaría -3")
	assertDec(t, 7, ise.Available)
	assertDec(t, 10, ise.Requested)
	assertDec(t, 7, stockOf(t, s, id))

	require.NoError(t, s.RemoveEntry(ctx, id, e2))
	assertDec(t, 2, stockOf(t, s, id))

	require.NoError(t, s.RemoveWithdrawal(ctx, id, w1))
	assertDec(t, 10, stockOf(t, s, id))

	require.NoError(t, s.RemoveWithdrawal(ctx, id, w1), "ausente es no-op")
	require.NoError(t, s.RemoveEntry(ctx, "XC404", "nada"))
	assertDec(t, 10, stockOf(t, s, id))
}

func TestStore_StockIgualASumaDeMovimientos(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, snapshot.NewMemoryRepository(0))
	id := addProduct(t, s, "A", 0, 0, 1, 2)

	var entries, withdrawals []string
	for _, q := range []float64{5, 2.5, 10} {
		e, err := s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(q)})
		require.NoError(t, err)
		entries = append(entries, e)
	}
	for _, q := range []float64{3, 4.5} {
		w, err := s.AddWithdrawal(ctx, id, dto.CreateWithdrawalRequest{Quantity: d(q)})
		require.NoError(t, err)
		withdrawals = append(withdrawals, w)
	}
	require.NoError(t, s.RemoveWithdrawal(ctx, id, withdrawals[0]))
	require.NoError(t, s.RemoveEntry(ctx, id, entries[1]))

	p, _ := s.GetProduct(id)
	sum := decimal.Zero
	for _, e := range p.Entries {
		sum = sum.Add(e.Quantity)
	}
	for _, w := range p.Withdrawals {
		sum = sum.Sub(w.Quantity)
	}
	assert.True(t, sum.Equal(p.Metrics.CurrentStock))
	assertDec(t, 10.5, p.Metrics.CurrentStock)
}

func TestStore_FalloDePersistenciaRevierteLaMutacion(t *testing.T) {
	ctx := context.Background()
	repo := &failingRepo{MemoryRepository: snapshot.NewMemoryRepository(0)}
	s := newStore(t, repo)
	id := addProduct(t, s, "A", 1, 2, 1, 2)

	repo.fail = true
	_, err := s.AddProduct(ctx, dto.CreateProductRequest{Name: "B", Min: d(1), Des: d(2)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Len(t, s.ListProducts(), 1)

	_, err = s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(3)})
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assertDec(t, 0, stockOf(t, s, id))

	assert.ErrorIs(t, s.ResetAll(ctx), domain.ErrPersistence)
	assert.Len(t, s.ListProducts(), 1)

	repo.fail = false
	_, err = s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(3)})
	require.NoError(t, err)
	assertDec(t, 3, stockOf(t, s, id))
}

func TestStore_CuotaExcedida(t *testing.T) {
	s := newStore(t, snapshot.NewMemoryRepository(64))
	_, err := s.AddProduct(context.Background(), dto.CreateProductRequest{Name: "Produto com nome comprido", Min: d(1), Des: d(2)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Empty(t, s.ListProducts())
}

func TestStore_PersisteYRecarga(t *testing.T) {
	ctx := context.Background()
	repo := snapshot.NewMemoryRepository(0)
	s := newStore(t, repo)
	id := addProduct(t, s, "A", 1, 2, 3, 4)
	_, err := s.AddEntry(ctx, id, dto.CreateEntryRequest{Quantity: d(6)})
	require.NoError(t, err)

	reloaded := newStore(t, repo)
	p, err := reloaded.GetProduct(id)
	require.NoError(t, err)
	assertDec(t, 6, p.Metrics.CurrentStock)
	assert.True(t, fixedNow.Equal(reloaded.GlobalMetrics().LastUpdated))
}

func TestStore_SnapshotInvalidoIniciaVacio(t *testing.T) {
	cases := map[string]string{
		"json corrupto":        `{"version":`,
		"versión desconocida":  `{"version":"1.0","products":[]}`,
		"sin versión":          `{"products":[]}`,
		"cantidad no positiva": `{"version":"2.0","products":[{"id":"XC001","name":"A","min":0,"des":0,"cost":0,"price":0,"entradas":[{"id":"e","data":"01/01/2026","tipo":"Compra","qty":0,"cost_unit":1,"total":0}],"saidas":[]}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			repo := snapshot.NewMemoryRepository(0)
			repo.SetRaw([]byte(raw))
			s := newStore(t, repo)
			assert.Empty(t, s.ListProducts())
			assert.Equal(t, entity.LedgerVersion, s.Snapshot().Version)
		})
	}
}

func TestStore_BackupYRestore(t *testing.T) {
	ctx := context.Background()
	src := newStore(t, snapshot.NewMemoryRepository(0))
	a := addProduct(t, src, "A", 1, 5, 2, 3)
	addProduct(t, src, "B", 0, 1, 1, 1)
	_, err := src.AddEntry(ctx, a, dto.CreateEntryRequest{Quantity: d(4), Date: "02/02/2026"})
	require.NoError(t, err)
	_, err = src.AddWithdrawal(ctx, a, dto.CreateWithdrawalRequest{Quantity: d(1), Date: "03/02/2026"})
	require.NoError(t, err)

	dst := newStore(t, snapshot.NewMemoryRepository(0))
	addProduct(t, dst, "Z", 0, 0, 0, 0)
	require.NoError(t, dst.Restore(ctx, src.Snapshot()))
	assert.Equal(t, src.ListProducts(), dst.ListProducts())

	bad := src.Snapshot()
	bad.Version = "1.0"
	err = dst.Restore(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrIncompatibleSnapshot)
	assert.Equal(t, src.ListProducts(), dst.ListProducts(), "un backup rechazado no toca el ledger")

	dup := src.Snapshot()
	dup.Products = append(dup.Products, dup.Products[0].Clone())
	assert.ErrorIs(t, dst.Restore(ctx, dup), domain.ErrDuplicate)
}

func TestStore_RestoreCompletaIDsFaltantes(t *testing.T) {
	s := newStore(t, snapshot.NewMemoryRepository(0))
	imported := entity.NewLedger(fixedNow)
	imported.Products = append(imported.Products, &entity.Product{
		Name: "Sem id", Des: d(1),
		Entries: []entity.Entry{entity.NewEntry("", entity.NewDate(2026, 1, 1), entity.EntryKindPurchase, d(1), d(1))},
	})
	require.NoError(t, s.Restore(context.Background(), imported))

	list := s.ListProducts()
	require.Len(t, list, 1)
	assert.Equal(t, "XC001", list[0].ID)
	assert.Equal(t, "EM001", list[0].Entries[0].ID)
}

func TestStore_ResetAll(t *testing.T) {
	s := newStore(t, snapshot.NewMemoryRepository(0))
	addProduct(t, s, "A", 1, 2, 1, 2)
	require.NoError(t, s.ResetAll(context.Background()))
	assert.Empty(t, s.ListProducts())
	assert.Equal(t, entity.LedgerVersion, s.Snapshot().Version)
}
