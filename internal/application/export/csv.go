// Package export produce las salidas descargables del ledger: planilla CSV de stock
// y reporte PDF (este último vía un ReportGenerator inyectado).
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/inventory"
	"github.com/jhoicas/lord-inventory/pkg/money"
)

// CSVHeader cabecera fija de la planilla.
var CSVHeader = []string{
	"Produto", "Entrada", "Saída", "Mínimo", "Desejável", "Atual",
	"Status", "Custo Total", "Faturamento", "Lucro",
}

// WriteStockCSV una fila por producto, separador ';' y coma decimal.
func WriteStockCSV(w io.Writer, l *entity.Ledger) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, p := range l.Products {
		m := inventory.ComputeProductMetrics(p)
		record := []string{
			p.Name,
			money.PlainNumber(m.TotalEntryQty),
			money.PlainNumber(m.TotalWithdrawalQty),
			money.PlainNumber(p.Min),
			money.PlainNumber(p.Des),
			money.PlainNumber(m.CurrentStock),
			m.Status.Label(),
			money.Plain(m.TotalCost, 2),
			money.Plain(m.TotalRevenue, 2),
			money.Plain(m.Profit, 2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: producto %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// StockCSV igual que WriteStockCSV pero devuelve los bytes.
func StockCSV(l *entity.Ledger) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteStockCSV(&buf, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
