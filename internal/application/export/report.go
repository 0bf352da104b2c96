package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/lord-inventory/internal/domain/entity"
	"github.com/jhoicas/lord-inventory/internal/domain/inventory"
)

// ReportGenerator puerto de salida: renderiza el reporte de stock (p. ej. Maroto).
type ReportGenerator interface {
	GenerateStockReport(ctx context.Context, report StockReport) ([]byte, error)
}

// StockReport datos ya calculados que el generador solo tiene que dibujar.
type StockReport struct {
	Title       string
	GeneratedAt time.Time
	LastUpdated time.Time
	Products    []*entity.Product
	Metrics     []inventory.ProductMetrics // mismo índice que Products
	Global      inventory.GlobalMetrics
	Plan        inventory.PurchasePlan
}

// BuildStockReport calcula métricas, totales y sugerencias del ledger.
func BuildStockReport(l *entity.Ledger, now time.Time) StockReport {
	r := StockReport{
		Title:       "Relatório de Estoque",
		GeneratedAt: now,
		LastUpdated: l.LastUpdated,
		Products:    l.Products,
		Metrics:     make([]inventory.ProductMetrics, 0, len(l.Products)),
		Global:      inventory.ComputeGlobalMetrics(l),
		Plan:        inventory.SuggestPurchases(l),
	}
	for _, p := range l.Products {
		r.Metrics = append(r.Metrics, inventory.ComputeProductMetrics(p))
	}
	return r
}

// Service arma los archivos descargables.
type Service struct {
	reports ReportGenerator
	now     func() time.Time
}

// NewService construye el servicio. reports puede ser nil si no se ofrece PDF; now nil usa time.Now.
func NewService(reports ReportGenerator, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{reports: reports, now: now}
}

// CSV planilla de stock y nombre de archivo (estoque_YYYY-MM-DD.csv).
func (s *Service) CSV(l *entity.Ledger) ([]byte, string, error) {
	data, err := StockCSV(l)
	if err != nil {
		return nil, "", err
	}
	return data, s.filename("estoque", "csv"), nil
}

// PDF reporte de stock y nombre de archivo.
func (s *Service) PDF(ctx context.Context, l *entity.Ledger) ([]byte, string, error) {
	if s.reports == nil {
		return nil, "", fmt.Errorf("export: generador de PDF no configurado")
	}
	data, err := s.reports.GenerateStockReport(ctx, BuildStockReport(l, s.now()))
	if err != nil {
		return nil, "", err
	}
	return data, s.filename("relatorio_estoque", "pdf"), nil
}

// BackupFilename nombre del archivo de backup completo, el mismo que usa el panel web.
func (s *Service) BackupFilename() string {
	return "lord-backup-" + s.now().Format("2006-01-02") + ".json"
}

func (s *Service) filename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, s.now().Format("2006-01-02"), ext)
}
