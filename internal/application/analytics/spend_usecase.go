// Package analytics contiene los casos de uso de reportes: gasto por categoría
// y tipo, e historial mensual de precios.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/application/snapshot"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/pricing"
	"github.com/jhoicas/precios-api/internal/domain/repository"
)

// SpendUseCase reporte de gasto acumulado de los productos activos.
type SpendUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	pdf        SpendReportPDFGenerator
	now        func() time.Time
}

// NewSpendUseCase construye el caso de uso. pdf puede ser nil si no se expone el PDF.
func NewSpendUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	pdf SpendReportPDFGenerator,
) *SpendUseCase {
	return &SpendUseCase{products: products, categories: categories, pdf: pdf, now: time.Now}
}

// Report construye el reporte de gasto.
//
// Si la lectura de productos o categorías falla se devuelve
// domain.ErrDataUnavailable sin agregados parciales. Los productos ilegibles
// quedan fuera de los totales y se informan en Warnings.
func (uc *SpendUseCase) Report(ctx context.Context, typeFilter string) (*dto.SpendReportResponse, error) {
	sel, err := pricing.ParseTypeSelection(typeFilter)
	if err != nil {
		return nil, err
	}

	snap, err := snapshot.Load(ctx, uc.products, uc.categories, false)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}

	summary := pricing.AggregateSpend(snap.Products, snap.Categories)
	out := toSpendReport(summary, sel, uc.now())
	out.Warnings = snap.Warnings()
	return out, nil
}

// ReportPDF genera el reporte y lo renderiza como PDF.
func (uc *SpendUseCase) ReportPDF(ctx context.Context, typeFilter string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, errors.New("analytics: generador PDF no configurado")
	}
	report, err := uc.Report(ctx, typeFilter)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSpendPDF(ctx, report)
}

func toSpendReport(s pricing.SpendSummary, sel pricing.TypeSelection, now time.Time) *dto.SpendReportResponse {
	out := &dto.SpendReportResponse{
		Selection:   string(sel),
		GrandTotal:  s.GrandTotal.Round(2),
		ByType:      make([]dto.TypeSpendDTO, 0, len(entity.CategoryTypes)),
		GeneratedAt: now,
	}
	for _, t := range entity.CategoryTypes {
		ts := s.ByType[t]
		totals := make(map[string]decimal.Decimal, len(ts.CategoryTotals))
		for name, v := range ts.CategoryTotals {
			totals[name] = v.Round(2)
		}
		out.ByType = append(out.ByType, dto.TypeSpendDTO{
			Type:           string(t),
			Total:          ts.Total.Round(2),
			Percentage:     pricing.Share(ts.Total, s.GrandTotal),
			CategoryTotals: totals,
		})
	}

	rows := s.Shares(sel)
	out.Categories = make([]dto.CategorySpendDTO, 0, len(rows))
	for _, r := range rows {
		out.Categories = append(out.Categories, dto.CategorySpendDTO{
			Name:         r.Name,
			Type:         string(r.Type),
			Total:        r.Total.Round(2),
			ProductCount: r.ProductCount,
			Percentage:   r.Percentage,
		})
	}
	return out
}
