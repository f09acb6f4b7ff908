package analytics

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/pricing"
	"github.com/jhoicas/precios-api/internal/domain/repository"
	"github.com/jhoicas/precios-api/pkg/logger"
)

// HistoryUseCase historial mensual de precios de un producto.
type HistoryUseCase struct {
	products      repository.ProductRepository
	defaultLocale language.Tag
	log           *logger.Logger
}

// NewHistoryUseCase construye el caso de uso. defaultLocale se usa cuando la
// petición no indica idioma (ej. "es").
func NewHistoryUseCase(products repository.ProductRepository, defaultLocale string, log *logger.Logger) *HistoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &HistoryUseCase{
		products:      products,
		defaultLocale: pricing.MatchLocale(defaultLocale, language.Spanish),
		log:           log,
	}
}

// MonthlyHistory reduce el historial del producto a un precio por mes.
// locale acepta un tag ("en") o un Accept-Language completo.
//
// Errores: domain.ErrNotFound si el producto no existe, domain.ErrEmptyHistory
// si no tiene historial. Las entradas malformadas se omiten y se reportan en Warnings.
func (uc *HistoryUseCase) MonthlyHistory(ctx context.Context, productID, locale string) (*dto.MonthlyHistoryResponse, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, domain.Unavailable("historial", err)
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}

	tag := pricing.MatchLocale(locale, uc.defaultLocale)
	h, err := pricing.AggregateMonthly(product.PriceHistory, pricing.LabelerFor(tag))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyHistory) {
			return nil, fmt.Errorf("producto %s: %w", productID, err)
		}
		return nil, err
	}

	out := &dto.MonthlyHistoryResponse{
		ProductID:   product.ID,
		ProductName: product.Name,
		Locale:      tag.String(),
		Months:      make([]dto.MonthlyPriceDTO, 0, len(h.Points)),
	}
	for _, p := range h.Points {
		out.Months = append(out.Months, dto.MonthlyPriceDTO{
			Year:  p.Year,
			Month: int(p.Month),
			Label: p.Label,
			Price: p.Price,
			Date:  p.Date,
		})
	}
	for _, w := range h.Skipped {
		uc.log.Warn().Str("product_id", product.ID).Int("index", w.Index).Str("field", w.Field).
			Msg("entrada de historial omitida: " + w.Reason)
		out.Warnings = append(out.Warnings, dto.WarningDTO{Index: w.Index, Field: w.Field, Message: w.Error()})
	}
	return out, nil
}
