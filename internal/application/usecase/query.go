package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/pricing"
)

// parseFilter convierte la query string en un CatalogFilter. Solo falla con
// precios no numéricos o negativos, o con un tipo desconocido.
func parseFilter(q dto.ProductQuery) (pricing.CatalogFilter, error) {
	f := pricing.CatalogFilter{
		Text:     strings.TrimSpace(q.Q),
		Category: strings.TrimSpace(q.Category),
		Type:     strings.ToLower(strings.TrimSpace(q.Type)),
		Group:    strings.TrimSpace(q.Group),
	}
	if f.Type != "" && !entity.IsKnownCategoryType(f.Type) {
		return f, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, q.Type)
	}
	var err error
	if f.PriceMin, err = parseBound("price_min", q.PriceMin); err != nil {
		return f, err
	}
	if f.PriceMax, err = parseBound("price_max", q.PriceMax); err != nil {
		return f, err
	}
	return f, nil
}

func parseBound(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil, fmt.Errorf("%w: %s debe ser un número >= 0", domain.ErrInvalidInput, name)
	}
	return &d, nil
}
