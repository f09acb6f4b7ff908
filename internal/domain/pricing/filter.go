package pricing

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/precios-api/internal/domain/entity"
)

// CatalogFilter estado serializable de los filtros del listado. Un campo vacío
// (o nil) no restringe. Todas las restricciones se combinan con AND.
type CatalogFilter struct {
	Text     string           `json:"text,omitempty"`
	Category string           `json:"category,omitempty"`
	Type     string           `json:"type,omitempty"`
	Group    string           `json:"group,omitempty"`
	PriceMin *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax *decimal.Decimal `json:"price_max,omitempty"`
}

// IsEmpty true si el filtro no tiene restricciones.
func (f CatalogFilter) IsEmpty() bool {
	return f.Text == "" && f.Category == "" && f.Type == "" && f.Group == "" &&
		f.PriceMin == nil && f.PriceMax == nil
}

// FilterProducts devuelve, en el orden de entrada, los productos que cumplen f.
// Nunca falla: una categoría que no resuelve simplemente no coincide con los
// filtros de tipo o grupo.
func FilterProducts(products []*entity.Product, categories []entity.Category, f CatalogFilter) []*entity.Product {
	idx := NewCategoryIndex(categories)
	text := strings.ToLower(f.Text)
	wantType := entity.ParseCategoryType(f.Type)

	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.Brand), text) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Type != "" || f.Group != "" {
			c, ok := idx.Resolve(p.Category)
			if !ok {
				continue
			}
			if f.Type != "" && c.ResolvedType() != wantType {
				continue
			}
			if f.Group != "" && c.Group != f.Group {
				continue
			}
		}
		if f.PriceMin != nil && p.Price.LessThan(*f.PriceMin) {
			continue
		}
		if f.PriceMax != nil && p.Price.GreaterThan(*f.PriceMax) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// DistinctGroups grupos distintos (no vacíos) de las categorías del tipo t,
// ordenados ascendentemente.
func DistinctGroups(categories []entity.Category, t entity.CategoryType) []string {
	seen := make(map[string]struct{})
	groups := make([]string, 0)
	for _, c := range categories {
		if c.Group == "" || c.ResolvedType() != t {
			continue
		}
		if _, ok := seen[c.Group]; ok {
			continue
		}
		seen[c.Group] = struct{}{}
		groups = append(groups, c.Group)
	}
	sort.Strings(groups)
	return groups
}
