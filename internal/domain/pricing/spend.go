package pricing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// CategorySpend gasto acumulado de una categoría (solo productos activos).
type CategorySpend struct {
	Name         string
	Type         entity.CategoryType
	Total        decimal.Decimal
	ProductCount int
}

// TypeSpend gasto acumulado de un tipo con el desglose por categoría.
type TypeSpend struct {
	Type           entity.CategoryType
	Total          decimal.Decimal
	CategoryTotals map[string]decimal.Decimal
}

// SpendSummary resultado de AggregateSpend.
// Invariante: GrandTotal == Σ ByType.Total == Σ ByCategory.Total.
type SpendSummary struct {
	ByCategory map[string]CategorySpend
	ByType     map[entity.CategoryType]TypeSpend
	GrandTotal decimal.Decimal
}

// AggregateSpend acumula en una sola pasada el gasto de los productos activos por
// categoría y por tipo. El tipo se resuelve por nombre de categoría; una
// categoría inexistente o sin tipo reconocido cae en TypeOtros.
func AggregateSpend(products []*entity.Product, categories []entity.Category) SpendSummary {
	idx := NewCategoryIndex(categories)

	s := SpendSummary{
		ByCategory: make(map[string]CategorySpend),
		ByType:     make(map[entity.CategoryType]TypeSpend, len(entity.CategoryTypes)),
		GrandTotal: decimal.Zero,
	}
	for _, t := range entity.CategoryTypes {
		s.ByType[t] = TypeSpend{Type: t, Total: decimal.Zero, CategoryTotals: map[string]decimal.Decimal{}}
	}

	for _, p := range products {
		if p == nil || !p.Active {
			continue
		}
		t := idx.TypeOf(p.Category)

		cs, ok := s.ByCategory[p.Category]
		if !ok {
			cs = CategorySpend{Name: p.Category, Type: t, Total: decimal.Zero}
		}
		cs.Total = cs.Total.Add(p.Price)
		cs.ProductCount++
		s.ByCategory[p.Category] = cs

		ts := s.ByType[t]
		ts.Total = ts.Total.Add(p.Price)
		ts.CategoryTotals[p.Category] = ts.CategoryTotals[p.Category].Add(p.Price)
		s.ByType[t] = ts

		s.GrandTotal = s.GrandTotal.Add(p.Price)
	}
	return s
}

// TypeSelection filtro de la vista por tipo: un tipo concreto o SelectAll.
type TypeSelection string

// SelectAll selecciona todas las categorías.
const SelectAll TypeSelection = "all"

// ParseTypeSelection acepta "", "all", "todos" o un tipo conocido.
func ParseTypeSelection(s string) (TypeSelection, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", string(SelectAll), "todos":
		return SelectAll, nil
	}
	if !entity.IsKnownCategoryType(v) {
		return "", fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, s)
	}
	return TypeSelection(v), nil
}

// Matches true si la selección incluye el tipo t.
func (sel TypeSelection) Matches(t entity.CategoryType) bool {
	return sel == SelectAll || sel == "" || entity.CategoryType(sel) == t
}

// CategoryShare fila de la vista derivada: gasto de la categoría y su
// porcentaje sobre el total general.
type CategoryShare struct {
	CategorySpend
	Percentage decimal.Decimal
}

// Share porcentaje de total sobre grand, redondeado a 2 decimales; 0 si grand es 0.
func Share(total, grand decimal.Decimal) decimal.Decimal {
	if !grand.IsPositive() {
		return decimal.Zero
	}
	return total.Div(grand).Mul(hundred).Round(2)
}

// Shares devuelve las categorías del tipo seleccionado ordenadas por total
// descendente (empate por nombre ascendente). El porcentaje siempre se calcula
// contra el total general, no contra el total del tipo.
func (s SpendSummary) Shares(sel TypeSelection) []CategoryShare {
	rows := make([]CategoryShare, 0, len(s.ByCategory))
	for _, cs := range s.ByCategory {
		if !sel.Matches(cs.Type) {
			continue
		}
		rows = append(rows, CategoryShare{CategorySpend: cs, Percentage: Share(cs.Total, s.GrandTotal)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].Total.Cmp(rows[j].Total); c != 0 {
			return c > 0
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
