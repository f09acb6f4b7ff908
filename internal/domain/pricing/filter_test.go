package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/pricing"
)

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func names(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterProducts_Conjuncion(t *testing.T) {
	cats := []entity.Category{
		{Name: "Lácteos", Type: "alimento", Group: "Frescos"},
		{Name: "Panadería", Type: "alimento", Group: "Panes"},
	}
	products := []*entity.Product{
		{Name: "Milk", Brand: "Alpina", Category: "Lácteos", Price: dec("3")},
		{Name: "Bread", Brand: "Bimbo", Category: "Panadería", Price: dec("2")},
	}

	got := pricing.FilterProducts(products, cats, pricing.CatalogFilter{Type: "alimento", PriceMin: ptr(dec("2.5"))})
	assert.Equal(t, []string{"Milk"}, names(got))

	got = pricing.FilterProducts(products, cats, pricing.CatalogFilter{Group: "Panes"})
	assert.Equal(t, []string{"Bread"}, names(got))
}

func TestFilterProducts_TextoEnNombreOMarca(t *testing.T) {
	products := []*entity.Product{
		{Name: "Leche entera", Brand: "Alquería", Price: dec("1")},
		{Name: "Arroz", Brand: "Diana", Price: dec("1")},
		{Name: "Detergente", Brand: "LECHERITA", Price: dec("1")},
	}
	got := pricing.FilterProducts(products, nil, pricing.CatalogFilter{Text: "LeCh"})
	assert.Equal(t, []string{"Leche entera", "Detergente"}, names(got))
}

func TestFilterProducts_RangoInclusivo(t *testing.T) {
	products := []*entity.Product{
		{Name: "a", Price: dec("1")},
		{Name: "b", Price: dec("2")},
		{Name: "c", Price: dec("3")},
	}
	got := pricing.FilterProducts(products, nil, pricing.CatalogFilter{PriceMin: ptr(dec("2")), PriceMax: ptr(dec("3.00"))})
	assert.Equal(t, []string{"b", "c"}, names(got))

	got = pricing.FilterProducts(products, nil, pricing.CatalogFilter{PriceMax: ptr(dec("1"))})
	assert.Equal(t, []string{"a"}, names(got))
}

func TestFilterProducts_CategoriaSinResolverNoCoincideConTipo(t *testing.T) {
	products := []*entity.Product{{Name: "x", Category: "Fantasma", Price: dec("1")}}

	assert.Empty(t, pricing.FilterProducts(products, nil, pricing.CatalogFilter{Type: "otros"}))
	assert.Empty(t, pricing.FilterProducts(products, nil, pricing.CatalogFilter{Group: "Frescos"}))
	assert.Len(t, pricing.FilterProducts(products, nil, pricing.CatalogFilter{Category: "Fantasma"}), 1)
}

func TestFilterProducts_SinFiltroDevuelveTodoEnOrden(t *testing.T) {
	products := []*entity.Product{{Name: "z"}, {Name: "a"}, {Name: "m"}}
	f := pricing.CatalogFilter{}
	assert.True(t, f.IsEmpty())
	assert.Equal(t, []string{"z", "a", "m"}, names(pricing.FilterProducts(products, nil, f)))
}

func TestDistinctGroups(t *testing.T) {
	cats := []entity.Category{
		{Name: "a", Type: "alimento", Group: "Lácteos"},
		{Name: "b", Type: "alimento", Group: "Frutas"},
		{Name: "c", Type: "alimento", Group: "Lácteos"},
		{Name: "d", Type: "limpieza", Group: "Cocina"},
		{Name: "e", Type: "alimento"},
	}
	assert.Equal(t, []string{"Frutas", "Lácteos"}, pricing.DistinctGroups(cats, entity.TypeAlimento))
	assert.Equal(t, []string{"Cocina"}, pricing.DistinctGroups(cats, entity.TypeLimpieza))
	assert.Empty(t, pricing.DistinctGroups(cats, entity.TypeOtros))
}

func TestGroupCategories(t *testing.T) {
	cats := []entity.Category{
		{Name: "Yogur", Type: "alimento", Group: "Lácteos"},
		{Name: "Leche", Type: "alimento", Group: "Lácteos"},
		{Name: "Manzana", Type: "alimento", Group: "Frutas"},
		{Name: "Sal", Type: "alimento"},
		{Name: "Velas", Type: "decoración"},
	}
	view := pricing.GroupCategories(cats)

	assert.Len(t, view, 3)
	assert.Equal(t, entity.TypeAlimento, view[0].Type)
	groups := view[0].Groups
	assert.Len(t, groups, 3)
	assert.Equal(t, "Frutas", groups[0].Name)
	assert.Equal(t, "Lácteos", groups[1].Name)
	assert.Equal(t, "Leche", groups[1].Categories[0].Name)
	assert.Equal(t, "", groups[2].Name, "sin grupo va al final")

	assert.Empty(t, view[1].Groups)
	assert.Equal(t, entity.TypeOtros, view[2].Type)
	assert.Equal(t, "Velas", view[2].Groups[0].Categories[0].Name)
}
