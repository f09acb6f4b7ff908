package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/pricing"
)

func product(name, category, price string, active bool) *entity.Product {
	return &entity.Product{Name: name, Category: category, Price: dec(price), Active: active}
}

func spendFixture() ([]*entity.Product, []entity.Category) {
	cats := []entity.Category{
		{Name: "Lácteos", Type: "alimento", Group: "Frescos"},
		{Name: "Panadería", Type: "ALIMENTO", Group: "Frescos"},
		{Name: "Detergentes", Type: "limpieza", Group: "Ropa"},
		{Name: "Mascotas", Type: ""},
	}
	products := []*entity.Product{
		product("Leche", "Lácteos", "1200.50", true),
		product("Yogur", "Lácteos", "800", true),
		product("Pan", "Panadería", "500", true),
		product("Ariel", "Detergentes", "2500", true),
		product("Croquetas", "Mascotas", "1000", true),
		product("Pilas", "Ferretería", "999.50", true), // categoría inexistente
		product("Queso", "Lácteos", "5000", false),     // borrado lógico
	}
	return products, cats
}

func TestAggregateSpend_Conservacion(t *testing.T) {
	products, cats := spendFixture()
	s := pricing.AggregateSpend(products, cats)

	assert.True(t, s.GrandTotal.Equal(dec("7000")), "total general: %s", s.GrandTotal)

	sumTypes := decimal.Zero
	for _, ts := range s.ByType {
		sumTypes = sumTypes.Add(ts.Total)
	}
	sumCats := decimal.Zero
	for _, cs := range s.ByCategory {
		sumCats = sumCats.Add(cs.Total)
	}
	assert.True(t, s.GrandTotal.Equal(sumTypes))
	assert.True(t, s.GrandTotal.Equal(sumCats))
}

func TestAggregateSpend_ResolucionDeTipo(t *testing.T) {
	products, cats := spendFixture()
	s := pricing.AggregateSpend(products, cats)

	require.Len(t, s.ByType, 3)
	assert.True(t, s.ByType[entity.TypeAlimento].Total.Equal(dec("2500.50")))
	assert.True(t, s.ByType[entity.TypeLimpieza].Total.Equal(dec("2500")))
	assert.True(t, s.ByType[entity.TypeOtros].Total.Equal(dec("1999.50")))

	assert.Equal(t, entity.TypeOtros, s.ByCategory["Ferretería"].Type)
	assert.Equal(t, entity.TypeOtros, s.ByCategory["Mascotas"].Type)
	assert.True(t, s.ByType[entity.TypeOtros].CategoryTotals["Ferretería"].Equal(dec("999.50")))
}

func TestAggregateSpend_ExcluyeInactivos(t *testing.T) {
	products, cats := spendFixture()
	s := pricing.AggregateSpend(products, cats)

	lacteos := s.ByCategory["Lácteos"]
	assert.Equal(t, 2, lacteos.ProductCount)
	assert.True(t, lacteos.Total.Equal(dec("2000.50")))
}

func TestAggregateSpend_SinProductos(t *testing.T) {
	s := pricing.AggregateSpend(nil, nil)
	assert.True(t, s.GrandTotal.IsZero())
	assert.Len(t, s.ByType, 3)
	assert.Empty(t, s.Shares(pricing.SelectAll))
}

func TestShares_LimitesYOrden(t *testing.T) {
	products, cats := spendFixture()
	s := pricing.AggregateSpend(products, cats)

	rows := s.Shares(pricing.SelectAll)
	require.Len(t, rows, 5)
	// 2500, 2000.50, 1000, 999.50, 500
	assert.Equal(t, "Detergentes", rows[0].Name)
	assert.Equal(t, "Lácteos", rows[1].Name)
	assert.Equal(t, "Mascotas", rows[2].Name)
	assert.Equal(t, "Ferretería", rows[3].Name)
	assert.Equal(t, "Panadería", rows[4].Name)

	sum := decimal.Zero
	for _, r := range rows {
		assert.False(t, r.Percentage.IsNegative())
		assert.True(t, r.Percentage.LessThanOrEqual(dec("100")))
		sum = sum.Add(r.Percentage)
	}
	assert.True(t, sum.Sub(dec("100")).Abs().LessThanOrEqual(dec("0.05")), "suma de porcentajes: %s", sum)
}

func TestShares_EmpateOrdenaPorNombre(t *testing.T) {
	s := pricing.AggregateSpend([]*entity.Product{
		product("b", "Zeta", "10", true),
		product("a", "Alfa", "10", true),
	}, nil)
	rows := s.Shares(pricing.SelectAll)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alfa", rows[0].Name)
	assert.True(t, rows[0].Percentage.Equal(dec("50")))
}

func TestShares_FiltroPorTipoUsaTotalGeneral(t *testing.T) {
	products, cats := spendFixture()
	s := pricing.AggregateSpend(products, cats)

	rows := s.Shares(pricing.TypeSelection(entity.TypeLimpieza))
	require.Len(t, rows, 1)
	assert.Equal(t, "Detergentes", rows[0].Name)
	// 2500 / 7000 * 100
	assert.True(t, rows[0].Percentage.Equal(dec("35.71")), "porcentaje: %s", rows[0].Percentage)
}

func TestShare_TotalCero(t *testing.T) {
	assert.True(t, pricing.Share(dec("10"), decimal.Zero).IsZero())
}

func TestParseTypeSelection(t *testing.T) {
	for _, in := range []string{"", "all", "Todos"} {
		sel, err := pricing.ParseTypeSelection(in)
		require.NoError(t, err)
		assert.Equal(t, pricing.SelectAll, sel)
	}

	sel, err := pricing.ParseTypeSelection(" Limpieza ")
	require.NoError(t, err)
	assert.True(t, sel.Matches(entity.TypeLimpieza))
	assert.False(t, sel.Matches(entity.TypeAlimento))

	_, err = pricing.ParseTypeSelection("bebidas")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAggregateSpend_Idempotente(t *testing.T) {
	products, cats := spendFixture()
	a := pricing.AggregateSpend(products, cats)
	b := pricing.AggregateSpend(products, cats)
	assert.Equal(t, a.Shares(pricing.SelectAll), b.Shares(pricing.SelectAll))
	assert.True(t, a.GrandTotal.Equal(b.GrandTotal))
}
