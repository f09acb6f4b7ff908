package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/application/usecase"
	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
)

func TestProductUseCase_CreateValida(t *testing.T) {
	products, categories := newRepos()
	uc := usecase.NewProductUseCase(products, categories)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Leche", Category: "Lácteos", Price: decPtr("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin tienda")

	noPrice := createReq("Leche", "Lácteos", "1")
	noPrice.Price = nil
	_, err = uc.Create(ctx, noPrice)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin precio")

	_, err = uc.Create(ctx, createReq("Leche", "Lácteos", "-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	p, err := uc.Create(ctx, createReq(" Leche ", "Lácteos", "0"))
	require.NoError(t, err)
	assert.Equal(t, "Leche", p.Name)
	assert.True(t, p.Active)
	require.Len(t, p.PriceHistory, 1)
	assert.True(t, p.PriceHistory[0].IsInitial)
}

func TestProductUseCase_UpdateAgregaHistorialSoloSiCambia(t *testing.T) {
	products, categories := newRepos()
	uc := usecase.NewProductUseCase(products, categories)
	ctx := context.Background()

	p, err := uc.Create(ctx, createReq("Pan", "Panadería", "2.50"))
	require.NoError(t, err)

	got, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{Price: decPtr("2.5"), Brand: strPtr("Bimbo")})
	require.NoError(t, err)
	assert.Len(t, got.PriceHistory, 1, "mismo precio numérico no agrega entrada")
	assert.Equal(t, "Bimbo", got.Brand)

	got, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Price: decPtr("3")})
	require.NoError(t, err)
	require.Len(t, got.PriceHistory, 2)
	require.NotNil(t, got.PriceHistory[1].PreviousPrice)
	assert.True(t, got.PriceHistory[1].PreviousPrice.Equal(decimal.RequireFromString("2.5")))

	stored, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, stored.PriceHistory, 2)
	assert.True(t, stored.Price.Equal(decimal.NewFromInt(3)))

	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_NoEncontrado(t *testing.T) {
	products, categories := newRepos()
	uc := usecase.NewProductUseCase(products, categories)
	ctx := context.Background()

	_, err := uc.GetByID(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(ctx, "x", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.SetActive(ctx, "x", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "x"), domain.ErrNotFound)
}

func TestProductUseCase_BorradoLogicoYListado(t *testing.T) {
	products, categories := newRepos()
	ctx := context.Background()
	require.NoError(t, categories.Create(ctx, &entity.Category{Name: "Lácteos", Type: "alimento", Group: "Frescos"}))
	require.NoError(t, categories.Create(ctx, &entity.Category{Name: "Detergentes", Type: "limpieza"}))

	uc := usecase.NewProductUseCase(products, categories)
	milk, err := uc.Create(ctx, createReq("Milk", "Lácteos", "3"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, createReq("Ariel", "Detergentes", "10"))
	require.NoError(t, err)
	cheese, err := uc.Create(ctx, createReq("Cheese", "Lácteos", "8"))
	require.NoError(t, err)

	off, err := uc.SetActive(ctx, cheese.ID, false)
	require.NoError(t, err)
	assert.False(t, off.Active)

	list, err := uc.List(ctx, dto.ProductQuery{Type: "alimento"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, milk.ID, list.Items[0].ID)

	list, err = uc.List(ctx, dto.ProductQuery{Type: "ALIMENTO", IncludeInactive: true})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	list, err = uc.List(ctx, dto.ProductQuery{PriceMin: "5"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Ariel", list.Items[0].Name)

	got, err := uc.GetByID(ctx, cheese.ID)
	require.NoError(t, err)
	assert.False(t, got.Active, "inactivo accesible por id")

	require.NoError(t, uc.Delete(ctx, cheese.ID))
	_, err = uc.GetByID(ctx, cheese.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_ListFiltroInvalido(t *testing.T) {
	products, categories := newRepos()
	uc := usecase.NewProductUseCase(products, categories)

	_, err := uc.List(context.Background(), dto.ProductQuery{PriceMin: "barato"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(context.Background(), dto.ProductQuery{Type: "bebidas"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_ListFallaSiFallanCategorias(t *testing.T) {
	products, categories := newRepos()
	uc := usecase.NewProductUseCase(products, failingCategories{categories})

	_, err := uc.List(context.Background(), dto.ProductQuery{})
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.ErrorIs(t, err, errStore)
}
