package snapshot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/precios-api/internal/application/snapshot"
	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/repository"
	"github.com/jhoicas/precios-api/internal/infrastructure/docstore"
	"github.com/jhoicas/precios-api/internal/infrastructure/memory"
)

var errStore = errors.New("deadline exceeded")

type failingCategories struct {
	repository.CategoryRepository
}

func (failingCategories) ListAll(context.Context) ([]entity.Category, error) { return nil, errStore }

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	products := docstore.NewProductRepository(store, nil)
	categories := docstore.NewCategoryRepository(store)

	require.NoError(t, categories.Create(ctx, &entity.Category{Name: "Lácteos", Type: "alimento"}))
	now := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	active := entity.NewProduct("Leche", "", "lt", "D1", "Lácteos", decimal.NewFromInt(3), now)
	inactive := entity.NewProduct("Queso", "", "kg", "D1", "Lácteos", decimal.NewFromInt(9), now)
	require.NoError(t, products.Create(ctx, active))
	require.NoError(t, products.Create(ctx, inactive))
	require.NoError(t, products.SetActive(ctx, inactive.ID, false))
	badID, err := store.Insert(ctx, repository.CollectionProducts, map[string]any{"name": "B", "price": "diez", "active": true})
	require.NoError(t, err)

	s, err := snapshot.Load(ctx, products, categories, false)
	require.NoError(t, err)
	require.Len(t, s.Products, 1)
	assert.Equal(t, "Leche", s.Products[0].Name)
	assert.Len(t, s.Categories, 1)
	require.Len(t, s.Warnings(), 1)
	assert.Equal(t, badID, s.Warnings()[0].ProductID)
	assert.Equal(t, "price", s.Warnings()[0].Field)

	s, err = snapshot.Load(ctx, products, categories, true)
	require.NoError(t, err)
	assert.Len(t, s.Products, 2)
}

func TestLoad_FallaDeLectura(t *testing.T) {
	products := docstore.NewProductRepository(memory.NewDocumentStore(), nil)
	s, err := snapshot.Load(context.Background(), products, failingCategories{}, false)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.ErrorIs(t, err, errStore)
}

func TestWarnings_SinOmitidos(t *testing.T) {
	assert.Nil(t, (&snapshot.Snapshot{}).Warnings())
}
