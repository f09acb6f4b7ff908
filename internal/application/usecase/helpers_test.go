package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/repository"
	"github.com/jhoicas/precios-api/internal/infrastructure/docstore"
	"github.com/jhoicas/precios-api/internal/infrastructure/memory"
)

var errStore = errors.New("almacén caído")

func newRepos() (*docstore.ProductRepo, *docstore.CategoryRepo) {
	store := memory.NewDocumentStore()
	return docstore.NewProductRepository(store, nil), docstore.NewCategoryRepository(store)
}

func newStoreRepos() (*memory.DocumentStore, *docstore.ProductRepo, *docstore.CategoryRepo) {
	store := memory.NewDocumentStore()
	return store, docstore.NewProductRepository(store, nil), docstore.NewCategoryRepository(store)
}

// seedLegacyProducts inserta A (válido), B (precio ilegible) y Legacy (sin
// campo active) en Lácteos. Devuelve el id de B.
func seedLegacyProducts(t *testing.T, store *memory.DocumentStore, categories *docstore.CategoryRepo) string {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, categories.Create(ctx, &entity.Category{Name: "Lácteos", Type: "alimento"}))
	_, err := store.Insert(ctx, repository.CollectionProducts, map[string]any{
		"name": "A", "category": "Lácteos", "price": 10.0, "active": true,
	})
	require.NoError(t, err)
	badID, err := store.Insert(ctx, repository.CollectionProducts, map[string]any{
		"name": "B", "category": "Lácteos", "price": "diez", "active": true,
	})
	require.NoError(t, err)
	_, err = store.Insert(ctx, repository.CollectionProducts, map[string]any{
		"name": "Legacy", "category": "Lácteos", "price": 5.0,
	})
	require.NoError(t, err)
	return badID
}

func productNames(items []dto.ProductResponse) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func createReq(name, category, price string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:     name,
		Store:    "Éxito",
		Category: category,
		Price:    decPtr(price),
	}
}

// failingCategories falla en ListAll.
type failingCategories struct {
	repository.CategoryRepository
}

func (failingCategories) ListAll(context.Context) ([]entity.Category, error) {
	return nil, errStore
}

// gatedCategories bloquea el primer ListAll hasta que se cierre release.
type gatedCategories struct {
	repository.CategoryRepository
	entered chan struct{}
	release chan struct{}
	calls   int
}

func (g *gatedCategories) ListAll(ctx context.Context) ([]entity.Category, error) {
	g.calls++
	if g.calls == 1 {
		close(g.entered)
		<-g.release
	}
	return g.CategoryRepository.ListAll(ctx)
}
