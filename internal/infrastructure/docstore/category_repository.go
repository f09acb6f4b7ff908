package docstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre cualquier DocumentStore.
type CategoryRepo struct {
	store repository.DocumentStore
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(store repository.DocumentStore) *CategoryRepo {
	return &CategoryRepo{store: store}
}

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	id, err := r.store.Insert(ctx, repository.CollectionCategories, categoryFields(category))
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = id
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	doc, err := r.store.Get(ctx, repository.CollectionCategories, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	c := decodeCategory(*doc)
	return &c, nil
}

// FindByName devuelve la primera categoría con ese nombre exacto.
func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	docs, err := r.store.ListWhere(ctx, repository.CollectionCategories, fieldName, name)
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	c := decodeCategory(docs[0])
	return &c, nil
}

func (r *CategoryRepo) ListAll(ctx context.Context) ([]entity.Category, error) {
	docs, err := r.store.ListAll(ctx, repository.CollectionCategories)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]entity.Category, 0, len(docs))
	for _, d := range docs {
		out = append(out, decodeCategory(d))
	}
	return out, nil
}

// Delete borra la categoría; los productos que la referencian no se modifican.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, repository.CollectionCategories, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
