package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/repository"
	"github.com/jhoicas/precios-api/pkg/logger"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre cualquier DocumentStore.
type ProductRepo struct {
	store repository.DocumentStore
	log   *logger.Logger
}

// NewProductRepository construye el adaptador de productos. log puede ser nil.
func NewProductRepository(store repository.DocumentStore, log *logger.Logger) *ProductRepo {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductRepo{store: store, log: log}
}

// Create persiste el producto y le asigna el ID generado por el almacén.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	id, err := r.store.Insert(ctx, repository.CollectionProducts, productFields(product))
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = id
	return nil
}

// GetByID obtiene un producto por ID (activo o no).
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.store.Get(ctx, repository.CollectionProducts, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	return decodeProduct(*doc)
}

// Update reescribe los campos editables y el historial completo.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if err := r.store.UpdateFields(ctx, repository.CollectionProducts, product.ID, editableFields(product)); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetActive cambia solo el flag de borrado lógico.
func (r *ProductRepo) SetActive(ctx context.Context, id string, active bool) error {
	if err := r.store.UpdateFields(ctx, repository.CollectionProducts, id, map[string]any{fieldActive: active}); err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	return nil
}

// ListAll lista todos los productos, incluidos los inactivos.
func (r *ProductRepo) ListAll(ctx context.Context) (*repository.ProductList, error) {
	docs, err := r.store.ListAll(ctx, repository.CollectionProducts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.decodeAll(docs), nil
}

// ListActive filtra sobre el Active decodificado, no sobre el campo almacenado:
// un documento sin active cuenta como activo igual que en GetByID.
func (r *ProductRepo) ListActive(ctx context.Context) (*repository.ProductList, error) {
	list, err := r.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	active := list.Products[:0]
	for _, p := range list.Products {
		if p.Active {
			active = append(active, p)
		}
	}
	list.Products = active
	return list, nil
}

// Delete borra el documento y con él su historial.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, repository.CollectionProducts, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// decodeAll separa los documentos cuyo precio actual no se puede interpretar.
func (r *ProductRepo) decodeAll(docs []repository.Document) *repository.ProductList {
	list := &repository.ProductList{Products: make([]*entity.Product, 0, len(docs))}
	for _, d := range docs {
		p, err := decodeProduct(d)
		if err != nil {
			r.log.Warn().Err(err).Str("product_id", d.ID).Msg("producto omitido: documento malformado")
			var de *domain.DocumentError
			if !errors.As(err, &de) {
				de = &domain.DocumentError{ID: d.ID, Field: "document", Reason: err.Error()}
			}
			list.Skipped = append(list.Skipped, de)
			continue
		}
		list.Products = append(list.Products, p)
	}
	return list
}
