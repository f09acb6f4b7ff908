package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/application/snapshot"
	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/pricing"
	"github.com/jhoicas/precios-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos. Los cambios de precio quedan en el
// historial del producto; el borrado lógico se maneja con SetActive.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	now        func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, now: time.Now}
}

// Create crea un producto activo con la entrada inicial del historial.
// Tienda, categoría, nombre y precio son obligatorios.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	store := strings.TrimSpace(in.Store)
	category := strings.TrimSpace(in.Category)
	if name == "" || store == "" || category == "" || in.Price == nil {
		return nil, fmt.Errorf("%w: nombre, tienda, categoría y precio son obligatorios", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}

	product := entity.NewProduct(name, strings.TrimSpace(in.Brand), strings.TrimSpace(in.Unit), store, category, *in.Price, uc.now())
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, domain.Unavailable("crear producto", err)
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, incluso si está inactivo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edita los campos enviados. Un precio numéricamente distinto agrega una
// entrada {precio nuevo, precio anterior, ahora} al historial.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := uc.now()

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		product.Name = name
	}
	if in.Brand != nil {
		product.Brand = strings.TrimSpace(*in.Brand)
	}
	if in.Unit != nil {
		product.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.Store != nil {
		product.Store = strings.TrimSpace(*in.Store)
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
		}
		product.ChangePrice(*in.Price, now)
	}
	product.UpdatedAt = now

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, domain.Unavailable("actualizar producto", err)
	}
	return toProductResponse(product), nil
}

// SetActive activa o desactiva (borrado lógico) un producto.
func (uc *ProductUseCase) SetActive(ctx context.Context, id string, active bool) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SetActive(ctx, id, active); err != nil {
		return nil, domain.Unavailable("cambiar estado", err)
	}
	product.Active = active
	return toProductResponse(product), nil
}

// Delete elimina el producto y su historial.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return domain.Unavailable("eliminar producto", uc.repo.Delete(ctx, id))
}

// List devuelve los productos que cumplen el filtro, en el orden del almacén.
// Por defecto solo activos; IncludeInactive lista todos.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error) {
	filter, err := parseFilter(q)
	if err != nil {
		return nil, err
	}
	snap, err := snapshot.Load(ctx, uc.repo, uc.categories, q.IncludeInactive)
	if err != nil {
		return nil, err
	}
	matched := pricing.FilterProducts(snap.Products, snap.Categories, filter)
	return &dto.ProductListResponse{
		Items:    toProductList(matched),
		Total:    len(matched),
		Warnings: snap.Warnings(),
	}, nil
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Unavailable("obtener producto", err)
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return product, nil
}
