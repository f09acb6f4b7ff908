package repository

import (
	"context"

	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
)

// ProductList resultado de un listado. Skipped son los documentos que no se
// pudieron interpretar; no están en Products ni cuentan en ningún total.
type ProductList struct {
	Products []*entity.Product
	Skipped  []*domain.DocumentError
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe. Incluye productos inactivos.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update persiste los campos editables, el precio y el historial completo.
	// Las entradas del historial con Problem se reescriben con su valor original.
	Update(ctx context.Context, product *entity.Product) error
	SetActive(ctx context.Context, id string, active bool) error
	// ListAll devuelve activos e inactivos.
	ListAll(ctx context.Context) (*ProductList, error)
	// ListActive devuelve los productos cuyo Active decodificado es true
	// (un documento sin el campo active cuenta como activo).
	ListActive(ctx context.Context) (*ProductList, error)
	Delete(ctx context.Context, id string) error
}
