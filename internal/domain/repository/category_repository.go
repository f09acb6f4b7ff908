package repository

import (
	"context"

	"github.com/jhoicas/precios-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// FindByName devuelve nil, nil si no hay una categoría con ese nombre.
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	ListAll(ctx context.Context) ([]entity.Category, error)
	Delete(ctx context.Context, id string) error
}
