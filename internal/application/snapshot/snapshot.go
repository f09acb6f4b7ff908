// Package snapshot lee juntos productos y categorías para los casos de uso
// que agregan o filtran sobre ambos.
package snapshot

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/repository"
)

// Snapshot productos y categorías leídos en la misma operación.
type Snapshot struct {
	Products   []*entity.Product
	Categories []entity.Category
	Skipped    []*domain.DocumentError
}

// Load lee productos y categorías en paralelo. Si una lectura falla se cancela
// la otra y se devuelve domain.ErrDataUnavailable sin datos parciales.
func Load(
	ctx context.Context,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	includeInactive bool,
) (*Snapshot, error) {
	var (
		s    Snapshot
		list *repository.ProductList
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if includeInactive {
			list, err = products.ListAll(gctx)
		} else {
			list, err = products.ListActive(gctx)
		}
		return domain.Unavailable("productos", err)
	})
	g.Go(func() error {
		var err error
		s.Categories, err = categories.ListAll(gctx)
		return domain.Unavailable("categorías", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.Products, s.Skipped = list.Products, list.Skipped
	return &s, nil
}

// Warnings documentos omitidos en formato de respuesta.
func (s *Snapshot) Warnings() []dto.DocumentWarningDTO {
	if len(s.Skipped) == 0 {
		return nil
	}
	out := make([]dto.DocumentWarningDTO, 0, len(s.Skipped))
	for _, e := range s.Skipped {
		out = append(out, dto.DocumentWarningDTO{ProductID: e.ID, Field: e.Field, Message: e.Reason})
	}
	return out
}
