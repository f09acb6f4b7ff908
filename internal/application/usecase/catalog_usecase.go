package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/application/snapshot"
	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/pricing"
	"github.com/jhoicas/precios-api/internal/domain/repository"
)

// CatalogUseCase refresco del catálogo (productos + categorías + filtro) por
// sesión. Si la misma sesión inicia un refresco más nuevo antes de que termine
// uno anterior, el anterior devuelve domain.ErrSuperseded y su resultado se descarta.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	tracker    *refreshTracker
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories, tracker: newRefreshTracker()}
}

// Refresh lee productos y categorías en paralelo y aplica el filtro.
func (uc *CatalogUseCase) Refresh(ctx context.Context, session string, q dto.ProductQuery) (*dto.CatalogResponse, error) {
	filter, err := parseFilter(q)
	if err != nil {
		return nil, err
	}
	gen := uc.tracker.begin(session)
	defer uc.tracker.end(session, gen)

	snap, err := snapshot.Load(ctx, uc.products, uc.categories, q.IncludeInactive)
	if err != nil {
		return nil, err
	}
	if !uc.tracker.isCurrent(session, gen) {
		return nil, fmt.Errorf("catálogo generación %d: %w", gen, domain.ErrSuperseded)
	}

	matched := pricing.FilterProducts(snap.Products, snap.Categories, filter)
	resp := &dto.CatalogResponse{
		Generation: gen,
		Products:   toProductList(matched),
		Categories: toCategoryList(snap.Categories),
		Total:      len(matched),
		Warnings:   snap.Warnings(),
	}
	if filter.Type != "" {
		resp.Groups = pricing.DistinctGroups(snap.Categories, entity.CategoryType(filter.Type))
	}
	return resp, nil
}

// refreshTracker generación en curso más reciente por sesión. Las generaciones
// salen de un contador global, así que nunca se repiten aunque la entrada de
// una sesión se borre al terminar su último refresco.
type refreshTracker struct {
	mu   sync.Mutex
	next uint64
	gens map[string]uint64
}

func newRefreshTracker() *refreshTracker {
	return &refreshTracker{gens: make(map[string]uint64)}
}

func (t *refreshTracker) begin(session string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.gens[session] = t.next
	return t.next
}

// end libera la sesión si gen sigue siendo su refresco más reciente.
func (t *refreshTracker) end(session string, gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gens[session] == gen {
		delete(t.gens, session)
	}
}

func (t *refreshTracker) isCurrent(session string, gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gens[session] == gen
}
