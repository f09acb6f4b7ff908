package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/pricing"
	"github.com/jhoicas/precios-api/internal/domain/repository"
)

// CategoryUseCase catálogo de categorías. Las categorías son datos de
// referencia: borrarlas no modifica los productos que las nombran.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	now  func() time.Time
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, now: time.Now}
}

// Create crea una categoría con nombre único. Tipo vacío se guarda como "otros".
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.normalize(in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.FindByName(ctx, c.Name)
	if err != nil {
		return nil, domain.Unavailable("buscar categoría", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("categoría %q: %w", c.Name, domain.ErrDuplicate)
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, domain.Unavailable("crear categoría", err)
	}
	resp := toCategoryResponse(*c)
	return &resp, nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, domain.Unavailable("categorías", err)
	}
	return toCategoryList(list), nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Unavailable("obtener categoría", err)
	}
	if c == nil {
		return fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}
	return domain.Unavailable("eliminar categoría", uc.repo.Delete(ctx, id))
}

// Seed crea las categorías de defs que no existan por nombre. Es idempotente:
// una segunda ejecución no crea nada.
func (uc *CategoryUseCase) Seed(ctx context.Context, defs []entity.Category) (*dto.SeedResultResponse, error) {
	existing, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, domain.Unavailable("categorías", err)
	}
	names := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		names[c.Name] = struct{}{}
	}

	res := &dto.SeedResultResponse{}
	for _, def := range defs {
		c, err := uc.normalize(dto.CreateCategoryRequest{Name: def.Name, Type: def.Type, Group: def.Group, Icon: def.Icon})
		if err != nil {
			return res, err
		}
		if _, ok := names[c.Name]; ok {
			res.Skipped++
			continue
		}
		if err := uc.repo.Create(ctx, c); err != nil {
			return res, domain.Unavailable("crear categoría", err)
		}
		names[c.Name] = struct{}{}
		res.Created++
	}
	return res, nil
}

// Grouped devuelve la vista tipo → grupo → categorías.
func (uc *CategoryUseCase) Grouped(ctx context.Context) (*dto.GroupedCategoriesResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, domain.Unavailable("categorías", err)
	}
	view := pricing.GroupCategories(list)
	out := &dto.GroupedCategoriesResponse{Types: make([]dto.CategoryTypeDTO, 0, len(view))}
	for _, tc := range view {
		t := dto.CategoryTypeDTO{Type: string(tc.Type), Groups: make([]dto.CategoryGroupDTO, 0, len(tc.Groups))}
		for _, g := range tc.Groups {
			t.Groups = append(t.Groups, dto.CategoryGroupDTO{Name: g.Name, Categories: toCategoryList(g.Categories)})
		}
		out.Types = append(out.Types, t)
	}
	return out, nil
}

// Groups devuelve los grupos distintos de las categorías de un tipo.
func (uc *CategoryUseCase) Groups(ctx context.Context, categoryType string) (*dto.GroupsResponse, error) {
	t := strings.ToLower(strings.TrimSpace(categoryType))
	if !entity.IsKnownCategoryType(t) {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, categoryType)
	}
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, domain.Unavailable("categorías", err)
	}
	return &dto.GroupsResponse{Type: t, Groups: pricing.DistinctGroups(list, entity.CategoryType(t))}, nil
}

func (uc *CategoryUseCase) normalize(in dto.CreateCategoryRequest) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	t := strings.ToLower(strings.TrimSpace(in.Type))
	if t == "" {
		t = string(entity.TypeOtros)
	}
	if !entity.IsKnownCategoryType(t) {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, in.Type)
	}
	return &entity.Category{
		Name:      name,
		Type:      t,
		Group:     strings.TrimSpace(in.Group),
		Icon:      strings.TrimSpace(in.Icon),
		CreatedAt: uc.now(),
	}, nil
}
