package usecase

import (
	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/domain/entity"
)

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	history := make([]dto.PriceLogEntryDTO, 0, p.PriceHistory.Len())
	for _, e := range p.PriceHistory.Entries() {
		if e.Problem != nil {
			continue
		}
		history = append(history, dto.PriceLogEntryDTO{
			Price:         e.Price,
			Date:          e.Date,
			PreviousPrice: e.PreviousPrice,
			IsInitial:     e.IsInitial,
		})
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Unit:         p.Unit,
		Store:        p.Store,
		Category:     p.Category,
		Price:        p.Price,
		Active:       p.Active,
		PriceHistory: history,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductList(products []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Type:         c.Type,
		ResolvedType: string(c.ResolvedType()),
		Group:        c.Group,
		Icon:         c.Icon,
		CreatedAt:    c.CreatedAt,
	}
}

func toCategoryList(categories []entity.Category) []dto.CategoryResponse {
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, toCategoryResponse(c))
	}
	return items
}
