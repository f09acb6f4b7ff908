package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string           `json:"name" validate:"required,min=1,max=200"`
	Brand    string           `json:"brand"`
	Unit     string           `json:"unit"`
	Store    string           `json:"store" validate:"required"`
	Category string           `json:"category" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
}

// UpdateProductRequest edición parcial; los campos nil no se modifican.
// Un precio numéricamente distinto agrega una entrada al historial.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Brand    *string          `json:"brand"`
	Unit     *string          `json:"unit"`
	Store    *string          `json:"store"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
}

// SetActiveRequest cuerpo de PATCH /api/products/:id/active.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ProductQuery filtros del listado (query string). Vacío = sin restricción.
type ProductQuery struct {
	Q               string `query:"q"`
	Category        string `query:"category"`
	Type            string `query:"type"`
	Group           string `query:"group"`
	PriceMin        string `query:"price_min"`
	PriceMax        string `query:"price_max"`
	IncludeInactive bool   `query:"include_inactive"`
}

// PriceLogEntryDTO una observación del historial de precios.
type PriceLogEntryDTO struct {
	Price         decimal.Decimal  `json:"price"`
	Date          time.Time        `json:"date"`
	PreviousPrice *decimal.Decimal `json:"previous_price,omitempty"`
	IsInitial     bool             `json:"is_initial,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Brand        string             `json:"brand"`
	Unit         string             `json:"unit"`
	Store        string             `json:"store"`
	Category     string             `json:"category"`
	Price        decimal.Decimal    `json:"price"`
	Active       bool               `json:"active"`
	PriceHistory []PriceLogEntryDTO `json:"price_history,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// ProductListResponse lista filtrada de productos.
type ProductListResponse struct {
	Items    []ProductResponse    `json:"items"`
	Total    int                  `json:"total"`
	Warnings []DocumentWarningDTO `json:"warnings,omitempty"`
}
