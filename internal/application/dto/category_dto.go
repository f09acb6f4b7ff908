package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Type  string `json:"type"` // alimento, limpieza, otros; vacío = otros
	Group string `json:"group"`
	Icon  string `json:"icon"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`          // valor almacenado
	ResolvedType string    `json:"resolved_type"` // alimento | limpieza | otros
	Group        string    `json:"group,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryGroupDTO categorías de un grupo; Name vacío = sin grupo.
type CategoryGroupDTO struct {
	Name       string             `json:"name"`
	Categories []CategoryResponse `json:"categories"`
}

// CategoryTypeDTO grupos de un tipo.
type CategoryTypeDTO struct {
	Type   string             `json:"type"`
	Groups []CategoryGroupDTO `json:"groups"`
}

// GroupedCategoriesResponse vista tipo → grupo → categorías.
type GroupedCategoriesResponse struct {
	Types []CategoryTypeDTO `json:"types"`
}

// GroupsResponse grupos distintos de un tipo.
type GroupsResponse struct {
	Type   string   `json:"type"`
	Groups []string `json:"groups"`
}

// SeedResultResponse resultado de cargar el catálogo predefinido.
type SeedResultResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"` // ya existían por nombre
}
