package entity

import (
	"strings"
	"time"
)

// CategoryType clasificación gruesa de una categoría.
type CategoryType string

// Tipos reconocidos. Cualquier otro valor (o vacío) se trata como TypeOtros.
const (
	TypeAlimento CategoryType = "alimento"
	TypeLimpieza CategoryType = "limpieza"
	TypeOtros    CategoryType = "otros"
)

// CategoryTypes tipos en orden de presentación.
var CategoryTypes = []CategoryType{TypeAlimento, TypeLimpieza, TypeOtros}

// ParseCategoryType normaliza un tipo almacenado; vacío o desconocido → TypeOtros.
func ParseCategoryType(s string) CategoryType {
	switch CategoryType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeAlimento:
		return TypeAlimento
	case TypeLimpieza:
		return TypeLimpieza
	default:
		return TypeOtros
	}
}

// IsKnownCategoryType true si s es uno de los tipos reconocidos.
func IsKnownCategoryType(s string) bool {
	switch CategoryType(s) {
	case TypeAlimento, TypeLimpieza, TypeOtros:
		return true
	}
	return false
}

// Category dato de referencia; los productos la referencian por Name.
type Category struct {
	ID        string
	Name      string
	Type      string // valor almacenado, sin normalizar
	Group     string // subclasificación opcional dentro del tipo
	Icon      string
	CreatedAt time.Time
}

// ResolvedType devuelve el tipo normalizado de la categoría.
func (c Category) ResolvedType() CategoryType {
	return ParseCategoryType(c.Type)
}
