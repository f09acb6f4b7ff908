package pricing

import "github.com/jhoicas/precios-api/internal/domain/entity"

// CategoryIndex búsqueda de categorías por nombre (join explícito producto → categoría).
// Si hay nombres repetidos gana la primera categoría encontrada.
type CategoryIndex struct {
	byName map[string]entity.Category
}

// NewCategoryIndex construye el índice en O(categorías).
func NewCategoryIndex(categories []entity.Category) CategoryIndex {
	idx := CategoryIndex{byName: make(map[string]entity.Category, len(categories))}
	for _, c := range categories {
		if _, ok := idx.byName[c.Name]; !ok {
			idx.byName[c.Name] = c
		}
	}
	return idx
}

// Resolve devuelve la categoría con ese nombre y si existe.
func (i CategoryIndex) Resolve(name string) (entity.Category, bool) {
	c, ok := i.byName[name]
	return c, ok
}

// TypeOf devuelve el tipo de la categoría; una categoría inexistente es TypeOtros.
func (i CategoryIndex) TypeOf(name string) entity.CategoryType {
	c, ok := i.Resolve(name)
	if !ok {
		return entity.TypeOtros
	}
	return c.ResolvedType()
}
