package repository

import "context"

// Colecciones del almacén de documentos.
const (
	CollectionProducts   = "products"
	CollectionCategories = "categories"
)

// Document documento crudo de una colección: id asignado por el almacén y sus campos.
type Document struct {
	ID     string
	Fields map[string]any
}

// DocumentStore puerto genérico de persistencia por colecciones (Firestore,
// Postgres JSONB o memoria). Las implementaciones devuelven errores de I/O sin
// envolver; los casos de uso los traducen a errores de dominio.
type DocumentStore interface {
	ListAll(ctx context.Context, collection string) ([]Document, error)
	// ListWhere devuelve los documentos cuyo campo field es igual a value.
	ListWhere(ctx context.Context, collection, field string, value any) ([]Document, error)
	// Get devuelve nil, nil si el documento no existe.
	Get(ctx context.Context, collection, id string) (*Document, error)
	Insert(ctx context.Context, collection string, fields map[string]any) (string, error)
	// UpdateFields fusiona fields en el documento; domain.ErrNotFound si no existe.
	UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}
