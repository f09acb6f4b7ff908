package memory

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// DocumentStore almacén en memoria (desarrollo y tests). Conserva el orden de
// inserción y copia los documentos al entrar y al salir.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

type collection struct {
	order []string
	docs  map[string]map[string]any
}

// NewDocumentStore crea un almacén vacío.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{collections: make(map[string]*collection)}
}

func (s *DocumentStore) col(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]map[string]any)}
		s.collections[name] = c
	}
	return c
}

func (s *DocumentStore) ListAll(ctx context.Context, name string) ([]repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.collections[name]
	if !ok {
		return []repository.Document{}, nil
	}
	out := make([]repository.Document, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, repository.Document{ID: id, Fields: copyFields(c.docs[id])})
	}
	return out, nil
}

func (s *DocumentStore) ListWhere(ctx context.Context, name, field string, value any) ([]repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.collections[name]
	if !ok {
		return []repository.Document{}, nil
	}
	out := make([]repository.Document, 0)
	for _, id := range c.order {
		v, ok := c.docs[id][field]
		if !ok || !reflect.DeepEqual(v, value) {
			continue
		}
		out = append(out, repository.Document{ID: id, Fields: copyFields(c.docs[id])})
	}
	return out, nil
}

func (s *DocumentStore) Get(ctx context.Context, name, id string) (*repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.collections[name]
	if !ok {
		return nil, nil
	}
	f, ok := c.docs[id]
	if !ok {
		return nil, nil
	}
	return &repository.Document{ID: id, Fields: copyFields(f)}, nil
}

func (s *DocumentStore) Insert(ctx context.Context, name string, fields map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.col(name)
	id := uuid.New().String()
	c.docs[id] = copyFields(fields)
	c.order = append(c.order, id)
	return id, nil
}

func (s *DocumentStore) UpdateFields(ctx context.Context, name, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		return domain.ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return domain.ErrNotFound
	}
	for k, v := range copyFields(fields) {
		doc[k] = v
	}
	return nil
}

// Delete es idempotente: borrar un id inexistente no es error.
func (s *DocumentStore) Delete(ctx context.Context, name, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		return nil
	}
	if _, ok := c.docs[id]; !ok {
		return nil
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func copyFields(src map[string]any) map[string]any {
	if src == nil {
		return map[string]any{}
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = copyValue(v)
	}
	return dst
}

func copyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return copyFields(x)
	case []any:
		cp := make([]any, len(x))
		for i := range x {
			cp[i] = copyValue(x[i])
		}
		return cp
	default:
		return v
	}
}
