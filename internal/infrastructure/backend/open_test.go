package backend_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/precios-api/internal/domain/repository"
	"github.com/jhoicas/precios-api/internal/infrastructure/backend"
	"github.com/jhoicas/precios-api/pkg/config"
	"github.com/jhoicas/precios-api/pkg/logger"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Backend: config.BackendMemory}}
	store, closeFn, err := backend.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer closeFn()

	id, err := store.Insert(context.Background(), repository.CollectionCategories, map[string]any{"name": "Lácteos"})
	require.NoError(t, err)
	doc, err := store.Get(context.Background(), repository.CollectionCategories, id)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Lácteos", doc.Fields["name"])
}

func TestOpen_BackendDesconocido(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Backend: "mongo"}}
	_, _, err := backend.Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
