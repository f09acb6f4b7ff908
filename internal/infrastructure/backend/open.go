// Package backend abre el almacén de documentos configurado en STORE_BACKEND.
package backend

import (
	"context"
	"fmt"

	"github.com/jhoicas/precios-api/internal/domain/repository"
	"github.com/jhoicas/precios-api/internal/infrastructure/firestore"
	"github.com/jhoicas/precios-api/internal/infrastructure/memory"
	"github.com/jhoicas/precios-api/internal/infrastructure/postgres"
	"github.com/jhoicas/precios-api/pkg/config"
	"github.com/jhoicas/precios-api/pkg/logger"
)

// Open conecta el backend y devuelve el almacén junto con su función de cierre.
// En postgres crea la tabla de documentos si no existe.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.DocumentStore, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("backend postgres: %w", err)
		}
		store := postgres.NewDocumentStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("backend postgres: esquema: %w", err)
		}
		log.Info().Str("backend", cfg.Store.Backend).Str("db", cfg.DB.DBName).Msg("almacén de documentos listo")
		return store, pool.Close, nil

	case config.BackendFirestore:
		client, err := firestore.NewClient(ctx, cfg.Firestore)
		if err != nil {
			return nil, nil, fmt.Errorf("backend firestore: %w", err)
		}
		log.Info().Str("backend", cfg.Store.Backend).Str("project", cfg.Firestore.ProjectID).Msg("almacén de documentos listo")
		return firestore.NewDocumentStore(client), func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("cerrar cliente firestore")
			}
		}, nil

	case config.BackendMemory:
		log.Warn().Str("backend", cfg.Store.Backend).Msg("almacén en memoria: los datos no se conservan al reiniciar")
		return memory.NewDocumentStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("backend %q no soportado", cfg.Store.Backend)
	}
}
