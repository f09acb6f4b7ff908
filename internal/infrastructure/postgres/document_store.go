package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

const schemaDocuments = `
	CREATE TABLE IF NOT EXISTS documents (
		collection TEXT        NOT NULL,
		id         TEXT        NOT NULL,
		data       JSONB       NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (collection, id)
	);
	CREATE INDEX IF NOT EXISTS idx_documents_data ON documents USING GIN (data jsonb_path_ops);`

// DocumentStore almacén de documentos sobre una tabla JSONB (collection, id, data).
type DocumentStore struct {
	q Querier
}

// NewDocumentStore construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentStore(q Querier) *DocumentStore {
	return &DocumentStore{q: q}
}

// EnsureSchema crea la tabla e índice si no existen.
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schemaDocuments); err != nil {
		return fmt.Errorf("create documents schema: %w", err)
	}
	return nil
}

func (s *DocumentStore) ListAll(ctx context.Context, collection string) ([]repository.Document, error) {
	query := `SELECT id, data FROM documents WHERE collection = $1 ORDER BY created_at, id`
	rows, err := s.q.Query(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return scanDocuments(rows)
}

// ListWhere usa contención JSONB (data @> {"field": value}) para aprovechar el índice GIN.
func (s *DocumentStore) ListWhere(ctx context.Context, collection, field string, value any) ([]repository.Document, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal filter: %w", err)
	}
	query := `
		SELECT id, data FROM documents
		WHERE collection = $1 AND data @> jsonb_build_object($2::text, $3::jsonb)
		ORDER BY created_at, id`
	rows, err := s.q.Query(ctx, query, collection, field, raw)
	if err != nil {
		return nil, fmt.Errorf("list documents where: %w", err)
	}
	return scanDocuments(rows)
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	query := `SELECT id, data FROM documents WHERE collection = $1 AND id = $2`
	var doc repository.Document
	err := s.q.QueryRow(ctx, query, collection, id).Scan(&doc.ID, &doc.Fields)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &doc, nil
}

func (s *DocumentStore) Insert(ctx context.Context, collection string, fields map[string]any) (string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	id := uuid.New().String()
	now := time.Now()
	query := `
		INSERT INTO documents (collection, id, data, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, $4, $5)`
	if _, err := s.q.Exec(ctx, query, collection, id, raw, now, now); err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrDuplicate
		}
		return "", fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}

// UpdateFields fusiona fields sobre data (merge superficial, clave a clave).
func (s *DocumentStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	query := `
		UPDATE documents SET data = data || $3::jsonb, updated_at = $4
		WHERE collection = $1 AND id = $2`
	tag, err := s.q.Exec(ctx, query, collection, id, raw, time.Now())
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`
	if _, err := s.q.Exec(ctx, query, collection, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func scanDocuments(rows pgx.Rows) ([]repository.Document, error) {
	defer rows.Close()
	out := make([]repository.Document, 0)
	for rows.Next() {
		var doc repository.Document
		if err := rows.Scan(&doc.ID, &doc.Fields); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return out, nil
}
