package firestore

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/repository"
	"github.com/jhoicas/precios-api/pkg/config"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// DocumentStore adaptador de DocumentStore sobre Cloud Firestore.
type DocumentStore struct {
	client *firestore.Client
}

// NewClient abre un cliente Firestore. Sin CredentialsFile se usan las
// credenciales por defecto del entorno (GOOGLE_APPLICATION_CREDENTIALS, metadata).
func NewClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return client, nil
}

// NewDocumentStore construye el adaptador con un cliente ya abierto.
func NewDocumentStore(client *firestore.Client) *DocumentStore {
	return &DocumentStore{client: client}
}

func (s *DocumentStore) ListAll(ctx context.Context, collection string) ([]repository.Document, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return toDocuments(snaps), nil
}

func (s *DocumentStore) ListWhere(ctx context.Context, collection, field string, value any) ([]repository.Document, error) {
	snaps, err := s.client.Collection(collection).Where(field, "==", value).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	return toDocuments(snaps), nil
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return &repository.Document{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (s *DocumentStore) Insert(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("add %s: %w", collection, err)
	}
	return ref.ID, nil
}

// UpdateFields aplica un Update por campo; Firestore falla con NotFound si el
// documento no existe (a diferencia de Set con MergeAll).
func (s *DocumentStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, toUpdates(fields))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// toUpdates ordena por ruta para que las escrituras sean deterministas.
func toUpdates(fields map[string]any) []firestore.Update {
	paths := make([]string, 0, len(fields))
	for k := range fields {
		paths = append(paths, k)
	}
	sort.Strings(paths)
	updates := make([]firestore.Update, 0, len(paths))
	for _, p := range paths {
		updates = append(updates, firestore.Update{Path: p, Value: fields[p]})
	}
	return updates
}

func toDocuments(snaps []*firestore.DocumentSnapshot) []repository.Document {
	out := make([]repository.Document, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, repository.Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return out
}
