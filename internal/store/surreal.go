package store

import (
	"context"
	"fmt"
	"sort"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// SurrealStore keeps favorites in a SurrealDB database. The handle is opened
// once at startup and shared by all requests; the driver is safe for
// concurrent independent operations and no transactions are used.
type SurrealStore struct {
	db   *surrealdb.DB
	name string
}

type SurrealConfig struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

func NewSurrealStore(ctx context.Context, cfg SurrealConfig) (*SurrealStore, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to surrealdb: %w", err)
	}

	if cfg.Username != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{
			Username: cfg.Username,
			Password: cfg.Password,
		}); err != nil {
			return nil, fmt.Errorf("signing in: %w", err)
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		return nil, fmt.Errorf("selecting database %q: %w", cfg.Database, err)
	}

	return &SurrealStore{db: db, name: cfg.Database}, nil
}

func (s *SurrealStore) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	created, err := surrealdb.Create[map[string]any](ctx, s.db, collection, doc)
	if err != nil {
		return "", fmt.Errorf("inserting into %s: %w", collection, err)
	}

	id, ok := (*created)["id"]
	if !ok {
		return "", fmt.Errorf("inserting into %s: no id assigned", collection)
	}
	return recordIDString(id), nil
}

func (s *SurrealStore) ListAll(ctx context.Context, collection string) ([]map[string]any, error) {
	docs, err := surrealdb.Select[[]map[string]any](ctx, s.db, collection)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}

	out := *docs
	for _, doc := range out {
		if id, ok := doc["id"]; ok {
			doc["id"] = recordIDString(id)
		}
	}
	return out, nil
}

func (s *SurrealStore) Name() string { return s.name }

// Collections lists the table names defined in the connected database.
func (s *SurrealStore) Collections(ctx context.Context) ([]string, error) {
	res, err := surrealdb.Query[map[string]any](ctx, s.db, "INFO FOR DB", nil)
	if err != nil {
		return nil, fmt.Errorf("inspecting database: %w", err)
	}
	if len(*res) == 0 {
		return nil, nil
	}

	tables, _ := (*res)[0].Result["tables"].(map[string]any)
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// recordIDString renders a storage-assigned identifier as a plain string so
// the driver's RecordID type never reaches clients.
func recordIDString(id any) string {
	switch v := id.(type) {
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
