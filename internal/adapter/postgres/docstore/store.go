// package docstore implements the DocumentStore port with PostgreSQL,
// one JSONB row per document.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codecommunity-2025.net/internal/core/ports/primary"
	"gitlab.com/codecommunity-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecommunity-2025.net/internal/static/errs"
)

// Store implements the DocumentStore interface with PostgreSQL
type Store struct {
	db     *sqlx.DB
	logger primary.Logger
}

var _ secondary.DocumentStore = (*Store)(nil)

// New creates a new PostgreSQL document store
func New(db *sqlx.DB, logger primary.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the backing table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS documents (
			id         UUID PRIMARY KEY,
			collection TEXT NOT NULL,
			data       JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection, created_at);
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		s.logger.Error("Failed to ensure document schema", "error", err)
		return fmt.Errorf("failed to ensure document schema: %w", err)
	}
	return nil
}

// CreateDocument validates doc against the collection schema and appends it.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc secondary.Document) (string, error) {
	if err := validateDocument(collection, doc); err != nil {
		return "", err
	}

	dataJSON, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error("Failed to marshal document", "collection", collection, "error", err)
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	docID := uuid.New().String()
	query := `
		INSERT INTO documents (id, collection, data, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = s.db.ExecContext(ctx, query, docID, collection, dataJSON, time.Now())
	if err != nil {
		s.logger.Error("Failed to create document", "collection", collection, "error", err)
		return "", fmt.Errorf("failed to create document: %w", err)
	}

	return docID, nil
}

// GetDocuments returns up to limit documents matching the filter, oldest
// first. Equality filters and the date lower bound compile to JSONB
// predicates; filter keys must name declared schema fields.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter secondary.Filter, limit int) ([]secondary.Document, error) {
	if _, ok := collectionSchemas[collection]; !ok {
		return nil, fmt.Errorf("%w: %s", errs.UnknownCollection, collection)
	}

	query := `SELECT id, data FROM documents WHERE collection = $1`
	args := []interface{}{collection}

	keys := make([]string, 0, len(filter.Equals))
	for key := range filter.Equals {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !filterableField(collection, key) {
			return nil, fmt.Errorf("field %q is not filterable in collection %q", key, collection)
		}
		args = append(args, filter.Equals[key])
		query += fmt.Sprintf(" AND data->>'%s' = $%d", key, len(args))
	}

	if filter.DateGTE != "" {
		args = append(args, filter.DateGTE)
		query += fmt.Sprintf(" AND data->>'date' >= $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at ASC LIMIT $%d", len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("Failed to query documents", "collection", collection, "error", err)
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []secondary.Document
	for rows.Next() {
		var docID string
		var dataJSON []byte
		if err := rows.Scan(&docID, &dataJSON); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc := secondary.Document{}
		if err := json.Unmarshal(dataJSON, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		doc["id"] = docID
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}

	return docs, nil
}

// Ping verifies database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Collections lists the collection names present in the store.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT collection FROM documents ORDER BY collection`
	var names []string
	if err := s.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
