package secondary

import "context"

// Document is a schemaless record as stored in a named collection. Reads
// surface the store-generated identifier under the "id" key.
type Document map[string]interface{}

// Filter restricts GetDocuments results. Equals entries match fields exactly;
// DateGTE, when set, keeps documents whose "date" field is >= the given
// ISO day.
type Filter struct {
	Equals  map[string]string
	DateGTE string
}

// DocumentStore is the persistence port for all collections.
type DocumentStore interface {
	// CreateDocument validates doc against the collection schema and appends
	// it, returning the generated document id.
	CreateDocument(ctx context.Context, collection string, doc Document) (string, error)

	// GetDocuments returns up to limit documents matching the filter, in
	// insertion order.
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error

	// Collections lists the collection names present in the store.
	Collections(ctx context.Context) ([]string, error)
}
