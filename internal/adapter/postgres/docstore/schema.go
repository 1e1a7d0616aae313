package docstore

import (
	"fmt"

	"gitlab.com/codecommunity-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecommunity-2025.net/internal/domain"
	"gitlab.com/codecommunity-2025.net/internal/static/errs"
)

// fieldSpec declares one field of a collection schema. Every persisted field
// in this domain is a string.
type fieldSpec struct {
	name     string
	required bool
}

// collectionSchemas maps each known collection name to its explicit schema.
// Writes are validated against this table before they reach the database, so
// the store never depends on reflection or implicit name binding.
var collectionSchemas = map[string][]fieldSpec{
	domain.CollectionPosts: {
		{name: "language", required: true},
		{name: "kind", required: true},
		{name: "title", required: true},
		{name: "content", required: true},
		{name: "author", required: true},
	},
	domain.CollectionComments: {
		{name: "post_id", required: true},
		{name: "author", required: true},
		{name: "content", required: true},
	},
	domain.CollectionSubmissions: {
		{name: "username", required: true},
		{name: "language", required: true},
		{name: "date", required: true},
		{name: "challenge_id", required: false},
	},
}

// validateDocument checks doc against the collection schema.
func validateDocument(collection string, doc secondary.Document) error {
	schema, ok := collectionSchemas[collection]
	if !ok {
		return fmt.Errorf("%w: %s", errs.UnknownCollection, collection)
	}

	known := make(map[string]bool, len(schema))
	for _, field := range schema {
		known[field.name] = true
		value, present := doc[field.name]
		if !present {
			if field.required {
				return fmt.Errorf("%w: missing field %q", errs.SchemaViolation, field.name)
			}
			continue
		}
		if _, isString := value.(string); !isString {
			return fmt.Errorf("%w: field %q must be a string", errs.SchemaViolation, field.name)
		}
	}

	for name := range doc {
		if !known[name] {
			return fmt.Errorf("%w: unexpected field %q", errs.SchemaViolation, name)
		}
	}
	return nil
}

// filterableField reports whether a filter key names a schema field of the
// collection. Filter keys are interpolated as JSONB path literals, so only
// declared fields are accepted.
func filterableField(collection, name string) bool {
	for _, field := range collectionSchemas[collection] {
		if field.name == name {
			return true
		}
	}
	return false
}
