package secondary

import "context"

// PostListCache is a best-effort cache for post listings. A nil slice with a
// nil error means a miss; callers fall through to the store on any error.
type PostListCache interface {
	Get(ctx context.Context, key string) ([]Document, error)
	Set(ctx context.Context, key string, items []Document) error

	// Invalidate drops every cached listing. Called after a post is created.
	Invalidate(ctx context.Context) error

	// Ping verifies cache connectivity.
	Ping(ctx context.Context) error
}
