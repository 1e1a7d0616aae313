package community

import (
	"context"

	"gitlab.com/codecommunity-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecommunity-2025.net/internal/domain"
)

// ICommunityService manages posts and comments.
type ICommunityService interface {
	// CreatePost validates and appends a post, returning the generated id.
	CreatePost(ctx context.Context, post *domain.CommunityPost) (string, error)

	// ListPosts returns up to limit posts, optionally filtered by language
	// and kind. Empty filter values match everything.
	ListPosts(ctx context.Context, language, kind string, limit int) ([]secondary.Document, error)

	// AddComment appends a comment, returning the generated id.
	AddComment(ctx context.Context, comment *domain.Comment) (string, error)

	// ListComments returns up to limit comments for a post.
	ListComments(ctx context.Context, postID string, limit int) ([]secondary.Document, error)
}
