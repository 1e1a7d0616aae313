package community

import (
	"context"
	"fmt"

	"gitlab.com/codecommunity-2025.net/internal/core/ports/primary"
	"gitlab.com/codecommunity-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecommunity-2025.net/internal/domain"
	"gitlab.com/codecommunity-2025.net/internal/static/errs"
)

var _ ICommunityService = (*CommunityService)(nil)

// CommunityService implements the ICommunityService interface. The cache is
// optional; listings fall through to the store whenever it misses or fails.
type CommunityService struct {
	store  secondary.DocumentStore
	cache  secondary.PostListCache
	logger primary.Logger
}

// NewCommunityService creates a new community service
func NewCommunityService(store secondary.DocumentStore, cache secondary.PostListCache, logger primary.Logger) *CommunityService {
	return &CommunityService{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// CreatePost validates and appends a post. Validation runs before the write,
// so an invalid request never reaches the store.
func (s *CommunityService) CreatePost(ctx context.Context, post *domain.CommunityPost) (string, error) {
	if !domain.IsSupportedLanguage(post.Language) {
		return "", fmt.Errorf("%w: %s", errs.UnsupportedLanguage, post.Language)
	}
	if !domain.IsValidPostKind(post.Kind) {
		return "", fmt.Errorf("%w: %s", errs.InvalidKind, post.Kind)
	}

	doc := secondary.Document{
		"language": post.Language,
		"kind":     post.Kind,
		"title":    post.Title,
		"content":  post.Content,
		"author":   post.Author,
	}
	postID, err := s.store.CreateDocument(ctx, domain.CollectionPosts, doc)
	if err != nil {
		s.logger.Error("Failed to create post", "error", err)
		return "", fmt.Errorf("failed to create post: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Failed to invalidate post cache", "error", err)
		}
	}

	return postID, nil
}

// ListPosts returns posts matching the optional language/kind filters, going
// through the listing cache when one is configured.
func (s *CommunityService) ListPosts(ctx context.Context, language, kind string, limit int) ([]secondary.Document, error) {
	cacheKey := fmt.Sprintf("%s|%s|%d", language, kind, limit)
	if s.cache != nil {
		items, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			s.logger.Warn("Post cache read failed", "error", err)
		} else if items != nil {
			return items, nil
		}
	}

	filter := secondary.Filter{Equals: map[string]string{}}
	if language != "" {
		filter.Equals["language"] = language
	}
	if kind != "" {
		filter.Equals["kind"] = kind
	}

	items, err := s.store.GetDocuments(ctx, domain.CollectionPosts, filter, limit)
	if err != nil {
		s.logger.Error("Failed to list posts", "error", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if items == nil {
		items = []secondary.Document{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, items); err != nil {
			s.logger.Warn("Post cache write failed", "error", err)
		}
	}

	return items, nil
}

// AddComment appends a comment to a post.
func (s *CommunityService) AddComment(ctx context.Context, comment *domain.Comment) (string, error) {
	doc := secondary.Document{
		"post_id": comment.PostID,
		"author":  comment.Author,
		"content": comment.Content,
	}
	commentID, err := s.store.CreateDocument(ctx, domain.CollectionComments, doc)
	if err != nil {
		s.logger.Error("Failed to add comment", "postId", comment.PostID, "error", err)
		return "", fmt.Errorf("failed to add comment: %w", err)
	}
	return commentID, nil
}

// ListComments returns the comments attached to a post.
func (s *CommunityService) ListComments(ctx context.Context, postID string, limit int) ([]secondary.Document, error) {
	filter := secondary.Filter{Equals: map[string]string{"post_id": postID}}
	items, err := s.store.GetDocuments(ctx, domain.CollectionComments, filter, limit)
	if err != nil {
		s.logger.Error("Failed to list comments", "postId", postID, "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if items == nil {
		items = []secondary.Document{}
	}
	return items, nil
}
