package community

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gitlab.com/codecommunity-2025.net/internal/core/ports/primary"
	communitysvc "gitlab.com/codecommunity-2025.net/internal/core/services/community"
	"gitlab.com/codecommunity-2025.net/internal/domain"
	"gitlab.com/codecommunity-2025.net/internal/handlers/response"
	"gitlab.com/codecommunity-2025.net/internal/static/errs"
)

const (
	defaultPostLimit    = 25
	defaultCommentLimit = 100
)

// CommunityHandler handles post and comment API requests
type CommunityHandler struct {
	communityService communitysvc.ICommunityService
	logger           primary.Logger
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(communityService communitysvc.ICommunityService, logger primary.Logger) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
		logger:           logger,
	}
}

// RegisterRoutes registers the API routes for CommunityHandler
func (h *CommunityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/posts", h.CreatePost).Methods("POST")
	router.HandleFunc("/posts", h.ListPosts).Methods("GET")
	router.HandleFunc("/comments", h.AddComment).Methods("POST")
	router.HandleFunc("/comments/{postId}", h.ListComments).Methods("GET")
}

// CreatePostRequest represents a request to create a community post
type CreatePostRequest struct {
	Language string `json:"language"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
}

// CreatePost handles post creation requests
func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	post := &domain.CommunityPost{
		Language: req.Language,
		Kind:     req.Kind,
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
	}

	postID, err := h.communityService.CreatePost(r.Context(), post)
	if err != nil {
		switch {
		case errors.Is(err, errs.UnsupportedLanguage):
			response.WriteError(w, http.StatusBadRequest, "Unsupported language")
		case errors.Is(err, errs.InvalidKind):
			response.WriteError(w, http.StatusBadRequest, "Invalid kind")
		default:
			h.logger.Error("Failed to create post", "error", err)
			response.WriteError(w, http.StatusInternalServerError, "Failed to create post")
		}
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{"id": postID})
}

// ListPosts handles post listing requests
func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	kind := r.URL.Query().Get("kind")
	limit := parseLimit(r.URL.Query().Get("limit"), defaultPostLimit)

	items, err := h.communityService.ListPosts(r.Context(), language, kind, limit)
	if err != nil {
		h.logger.Error("Failed to list posts", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// AddCommentRequest represents a request to comment on a post
type AddCommentRequest struct {
	PostID  string `json:"post_id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// AddComment handles comment creation requests
func (h *CommunityHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	comment := &domain.Comment{
		PostID:  req.PostID,
		Author:  req.Author,
		Content: req.Content,
	}

	commentID, err := h.communityService.AddComment(r.Context(), comment)
	if err != nil {
		h.logger.Error("Failed to add comment", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{"id": commentID})
}

// ListComments handles comment listing requests for a post
func (h *CommunityHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID := vars["postId"]
	limit := parseLimit(r.URL.Query().Get("limit"), defaultCommentLimit)

	items, err := h.communityService.ListComments(r.Context(), postID, limit)
	if err != nil {
		h.logger.Error("Failed to list comments", "postId", postID, "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Failed to list comments")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
