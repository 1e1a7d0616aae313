package streaks

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codecommunity-2025.net/internal/core/ports/primary"
	"gitlab.com/codecommunity-2025.net/internal/core/services/submission"
	"gitlab.com/codecommunity-2025.net/internal/handlers/response"
	"gitlab.com/codecommunity-2025.net/internal/static/errs"
)

// StreakHandler handles submission and streak API requests
type StreakHandler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

// NewStreakHandler creates a new streak handler
func NewStreakHandler(submissionService submission.ISubmissionService, logger primary.Logger) *StreakHandler {
	return &StreakHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for StreakHandler
func (h *StreakHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/submit", h.Submit).Methods("POST")
	router.HandleFunc("/streak/{username}/{language}", h.GetStreak).Methods("GET")
}

// SubmitRequest represents a daily-solution submission. Code is accepted for
// forward compatibility but only the completion itself is recorded.
type SubmitRequest struct {
	Username    string `json:"username"`
	Language    string `json:"language"`
	Code        string `json:"code,omitempty"`
	ChallengeID string `json:"challenge_id,omitempty"`
}

// Submit handles daily-solution submission requests
func (h *StreakHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	result, err := h.submissionService.Submit(r.Context(), req.Username, req.Language, req.ChallengeID)
	if err != nil {
		if errors.Is(err, errs.UnsupportedLanguage) {
			response.WriteError(w, http.StatusBadRequest, "Unsupported language")
			return
		}
		h.logger.Error("Failed to record submission", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Failed to record submission")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"date":   result.Date,
		"streak": result.Streak,
	})
}

// GetStreak handles streak query requests
func (h *StreakHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	language := vars["language"]

	result, err := h.submissionService.Streak(r.Context(), username, language)
	if err != nil {
		if errors.Is(err, errs.UnsupportedLanguage) {
			response.WriteError(w, http.StatusBadRequest, "Unsupported language")
			return
		}
		h.logger.Error("Failed to compute streak", "username", username, "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Failed to compute streak")
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}
