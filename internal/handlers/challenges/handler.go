package challenges

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codecommunity-2025.net/internal/core/ports/primary"
	"gitlab.com/codecommunity-2025.net/internal/core/services/challenge"
	"gitlab.com/codecommunity-2025.net/internal/domain"
	"gitlab.com/codecommunity-2025.net/internal/handlers/response"
)

// ChallengeHandler handles language and daily-challenge API requests
type ChallengeHandler struct {
	challengeService challenge.IChallengeService
	logger           primary.Logger
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(challengeService challenge.IChallengeService, logger primary.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
		logger:           logger,
	}
}

// RegisterRoutes registers the API routes for ChallengeHandler
func (h *ChallengeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/languages", h.GetLanguages).Methods("GET")
	router.HandleFunc("/challenges/{language}", h.GetDailyChallenge).Methods("GET")
}

// GetLanguages handles supported-language listing requests
func (h *ChallengeHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string][]string{"languages": h.challengeService.Languages()})
}

// GetDailyChallenge handles daily challenge requests. An unsupported language
// is a 404 on this route.
func (h *ChallengeHandler) GetDailyChallenge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	language := vars["language"]

	descriptor, err := h.challengeService.Generate(language, domain.Today())
	if err != nil {
		response.WriteError(w, http.StatusNotFound, "Language not supported")
		return
	}

	response.WriteJSON(w, http.StatusOK, descriptor)
}
