package system

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"gitlab.com/codecommunity-2025.net/internal/core/ports/primary"
	"gitlab.com/codecommunity-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecommunity-2025.net/internal/handlers/response"
)

const maxReportedCollections = 10

// SystemHandler handles liveness and diagnostic API requests
type SystemHandler struct {
	store  secondary.DocumentStore
	cache  secondary.PostListCache
	logger primary.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(store secondary.DocumentStore, cache secondary.PostListCache, logger primary.Logger) *SystemHandler {
	return &SystemHandler{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// RegisterRoutes registers the API routes for SystemHandler
func (h *SystemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Root).Methods("GET")
	router.HandleFunc("/test", h.TestStore).Methods("GET")
}

// Root handles liveness requests
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{"message": "Coding Community Backend Running"})
}

// TestStore reports store and cache connectivity. This endpoint exists for
// observability only: every failure is captured and rendered as a status
// string, never as a non-200 response.
func (h *SystemHandler) TestStore(w http.ResponseWriter, r *http.Request) {
	report := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"redis":             "not available",
		"connection_status": "not connected",
		"collections":       []string{},
		"database_url":      envStatus("DATABASE_URL"),
		"redis_addr":        envStatus("REDIS_ADDR"),
	}

	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			report["database"] = "error: " + truncate(err.Error(), 50)
		} else {
			report["database"] = "connected"
			report["connection_status"] = "connected"

			collections, err := h.store.Collections(r.Context())
			if err != nil {
				report["database"] = "connected but error: " + truncate(err.Error(), 50)
			} else {
				if len(collections) > maxReportedCollections {
					collections = collections[:maxReportedCollections]
				}
				report["collections"] = collections
			}
		}
	}

	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			report["redis"] = "error: " + truncate(err.Error(), 50)
		} else {
			report["redis"] = "connected"
		}
	}

	response.WriteJSON(w, http.StatusOK, report)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
