package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codecommunity-2025.net/internal/config"
	"gitlab.com/codecommunity-2025.net/internal/core/ports/secondary"
	challengesvc "gitlab.com/codecommunity-2025.net/internal/core/services/challenge"
	communitysvc "gitlab.com/codecommunity-2025.net/internal/core/services/community"
	submissionsvc "gitlab.com/codecommunity-2025.net/internal/core/services/submission"
	"gitlab.com/codecommunity-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

type fakeStore struct {
	collections map[string][]secondary.Document
	nextID      int
	pingErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: map[string][]secondary.Document{}}
}

func (f *fakeStore) CreateDocument(_ context.Context, collection string, doc secondary.Document) (string, error) {
	f.nextID++
	id := fmt.Sprintf("doc-%d", f.nextID)
	stored := secondary.Document{"id": id}
	for k, v := range doc {
		stored[k] = v
	}
	f.collections[collection] = append(f.collections[collection], stored)
	return id, nil
}

func (f *fakeStore) GetDocuments(_ context.Context, collection string, filter secondary.Filter, limit int) ([]secondary.Document, error) {
	var out []secondary.Document
	for _, doc := range f.collections[collection] {
		match := true
		for k, v := range filter.Equals {
			if doc[k] != v {
				match = false
				break
			}
		}
		if match && filter.DateGTE != "" {
			date, _ := doc["date"].(string)
			if date < filter.DateGTE {
				match = false
			}
		}
		if match {
			out = append(out, doc)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) Collections(context.Context) ([]string, error) {
	var names []string
	for name := range f.collections {
		names = append(names, name)
	}
	return names, nil
}

func newTestServer(t *testing.T, store *fakeStore, today string) *Server {
	t.Helper()

	logger := nopLogger{}
	challengeService := challengesvc.NewChallengeService()
	communityService := communitysvc.NewCommunityService(store, nil, logger)
	submissionService := submissionsvc.NewSubmissionService(store, &config.StreakSvcCfg{WindowDays: 60, QueryLimit: 1000}, logger)
	if today != "" {
		parsed, err := time.Parse(domain.DateLayout, today)
		require.NoError(t, err)
		submissionService.SetClock(func() time.Time { return parsed })
	}

	provider := NewServiceProvider(challengeService, communityService, submissionService, store, nil)
	server := NewServer(0, "codingCommunity", *provider, logger)
	require.NoError(t, server.Init())
	return server
}

func do(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestRootLiveness(t *testing.T) {
	server := newTestServer(t, newFakeStore(), "")

	rec := do(t, server, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Coding Community Backend Running", decode(t, rec)["message"])
}

func TestGetLanguages(t *testing.T) {
	server := newTestServer(t, newFakeStore(), "")

	rec := do(t, server, http.MethodGet, "/languages", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t,
		[]interface{}{"python", "javascript", "java", "go", "rust", "cpp"},
		body["languages"])
}

func TestGetDailyChallenge(t *testing.T) {
	server := newTestServer(t, newFakeStore(), "")

	rec := do(t, server, http.MethodGet, "/challenges/go", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "go", body["language"])
	assert.Equal(t, fmt.Sprintf("go-%s", domain.Today()), body["id"])
	assert.Contains(t, body["title"], "Go Daily: ")

	rec = do(t, server, http.MethodGet, "/challenges/klingon", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAndListPosts(t *testing.T) {
	server := newTestServer(t, newFakeStore(), "")

	rec := do(t, server, http.MethodPost, "/posts", map[string]string{
		"language": "go",
		"kind":     "project",
		"title":    "My CLI tool",
		"content":  "A tiny task runner.",
		"author":   "ada",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	postID := decode(t, rec)["id"].(string)
	assert.NotEmpty(t, postID)

	rec = do(t, server, http.MethodGet, "/posts?language=go&kind=project", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode(t, rec)["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, postID, item["id"])
	assert.Equal(t, "A tiny task runner.", item["content"])
}

func TestCreatePostValidation(t *testing.T) {
	server := newTestServer(t, newFakeStore(), "")

	rec := do(t, server, http.MethodPost, "/posts", map[string]string{
		"language": "klingon",
		"kind":     "project",
		"title":    "t",
		"content":  "c",
		"author":   "a",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, server, http.MethodPost, "/posts", map[string]string{
		"language": "go",
		"kind":     "rant",
		"title":    "t",
		"content":  "c",
		"author":   "a",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCommentsFlow(t *testing.T) {
	server := newTestServer(t, newFakeStore(), "")

	rec := do(t, server, http.MethodPost, "/comments", map[string]string{
		"post_id": "post-1",
		"author":  "bob",
		"content": "Nice work",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["id"])

	rec = do(t, server, http.MethodGet, "/comments/post-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode(t, rec)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Nice work", items[0].(map[string]interface{})["content"])
}

func TestSubmitAndStreak(t *testing.T) {
	store := newFakeStore()
	server := newTestServer(t, store, "2024-05-10")

	for i := 0; i < 2; i++ {
		rec := do(t, server, http.MethodPost, "/submit", map[string]string{
			"username": "ada",
			"language": "go",
			"code":     "package main",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "2024-05-10", body["date"])
		assert.Equal(t, float64(1), body["streak"])
	}

	rec := do(t, server, http.MethodGet, "/streak/ada/go", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(1), body["streak"])
	assert.Equal(t, []interface{}{"2024-05-10"}, body["days"])
}

func TestSubmitUnsupportedLanguage(t *testing.T) {
	server := newTestServer(t, newFakeStore(), "2024-05-10")

	rec := do(t, server, http.MethodPost, "/submit", map[string]string{
		"username": "ada",
		"language": "klingon",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, server, http.MethodGet, "/streak/ada/klingon", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiagnosticNeverFails(t *testing.T) {
	store := newFakeStore()
	store.pingErr = errors.New("connection refused to postgres at localhost:5432, very long detail")
	server := newTestServer(t, store, "")

	rec := do(t, server, http.MethodGet, "/test", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "running", body["backend"])
	assert.Contains(t, body["database"], "error: ")
	assert.Equal(t, "not connected", body["connection_status"])
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t, newFakeStore(), "")

	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
