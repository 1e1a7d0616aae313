package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codecommunity-2025.net/internal/core/ports/primary"
	"gitlab.com/codecommunity-2025.net/internal/core/ports/secondary"
	challengesvc "gitlab.com/codecommunity-2025.net/internal/core/services/challenge"
	communitysvc "gitlab.com/codecommunity-2025.net/internal/core/services/community"
	submissionsvc "gitlab.com/codecommunity-2025.net/internal/core/services/submission"
	"gitlab.com/codecommunity-2025.net/internal/handlers"
	"gitlab.com/codecommunity-2025.net/internal/handlers/challenges"
	"gitlab.com/codecommunity-2025.net/internal/handlers/community"
	"gitlab.com/codecommunity-2025.net/internal/handlers/streaks"
	"gitlab.com/codecommunity-2025.net/internal/handlers/system"
)

type ServiceProvider struct {
	challengeService  challengesvc.IChallengeService
	communityService  communitysvc.ICommunityService
	submissionService submissionsvc.ISubmissionService

	store secondary.DocumentStore
	cache secondary.PostListCache
}

func NewServiceProvider(
	challengeService challengesvc.IChallengeService,
	communityService communitysvc.ICommunityService,
	submissionService submissionsvc.ISubmissionService,
	store secondary.DocumentStore,
	cache secondary.PostListCache,
) *ServiceProvider {
	return &ServiceProvider{
		challengeService:  challengeService,
		communityService:  communityService,
		submissionService: submissionService,
		store:             store,
		cache:             cache,
	}
}

type Server struct {
	router          *mux.Router
	handler         http.Handler
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
	srv             *http.Server
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	system.NewSystemHandler(s.ServiceProvider.store, s.ServiceProvider.cache, s.logger).RegisterRoutes(r)
	challenges.NewChallengeHandler(s.ServiceProvider.challengeService, s.logger).RegisterRoutes(r)
	community.NewCommunityHandler(s.ServiceProvider.communityService, s.logger).RegisterRoutes(r)
	streaks.NewStreakHandler(s.ServiceProvider.submissionService, s.logger).RegisterRoutes(r)
	s.router = r
	// CORS wraps the router so preflight requests are answered even for
	// method/route combinations mux would reject.
	s.handler = handlers.CORSMiddleware(r)
	return nil
}

// Handler exposes the configured handler, used by tests to drive requests
// without a listener.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.srv = srv

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Error("Server forced to shutdown", "error", err)
		}
	}
}
