package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codecommunity-2025.net/internal/adapter/postgres/docstore"
	"gitlab.com/codecommunity-2025.net/internal/adapter/redis/listcache"
	"gitlab.com/codecommunity-2025.net/internal/config"
	challengesvc "gitlab.com/codecommunity-2025.net/internal/core/services/challenge"
	communitysvc "gitlab.com/codecommunity-2025.net/internal/core/services/community"
	submissionsvc "gitlab.com/codecommunity-2025.net/internal/core/services/submission"
	logger2 "gitlab.com/codecommunity-2025.net/internal/global/logger"
	http2 "gitlab.com/codecommunity-2025.net/internal/http"
)

func main() {
	InitReader()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting coding community service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})

	// SECONDARY PORTS
	store := docstore.New(db, logger)
	ctxBg := context.Background()
	if err := store.EnsureSchema(ctxBg); err != nil {
		panic(err)
	}
	postCache := listcache.New(redisClient, sysCfg.ListCacheCfg.TTL, logger)

	// services
	challengeService := challengesvc.NewChallengeService()
	communityService := communitysvc.NewCommunityService(store, postCache, logger)
	submissionService := submissionsvc.NewSubmissionService(store, sysCfg.StreakSvcCfg, logger)
	serviceProvider := http2.NewServiceProvider(challengeService, communityService, submissionService, store, postCache)

	// server
	httServer := http2.NewServer(sysCfg.ServerPort, "codingCommunity", *serviceProvider, logger)
	err = httServer.Init()
	if err != nil {
		panic(err)
	}
	httServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)

	if err := redisClient.Close(); err != nil {
		logger.Warn("Failed to close redis client", "error", err)
	}
	if err := db.Close(); err != nil {
		logger.Warn("Failed to close database", "error", err)
	}

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// InitReader loads the env file named by the first argument ("dev" loads
// dev.env); with no argument it falls back to a plain .env if present.
func InitReader() {
	if len(os.Args) >= 2 {
		environment := os.Args[1]
		if err := godotenv.Load(environment + ".env"); err != nil {
			log.Fatalf("Error loading %s.env file", environment)
		}
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}
