package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	DebugMode      bool
	ServerPort     int
	StreakSvcCfg   *StreakSvcCfg
	ListCacheCfg   *ListCacheCfg
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		ServerPort:     getIntEnv("PORT", 8000),
		StreakSvcCfg:   NewStreakSvcCfg(),
		ListCacheCfg:   NewListCacheCfg(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return intValue
}
