package config

import "time"

// StreakSvcCfg bounds the streak computation. WindowDays is the trailing
// lookback span; streaks longer than the window are undercounted, which is the
// documented contract default, not a bug. QueryLimit caps one window fetch.
type StreakSvcCfg struct {
	WindowDays int
	QueryLimit int
}

func NewStreakSvcCfg() *StreakSvcCfg {
	return &StreakSvcCfg{
		WindowDays: getIntEnv("STREAK_WINDOW_DAYS", 60),
		QueryLimit: getIntEnv("STREAK_QUERY_LIMIT", 1000),
	}
}

// ListCacheCfg controls the post-listing cache.
type ListCacheCfg struct {
	TTL time.Duration
}

func NewListCacheCfg() *ListCacheCfg {
	return &ListCacheCfg{
		TTL: time.Duration(getIntEnv("POST_CACHE_TTL_SEC", 30)) * time.Second,
	}
}
