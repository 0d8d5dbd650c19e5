package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr           string
	Port                 string
	DatabasePath         string
	GinMode              string
	AppEnv               string
	StaticDir            string
	MonthlyBudget        float64
	StudyTargetMinutes   int
	ProductivityScore    int
	ProductivityTrend    int
	QuoteRefreshMinutes  int
	AchievementSweepTime string
}

// Development 表示是否运行在开发模式（不托管静态资源）。
func (c AppConfig) Development() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "dayboard.db"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "production"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "web/dist"
	}

	sweepTime := strings.TrimSpace(os.Getenv("ACHIEVEMENT_SWEEP_TIME"))
	if sweepTime == "" {
		sweepTime = "21:00"
	}

	return AppConfig{
		ListenAddr:           listenAddr,
		Port:                 port,
		DatabasePath:         databasePath,
		GinMode:              ginMode,
		AppEnv:               appEnv,
		StaticDir:            staticDir,
		MonthlyBudget:        envFloat("MONTHLY_BUDGET", 2000),
		StudyTargetMinutes:   envInt("STUDY_TARGET_MINUTES", 360),
		ProductivityScore:    envInt("PRODUCTIVITY_SCORE", 87),
		ProductivityTrend:    envInt("PRODUCTIVITY_TREND", 5),
		QuoteRefreshMinutes:  envInt("QUOTE_REFRESH_MINUTES", 30),
		AchievementSweepTime: sweepTime,
	}
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
