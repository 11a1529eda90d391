package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr         string
	Port               string
	DatabaseURL        string
	GinMode            string
	Log                string
	LogLevel           string
	LogFile            string
	CORSAllowedOrigins []string
	SeedOnStart        bool
}

// Load reads an optional .env file, then environment variables, filling in
// defaults for anything missing.
func Load() AppConfig {
	_ = godotenv.Load()

	port := env("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		// DATABASE_PATH is the older name for a sqlite file location.
		databaseURL = env("DATABASE_PATH", "directory.db")
	}

	return AppConfig{
		ListenAddr:         listenAddr,
		Port:               port,
		DatabaseURL:        databaseURL,
		GinMode:            env("GIN_MODE", "release"),
		Log:                strings.ToLower(env("LOG", "prod")),
		LogLevel:           strings.ToLower(env("LOG_LEVEL", "info")),
		LogFile:            strings.TrimSpace(os.Getenv("LOG_FILE")),
		CORSAllowedOrigins: splitList(env("CORS_ALLOWED_ORIGINS", "*")),
		SeedOnStart:        parseBool(os.Getenv("SEED_ON_START")),
	}
}

// Validate rejects settings that would otherwise fail later at startup.
func (c AppConfig) Validate() error {
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE %q must be one of %s, %s or %s", c.GinMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
	return nil
}

func env(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitList(value string) []string {
	raw := strings.Split(value, ",")
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && parsed
}
