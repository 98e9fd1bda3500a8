package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTLifetime time.Duration

	WebRoot          string
	UploadBaseFolder string
	UploadMaxBytes   int64
	UploadExtensions []string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/brigade?charset=utf8mb4&parseTime=True&loc=Local"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		JWTIssuer:   getEnv("JWT_ISSUER", "brigade-api"),
		JWTAudience: getEnv("JWT_AUDIENCE", "brigade-web"),
		JWTLifetime: time.Duration(getEnvInt("JWT_TTL_MINUTES", 120)) * time.Minute,

		WebRoot:          getEnv("WEB_ROOT", "wwwroot"),
		UploadBaseFolder: getEnv("UPLOAD_BASE_FOLDER", "uploads/reports"),
		UploadMaxBytes:   getEnvInt64("UPLOAD_MAX_BYTES", 10*1024*1024),
		UploadExtensions: getEnvList("UPLOAD_EXTENSIONS", []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
