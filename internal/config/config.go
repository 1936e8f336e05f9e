package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Cache    CacheConfig
	Github   GithubConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	InvalidationTopic  string
}

type DatabaseConfig struct {
	Connection string
}

type SessionConfig struct {
	TTL time.Duration
}

type CacheConfig struct {
	CollectionsTTL time.Duration
	SelectionTTL   time.Duration
}

type GithubConfig struct {
	AppId          string
	PrivateKeyPath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			InvalidationTopic:  getEnv("CACHE_INVALIDATION_TOPIC_NAME", "INVALIDATE_COLLECTIONS_CACHE"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Session: SessionConfig{
			TTL: time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		},
		Cache: CacheConfig{
			CollectionsTTL: time.Duration(getEnvAsInt("COLLECTIONS_CACHE_TTL_SECONDS", 300)) * time.Second,
			SelectionTTL:   time.Duration(getEnvAsInt("SELECTION_TTL_HOURS", 720)) * time.Hour,
		},
		Github: GithubConfig{
			AppId:          getEnv("GITHUB_APP_ID", ""),
			PrivateKeyPath: getEnv("GITHUB_APP_PRIVATE_KEY_PATH", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
