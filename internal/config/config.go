package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries every tunable the service reads from the environment.
// main loads .env via godotenv before calling Load, so local runs and
// container runs resolve the same way.
type Config struct {
	Port string

	HRAPIBaseURL string
	HRAPITimeout time.Duration

	JWTSecret string

	RedisAddr string

	KafkaBroker  string
	KafkaGroupID string

	CatalogTTL time.Duration
	RecordsTTL time.Duration

	RateLimitRPS   int
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		HRAPIBaseURL: strings.TrimRight(getEnv("HR_API_BASE_URL", "http://localhost:9090"), "/"),
		HRAPITimeout: getEnvDuration("HR_API_TIMEOUT", 10*time.Second),

		JWTSecret: os.Getenv("JWT_SECRET"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		KafkaBroker:  getEnv("KAFKA_BROKER", "localhost:9092"),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "rrhh-admin"),

		CatalogTTL: getEnvDuration("CACHE_CATALOG_TTL", 30*time.Minute),
		RecordsTTL: getEnvDuration("CACHE_RECORDS_TTL", 2*time.Minute),

		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
