package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/njprem/StarWars_API_BackEnd/internal/logging"
)

type Config struct {
	Port            string
	DatabaseURL     string
	DBDriver        string
	DBMaxOpenConns  int
	DBAutoMigrate   bool
	AllowOrigins    []string
	LogLevel        string
	LogFormat       string
	LogstashTCPAddr string
	ShutdownTimeout time.Duration

	LogstashDialTimeout   time.Duration
	LogstashWriteTimeout  time.Duration
	LogstashRetryInterval time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		logging.Warn().Err(err).Msg(".env file not found")
	}

	maxOpen := 10
	if v, err := strconv.Atoi(getenv("DB_MAX_OPEN_CONNS", "10")); err == nil && v > 0 {
		maxOpen = v
	}

	return Config{
		Port:            getenv("PORT", "3000"),
		DatabaseURL:     must("DATABASE_URL"),
		DBDriver:        strings.ToLower(getenv("DB_DRIVER", "pgx")),
		DBMaxOpenConns:  maxOpen,
		DBAutoMigrate:   getenv("DB_AUTO_MIGRATE", "true") == "true",
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "json"),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),
		ShutdownTimeout: duration("SHUTDOWN_TIMEOUT", 10*time.Second),

		LogstashDialTimeout:   duration("LOGSTASH_DIAL_TIMEOUT", 2*time.Second),
		LogstashWriteTimeout:  duration("LOGSTASH_WRITE_TIMEOUT", time.Second),
		LogstashRetryInterval: duration("LOGSTASH_RETRY_INTERVAL", 5*time.Second),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// duration parses a positive Go duration, falling back to d.
func duration(k string, d time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(k)); err == nil && v > 0 {
		return v
	}
	return d
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
