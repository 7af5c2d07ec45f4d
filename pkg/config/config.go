package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Redis  Redis
	Engine Engine
	Logger Logger
}

type Logger struct {
	Level string
}

type Server struct {
	Port               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	RateLimitPerMinute int
}

// Redis configures the optional comparison-result cache. Caching lives in the
// calling layer; the engine itself never touches it.
type Redis struct {
	Enabled bool
	Addr    string
	TTL     time.Duration
}

// Engine exposes the decision engine's tuning constants. The defaults are the
// documented behavior; deployments can nudge individual thresholds without a
// rebuild.
type Engine struct {
	CloseCallDollarGap  float64
	CloseCallPercentGap float64
	FXWideningFactor    float64
	AwardCPPFloorCents  float64
	DoubleDipFloorRate  float64
	CreditMaximum       float64
	MilesPriceCents     float64
}

func Load() (*Config, error) {
	// Try to load .env from the working directory or the project root;
	// falling back to plain environment variables covers Docker/K8s.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "15"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "15"))
	rateLimit, _ := strconv.Atoi(getEnv("SERVER_RATE_LIMIT_PER_MINUTE", "120"))
	cacheTTL, _ := strconv.Atoi(getEnv("REDIS_TTL_SECONDS", "600"))

	return &Config{
		Server: Server{
			Port:               getEnv("SERVER_PORT", "8080"),
			ReadTimeout:        time.Duration(readTimeout) * time.Second,
			WriteTimeout:       time.Duration(writeTimeout) * time.Second,
			RateLimitPerMinute: rateLimit,
		},
		Redis: Redis{
			Enabled: getEnv("REDIS_ENABLED", "false") == "true",
			Addr:    getEnv("REDIS_ADDR", "localhost:6379"),
			TTL:     time.Duration(cacheTTL) * time.Second,
		},
		Engine: Engine{
			CloseCallDollarGap:  getEnvFloat("ENGINE_CLOSE_CALL_DOLLAR_GAP", 25.0),
			CloseCallPercentGap: getEnvFloat("ENGINE_CLOSE_CALL_PERCENT_GAP", 2.0),
			FXWideningFactor:    getEnvFloat("ENGINE_FX_WIDENING_FACTOR", 1.5),
			AwardCPPFloorCents:  getEnvFloat("ENGINE_AWARD_CPP_FLOOR_CENTS", 1.0),
			DoubleDipFloorRate:  getEnvFloat("ENGINE_DOUBLE_DIP_FLOOR_RATE", 0.01),
			CreditMaximum:       getEnvFloat("ENGINE_CREDIT_MAXIMUM", 300.0),
			MilesPriceCents:     getEnvFloat("ENGINE_MILES_PRICE_CENTS", 3.5),
		},
		Logger: Logger{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
