package app

import (
	"time"

	"github.com/mindease/mindease-backend/internal/data/db"
	"github.com/mindease/mindease-backend/internal/observability"
	"github.com/mindease/mindease-backend/internal/platform/envutil"
	"github.com/mindease/mindease-backend/internal/platform/inference"
	"github.com/mindease/mindease-backend/internal/platform/logger"
	"github.com/mindease/mindease-backend/internal/services"
)

const defaultJWTSecret = "defaultsecret"

type Config struct {
	Port           string
	JWTSecretKey   string
	AccessTokenTTL time.Duration

	DB        db.Config
	Inference inference.Config
	// InferenceTimeout bounds a single provider call.
	InferenceTimeout time.Duration

	RedisAddr         string
	ChatRatePerMinute int

	MetricsEnabled bool
	OTel           observability.OtelConfig
	CORSOrigins    []string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:           envutil.String("PORT", "5000"),
		JWTSecretKey:   envutil.String("JWT_SECRET_KEY", defaultJWTSecret),
		AccessTokenTTL: envutil.Duration("ACCESS_TOKEN_TTL", services.DefaultAccessTTL),
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverPostgres),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432"),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres"),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", ""),
			PostgresName:     envutil.String("POSTGRES_NAME", "mindease"),
			SQLitePath:       envutil.String("SQLITE_PATH", "mindease.db"),
		},
		Inference: inference.Config{
			Provider:          envutil.String("INFERENCE_PROVIDER", ""),
			HuggingFaceAPIKey: envutil.String("HUGGINGFACE_API_KEY", ""),
			HuggingFaceURL:    envutil.String("HUGGINGFACE_MODEL_URL", ""),
			GeminiAPIKey:      envutil.String("GEMINI_API_KEY", ""),
			GeminiModel:       envutil.String("GEMINI_MODEL", ""),
		},
		InferenceTimeout:  envutil.Duration("INFERENCE_TIMEOUT", 10*time.Second),
		RedisAddr:         envutil.String("REDIS_ADDR", ""),
		ChatRatePerMinute: envutil.Int("CHAT_AI_RATE_PER_MINUTE", 20),
		MetricsEnabled:    envutil.Bool("METRICS_ENABLED", true),
		OTel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "mindease-api"),
			Environment: envutil.String("APP_ENV", "development"),
			Version:     envutil.String("APP_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 1),
		},
		CORSOrigins: envutil.CSV("CORS_ORIGINS", nil),
	}
	if cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn("JWT_SECRET_KEY not set, using the development default")
	}
	return cfg
}
