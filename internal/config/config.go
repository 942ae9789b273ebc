package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PresignExpiry time.Duration
}

// TwilioConfig holds SMS provider credentials. SMS fan-out is disabled when AccountSID is empty.
// DefaultRegion is used to parse phone numbers stored without a country code.
type TwilioConfig struct {
	AccountSID    string
	AuthToken     string
	FromNumber    string
	DefaultRegion string
}

// EmailConfig holds Resend settings used for invitation emails.
type EmailConfig struct {
	ResendAPIKey string
	From         string
}

// KafkaConfig lists the brokers used for notification events. Empty Brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// RedisConfig is used for the expiry sweep lock. Empty Addr means no distributed lock.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ExtractionConfig points at the external contract data extraction endpoint.
type ExtractionConfig struct {
	URL     string
	Timeout time.Duration
}

// WorkerConfig controls the in-process scheduler.
type WorkerConfig struct {
	Enabled        bool
	SweepInterval  time.Duration
	ActivityRetain int
}

// RateLimitConfig configures the per-client limiter on write endpoints.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppEnv        string
	AppName       string
	AppURL        string
	Port          string
	InvitationTTL time.Duration
	Database      DatabaseConfig
	MinIO         MinIOConfig
	Twilio        TwilioConfig
	Email         EmailConfig
	Kafka         KafkaConfig
	Redis         RedisConfig
	Extraction    ExtractionConfig
	Worker        WorkerConfig
	RateLimit     RateLimitConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppEnv:        getEnv("APP_ENV", "development"),
		AppName:       getEnv("APP_NAME", "Contract Desk"),
		AppURL:        getEnv("APP_URL", "http://localhost:3000"),
		Port:          getEnv("PORT", "8080"),
		InvitationTTL: getEnvDuration("INVITATION_TTL", 7*24*time.Hour),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", ""),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PresignExpiry: getEnvDuration("MINIO_PRESIGN_EXPIRY", 7*24*time.Hour),
		},
		Twilio: TwilioConfig{
			AccountSID:    getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:     getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber:    getEnv("TWILIO_FROM_NUMBER", ""),
			DefaultRegion: getEnv("SMS_DEFAULT_REGION", "US"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "noreply@example.com"),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_NOTIFICATION_TOPIC", "notification.created"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Extraction: ExtractionConfig{
			URL:     getEnv("EXTRACTION_URL", ""),
			Timeout: getEnvDuration("EXTRACTION_TIMEOUT", 15*time.Second),
		},
		Worker: WorkerConfig{
			Enabled:        getEnvBool("WORKER_ENABLED", true),
			SweepInterval:  getEnvDuration("SWEEP_INTERVAL", 24*time.Hour),
			ActivityRetain: getEnvInt("ACTIVITY_RETAIN", 100),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
			Burst: getEnvInt("RATE_LIMIT_BURST", 10),
		},
	}
}

// IsDevelopment reports whether the service runs with development defaults
// (console logging, emails logged instead of sent).
func (c *AppConfig) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}

// getEnvList splits a comma-separated value, dropping empty entries.
func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
