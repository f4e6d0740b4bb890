// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process-wide configuration.
type Config struct {
	// Env is the deployment name (also used as the database name prefix in
	// the source system; kept for log/metric labelling).
	Env string

	HTTPPort string

	// BaseURL is the externally visible URL (NEXTAUTH_URL).
	BaseURL string

	// Secret signs session JWTs and keys token encryption (NEXTAUTH_SECRET).
	Secret string

	// Bootstrap admin credentials; both empty disables bootstrap.
	AdminEmail    string
	AdminPassword string

	// AWS settings for the OCR adapter's ephemeral uploads.
	AWSRegion   string
	AWSS3Bucket string

	// ConverterCommand is the external office→PDF converter binary.
	ConverterCommand string
	// ConverterLockPath is the well-known path of the cross-process lock
	// serializing converter invocations.
	ConverterLockPath string

	Queue *QueueConfig

	LogLevel slog.Level
}

// Load reads configuration from the environment. NEXTAUTH_SECRET is the only
// required variable.
func Load() (*Config, error) {
	secret := os.Getenv("NEXTAUTH_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("NEXTAUTH_SECRET is required")
	}

	cfg := &Config{
		Env:               getEnvOrDefault("ENV", "dev"),
		HTTPPort:          getEnvOrDefault("HTTP_PORT", "8080"),
		BaseURL:           getEnvOrDefault("NEXTAUTH_URL", "http://localhost:8080"),
		Secret:            secret,
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AWSRegion:         getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSS3Bucket:       os.Getenv("AWS_S3_BUCKET_NAME"),
		ConverterCommand:  getEnvOrDefault("CONVERTER_COMMAND", "libreoffice"),
		ConverterLockPath: getEnvOrDefault("CONVERTER_LOCK_PATH", "/tmp/docrouter-converter.lock"),
		Queue:             DefaultQueueConfig(),
		LogLevel:          parseLogLevel(os.Getenv("LOG_LEVEL")),
	}

	if v := os.Getenv("N_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid N_WORKERS %q", v)
		}
		cfg.Queue.WorkerCount = n
	}

	return cfg, nil
}

// ProviderAPIKey returns the environment-supplied API key for a provider,
// e.g. OPENAI_API_KEY for "openai". Empty when unset.
func ProviderAPIKey(provider string) string {
	return os.Getenv(strings.ToUpper(provider) + "_API_KEY")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// QueueConfig contains queue and worker pool configuration.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per stage queue.
	WorkerCount int

	// PollInterval is the sleep between polls when a queue is empty.
	PollInterval time.Duration

	// HeartbeatInterval is how often an idle-or-busy worker logs a heartbeat.
	HeartbeatInterval time.Duration

	// MessageTimeout bounds the handling of a single message.
	MessageTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight messages
	// during shutdown.
	GracefulShutdownTimeout time.Duration

	// StuckScanInterval is how often the background scan looks for documents
	// stuck in a processing state. Zero disables the scan.
	StuckScanInterval time.Duration

	// StuckThreshold is how long a document may sit in a processing state
	// before the scan reports it.
	StuckThreshold time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		PollInterval:            200 * time.Millisecond,
		HeartbeatInterval:       10 * time.Minute,
		MessageTimeout:          30 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
		StuckScanInterval:       5 * time.Minute,
		StuckThreshold:          30 * time.Minute,
	}
}
