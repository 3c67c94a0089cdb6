package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Content ContentConfig
	Chat    ChatConfig
	CORS    CORSConfig
	Metrics MetricsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// ContentConfig holds site content configuration
type ContentConfig struct {
	// Path to an optional YAML file overriding the built-in catalog,
	// product and careers content. Empty means built-in content only.
	Path string
}

// ChatConfig holds chat widget backend configuration
type ChatConfig struct {
	// Simulated typing delay window for bot replies
	TypingDelayMin time.Duration
	TypingDelayMax time.Duration

	// Number of user questions after which the responder offers human
	// support on its own
	EscalationThreshold int

	// Idle session retention
	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration

	// Seed for the responder's random source. Zero means time-seeded.
	RandomSeed int64
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// MetricsConfig holds metrics exposition configuration
type MetricsConfig struct {
	Enabled  bool
	Endpoint string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Content: ContentConfig{
			Path: getEnv("CONTENT_PATH", ""),
		},
		Chat: ChatConfig{
			TypingDelayMin:         getDurationEnv("CHAT_TYPING_DELAY_MIN", 800*time.Millisecond),
			TypingDelayMax:         getDurationEnv("CHAT_TYPING_DELAY_MAX", 1600*time.Millisecond),
			EscalationThreshold:    getIntEnv("CHAT_ESCALATION_THRESHOLD", 5),
			SessionTTL:             getDurationEnv("CHAT_SESSION_TTL", 2*time.Hour),
			SessionCleanupInterval: getDurationEnv("CHAT_SESSION_CLEANUP_INTERVAL", 10*time.Minute),
			RandomSeed:             getInt64Env("CHAT_RANDOM_SEED", 0),
		},
		CORS: CORSConfig{
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Metrics: MetricsConfig{
			Enabled:  getBoolEnv("METRICS_ENABLED", true),
			Endpoint: getEnv("METRICS_ENDPOINT", "/metrics"),
		},
	}
}

// SetupLogging configures the global logrus logger from config
func SetupLogging(cfg LoggingConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets duration from environment variable with default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getIntEnv gets integer from environment variable with default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64Env gets 64-bit integer from environment variable with default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getBoolEnv gets boolean from environment variable with default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getSliceEnv gets a comma-separated list from environment variable
func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return &ConfigError{Field: "SERVER_PORT", Message: "server port is required"}
	}
	if c.Chat.TypingDelayMin < 0 {
		return &ConfigError{Field: "CHAT_TYPING_DELAY_MIN", Message: "typing delay must not be negative"}
	}
	if c.Chat.TypingDelayMax < c.Chat.TypingDelayMin {
		return &ConfigError{Field: "CHAT_TYPING_DELAY_MAX", Message: "typing delay window is inverted"}
	}
	if c.Chat.EscalationThreshold < 1 {
		return &ConfigError{Field: "CHAT_ESCALATION_THRESHOLD", Message: "escalation threshold must be at least 1"}
	}
	if c.Chat.SessionTTL <= 0 {
		return &ConfigError{Field: "CHAT_SESSION_TTL", Message: "session TTL must be positive"}
	}
	return nil
}

// ConfigError represents configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
