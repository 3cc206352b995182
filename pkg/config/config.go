package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Storage    StorageConfig
	Gemini     GeminiConfig
	AssemblyAI AssemblyAIConfig
	Mail       MailConfig
	RateLimit  RateLimitConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
	SeedData        bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// StorageConfig holds object storage configuration. Uploaded source
// documents are archived here when an endpoint is configured.
type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// GeminiConfig holds the generative model configuration. There is no
// default API key: without one the analysis engine runs on the
// heuristic extractor only.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// AssemblyAIConfig holds the transcription service configuration
type AssemblyAIConfig struct {
	APIKey string
}

// MailConfig holds SMTP settings for high priority task alerts
type MailConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	Recipients []string
}

// RateLimitConfig holds per-IP rate limit settings for analysis routes
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
			SeedData:        getEnvAsBool("SEED_DATA", true),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Name:        getEnv("DB_NAME", "meeting_summarizer"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:    getEnvAsInt("DB_MIN_CONNS", 5),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},
		JWT: JWTConfig{
			AccessSecret:  getEnv("JWT_ACCESS_SECRET", ""),
			RefreshSecret: getEnv("JWT_REFRESH_SECRET", ""),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", "15m"),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", "168h"),
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("STORAGE_ENDPOINT", ""),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", ""),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", ""),
			BucketName:      getEnv("STORAGE_BUCKET", "meeting-uploads"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		AssemblyAI: AssemblyAIConfig{
			APIKey: getEnv("ASSEMBLYAI_API_KEY", ""),
		},
		Mail: MailConfig{
			Host:       getEnv("MAIL_HOST", ""),
			Port:       getEnvAsInt("MAIL_PORT", 587),
			Username:   getEnv("MAIL_USERNAME", ""),
			Password:   getEnv("MAIL_PASSWORD", ""),
			From:       getEnv("MAIL_FROM", ""),
			Recipients: splitNonEmpty(getEnv("NOTIFICATION_RECIPIENTS", "")),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsInt("RATE_LIMIT_REQUESTS", 30),
			Window:   getEnvAsDuration("RATE_LIMIT_WINDOW", "1m"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. Secrets never have baked-in
// defaults: a missing Gemini key only disables the model, but auth and
// database credentials must be set outside development.
func (c *Config) Validate() error {
	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required")
		}
		log.Printf("Warning: JWT secrets not set, using insecure development defaults")
		if c.JWT.AccessSecret == "" {
			c.JWT.AccessSecret = "dev-access-secret"
		}
		if c.JWT.RefreshSecret == "" {
			c.JWT.RefreshSecret = "dev-refresh-secret"
		}
	}
	if c.IsProduction() && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required in production")
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
