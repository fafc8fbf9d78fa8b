package common

import (
	"os"
	"strconv"
	"time"

	"github.com/voyagedesk/passport-tracker/internal/mrz"
)

// Config holds all application configuration
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Recognition RecognitionConfig
	Pipeline    PipelineConfig
	Invitations InvitationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	SQLitePath       string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// RecognitionConfig holds text-recognition configuration
type RecognitionConfig struct {
	CredentialsFile string
	Timeout         time.Duration
}

// PipelineConfig holds document-pipeline configuration
type PipelineConfig struct {
	CenturyThreshold int
	Workers          int
	QueueSize        int
	ProcessTimeout   time.Duration
}

// InvitationConfig holds invitation issuing configuration
type InvitationConfig struct {
	TTL time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			SQLitePath:       getEnv("SQLITE_PATH", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Recognition: RecognitionConfig{
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
			Timeout:         getEnvAsDuration("RECOGNITION_TIMEOUT", 30*time.Second),
		},
		Pipeline: PipelineConfig{
			CenturyThreshold: getEnvAsInt("MRZ_CENTURY_THRESHOLD", mrz.DefaultCenturyThreshold),
			Workers:          getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:        getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			ProcessTimeout:   getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 3*time.Minute),
		},
		Invitations: InvitationConfig{
			TTL: getEnvAsDuration("INVITATION_TTL", 72*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" && c.Database.SQLitePath == "" {
		return NewAppError("CONFIG_ERROR", "one of DB_URL or SQLITE_PATH is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.CenturyThreshold < 0 || c.Pipeline.CenturyThreshold > 99 {
		return NewAppError("CONFIG_ERROR", "MRZ_CENTURY_THRESHOLD must be between 0 and 99", ErrInvalidInput)
	}
	return nil
}
