package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// Shared cache keeps the in-memory database alive across pool connections
	defaultSQLitePath = "file::memory:?cache=shared"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Analysis AnalysisConfig
	Security SecurityConfig
	AMQP     AMQPConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	LogLevel         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	MaxUploadBytes   int64
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	SQLitePath      string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	AutoMigrate     bool
	Seed            bool
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SessionConfig struct {
	TTL time.Duration
}

type AnalysisConfig struct {
	DefaultMaxList   int
	DecimalSeparator string
	GroupSeparator   string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type AMQPConfig struct {
	URL          string
	ExchangeName string
	QueueName    string
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxUploadBytes:  getInt64Env("MAX_UPLOAD_BYTES", 10<<20),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverSQLite),
			SQLitePath:      getEnv("DB_SQLITE_PATH", defaultSQLitePath),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "analyzer_user"),
			Password:        getEnv("DB_PASSWORD", "analyzer_password"),
			Name:            getEnv("DB_NAME", "statement_analyzer"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			Seed:            getBoolEnv("SEED_DATABASE", false),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Session: SessionConfig{
			TTL: getDurationEnv("SESSION_TTL", 2*time.Hour),
		},
		Analysis: AnalysisConfig{
			DefaultMaxList:   getIntEnv("ANALYSIS_DEFAULT_MAX_LIST", 20),
			DecimalSeparator: getEnv("REPORT_DECIMAL_SEPARATOR", "."),
			GroupSeparator:   getRawEnv("REPORT_GROUP_SEPARATOR", ","),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
		AMQP: AMQPConfig{
			URL:          getEnv("AMQP_URL", ""),
			ExchangeName: getEnv("AMQP_EXCHANGE", "statement_analyzer"),
			QueueName:    getEnv("AMQP_QUEUE", "ledger_ingested"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			errs = append(errs, errors.New("DB_SQLITE_PATH is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, c.Database.Driver))
	}

	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.Analysis.DefaultMaxList <= 0 {
		errs = append(errs, errors.New("ANALYSIS_DEFAULT_MAX_LIST must be positive"))
	}
	if c.Analysis.DecimalSeparator == "" {
		errs = append(errs, errors.New("REPORT_DECIMAL_SEPARATOR is required"))
	}
	if c.Analysis.DecimalSeparator == c.Analysis.GroupSeparator {
		errs = append(errs, errors.New("REPORT_DECIMAL_SEPARATOR and REPORT_GROUP_SEPARATOR must differ"))
	}
	if c.Security.RateLimitPerSecond <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND must be positive"))
	}
	if c.AMQP.URL != "" && (c.AMQP.ExchangeName == "" || c.AMQP.QueueName == "") {
		errs = append(errs, errors.New("AMQP_EXCHANGE and AMQP_QUEUE are required when AMQP_URL is set"))
	}

	return errors.Join(errs...)
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// EventsEnabled reports whether ingestion events should go to a broker
func (c *Config) EventsEnabled() bool {
	return c.AMQP.URL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getRawEnv is getEnv for values where an explicitly empty string is meaningful
func getRawEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
