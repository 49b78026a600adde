// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported booking store drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string `yaml:"app_version"`

	// Server
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	LogLevel     string        `yaml:"log_level"`
	CORSOrigins  []string      `yaml:"cors_origins"`

	Database DatabaseConfig `yaml:"database"`
	Upstream UpstreamConfig `yaml:"upstream"`
}

// DatabaseConfig selects and configures the booking store
type DatabaseConfig struct {
	Driver      string `yaml:"driver"`
	SQLitePath  string `yaml:"sqlite_path"`
	PostgresDSN string `yaml:"postgres_dsn"`
	MongoURI    string `yaml:"mongo_uri"`
	MongoDB     string `yaml:"mongo_db"`
}

// UpstreamConfig describes the external hotel API and the header defaults sent to it
type UpstreamConfig struct {
	BaseURL                string        `yaml:"base_url"`
	Timeout                time.Duration `yaml:"timeout"`
	ChannelCode            string        `yaml:"channel_code"`
	AppKey                 string        `yaml:"app_key"`
	OriginatingApplication string        `yaml:"originating_application"`
	ExternalSystem         string        `yaml:"external_system"`
	StrictResponses        bool          `yaml:"strict_responses"`
	OAuth                  OAuthConfig   `yaml:"oauth"`
}

// OAuthConfig holds client-credentials settings for the hotel API.
// The flow is disabled unless TokenURL and ClientID are both set.
type OAuthConfig struct {
	TokenURL     string   `yaml:"token_url"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	Scopes       []string `yaml:"scopes"`
}

// Enabled reports whether client-credentials are configured
func (o OAuthConfig) Enabled() bool {
	return o.TokenURL != "" && o.ClientID != ""
}

// LoadConfig loads configuration from an optional YAML file (CONFIG_PATH)
// and environment variables. Environment variables win.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}

	config.applyEnv()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		AppVersion:   "1.0.0",
		Port:         "3001",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		LogLevel:     "info",
		CORSOrigins:  []string{"http://localhost:3000"},
		Database: DatabaseConfig{
			Driver:     DriverSQLite,
			SQLitePath: "bookings.db",
			MongoURI:   "mongodb://localhost:27017",
			MongoDB:    "partner_portal",
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:8000/api",
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() {
	c.AppVersion = getEnv("APP_VERSION", c.AppVersion)
	c.Port = getEnv("PORT", c.Port)
	c.ReadTimeout = getEnvAsSeconds("READ_TIMEOUT", c.ReadTimeout)
	c.WriteTimeout = getEnvAsSeconds("WRITE_TIMEOUT", c.WriteTimeout)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.CORSOrigins = getEnvAsList("CORS_ORIGINS", c.CORSOrigins)

	c.Database.Driver = strings.ToLower(getEnv("DB_DRIVER", c.Database.Driver))
	c.Database.SQLitePath = getEnv("SQLITE_PATH", c.Database.SQLitePath)
	c.Database.PostgresDSN = getEnv("POSTGRES_DSN", c.Database.PostgresDSN)
	c.Database.MongoURI = getEnv("MONGODB_DSN", c.Database.MongoURI)
	c.Database.MongoDB = getEnv("MONGO_DB", c.Database.MongoDB)

	c.Upstream.BaseURL = strings.TrimRight(getEnv("UPSTREAM_BASE_URL", c.Upstream.BaseURL), "/")
	c.Upstream.Timeout = getEnvAsSeconds("UPSTREAM_TIMEOUT", c.Upstream.Timeout)
	c.Upstream.ChannelCode = getEnv("UPSTREAM_CHANNEL_CODE", c.Upstream.ChannelCode)
	c.Upstream.AppKey = getEnv("UPSTREAM_APP_KEY", c.Upstream.AppKey)
	c.Upstream.OriginatingApplication = getEnv("UPSTREAM_ORIGINATING_APPLICATION", c.Upstream.OriginatingApplication)
	c.Upstream.ExternalSystem = getEnv("UPSTREAM_EXTERNAL_SYSTEM", c.Upstream.ExternalSystem)
	c.Upstream.StrictResponses = getEnvAsBool("UPSTREAM_STRICT_RESPONSES", c.Upstream.StrictResponses)

	c.Upstream.OAuth.TokenURL = getEnv("UPSTREAM_OAUTH_TOKEN_URL", c.Upstream.OAuth.TokenURL)
	c.Upstream.OAuth.ClientID = getEnv("UPSTREAM_OAUTH_CLIENT_ID", c.Upstream.OAuth.ClientID)
	c.Upstream.OAuth.ClientSecret = getEnv("UPSTREAM_OAUTH_CLIENT_SECRET", c.Upstream.OAuth.ClientSecret)
	c.Upstream.OAuth.Scopes = getEnvAsList("UPSTREAM_OAUTH_SCOPES", c.Upstream.OAuth.Scopes)
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres, DriverMongoDB:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite, postgres or mongodb)", c.Database.Driver)
	}

	if c.Database.Driver == DriverPostgres && c.Database.PostgresDSN == "" {
		return fmt.Errorf("POSTGRES_DSN is required when DB_DRIVER=postgres")
	}

	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL must not be empty")
	}

	return nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsSeconds(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(value) * time.Second
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

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
