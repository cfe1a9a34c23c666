package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Blob     BlobConfig     `yaml:"blob"`
	JWT      JWTConfig      `yaml:"jwt"`
	SendGrid SendGridConfig `yaml:"sendgrid"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig contains table store settings. When the section is absent or
// carries placeholder values the server runs against in-process mock data.
type StorageConfig struct {
	AccountName      string `yaml:"account_name"`
	ConnectionString string `yaml:"connection_string"`
}

// BlobConfig contains photo blob store settings (S3-compatible endpoint)
type BlobConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Container string `yaml:"container"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// JWTConfig contains session token settings
type JWTConfig struct {
	Secret     string `yaml:"secret"`
	ExpiryDays int    `yaml:"expiry_days"`
}

// SendGridConfig contains email notification settings
type SendGridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// placeholderSecret is the value shipped in sample configs. A deployment that
// never replaced it is treated as unconfigured.
const placeholderSecret = "fallback-secret-key"

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Storage
	if val := os.Getenv("STORAGE_ACCOUNT_NAME"); val != "" {
		c.Storage.AccountName = val
	}
	if val := os.Getenv("STORAGE_CONNECTION_STRING"); val != "" {
		c.Storage.ConnectionString = val
	}

	// Blob
	if val := os.Getenv("BLOB_ENDPOINT"); val != "" {
		c.Blob.Endpoint = val
	}
	if val := os.Getenv("BLOB_ACCESS_KEY"); val != "" {
		c.Blob.AccessKey = val
	}
	if val := os.Getenv("BLOB_SECRET_KEY"); val != "" {
		c.Blob.SecretKey = val
	}
	if val := os.Getenv("BLOB_CONTAINER"); val != "" {
		c.Blob.Container = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// SendGrid
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.SendGrid.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM_EMAIL"); val != "" {
		c.SendGrid.FromEmail = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.JWT.ExpiryDays == 0 {
		c.JWT.ExpiryDays = 7
	}
	if c.Blob.Container == "" {
		c.Blob.Container = "issues"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.JWT.ExpiryDays < 0 {
		return fmt.Errorf("invalid jwt expiry: %d days", c.JWT.ExpiryDays)
	}
	return nil
}

// StorageConfigured reports whether the live table store can be used.
// Evaluated exactly once at startup; when it returns false the server runs
// entirely against seeded mock data. Placeholder values from sample configs
// count as unconfigured.
func (c *Config) StorageConfigured() bool {
	conn := strings.TrimSpace(c.Storage.ConnectionString)
	if conn == "" || conn == "undefined" {
		return false
	}
	account := strings.TrimSpace(c.Storage.AccountName)
	if account == "" || account == "undefined" {
		return false
	}
	secret := strings.TrimSpace(c.JWT.Secret)
	if secret == "" || secret == placeholderSecret {
		return false
	}
	return true
}

// BlobConfigured reports whether the live blob store can be used.
// Photo uploads fall back to synthesized mock URLs when it returns false.
func (c *Config) BlobConfigured() bool {
	return strings.TrimSpace(c.Blob.Endpoint) != "" &&
		strings.TrimSpace(c.Blob.AccessKey) != "" &&
		strings.TrimSpace(c.Blob.SecretKey) != ""
}

// EmailConfigured reports whether resolution notification emails can be sent
func (c *Config) EmailConfigured() bool {
	return strings.TrimSpace(c.SendGrid.APIKey) != "" &&
		strings.TrimSpace(c.SendGrid.FromEmail) != ""
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
