package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	SendGrid  SendGridConfig  `yaml:"sendgrid"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Rules     RulesConfig     `yaml:"rules"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SendGridConfig contains alert email settings
type SendGridConfig struct {
	APIKey        string `yaml:"api_key"`
	FromEmail     string `yaml:"from_email"`
	FromName      string `yaml:"from_name"`
	OperatorEmail string `yaml:"operator_email"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig holds cron expressions for the nightly jobs
type SchedulerConfig struct {
	LongHoldReport    string `yaml:"long_hold_report"`
	LowStockReport    string `yaml:"low_stock_report"`
	RefundReadyReport string `yaml:"refund_ready_report"`
}

// RulesConfig holds business thresholds. The deposit schedule is the fixed
// per-item amount charged at onboarding per cylinder size class.
type RulesConfig struct {
	DepositSmallCents  int64   `yaml:"deposit_small_cents"`
	DepositMediumCents int64   `yaml:"deposit_medium_cents"`
	DepositLargeCents  int64   `yaml:"deposit_large_cents"`
	LongHoldDays       int32   `yaml:"long_hold_days"`
	OverdueTierDays    []int32 `yaml:"overdue_tier_days"`
	LowStockThreshold  int32   `yaml:"low_stock_threshold"`
}

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
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.SendGrid.APIKey = val
	}
}

func (c *Config) applyDefaults() {
	if c.Rules.LongHoldDays == 0 {
		c.Rules.LongHoldDays = 30
	}
	if len(c.Rules.OverdueTierDays) == 0 {
		c.Rules.OverdueTierDays = []int32{90, 180, 365}
	}
	if c.Rules.LowStockThreshold == 0 {
		c.Rules.LowStockThreshold = 5
	}
	if c.Scheduler.LongHoldReport == "" {
		c.Scheduler.LongHoldReport = "0 0 2 * * *"
	}
	if c.Scheduler.LowStockReport == "" {
		c.Scheduler.LowStockReport = "0 15 2 * * *"
	}
	if c.Scheduler.RefundReadyReport == "" {
		c.Scheduler.RefundReadyReport = "0 30 2 * * *"
	}
}

// Validate checks required settings
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" || c.Database.Database == "" {
		return fmt.Errorf("database.host and database.database are required")
	}
	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
