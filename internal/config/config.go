package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the API server and background workers.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Auth     AuthConfig     `yaml:"auth"`
	Delivery DeliveryConfig `yaml:"delivery"`
	Payments PaymentsConfig `yaml:"payments"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	Environment string `yaml:"environment"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
}

type DeliveryConfig struct {
	FreeThreshold float64 `yaml:"free_threshold"`
	DefaultFee    float64 `yaml:"default_fee"`
}

// FreeThresholdAmount returns the free-delivery threshold as exact decimal.
func (d DeliveryConfig) FreeThresholdAmount() decimal.Decimal {
	return decimal.NewFromFloat(d.FreeThreshold)
}

// DefaultFeeAmount returns the flat delivery fee as exact decimal.
func (d DeliveryConfig) DefaultFeeAmount() decimal.Decimal {
	return decimal.NewFromFloat(d.DefaultFee)
}

type PaymentsConfig struct {
	GatewayURL    string `yaml:"gateway_url"`
	SecretKey     string `yaml:"secret_key"`
	WebhookSecret string `yaml:"webhook_secret"`
	Currency      string `yaml:"currency"`
}

type SMTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

// Load reads configuration from a YAML file and applies environment
// variable overrides on top of it. A missing file is not an error;
// the environment alone can carry a full configuration.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: 4000, Environment: "development"},
		Database: DatabaseConfig{
			Host: "localhost", Port: 5432,
			User: "postgres", Password: "postgres", Database: "naija_aroma",
		},
		RabbitMQ: RabbitMQConfig{
			Host: "localhost", Port: 5672,
			User: "guest", Password: "guest",
		},
		Auth: AuthConfig{TokenTTLHours: 24 * 7},
		Delivery: DeliveryConfig{
			FreeThreshold: 5000,
			DefaultFee:    500,
		},
		Payments: PaymentsConfig{Currency: "ngn"},
	}
}

func (c *Config) applyEnv() {
	setString(&c.Server.Environment, "APP_ENV")
	setInt(&c.Server.Port, "PORT")
	setString(&c.Database.Host, "DB_HOST")
	setInt(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Database, "DB_NAME")
	setString(&c.RabbitMQ.Host, "RABBITMQ_HOST")
	setInt(&c.RabbitMQ.Port, "RABBITMQ_PORT")
	setString(&c.RabbitMQ.User, "RABBITMQ_USER")
	setString(&c.RabbitMQ.Password, "RABBITMQ_PASSWORD")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setInt(&c.Auth.TokenTTLHours, "JWT_TTL_HOURS")
	setFloat(&c.Delivery.FreeThreshold, "FREE_DELIVERY_THRESHOLD")
	setFloat(&c.Delivery.DefaultFee, "DEFAULT_DELIVERY_FEE")
	setString(&c.Payments.GatewayURL, "PAYMENT_GATEWAY_URL")
	setString(&c.Payments.SecretKey, "PAYMENT_SECRET_KEY")
	setString(&c.Payments.WebhookSecret, "PAYMENT_WEBHOOK_SECRET")
	setString(&c.Payments.Currency, "PAYMENT_CURRENCY")
	setString(&c.SMTP.Host, "SMTP_HOST")
	setInt(&c.SMTP.Port, "SMTP_PORT")
	setString(&c.SMTP.User, "SMTP_USER")
	setString(&c.SMTP.Pass, "SMTP_PASS")
	setString(&c.SMTP.From, "SMTP_FROM")
}

// Validate checks values the server cannot run without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret (JWT_SECRET) is required")
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("auth.token_ttl_hours must be positive")
	}
	if c.Delivery.DefaultFee < 0 {
		return fmt.Errorf("delivery.default_fee must not be negative")
	}
	if c.Delivery.FreeThreshold < 0 {
		return fmt.Errorf("delivery.free_threshold must not be negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	return nil
}

// DatabaseURL builds a PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		c.Database.User, c.Database.Password,
		c.Database.Host, c.Database.Port, c.Database.Database)
}

// RabbitMQURL builds an AMQP connection string.
func (c *Config) RabbitMQURL() string {
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		c.RabbitMQ.User, c.RabbitMQ.Password,
		c.RabbitMQ.Host, c.RabbitMQ.Port)
}

// IsProduction reports whether the server runs with production hardening
// (introspection off, internal errors masked).
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
