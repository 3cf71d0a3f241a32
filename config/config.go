package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Stripe   StripeConfig   `yaml:"stripe"`
	Booking  BookingConfig  `yaml:"booking"`
}

type HTTPConfig struct {
	Port      string `yaml:"port" env:"PORT" env-default:"4000"`
	StaticDir string `yaml:"static_dir" env:"STATIC_DIR" env-default:"public"`
}

func (h HTTPConfig) Address() string {
	return ":" + h.Port
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type DatabaseConfig struct {
	Driver          string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"mongo"`
	MongoURI        string `yaml:"mongo_uri" env:"MONGODB_URI"`
	MongoDatabase   string `yaml:"mongo_database" env:"MONGODB_DATABASE" env-default:"reservasDB"`
	MongoCollection string `yaml:"mongo_collection" env:"MONGODB_COLLECTION" env-default:"reservas"`
	PostgresDSN     string `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers      []string `yaml:"brokers" env:"KAFKA_BROKERS"`
	BookingTopic string   `yaml:"booking_topic" env:"KAFKA_BOOKING_TOPIC" env-default:"booking-events"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// The authenticated SMTP user is also the sender address.
type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	User     string `yaml:"user" env:"EMAIL_USER"`
	Password string `yaml:"password" env:"EMAIL_PASS"`
}

func (s SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type StripeConfig struct {
	SecretKey  string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
	Currency   string `yaml:"currency" env:"STRIPE_CURRENCY" env-default:"eur"`
	SuccessURL string `yaml:"success_url" env:"SUCCESS_URL" env-default:"http://localhost:4000/sucesso"`
	CancelURL  string `yaml:"cancel_url" env:"CANCEL_URL" env-default:"http://localhost:4000/cancelado"`
}

type BookingConfig struct {
	ListCacheTTLSeconds int `yaml:"list_cache_ttl_seconds" env:"BOOKINGS_CACHE_TTL_SECONDS" env-default:"30"`
}

func (b BookingConfig) ListCacheTTL() time.Duration {
	return time.Duration(b.ListCacheTTLSeconds) * time.Second
}

// LoadConfig reads the optional YAML file at path and then overlays the
// environment. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.MongoURI == "" {
			return errors.New("MONGODB_URI is not set")
		}
	case DriverPostgres:
		if c.Database.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is not set")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.HTTP.Port == "" {
		return errors.New("http port is empty")
	}
	if c.SMTP.Port <= 0 {
		return fmt.Errorf("invalid smtp port %d", c.SMTP.Port)
	}
	if c.Booking.ListCacheTTLSeconds < 0 {
		return errors.New("bookings cache ttl must not be negative")
	}
	return nil
}
