package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"time"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Auth       Auth       `yaml:"auth"`
	Notifier   Notifier   `yaml:"notifier"`
	Ledger     Ledger     `yaml:"ledger"`
}

type Database struct {
	Host          string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port          int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User          string `yaml:"user" env:"DB_USER" env-required:"true"`
	Password      string `yaml:"password" env:"DB_PASSWORD" env-required:"true"`
	DBName        string `yaml:"dbname" env:"DB_NAME" env-default:"chapter_events"`
	SSLMode       string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	MigrateOnBoot bool   `yaml:"migrate_on_boot" env:"DB_MIGRATE_ON_BOOT" env-default:"true"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
}

type Notifier struct {
	PushURL     string        `yaml:"push_url" env:"PUSH_URL"`
	Workers     int           `yaml:"workers" env-default:"2"`
	QueueSize   int           `yaml:"queue_size" env-default:"256"`
	MaxAttempts int           `yaml:"max_attempts" env-default:"5"`
	BaseDelay   time.Duration `yaml:"base_delay" env-default:"500ms"`
	MaxDelay    time.Duration `yaml:"max_delay" env-default:"30s"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
}

// Ledger bounds the optimistic retry loop around event writes.
type Ledger struct {
	MaxAttempts int           `yaml:"max_attempts" env-default:"5"`
	RetryDelay  time.Duration `yaml:"retry_delay" env-default:"10ms"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
