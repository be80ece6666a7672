package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config содержит настройки фронтенда
type Config struct {
	// ServerAddress: адрес HTTP сервера фронтенда
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	// APIBaseURL: базовый адрес бэкенда, к нему добавляется /api/shorten/
	APIBaseURL URLPrefix `env:"API_BASE_URL"`
	// PublicOrigin: origin, под которым пользователю показываются короткие ссылки
	PublicOrigin URLPrefix `env:"PUBLIC_ORIGIN"`
	// RequestTimeout: таймаут HTTP клиента бэкенда
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// NewDefaultConfig возвращает конфигурацию по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:  NetworkAddress{Host: "localhost", Port: 8080},
		APIBaseURL:     URLPrefix("http://localhost:8000"),
		PublicOrigin:   URLPrefix("http://localhost:8000"),
		RequestTimeout: 10 * time.Second,
		LogLevel:       "info",
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем флаги командной строки,
// затем переменные окружения (включая .env в рабочем каталоге). Окружение имеет приоритет.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return load(os.Args[0], os.Args[1:], env.ToMap(os.Environ()))
}

func load(name string, args []string, environ map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flags.Var(&cfg.APIBaseURL, "api", "base URL of the shortener API")
	flags.Var(&cfg.PublicOrigin, "b", "origin for displayed short URLs")
	flags.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "timeout of requests to the shortener API")
	flags.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}

	return cfg, nil
}
