package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается, когда значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Mock      MockConfig      `toml:"mock"`
	Storage   StorageConfig   `toml:"storage"`
	Sessions  SessionsConfig  `toml:"sessions"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int  `toml:"http_port"`
	ReadTimeout     int  `toml:"read_timeout"`
	WriteTimeout    int  `toml:"write_timeout"`
	IdleTimeout     int  `toml:"idle_timeout"`
	ShutdownTimeout int  `toml:"shutdown_timeout"`
	SecureCookies   bool `toml:"secure_cookies"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MockConfig настройки mock API.
// LatencyScale умножает искусственные задержки (0 отключает их).
type MockConfig struct {
	LatencyScale float64 `toml:"latency_scale"`
}

// StorageConfig настройки хранилища последней записи
type StorageConfig struct {
	Backend string      `toml:"backend"`
	Key     string      `toml:"key"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	TTL         int    `toml:"ttl"`          // секунды, 0 без срока
	DialTimeout int    `toml:"dial_timeout"` // секунды
}

// SessionsConfig настройки сессий формы (в секундах)
type SessionsConfig struct {
	TTL             int `toml:"ttl"`
	JanitorInterval int `toml:"janitor_interval"`
}

// RateLimitConfig настройки ограничения частоты запросов
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
	// IdleTTL секунды без запросов, после которых адрес забывается
	IdleTTL int `toml:"idle_ttl"`
	// JanitorInterval период очистки простаивающих адресов, секунды
	JanitorInterval int `toml:"janitor_interval"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "littlelemon_booking",
		},
		Mock: MockConfig{
			LatencyScale: 1,
		},
		Storage: StorageConfig{
			Backend: StorageMemory,
			Key:     "orderData",
			Redis: RedisConfig{
				Addr:        "localhost:6379",
				DialTimeout: 2,
			},
		},
		Sessions: SessionsConfig{
			TTL:             1800,
			JanitorInterval: 60,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:             5,
			Burst:           20,
			IdleTTL:         600,
			JanitorInterval: 60,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Mock.LatencyScale < 0 {
		return fmt.Errorf("%w: mock.latency_scale must not be negative", ErrInvalidConfig)
	}
	switch c.Storage.Backend {
	case StorageMemory:
	case StorageRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("%w: storage.redis.addr is required for redis backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Sessions.TTL < 0 || c.Sessions.JanitorInterval < 0 {
		return fmt.Errorf("%w: sessions values must not be negative", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: ratelimit.rps and ratelimit.burst must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.IdleTTL < 0 || c.RateLimit.JanitorInterval < 0 {
		return fmt.Errorf("%w: ratelimit idle values must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SessionTTL время жизни неактивной сессии
func (c *SessionsConfig) SessionTTL() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// Interval период проверки неактивных сессий
func (c *SessionsConfig) Interval() time.Duration {
	return time.Duration(c.JanitorInterval) * time.Second
}

// IdleDuration время простоя, после которого адрес забывается
func (c *RateLimitConfig) IdleDuration() time.Duration {
	return time.Duration(c.IdleTTL) * time.Second
}

// Interval период очистки простаивающих адресов
func (c *RateLimitConfig) Interval() time.Duration {
	return time.Duration(c.JanitorInterval) * time.Second
}
