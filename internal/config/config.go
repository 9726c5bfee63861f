package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml.
// Секреты и строки подключения задаются только здесь или через переменные
// окружения - в коде значений по умолчанию для них нет.
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Auth          AuthConfig          `toml:"auth"`
	BusinessHours BusinessHoursConfig `toml:"business_hours"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL.
// URL (storage URL) имеет приоритет над отдельными полями.
type DatabaseConfig struct {
	URL             string `toml:"url"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// AuthConfig настройки выпуска и проверки JWT токенов
type AuthConfig struct {
	Secret        string `toml:"secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// BusinessHoursConfig рабочие часы площадок и шаг сетки слотов
type BusinessHoursConfig struct {
	Open                string `toml:"open"`
	Close               string `toml:"close"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load загружает и валидирует конфигурацию из TOML файла.
// Секрет и строка подключения могут быть переопределены переменными
// окружения AUTH_SECRET и DATABASE_URL.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Auth.TokenTTLHours == 0 {
		c.Auth.TokenTTLHours = 24
	}
	if c.BusinessHours.Open == "" {
		c.BusinessHours.Open = domain.DefaultBusinessOpen
	}
	if c.BusinessHours.Close == "" {
		c.BusinessHours.Close = domain.DefaultBusinessClose
	}
	if c.BusinessHours.SlotDurationMinutes == 0 {
		c.BusinessHours.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "venue-booking-service"
	}
}

func (c *Config) validate() error {
	if c.Auth.Secret == "" {
		return errors.New("config: auth.secret is required (or AUTH_SECRET env)")
	}
	if c.Database.DSN() == "" {
		return errors.New("config: database connection is not configured")
	}
	if c.BusinessHours.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		c.BusinessHours.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("config: business_hours.slot_duration_minutes must be between %d and %d",
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	return nil
}
