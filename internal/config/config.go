package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig доменные константы расписания
// Задаются конфигурацией, а не зашиваются в движок бронирований
type ScheduleConfig struct {
	// PackageSizes разрешённые размеры пакетов тренировок
	PackageSizes []int `toml:"package_sizes"`
	// DayStartHour первый бронируемый час дня (базовый часовой пояс)
	DayStartHour int `toml:"day_start_hour"`
	// DayEndHour последний бронируемый час дня включительно
	DayEndHour int `toml:"day_end_hour"`
	// SecondaryOffsetHours сдвиг второго отображаемого часового пояса
	// относительно базового (фиксированная константа, не tzdata)
	SecondaryOffsetHours int `toml:"secondary_offset_hours"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if len(c.Schedule.PackageSizes) == 0 {
		return fmt.Errorf("config: schedule.package_sizes must not be empty")
	}
	for _, size := range c.Schedule.PackageSizes {
		if size <= 0 {
			return fmt.Errorf("config: schedule.package_sizes must contain only positive values")
		}
	}
	if c.Schedule.DayStartHour < 0 || c.Schedule.DayStartHour > 23 {
		return fmt.Errorf("config: schedule.day_start_hour must be within 0..23")
	}
	if c.Schedule.DayEndHour < c.Schedule.DayStartHour || c.Schedule.DayEndHour > 23 {
		return fmt.Errorf("config: schedule.day_end_hour must be within day_start_hour..23")
	}
	return nil
}
