package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Storage   StorageConfig   `toml:"storage"`
	Metrics   MetricsConfig   `toml:"metrics"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
}

// ServerConfig настройки HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// StorageConfig пути хранения данных
type StorageConfig struct {
	DataFile        string `toml:"data_file"`
	UploadsDir      string `toml:"uploads_dir"`
	MaxUploadSizeMB int64  `toml:"max_upload_size_mb"`
}

// MaxUploadSizeBytes лимит размера загружаемого файла в байтах
func (s StorageConfig) MaxUploadSizeBytes() int64 {
	return s.MaxUploadSizeMB * 1024 * 1024
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RateLimitConfig лимит частоты публичных заявок на бронирование
type RateLimitConfig struct {
	BookingRPS   float64 `toml:"booking_rps"`
	BookingBurst int     `toml:"booking_burst"`
}

// Load читает конфигурацию из TOML-файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DataFile:        "data/database.json",
			UploadsDir:      "public/uploads",
			MaxUploadSizeMB: 6,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-hotel-content-service",
		},
		RateLimit: RateLimitConfig{
			BookingRPS:   1,
			BookingBurst: 5,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}
