// Package config загружает настройки фронтенда доски из config.yaml, .env и переменных окружения.
package config

import "time"

// Config — конфигурация приложения.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	API     APIConfig     `mapstructure:"api"`
	Board   BoardConfig   `mapstructure:"board"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig — HTTP-сервер фронтенда.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	SecureCookies   bool          `mapstructure:"secure_cookies"`
}

// APIConfig — API записи на занятия. Timeout == 0 означает «без таймаута».
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// BoardConfig — поведение доски.
type BoardConfig struct {
	BannerDelay   time.Duration `mapstructure:"banner_delay"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// LoggingConfig — уровень логирования: debug, info, warn, error.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}
