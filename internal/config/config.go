package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config — вся конфигурация сервиса: окружение, HTTP, БД, Redis, JWT.
type Config struct {
	Env     string `mapstructure:"ENV"`
	AppPort string `mapstructure:"APP_PORT"`

	DBHost            string `mapstructure:"DB_HOST"`
	DBPort            int    `mapstructure:"DB_PORT"`
	DBUser            string `mapstructure:"DB_USER"`
	DBPassword        string `mapstructure:"DB_PASSWORD"`
	DBName            string `mapstructure:"DB_NAME"`
	DBSSLMode         string `mapstructure:"DB_SSLMODE"`
	DBMaxOpenConns    int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifeTime int    `mapstructure:"DB_CONN_MAX_LIFETIME_MIN"` // минут

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	// Пустой адрес отключает кэш доступности.
	AvailabilityCacheTTLSec int `mapstructure:"AVAILABILITY_CACHE_TTL_SEC"`

	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTTTLHours int    `mapstructure:"JWT_TTL_HOURS"`

	RateLimitPerMin int `mapstructure:"RATE_LIMIT_PER_MIN"`
}

// Load читает config.yaml (текущая директория или ./config) и переменные
// окружения; переменные окружения имеют приоритет.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("APP_PORT", "8080")

	viper.SetDefault("DB_HOST", "postgres")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "booking")
	viper.SetDefault("DB_PASSWORD", "booking")
	viper.SetDefault("DB_NAME", "booking_db")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME_MIN", 30)

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("AVAILABILITY_CACHE_TTL_SEC", 60)

	viper.SetDefault("JWT_TTL_HOURS", 24)
	viper.SetDefault("RATE_LIMIT_PER_MIN", 120)

	if err := viper.ReadInConfig(); err != nil {
		// Файл опционален, окружения достаточно.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// минимальная валидация
	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}

// JWTTTL — срок жизни токена.
func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// AvailabilityCacheTTL — TTL кэша доступности.
func (c *Config) AvailabilityCacheTTL() time.Duration {
	return time.Duration(c.AvailabilityCacheTTLSec) * time.Second
}
