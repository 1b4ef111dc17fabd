package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Booking BookingConfig
	DB      DBConfig
	Redis   RedisConfig
}

type AppConfig struct {
	Port       string
	Env        string
	BaseURL    string
	LogLevel   string
	CORSOrigin string
}

// StorageConfig selects where the appointment collection is persisted.
type StorageConfig struct {
	Driver string // redis, postgres or memory
	Key    string
}

type BookingConfig struct {
	DoctorLookupDelay time.Duration
	ConfirmationTTL   time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

const (
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_BASE_URL", "http://localhost:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("DOCTOR_LOOKUP_DELAY", "500ms")
	v.SetDefault("CONFIRMATION_TTL", "3s")
	v.SetDefault("STORAGE_DRIVER", StorageDriverRedis)
	v.SetDefault("STORAGE_KEY", "appointments")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")

	// The .env file is optional, plain environment variables are enough.
	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	lookupDelay, err := time.ParseDuration(v.GetString("DOCTOR_LOOKUP_DELAY"))
	if err != nil || lookupDelay < 0 {
		lookupDelay = 500 * time.Millisecond
	}

	confirmationTTL, err := time.ParseDuration(v.GetString("CONFIRMATION_TTL"))
	if err != nil || confirmationTTL <= 0 {
		confirmationTTL = 3 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			BaseURL:    v.GetString("APP_BASE_URL"),
			LogLevel:   v.GetString("LOG_LEVEL"),
			CORSOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		Storage: StorageConfig{
			Driver: v.GetString("STORAGE_DRIVER"),
			Key:    v.GetString("STORAGE_KEY"),
		},
		Booking: BookingConfig{
			DoctorLookupDelay: lookupDelay,
			ConfirmationTTL:   confirmationTTL,
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
	}

	return config, nil
}
