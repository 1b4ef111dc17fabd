package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DOCTOR_LOOKUP_DELAY", "")
	t.Setenv("CONFIRMATION_TTL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "http://localhost:8080", cfg.App.BaseURL)
	assert.Equal(t, StorageDriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "appointments", cfg.Storage.Key)
	assert.Equal(t, 500*time.Millisecond, cfg.Booking.DoctorLookupDelay)
	assert.Equal(t, 3*time.Second, cfg.Booking.ConfirmationTTL)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_BASE_URL", "https://termine.example")
	t.Setenv("STORAGE_DRIVER", StorageDriverPostgres)
	t.Setenv("STORAGE_KEY", "termine")
	t.Setenv("DOCTOR_LOOKUP_DELAY", "50ms")
	t.Setenv("CONFIRMATION_TTL", "10s")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "https://termine.example", cfg.App.BaseURL)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "termine", cfg.Storage.Key)
	assert.Equal(t, 50*time.Millisecond, cfg.Booking.DoctorLookupDelay)
	assert.Equal(t, 10*time.Second, cfg.Booking.ConfirmationTTL)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadConfigInvalidDurationsFallBack(t *testing.T) {
	t.Setenv("DOCTOR_LOOKUP_DELAY", "soon")
	t.Setenv("CONFIRMATION_TTL", "-1s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Booking.DoctorLookupDelay)
	assert.Equal(t, 3*time.Second, cfg.Booking.ConfirmationTTL)
}

func TestLoadConfigZeroLookupDelay(t *testing.T) {
	t.Setenv("DOCTOR_LOOKUP_DELAY", "0s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Zero(t, cfg.Booking.DoctorLookupDelay)
}
