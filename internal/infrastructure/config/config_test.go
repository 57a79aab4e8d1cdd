package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageDynamoDB, cfg.StorageBackend)
	assert.Equal(t, 168*time.Hour, cfg.RequestExpiryWindow)
	assert.Equal(t, uint64(1), cfg.QuoteGeneratorSeed)
	assert.True(t, cfg.CompleteOnPayment)
	assert.Equal(t, "quote_requests", cfg.QuoteRequestsTable)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("REQUEST_EXPIRY_WINDOW", "30m")
	t.Setenv("QUOTE_GENERATOR_SEED", "42")
	t.Setenv("COMPLETE_ON_PAYMENT", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, 30*time.Minute, cfg.RequestExpiryWindow)
	assert.Equal(t, uint64(42), cfg.QuoteGeneratorSeed)
	assert.False(t, cfg.CompleteOnPayment)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown backend", "STORAGE_BACKEND", "postgres"},
		{"bad duration", "REQUEST_EXPIRY_WINDOW", "soon"},
		{"non-positive window", "REQUEST_EXPIRY_WINDOW", "-1h"},
		{"bad port", "PORT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
