package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "agrocycle.db", cfg.Store.Path)
	assert.Equal(t, "devsecret", cfg.Session.Secret)
	assert.Equal(t, "", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Gemini.Model)
	assert.Equal(t, float64(4000), cfg.Market.LogisticsFee)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 2, cfg.LogLevel)
			},
		},
		{
			name: "store config override",
			envVars: map[string]string{
				"STORE_PATH": "/tmp/agro-test.db",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/agro-test.db", cfg.Store.Path)
			},
		},
		{
			name: "session config override",
			envVars: map[string]string{
				"SESSION_SECRET": "customsecret",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "customsecret", cfg.Session.Secret)
			},
		},
		{
			name: "gemini config override",
			envVars: map[string]string{
				"GEMINI_API_KEY": "key123",
				"GEMINI_MODEL":   "gemini-other",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "key123", cfg.Gemini.APIKey)
				assert.Equal(t, "gemini-other", cfg.Gemini.Model)
			},
		},
		{
			name: "market config override",
			envVars: map[string]string{
				"MARKET_LOGISTICS_FEE": "5500",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, float64(5500), cfg.Market.LogisticsFee)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				os.Setenv(key, value)
				defer os.Unsetenv(key)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}
