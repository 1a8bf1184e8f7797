package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	v := viper.New()
	setDefaults(v)

	var config Config
	require.NoError(t, v.Unmarshal(&config))
	return &config
}

func TestDefaults(t *testing.T) {
	config := defaultConfig(t)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, "CZK", config.CSV.Currency)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
	assert.Equal(t, "data", config.Data.Directory)
	assert.Equal(t, "categories.yaml", config.Data.CategoriesFile)

	assert.NoError(t, validateConfig(config))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "multi-character delimiter",
			mutate:  func(c *Config) { c.CSV.Delimiter = ";;" },
			wantErr: "single character",
		},
		{
			name:    "ai enabled without api key",
			mutate:  func(c *Config) { c.AI.Enabled = true },
			wantErr: "GEMINI_API_KEY",
		},
		{
			name: "ai timeout out of range",
			mutate: func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = "key"
				c.AI.TimeoutSeconds = 0
			},
			wantErr: "timeout_seconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultConfig(t)
			tt.mutate(config)

			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInitializeConfigEnvBindings(t *testing.T) {
	t.Setenv("CSV_DELIMITER", ";")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := defaultConfig(t)
	config.Log.Level = "debug"

	logger := ConfigureLoggingFromConfig(config)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	config.Log.Format = "json"
	logger = ConfigureLoggingFromConfig(config)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	config.Log.Level = "nonsense"
	logger = ConfigureLoggingFromConfig(config)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
