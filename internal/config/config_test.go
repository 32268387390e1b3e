package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	strongSecret := "secure-secret-at-least-32-chars-long"

	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "development with defaults",
			config:      Config{Env: "development", Port: "8460", JWTSecret: "your-secret-key-change-in-production"},
			expectError: false,
		},
		{
			name:        "missing port",
			config:      Config{Env: "development", JWTSecret: strongSecret},
			expectError: true,
		},
		{
			name:        "missing JWT secret",
			config:      Config{Env: "development", Port: "8460"},
			expectError: true,
		},
		{
			name:        "production with default JWT secret",
			config:      Config{Env: "production", Port: "8460", JWTSecret: "your-secret-key-change-in-production", DBPassword: "strong-pw"},
			expectError: true,
		},
		{
			name:        "production with short JWT secret",
			config:      Config{Env: "production", Port: "8460", JWTSecret: "short", DBPassword: "strong-pw"},
			expectError: true,
		},
		{
			name:        "production with default DB password",
			config:      Config{Env: "production", Port: "8460", JWTSecret: strongSecret, DBPassword: "password"},
			expectError: true,
		},
		{
			name:        "production fully configured",
			config:      Config{Env: "production", Port: "8460", JWTSecret: strongSecret, DBPassword: "strong-pw", DBSSLMode: "require"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8460", cfg.Port)
	assert.Equal(t, "workhub", cfg.DBName)
	assert.Equal(t, "development", cfg.Env)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer os.Unsetenv("PORT")
	defer viper.Reset()

	os.Setenv("PORT", "9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
}
