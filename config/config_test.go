package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{
		Database: &DatabaseConfig{Driver: DriverSQLite, SQLitePath: ":memory:"},
		Auth:     &AuthConfig{AccessTokenTTL: 15 * time.Minute, RefreshTokenTTL: 24 * time.Hour},
	}
	cfg.HTTP.Port = 8080
	cfg.SecretKey.Access = "access"
	cfg.SecretKey.Refresh = "refresh"

	return cfg
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{
		Auth:      &AuthConfig{},
		RateLimit: &RateLimitConfig{Enabled: true, RequestsPerSecond: 2},
		Metrics:   &MetricsConfig{Enabled: true},
	}

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.Auth.SessionPurgeInterval)
	assert.Equal(t, 1, cfg.RateLimit.Burst)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid sqlite"},
		{
			name:   "valid postgres",
			mutate: func(cfg *Config) { cfg.Database.Driver = DriverPostgres; cfg.Postgres = &postgres.DBConn{} },
		},
		{
			name:    "port",
			mutate:  func(cfg *Config) { cfg.HTTP.Port = 0 },
			wantErr: "http.port",
		},
		{
			name:    "postgres without section",
			mutate:  func(cfg *Config) { cfg.Database.Driver = DriverPostgres },
			wantErr: "postgres section",
		},
		{
			name:    "sqlite without path",
			mutate:  func(cfg *Config) { cfg.Database.SQLitePath = " " },
			wantErr: "sqlitePath",
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Database.Driver = "mongo" },
			wantErr: "unsupported",
		},
		{
			name:    "missing secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Refresh = "" },
			wantErr: "secretKey",
		},
		{
			name:    "access outlives refresh",
			mutate:  func(cfg *Config) { cfg.Auth.AccessTokenTTL = 48 * time.Hour },
			wantErr: "accessTokenTTL",
		},
		{
			name:    "rate limit without rate",
			mutate:  func(cfg *Config) { cfg.RateLimit = &RateLimitConfig{Enabled: true} },
			wantErr: "requestsPerSecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
