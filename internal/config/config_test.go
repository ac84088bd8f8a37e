package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Port:               8000,
		Env:                "development",
		DatabaseURL:        "postgres://localhost/wasabi",
		RateLimitPerMinute: 100,
		PDFStoragePath:     "/tmp/facturas",
		JWTSecret:          DevJWTSecret,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid development config", mutate: func(c *Config) {}},
		{name: "port out of range", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "PORT"},
		{name: "missing dsn", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "DATABASE_URL"},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimitPerMinute = 0 }, wantErr: "RATE_LIMIT_PER_MINUTE"},
		{name: "missing secret", mutate: func(c *Config) { c.JWTSecret = "" }, wantErr: "JWT_SECRET"},
		{name: "production with dev secret", mutate: func(c *Config) { c.Env = "production" }, wantErr: "JWT_SECRET"},
		{name: "production with secret", mutate: func(c *Config) { c.Env = "production"; c.JWTSecret = "s3cret" }},
		{name: "missing pdf storage", mutate: func(c *Config) { c.PDFStoragePath = "" }, wantErr: "PDF_STORAGE_PATH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "clave")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "60")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "clave", cfg.JWTSecret)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
}

func TestConfig_AllowedOrigins(t *testing.T) {
	c := Config{CORSAllowedOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins())
	assert.Empty(t, (&Config{}).AllowedOrigins())
}
