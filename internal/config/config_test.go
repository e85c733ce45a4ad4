package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "ENV", "LOG_LEVEL", "DB_URL", "DB_AUTO_MIGRATE", "STORE_DRIVER",
	"IDENTITY_PROVIDER", "SUPABASE_URL", "SUPABASE_SERVICE_ROLE_KEY",
	"GATEWAY_TIMEOUT", "JWT_SECRET", "TOKEN_TTL", "CORS_ALLOWED_ORIGINS",
}

// clearEnv unsets every key Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPABASE_URL", "https://example.supabase.co/")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-role")
	t.Setenv("DB_URL", "postgres://localhost/lockdin")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", c.Port)
	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, StorePostgres, c.StoreDriver)
	assert.Equal(t, IdentitySupabase, c.IdentityProvider)
	assert.Equal(t, "https://example.supabase.co", c.Supabase.URL)
	assert.True(t, c.DBAutoMigrate)
	assert.Equal(t, 15*time.Second, c.GatewayTimeout)
	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.Equal(t, []string{"*"}, c.CorsConfig.AllowedOrigins)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "PORT=4000\nIDENTITY_PROVIDER=local\nSTORE_DRIVER=memory\nJWT_SECRET=s3cret\nTOKEN_TTL=30m\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Setenv("ENV_FILE", envFile)

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", c.Port)
	assert.Equal(t, IdentityLocal, c.IdentityProvider)
	assert.Equal(t, StoreMemory, c.StoreDriver)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, 30*time.Minute, c.TokenTTL)
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("GATEWAY_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GATEWAY_TIMEOUT")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "supabase without credentials",
			cfg:     Config{IdentityProvider: IdentitySupabase, StoreDriver: StoreMemory},
			wantErr: "SUPABASE_URL is required",
		},
		{
			name:    "local without secret",
			cfg:     Config{IdentityProvider: IdentityLocal, StoreDriver: StoreMemory},
			wantErr: "JWT_SECRET is required",
		},
		{
			name:    "postgres without dsn",
			cfg:     Config{IdentityProvider: IdentityLocal, JWTSecret: "x", StoreDriver: StorePostgres},
			wantErr: "DB_URL is required",
		},
		{
			name:    "unknown store",
			cfg:     Config{IdentityProvider: IdentityLocal, JWTSecret: "x", StoreDriver: "redis"},
			wantErr: `unknown STORE_DRIVER "redis"`,
		},
		{
			name: "local with memory store",
			cfg:  Config{IdentityProvider: IdentityLocal, JWTSecret: "x", StoreDriver: StoreMemory},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLogValue_HidesSecrets(t *testing.T) {
	c := Config{
		DB_URL:    "postgres://user:pw@host/db",
		JWTSecret: "jwt-secret",
		Supabase:  SupabaseConfig{URL: "https://x.supabase.co", ServiceRoleKey: "service-role"},
	}

	out := c.LogValue().String()
	assert.NotContains(t, out, "service-role")
	assert.NotContains(t, out, "jwt-secret")
	assert.NotContains(t, out, "pw@host")
}
