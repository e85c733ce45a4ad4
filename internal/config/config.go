package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

const (
	IdentitySupabase = "supabase"
	IdentityLocal    = "local"

	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type SupabaseConfig struct {
	URL            string
	ServiceRoleKey string
}

type Config struct {
	Port             string
	Environment      string
	LogLevel         string
	DB_URL           string
	DBAutoMigrate    bool
	StoreDriver      string
	IdentityProvider string
	Supabase         SupabaseConfig
	GatewayTimeout   time.Duration
	JWTSecret        string
	TokenTTL         time.Duration
	CorsConfig       cors.Options
}

// Load reads the process configuration once. Values from the environment take
// precedence over the env file.
func Load() (Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil {
		slog.Debug("env file not loaded", "file", envFile, "err", err)
	}

	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("DB_AUTO_MIGRATE: %w", err)
	}
	gatewayTimeout, err := time.ParseDuration(getEnv("GATEWAY_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("GATEWAY_TIMEOUT: %w", err)
	}
	tokenTTL, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("TOKEN_TTL: %w", err)
	}

	cfg := Config{
		Port:             getEnv("PORT", "3001"),
		Environment:      getEnv("ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DB_URL:           getEnv("DB_URL", ""),
		DBAutoMigrate:    autoMigrate,
		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", StorePostgres)),
		IdentityProvider: strings.ToLower(getEnv("IDENTITY_PROVIDER", IdentitySupabase)),
		Supabase: SupabaseConfig{
			URL:            strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
			ServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		},
		GatewayTimeout: gatewayTimeout,
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTL:       tokenTTL,
		CorsConfig:     CorsConfig(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that make the configured gateway unusable.
func (c Config) Validate() error {
	var errs []error

	switch c.IdentityProvider {
	case IdentitySupabase:
		if c.Supabase.URL == "" {
			errs = append(errs, errors.New("SUPABASE_URL is required"))
		}
		if c.Supabase.ServiceRoleKey == "" {
			errs = append(errs, errors.New("SUPABASE_SERVICE_ROLE_KEY is required"))
		}
	case IdentityLocal:
		if c.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required for the local identity provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown IDENTITY_PROVIDER %q", c.IdentityProvider))
	}

	switch c.StoreDriver {
	case StorePostgres:
		if c.DB_URL == "" {
			errs = append(errs, errors.New("DB_URL is required"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}

	return errors.Join(errs...)
}

// LogValue keeps credentials out of log output.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("port", c.Port),
		slog.String("env", c.Environment),
		slog.String("store", c.StoreDriver),
		slog.String("identity", c.IdentityProvider),
		slog.String("supabase_url", c.Supabase.URL),
		slog.Bool("db_url_set", c.DB_URL != ""),
		slog.Duration("gateway_timeout", c.GatewayTimeout),
	)
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func CorsConfig(origins string) cors.Options {
	var allowed []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}
	return cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}
}
