package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	httpapi "github.com/aussiebroadwan/leads/internal/leads/http"
	"github.com/aussiebroadwan/leads/internal/leads/service"
	"github.com/aussiebroadwan/leads/pkg/httpx"
	"github.com/aussiebroadwan/leads/pkg/jwtx"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	maxDatabaseConns = 1000
)

type Config struct {
	SigningSecret         string        // Required: HMAC secret, at least 32 bytes (or SigningSecretFile)
	SigningSecretFile     string        // Optional: file holding the signing secret
	SigningSecretPrevious string        // Optional: retired secret still accepted for verification
	TokenTTL              time.Duration // Optional: token lifetime (default: 24h)
	Issuer                string        // Optional: iss claim (default: leads-api)
	RevocationEnabled     bool          // Optional: consult the jti denylist (default: false)

	DatabaseDriver   string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile     string // Optional: SQLite file (default: ./leads.db)
	DatabaseURL      string // Required for postgres: DSN
	DatabaseMaxConns int    // Optional: postgres pool size, 1 to 1000 (default: 10)
	PepperFile       string // Optional: path to the password pepper (default: ./pepper)

	AdminUsername   string // Optional: seeded admin (default: admin)
	AdminPassword   string // Optional: seeded admin password; generated when empty and no admin exists
	AdminTOTPSecret string // Optional: base32 TOTP secret; login then requires an otp code
	AdminFeeBps     int    // Optional: consortium admin fee in basis points (default: 1500)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Denylist pruning interval (default: 1h)

	RateLimits httpapi.RateLimits // TrustProxyHeaders from LEADS_TRUST_PROXY_HEADERS (default: false)
}

func LoadConfig() Config {
	return Config{
		SigningSecret:         os.Getenv("LEADS_SIGNING_SECRET"),
		SigningSecretFile:     os.Getenv("LEADS_SIGNING_SECRET_FILE"),
		SigningSecretPrevious: os.Getenv("LEADS_SIGNING_SECRET_PREVIOUS"),
		TokenTTL:              getEnvDurationOrDefault("LEADS_TOKEN_TTL", jwtx.DefaultTokenTTL),
		Issuer:                getEnvOrDefault("LEADS_ISSUER", "leads-api"),
		RevocationEnabled:     getEnvBoolOrDefault("LEADS_REVOCATION_ENABLED", false),

		DatabaseDriver:   strings.ToLower(getEnvOrDefault("LEADS_DATABASE_DRIVER", DriverSQLite)),
		DatabaseFile:     getEnvOrDefault("LEADS_DATABASE_FILE", "leads.db"),
		DatabaseURL:      os.Getenv("LEADS_DATABASE_URL"),
		DatabaseMaxConns: getEnvIntOrDefault("LEADS_DATABASE_MAX_CONNS", 10),
		PepperFile:       getEnvOrDefault("LEADS_PEPPER_FILE", "pepper"),

		AdminUsername:   getEnvOrDefault("LEADS_ADMIN_USERNAME", "admin"),
		AdminPassword:   os.Getenv("LEADS_ADMIN_PASSWORD"),
		AdminTOTPSecret: os.Getenv("LEADS_ADMIN_TOTP_SECRET"),
		AdminFeeBps:     getEnvIntOrDefault("LEADS_ADMIN_FEE_BPS", service.DefaultAdminFeeBps),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		RateLimits: httpapi.RateLimits{
			Login:  httpx.ParseRateLimitFromEnv("LEADS_RATELIMIT_LOGIN", httpx.LoginLimit),
			Submit: httpx.ParseRateLimitFromEnv("LEADS_RATELIMIT_SUBMIT", httpx.SubmitLimit),
			Read:   httpx.ParseRateLimitFromEnv("LEADS_RATELIMIT_READ", httpx.ReadLimit),
			Public: httpx.ParseRateLimitFromEnv("LEADS_RATELIMIT_PUBLIC", httpx.PublicLimit),

			TrustProxyHeaders: getEnvBoolOrDefault("LEADS_TRUST_PROXY_HEADERS", false),
		},
	}
}

// Validate reports every problem that would stop the service from starting
// as a single ConfigurationError. The signing secret itself is checked when
// the key set is built.
func (c Config) Validate() error {
	var errs []error

	if c.SigningSecret == "" && c.SigningSecretFile == "" {
		errs = append(errs, errors.New("LEADS_SIGNING_SECRET or LEADS_SIGNING_SECRET_FILE is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("LEADS_TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}
	if strings.TrimSpace(c.AdminUsername) == "" {
		errs = append(errs, errors.New("LEADS_ADMIN_USERNAME must not be empty"))
	}
	if c.AdminFeeBps < 0 || c.AdminFeeBps > 10000 {
		errs = append(errs, fmt.Errorf("LEADS_ADMIN_FEE_BPS must be between 0 and 10000, got %d", c.AdminFeeBps))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("LEADS_DATABASE_FILE must not be empty"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("LEADS_DATABASE_URL is required for the postgres driver"))
		}
		if c.DatabaseMaxConns < 1 || c.DatabaseMaxConns > maxDatabaseConns {
			errs = append(errs, fmt.Errorf("LEADS_DATABASE_MAX_CONNS must be between 1 and %d, got %d", maxDatabaseConns, c.DatabaseMaxConns))
		}
	default:
		errs = append(errs, fmt.Errorf("LEADS_DATABASE_DRIVER must be sqlite or postgres, got %q", c.DatabaseDriver))
	}

	if len(errs) == 0 {
		return nil
	}
	return domain.NewAuthError(domain.KindConfiguration, errors.Join(errs...))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
