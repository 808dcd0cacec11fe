package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/pkg/httpx"
	"github.com/aussiebroadwan/leads/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef-test"

func validConfig() Config {
	return Config{
		SigningSecret:    testSecret,
		TokenTTL:         time.Hour,
		Issuer:           "leads-test",
		DatabaseDriver:   DriverSQLite,
		DatabaseFile:     ":memory:",
		DatabaseMaxConns: 10,
		AdminUsername:    "admin",
		AdminFeeBps:      1500,
		Port:             8080,
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, jwtx.DefaultTokenTTL, cfg.TokenTTL)
	require.Equal(t, "leads-api", cfg.Issuer)
	require.False(t, cfg.RevocationEnabled)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "leads.db", cfg.DatabaseFile)
	require.Equal(t, 10, cfg.DatabaseMaxConns)
	require.Equal(t, "admin", cfg.AdminUsername)
	require.Equal(t, 1500, cfg.AdminFeeBps)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Equal(t, httpx.LoginLimit, cfg.RateLimits.Login)
	require.Equal(t, httpx.PublicLimit, cfg.RateLimits.Public)
	require.False(t, cfg.RateLimits.TrustProxyHeaders)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LEADS_SIGNING_SECRET", testSecret)
	t.Setenv("LEADS_TOKEN_TTL", "30m")
	t.Setenv("LEADS_ISSUER", "acme")
	t.Setenv("LEADS_REVOCATION_ENABLED", "true")
	t.Setenv("LEADS_DATABASE_DRIVER", "Postgres")
	t.Setenv("LEADS_DATABASE_URL", "postgres://localhost/leads")
	t.Setenv("LEADS_ADMIN_FEE_BPS", "1200")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15")
	t.Setenv("PORT", "not-a-port")
	t.Setenv("LEADS_RATELIMIT_LOGIN_REQUESTS", "0")
	t.Setenv("LEADS_TRUST_PROXY_HEADERS", "true")

	cfg := LoadConfig()

	require.Equal(t, testSecret, cfg.SigningSecret)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, "acme", cfg.Issuer)
	require.True(t, cfg.RevocationEnabled)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, 1200, cfg.AdminFeeBps)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
	require.Equal(t, 8080, cfg.Port)
	require.True(t, cfg.RateLimits.Login.Disabled())
	require.True(t, cfg.RateLimits.TrustProxyHeaders)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cases := map[string]func(*Config){
		"missing secret":        func(c *Config) { c.SigningSecret = "" },
		"non-positive ttl":      func(c *Config) { c.TokenTTL = 0 },
		"empty admin username":  func(c *Config) { c.AdminUsername = "  " },
		"fee out of range":      func(c *Config) { c.AdminFeeBps = 10001 },
		"bad port":              func(c *Config) { c.Port = 0 },
		"unknown driver":        func(c *Config) { c.DatabaseDriver = "mysql" },
		"postgres without url":  func(c *Config) { c.DatabaseDriver = DriverPostgres },
		"sqlite without a file": func(c *Config) { c.DatabaseFile = "" },
		"postgres with no conns": func(c *Config) {
			c.DatabaseDriver, c.DatabaseURL, c.DatabaseMaxConns = DriverPostgres, "postgres://localhost/leads", 0
		},
		"postgres conns past int32": func(c *Config) {
			c.DatabaseDriver, c.DatabaseURL, c.DatabaseMaxConns = DriverPostgres, "postgres://localhost/leads", 1<<32+10
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}

	t.Run("postgres pool bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.DatabaseDriver, cfg.DatabaseURL = DriverPostgres, "postgres://localhost/leads"

		cfg.DatabaseMaxConns = 1
		require.NoError(t, cfg.Validate())
		cfg.DatabaseMaxConns = maxDatabaseConns
		require.NoError(t, cfg.Validate())
		cfg.DatabaseMaxConns = maxDatabaseConns + 1
		require.ErrorContains(t, cfg.Validate(), "LEADS_DATABASE_MAX_CONNS")
	})
}

func TestLoadSigningKeys(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("inline secret", func(t *testing.T) {
		keys, err := LoadSigningKeys(validConfig(), logger)
		require.NoError(t, err)

		kid, secret := keys.Current()
		require.Equal(t, jwtx.KeyID([]byte(testSecret)), kid)
		require.Equal(t, []byte(testSecret), secret)
		require.Equal(t, 1, keys.Len())
	})

	t.Run("file wins and is trimmed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secret")
		fromFile := "ffffffffffffffffffffffffffffffff-file"
		require.NoError(t, os.WriteFile(path, []byte(fromFile+"\n"), 0o600))

		cfg := validConfig()
		cfg.SigningSecretFile = path
		keys, err := LoadSigningKeys(cfg, logger)
		require.NoError(t, err)

		_, secret := keys.Current()
		require.Equal(t, []byte(fromFile), secret)
	})

	t.Run("previous secret stays verifiable", func(t *testing.T) {
		previous := "pppppppppppppppppppppppppppppppp-old"
		cfg := validConfig()
		cfg.SigningSecretPrevious = previous

		keys, err := LoadSigningKeys(cfg, logger)
		require.NoError(t, err)
		require.Equal(t, 2, keys.Len())

		got, err := keys.Get(jwtx.KeyID([]byte(previous)))
		require.NoError(t, err)
		require.Equal(t, []byte(previous), got)
	})

	t.Run("short secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.SigningSecret = "short"
		_, err := LoadSigningKeys(cfg, logger)
		require.ErrorIs(t, err, domain.ErrConfiguration)
		require.ErrorIs(t, err, jwtx.ErrSecretTooShort)
	})

	t.Run("unreadable file", func(t *testing.T) {
		cfg := validConfig()
		cfg.SigningSecretFile = filepath.Join(t.TempDir(), "missing")
		_, err := LoadSigningKeys(cfg, logger)
		require.ErrorIs(t, err, domain.ErrConfiguration)
	})
}
