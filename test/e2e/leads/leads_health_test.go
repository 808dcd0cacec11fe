package leads_test

import (
	"testing"

	"github.com/aussiebroadwan/leads/pkg/leadsdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies liveness, readiness and the public config
// snapshot are served without a token.
func TestHealthEndpoints(t *testing.T) {
	baseURL := setupLeadsContainer(t, nil)
	client := leadsdk.NewClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	ready, err := client.GetReadiness(t.Context())
	assertHealthy(t, ready, err)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)

	cfg, err := client.GetConfig(t.Context())
	require.NoError(t, err)
	require.Equal(t, issuer, cfg.Issuer)
	require.Equal(t, "HS256", cfg.SigningAlg)
	require.Equal(t, 86400, cfg.TokenTTLSeconds)
	require.NotEmpty(t, cfg.ConsortiumTypes)

	t.Logf("Service %s is healthy (uptime %s)", health.Version, health.Uptime)
}
