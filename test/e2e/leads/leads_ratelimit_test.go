package leads_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/leads/pkg/leadsdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimit runs with the production login profile (5 per minute per
// IP and username) and expects the sixth attempt to be refused.
func TestLoginRateLimit(t *testing.T) {
	baseURL := setupLeadsContainer(t, map[string]string{
		"LEADS_RATELIMIT_LOGIN_REQUESTS": "",
		"LEADS_RATELIMIT_LOGIN_BURST":    "",
	})
	client := leadsdk.NewClient(baseURL)

	for i := range 5 {
		_, err := client.Login(t.Context(), adminUsername, "wrong")
		assertAPIError(t, err, http.StatusUnauthorized, leadsdk.ErrorCodeInvalidCredentials)
		t.Logf("attempt %d rejected with InvalidCredentials", i+1)
	}

	_, err := client.Login(t.Context(), adminUsername, adminPassword)
	assertAPIError(t, err, http.StatusTooManyRequests, leadsdk.ErrorCodeRateLimited)

	// Another username has its own bucket.
	_, err = client.Login(t.Context(), "someone-else", "wrong")
	require.ErrorIs(t, err, leadsdk.ErrInvalidCredentials)
}
