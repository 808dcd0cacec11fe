package leadsdk_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	leadshttp "github.com/aussiebroadwan/leads/internal/leads/http"
	"github.com/aussiebroadwan/leads/internal/leads/service"
	"github.com/aussiebroadwan/leads/internal/leads/store/drivers/sqlite"
	"github.com/aussiebroadwan/leads/pkg/cryptox"
	"github.com/aussiebroadwan/leads/pkg/jwtx"
	"github.com/aussiebroadwan/leads/pkg/leadsdk"
)

func newServer(t *testing.T, revocation bool) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hasher := cryptox.NewHasher("sdk-pepper")
	_, err = (&service.CredentialService{Store: st, Hasher: hasher}).EnsureAdmin(context.Background(), "admin", "admin123", "")
	require.NoError(t, err)

	keys, err := jwtx.NewKeySet([]byte("sdk-test-secret-0123456789abcdefgh"))
	require.NoError(t, err)

	tokens, err := service.NewTokenService(service.TokenConfig{
		Keys:       keys,
		Issuer:     "leads-sdk-test",
		TTL:        time.Hour,
		Revocation: revocation,
	}, st, hasher, nil)
	require.NoError(t, err)

	r := leadshttp.NewRouter(keys, "sdk-test", st, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	r.TokenService = tokens
	r.LeadService = &service.LeadService{Store: st, AdminFeeBps: service.DefaultAdminFeeBps}
	r.PublicConfig = domain.PublicConfig{Service: "leads", SigningAlg: "HS256", TokenTTL: time.Hour, RevocationEnabled: revocation}
	r.RateLimits = leadshttp.RateLimits{}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFlow(t *testing.T) {
	ctx := context.Background()
	srv := newServer(t, false)
	client := leadsdk.NewClient(srv.URL + "/")

	sim, err := client.SubmitSimulation(ctx, leadsdk.SimulationRequest{
		Name:              "Ana Souza",
		Email:             "ana@example.com",
		ConsortiumType:    "real_estate",
		CreditAmountCents: 30_000_000,
		TermMonths:        200,
	})
	require.NoError(t, err)
	require.Equal(t, int64(172_500), sim.InstallmentCents)

	app, err := client.SubmitApplication(ctx, leadsdk.ApplicationRequest{
		Name:     "Bruno Lima",
		Email:    "bruno@example.com",
		Position: "Sales",
	})
	require.NoError(t, err)

	session, err := client.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token())
	require.True(t, session.ExpiresAt().After(time.Now()))

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "admin", me.Subject)

	sims, err := session.ListSimulations(ctx, leadsdk.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, sims.Total)
	require.Equal(t, 10, sims.Limit)
	require.Equal(t, sim.ID, sims.Items[0].ID)

	gotSim, err := session.GetSimulation(ctx, sim.ID)
	require.NoError(t, err)
	require.Equal(t, sim.ID, gotSim.ID)

	apps, err := session.ListApplications(ctx, leadsdk.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, apps.Total)

	gotApp, err := session.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, "Sales", gotApp.Position)

	_, err = session.GetApplication(ctx, "missing")
	require.ErrorIs(t, err, leadsdk.ErrNotFound)

	require.NoError(t, session.Logout(ctx))
	_, err = session.Me(ctx)
	require.ErrorIs(t, err, leadsdk.ErrSessionExpired)
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	srv := newServer(t, false)
	client := leadsdk.NewClient(srv.URL)

	t.Run("bad credentials", func(t *testing.T) {
		_, err := client.Login(ctx, "admin", "wrong")
		require.ErrorIs(t, err, leadsdk.ErrInvalidCredentials)

		var apiErr *leadsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})

	t.Run("validation details", func(t *testing.T) {
		_, err := client.SubmitSimulation(ctx, leadsdk.SimulationRequest{Name: "Ana"})

		var apiErr *leadsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, leadsdk.ErrorCodeInvalidRequest, apiErr.Code)
		require.Contains(t, apiErr.Details, "email")
		require.Contains(t, apiErr.Details, "term_months")
	})

	t.Run("server rejects a forged token", func(t *testing.T) {
		session := client.NewSession("a.b.c", time.Now().Add(time.Hour))
		_, err := session.ListSimulations(ctx, leadsdk.ListOptions{})

		var apiErr *leadsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, leadsdk.ErrorCodeMalformed, apiErr.Code)
	})

	t.Run("expired session never reaches the server", func(t *testing.T) {
		session, err := client.Login(ctx, "admin", "admin123")
		require.NoError(t, err)

		client.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		t.Cleanup(func() { client.Now = time.Now })

		_, err = session.ListSimulations(ctx, leadsdk.ListOptions{})
		require.ErrorIs(t, err, leadsdk.ErrSessionExpired)
	})
}

func TestClientLogoutWithRevocation(t *testing.T) {
	ctx := context.Background()
	srv := newServer(t, true)
	client := leadsdk.NewClient(srv.URL)

	session, err := client.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	token := session.Token()
	require.NoError(t, session.Logout(ctx))

	reused := client.NewSession(token, time.Now().Add(time.Hour))
	_, err = reused.Me(ctx)

	var apiErr *leadsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, leadsdk.ErrorCodeRevoked, apiErr.Code)
}

func TestClientDiagnostics(t *testing.T) {
	ctx := context.Background()
	srv := newServer(t, true)
	client := leadsdk.NewClient(srv.URL)

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)

	cfg, err := client.GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, "HS256", cfg.SigningAlg)
	require.Equal(t, 3600, cfg.TokenTTLSeconds)
	require.True(t, cfg.RevocationEnabled)
}
