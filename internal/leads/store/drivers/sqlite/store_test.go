package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/internal/leads/store"
	"github.com/aussiebroadwan/leads/internal/leads/store/drivers/sqlite"
	"github.com/aussiebroadwan/leads/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestCredentials(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Credentials().GetCredentialByUsername(ctx, "admin")
	require.ErrorIs(t, err, store.ErrNotFound)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cred := domain.Credential{
		ID:           idx.New().String(),
		Username:     "admin",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	require.NoError(t, s.Credentials().CreateCredential(ctx, cred))

	got, err := s.Credentials().GetCredentialByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, cred.ID, got.ID)
	require.Equal(t, cred.PasswordHash, got.PasswordHash)
	require.Empty(t, got.TOTPSecret)
	require.True(t, created.Equal(got.CreatedAt))

	t.Run("duplicate username", func(t *testing.T) {
		dup := cred
		dup.ID = idx.New().String()
		require.ErrorIs(t, s.Credentials().CreateCredential(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("update", func(t *testing.T) {
		got.PasswordHash = "new-hash"
		got.TOTPSecret = "JBSWY3DPEHPK3PXP"
		require.NoError(t, s.Credentials().UpdateCredential(ctx, got))

		again, err := s.Credentials().GetCredentialByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, "new-hash", again.PasswordHash)
		require.Equal(t, "JBSWY3DPEHPK3PXP", again.TOTPSecret)
		require.True(t, again.RequiresOTP())
		require.True(t, again.UpdatedAt.After(created))
	})

	t.Run("update unknown", func(t *testing.T) {
		err := s.Credentials().UpdateCredential(ctx, domain.Credential{Username: "ghost", PasswordHash: "x"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestSimulations(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	var ids []string
	for i := range 5 {
		at := base.Add(time.Duration(i) * time.Hour)
		sim := domain.Simulation{
			ID:                idx.NewAt(at).String(),
			Name:              "Ana",
			Email:             "ana@example.com",
			ConsortiumType:    domain.ConsortiumVehicle,
			CreditAmountCents: 80_000_00,
			TermMonths:        60,
			AdminFeeBps:       1500,
			InstallmentCents:  domain.InstallmentCents(80_000_00, 1500, 60),
			CreatedAt:         at,
		}
		require.NoError(t, s.Simulations().CreateSimulation(ctx, sim))
		ids = append(ids, sim.ID)
	}

	n, err := s.Simulations().CountSimulations(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	page, err := s.Simulations().ListSimulations(ctx, domain.Page{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, ids[3], page[0].ID, "newest first")
	require.Equal(t, ids[2], page[1].ID)

	got, err := s.Simulations().GetSimulationByID(ctx, ids[0])
	require.NoError(t, err)
	require.Equal(t, domain.ConsortiumVehicle, got.ConsortiumType)
	require.Equal(t, int64(1_533_34), got.InstallmentCents)
	require.True(t, base.Equal(got.CreatedAt))

	_, err = s.Simulations().GetSimulationByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSimulationRejectsNonPositiveInstallment(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	sim := domain.Simulation{
		ID:                idx.New().String(),
		Name:              "Ana",
		Email:             "ana@example.com",
		ConsortiumType:    domain.ConsortiumVehicle,
		CreditAmountCents: 80_000_00,
		TermMonths:        60,
		AdminFeeBps:       1500,
		InstallmentCents:  -57_889_533_947_578,
		CreatedAt:         time.Now().UTC(),
	}
	require.Error(t, s.Simulations().CreateSimulation(ctx, sim))

	n, err := s.Simulations().CountSimulations(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestApplications(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	app := domain.JobApplication{
		ID:        idx.New().String(),
		Name:      "Bruno",
		Email:     "bruno@example.com",
		Position:  "Sales",
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Applications().CreateApplication(ctx, app))
	require.ErrorIs(t, s.Applications().CreateApplication(ctx, app), store.ErrAlreadyExists)

	got, err := s.Applications().GetApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, "Sales", got.Position)
	require.Empty(t, got.ResumeURL)

	list, err := s.Applications().ListApplications(ctx, domain.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)

	n, err := s.Applications().CountApplications(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestRevokedTokens(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	now := time.Now()

	live := domain.RevokedToken{JTI: "live", Subject: "admin", ExpiresAt: now.Add(time.Hour)}
	dead := domain.RevokedToken{JTI: "dead", Subject: "admin", ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, s.RevokedTokens().RevokeToken(ctx, live))
	require.NoError(t, s.RevokedTokens().RevokeToken(ctx, live), "revoking twice is fine")
	require.NoError(t, s.RevokedTokens().RevokeToken(ctx, dead))

	revoked, err := s.RevokedTokens().IsTokenRevoked(ctx, "live")
	require.NoError(t, err)
	require.True(t, revoked)

	revoked, err = s.RevokedTokens().IsTokenRevoked(ctx, "unknown")
	require.NoError(t, err)
	require.False(t, revoked)

	n, err := s.RevokedTokens().DeleteExpiredRevokedTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	revoked, err = s.RevokedTokens().IsTokenRevoked(ctx, "dead")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Credentials().CreateCredential(ctx, domain.Credential{
			ID: idx.New().String(), Username: "rolled-back", PasswordHash: "x",
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Credentials().GetCredentialByUsername(ctx, "rolled-back")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		_, nestedErr := tx.Tx(ctx)
		require.Error(t, nestedErr)

		return tx.Credentials().CreateCredential(ctx, domain.Credential{
			ID: idx.New().String(), Username: "committed", PasswordHash: "x",
		})
	})
	require.NoError(t, err)

	_, err = s.Credentials().GetCredentialByUsername(ctx, "committed")
	require.NoError(t, err)
}
