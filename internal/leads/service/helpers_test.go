package service_test

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/leads/internal/leads/service"
	"github.com/aussiebroadwan/leads/internal/leads/store/drivers/sqlite"
	"github.com/aussiebroadwan/leads/pkg/cryptox"
	"github.com/aussiebroadwan/leads/pkg/jwtx"
)

const (
	adminUser = "admin"
	adminPass = "admin123"
	issuer    = "leads-test"
)

var testSecret = []byte("test-signing-secret-0123456789abcdef")

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

type fixture struct {
	store  *sqlite.Store
	hasher *cryptox.Hasher
	keys   *jwtx.KeySet
	now    time.Time
}

// clock returns a func reading f.now, so tests can move time.
func (f *fixture) clock() func() time.Time {
	return func() time.Time { return f.now }
}

func (f *fixture) tokens(t *testing.T, revocation bool) *service.TokenService {
	t.Helper()
	svc, err := service.NewTokenService(service.TokenConfig{
		Keys:       f.keys,
		Issuer:     issuer,
		TTL:        24 * time.Hour,
		Revocation: revocation,
		Now:        f.clock(),
	}, f.store, f.hasher, nil)
	require.NoError(t, err)
	return svc
}

// newFixture returns a migrated store holding admin/admin123.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	keys, err := jwtx.NewKeySet(testSecret)
	require.NoError(t, err)

	f := &fixture{
		store:  newStore(t),
		hasher: cryptox.NewHasher("test-pepper"),
		keys:   keys,
		now:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	creds := &service.CredentialService{Store: f.store, Hasher: f.hasher}
	_, err = creds.EnsureAdmin(context.Background(), adminUser, adminPass, "")
	require.NoError(t, err)
	return f
}

func flipSignature(t *testing.T, token string) string {
	t.Helper()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	sig[len(sig)/2] ^= 0x80
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)
	return strings.Join(parts, ".")
}

// reheader replaces the token header with one naming alg and kid.
func reheader(t *testing.T, token, alg, kid string) string {
	t.Helper()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	header := `{"alg":"` + alg + `","typ":"JWT","kid":"` + kid + `"}`
	parts[0] = base64.RawURLEncoding.EncodeToString([]byte(header))
	return strings.Join(parts, ".")
}

func currentKID(ks *jwtx.KeySet) string {
	kid, _ := ks.Current()
	return kid
}
