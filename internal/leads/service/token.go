package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/internal/leads/store"
	"github.com/aussiebroadwan/leads/pkg/cryptox"
	"github.com/aussiebroadwan/leads/pkg/jwtx"
	"github.com/aussiebroadwan/leads/pkg/metricsx"
	"github.com/aussiebroadwan/leads/pkg/slogx"
)

// TokenConfig is the immutable configuration of a TokenService.
type TokenConfig struct {
	Keys       *jwtx.KeySet
	Issuer     string
	TTL        time.Duration
	Revocation bool             // consult the jti denylist on every Validate
	Sealer     *cryptox.Sealer  // opens stored TOTP secrets; nil means they are plaintext
	Now        func() time.Time // nil means time.Now
}

// TokenService issues admin tokens at login and validates them on every
// protected request. It holds no mutable state, so one value is shared by
// all request goroutines.
type TokenService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Store      store.Store
	Hasher     *cryptox.Hasher
	Sealer     *cryptox.Sealer
	Metrics    *metricsx.Metrics
	Issuer     string
	TTL        time.Duration
	Revocation bool
	Now        func() time.Time
}

// NewTokenService wires a signer and a verifier over cfg.Keys sharing one clock.
// A missing or unusable key set is a ConfigurationError.
func NewTokenService(cfg TokenConfig, st store.Store, hasher *cryptox.Hasher, m *metricsx.Metrics) (*TokenService, error) {
	if !cfg.Keys.IsReady() {
		return nil, domain.NewAuthError(domain.KindConfiguration, jwtx.ErrNoKey)
	}
	if cfg.TTL <= 0 {
		cfg.TTL = jwtx.DefaultTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	signer, err := jwtx.NewSignerHS256(cfg.Keys)
	if err != nil {
		return nil, domain.NewAuthError(domain.KindConfiguration, err)
	}

	return &TokenService{
		Signer:     signer,
		Verifier:   jwtx.NewVerifierHS256(cfg.Keys, cfg.Issuer, cfg.Now),
		Store:      st,
		Hasher:     hasher,
		Sealer:     cfg.Sealer,
		Metrics:    m,
		Issuer:     cfg.Issuer,
		TTL:        cfg.TTL,
		Revocation: cfg.Revocation,
		Now:        cfg.Now,
	}, nil
}

// Issue checks the admin credentials and returns a signed token for them.
// An unknown username and a wrong password fail the same way and cost the
// same time. When the credential has a TOTP secret, otpCode must be valid too.
func (s *TokenService) Issue(ctx context.Context, username, password, otpCode string) (domain.IssuedToken, error) {
	l := slogx.FromContext(ctx)
	now := s.Now()

	if username == "" || password == "" {
		s.Metrics.ObserveLogin("failure")
		return domain.IssuedToken{}, domain.ErrInvalidCredentials
	}

	cred, err := s.Store.Credentials().GetCredentialByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Hasher.VerifyDummy(password)
			s.Metrics.ObserveLogin("failure")
			l.Info("login failed", slog.String("username", username), slog.String("reason", "unknown user"))
			return domain.IssuedToken{}, domain.ErrInvalidCredentials
		}
		s.Metrics.ObserveLogin("error")
		return domain.IssuedToken{}, fmt.Errorf("%w: credential lookup: %w", domain.ErrStoreFailure, err)
	}

	if err := s.Hasher.Verify(password, cred.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrInvalidHash) {
			l.Error("stored password hash is unreadable", slog.String("username", username), slog.Any("error", err))
		} else {
			l.Info("login failed", slog.String("username", username), slog.String("reason", "password mismatch"))
		}
		s.Metrics.ObserveLogin("failure")
		return domain.IssuedToken{}, domain.ErrInvalidCredentials
	}

	if cred.RequiresOTP() {
		secret, err := s.Sealer.Open(cred.TOTPSecret)
		if err != nil {
			l.Error("stored otp secret is unreadable", slog.String("username", username), slog.Any("error", err))
			s.Metrics.ObserveLogin("error")
			return domain.IssuedToken{}, domain.ErrInvalidCredentials
		}
		if !s.validOTP(otpCode, secret, now) {
			l.Info("login failed", slog.String("username", username), slog.String("reason", "otp rejected"))
			s.Metrics.ObserveLogin("failure")
			return domain.IssuedToken{}, domain.ErrInvalidCredentials
		}
	}

	claims := jwtx.NewClaims(cred.Username, s.Issuer, s.TTL, now)
	signed, err := s.Signer.Sign(claims)
	if err != nil {
		s.Metrics.ObserveLogin("error")
		return domain.IssuedToken{}, domain.NewAuthError(domain.KindConfiguration, err)
	}

	s.Metrics.ObserveLogin("success")
	l.Info("admin token issued", slog.String("subject", cred.Username), slog.String("jti", claims.ID))

	return domain.IssuedToken{
		Token:     signed,
		TokenType: domain.TokenType,
		TokenID:   claims.ID,
		ExpiresIn: s.TTL,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *TokenService) validOTP(code, secret string, now time.Time) bool {
	if code == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, now, totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

// Validate turns a raw bearer token into a Principal. Checks run in order:
// structure, expiry, signature and issuer, then the denylist when enabled.
// It has no side effects besides metrics, so repeated calls agree.
func (s *TokenService) Validate(ctx context.Context, raw string) (domain.Principal, error) {
	if raw == "" {
		s.Metrics.ObserveTokenRejection(string(domain.KindMissing))
		return domain.Principal{}, domain.ErrMissing
	}

	claims, err := s.Verifier.Verify(raw)
	if err != nil {
		aerr := domain.NewAuthError(kindForVerifyError(err), err)
		s.Metrics.ObserveTokenRejection(string(aerr.Kind))
		return domain.Principal{}, aerr
	}

	if s.Revocation && claims.ID != "" {
		revoked, err := s.Store.RevokedTokens().IsTokenRevoked(ctx, claims.ID)
		if err != nil {
			return domain.Principal{}, fmt.Errorf("%w: denylist lookup: %w", domain.ErrStoreFailure, err)
		}
		if revoked {
			s.Metrics.ObserveTokenRejection(string(domain.KindRevoked))
			return domain.Principal{}, domain.ErrRevoked
		}
	}

	return domain.Principal{
		Subject:   claims.Subject,
		TokenID:   claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func kindForVerifyError(err error) domain.AuthErrorKind {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return domain.KindExpired
	case errors.Is(err, jwtx.ErrInvalidSig),
		errors.Is(err, jwtx.ErrIssuer),
		errors.Is(err, jwtx.ErrUnknownKID),
		errors.Is(err, jwtx.ErrAlgMismatch):
		return domain.KindBadSignature
	default:
		return domain.KindMalformed
	}
}

// Revoke puts the principal's token on the denylist until it expires. It is
// a no-op when revocation is disabled.
func (s *TokenService) Revoke(ctx context.Context, p domain.Principal) error {
	if !s.Revocation || p.TokenID == "" {
		return nil
	}

	err := s.Store.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{
		JTI:       p.TokenID,
		Subject:   p.Subject,
		ExpiresAt: p.ExpiresAt,
		RevokedAt: s.Now(),
	})
	if err != nil {
		return fmt.Errorf("%w: revoke: %w", domain.ErrStoreFailure, err)
	}

	slogx.FromContext(ctx).Info("admin token revoked", slog.String("subject", p.Subject), slog.String("jti", p.TokenID))
	return nil
}
