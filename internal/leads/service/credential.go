package service

import (
	"context"
	"encoding/base32"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/internal/leads/store"
	"github.com/aussiebroadwan/leads/pkg/cryptox"
	"github.com/aussiebroadwan/leads/pkg/idx"
	"github.com/aussiebroadwan/leads/pkg/slogx"
)

var ErrInvalidTOTPSecret = errors.New("totp secret must be base32")

// CredentialService seeds and maintains the admin credential.
type CredentialService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Sealer *cryptox.Sealer // encrypts the TOTP secret at rest; nil stores it as is
}

// EnsureAdmin makes the stored admin credential match the configuration in
// one transaction:
//   - a missing admin is created; with no configured password a random one
//     is generated and returned so the caller can show it once
//   - an existing admin is rehashed when the configured password no longer
//     verifies, and kept as is when no password is configured
//   - the TOTP secret always follows the configuration (empty disables it)
func (s *CredentialService) EnsureAdmin(ctx context.Context, username, password, totpSecret string) (generated string, err error) {
	l := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return "", domain.NewAuthError(domain.KindConfiguration, errors.New("admin username is empty"))
	}
	totpSecret, err = normalizeTOTPSecret(totpSecret)
	if err != nil {
		return "", domain.NewAuthError(domain.KindConfiguration, err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		cred, err := tx.Credentials().GetCredentialByUsername(ctx, username)
		if errors.Is(err, store.ErrNotFound) {
			pw := password
			if pw == "" {
				if pw, err = cryptox.GeneratePassword(); err != nil {
					return err
				}
				generated = pw
			}

			hash, err := s.Hasher.Hash(pw)
			if err != nil {
				return err
			}

			sealed, err := s.Sealer.Seal(totpSecret)
			if err != nil {
				return err
			}

			if err := tx.Credentials().CreateCredential(ctx, domain.Credential{
				ID:           idx.New().String(),
				Username:     username,
				PasswordHash: hash,
				TOTPSecret:   sealed,
			}); err != nil {
				return err
			}
			l.Info("admin credential created", slog.String("username", username), slog.Bool("otp", totpSecret != ""))
			return nil
		}
		if err != nil {
			return err
		}

		changed := false
		if password != "" && s.Hasher.Verify(password, cred.PasswordHash) != nil {
			hash, err := s.Hasher.Hash(password)
			if err != nil {
				return err
			}
			cred.PasswordHash = hash
			changed = true
			l.Info("admin password rehashed", slog.String("username", username))
		}
		// An unreadable or still-plaintext stored secret is replaced by the configured one.
		current, openErr := s.Sealer.Open(cred.TOTPSecret)
		unsealed := s.Sealer != nil && totpSecret != "" && !cryptox.IsSealed(cred.TOTPSecret)
		if openErr != nil || current != totpSecret || unsealed {
			sealed, err := s.Sealer.Seal(totpSecret)
			if err != nil {
				return err
			}
			cred.TOTPSecret = sealed
			changed = true
			l.Info("admin otp setting changed", slog.String("username", username), slog.Bool("otp", totpSecret != ""))
		}

		if !changed {
			return nil
		}
		return tx.Credentials().UpdateCredential(ctx, cred)
	})
	if err != nil {
		return "", fmt.Errorf("%w: ensure admin: %w", domain.ErrStoreFailure, err)
	}
	return generated, nil
}

func normalizeTOTPSecret(secret string) (string, error) {
	secret = strings.ToUpper(strings.TrimRight(strings.TrimSpace(secret), "="))
	secret = strings.ReplaceAll(secret, " ", "")
	if secret == "" {
		return "", nil
	}
	if _, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTOTPSecret, err)
	}
	return secret, nil
}
