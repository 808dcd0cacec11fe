package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
	"github.com/aussiebroadwan/leads/pkg/jwtx"
)

// LoadSigningKeys builds the token key set from the configured secrets. The
// file wins over the inline secret so orchestrators can mount it; surrounding
// whitespace in the file is ignored. Any failure is a ConfigurationError.
func LoadSigningKeys(cfg Config, logger *slog.Logger) (*jwtx.KeySet, error) {
	secret := cfg.SigningSecret
	if cfg.SigningSecretFile != "" {
		raw, err := os.ReadFile(filepath.Clean(cfg.SigningSecretFile))
		if err != nil {
			return nil, domain.NewAuthError(domain.KindConfiguration, fmt.Errorf("read signing secret: %w", err))
		}
		secret = strings.TrimSpace(string(raw))
	}
	if secret == "" {
		return nil, domain.NewAuthError(domain.KindConfiguration, errors.New("signing secret is empty"))
	}

	var previous [][]byte
	if cfg.SigningSecretPrevious != "" {
		previous = append(previous, []byte(cfg.SigningSecretPrevious))
	}

	keys, err := jwtx.NewKeySet([]byte(secret), previous...)
	if err != nil {
		return nil, domain.NewAuthError(domain.KindConfiguration, err)
	}

	kid, _ := keys.Current()
	logger.Info("token signing keys loaded",
		"alg", "HS256",
		"kid", kid,
		"verification_keys", keys.Len(),
	)
	return keys, nil
}
